package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/AntonioSertic23/nextup/pkg/catalog"
	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

// IngestShow normalizes one upstream show with its season tree into the
// store. Idempotent: re-ingesting refreshes metadata without duplicating
// rows. A show upsert failure aborts; season and episode failures are
// recorded in the result and ingestion continues.
func (m Manager) IngestShow(ctx context.Context, show catalog.Show, seasons []catalog.Season) (*IngestResult, error) {
	log := logger.FromCtx(ctx)

	showID, err := m.storage.UpsertShow(ctx, modelShow(show))
	if err != nil {
		return nil, fmt.Errorf("failed to ingest show %q: %w", show.Title, err)
	}

	result := &IngestResult{ShowID: showID}

	for _, season := range seasons {
		if isSpecialSeason(season) {
			continue
		}

		seasonID, err := m.storage.UpsertSeason(ctx, modelSeason(showID, season))
		if err != nil {
			log.Warnw("failed to ingest season", "show", show.Title, "season", season.Number, "error", err)
			result.Failed = append(result.Failed, ItemFailure{
				Item: fmt.Sprintf("season %d", season.Number),
				Err:  err,
			})
			continue
		}
		result.Seasons++

		for _, episode := range season.Episodes {
			_, err := m.storage.UpsertEpisode(ctx, modelEpisode(showID, seasonID, episode))
			if err != nil {
				log.Warnw("failed to ingest episode", "show", show.Title, "season", episode.Season, "episode", episode.Number, "error", err)
				result.Failed = append(result.Failed, ItemFailure{
					Item: fmt.Sprintf("s%02de%02d", episode.Season, episode.Number),
					Err:  err,
				})
				continue
			}
			result.Episodes++
		}
	}

	return result, nil
}

// isSpecialSeason matches both the reserved season number and upstream
// seasons titled like "Specials".
func isSpecialSeason(season catalog.Season) bool {
	if season.Number == 0 {
		return true
	}
	if title, err := season.Title.Get(); err == nil {
		return strings.Contains(strings.ToLower(title), "special")
	}
	return false
}

// Optional-field defaults are resolved here at the ingestion boundary so
// downstream code never re-checks optionality.

func modelShow(show catalog.Show) model.Shows {
	s := model.Shows{
		TraktID:  show.IDs.Trakt,
		Slug:     show.IDs.Slug,
		TvdbID:   optional(show.IDs.TVDB),
		ImdbID:   optional(show.IDs.IMDB),
		TmdbID:   optional(show.IDs.TMDB),
		Title:    show.Title,
		Year:     optional(show.Year),
		Overview: optional(show.Overview),
		Runtime:  valueOr(show.Runtime, 0),
		Status:   optional(show.Status),
	}
	if show.Images != nil {
		s.PosterURL = optional(show.Images.Poster)
		s.FanartURL = optional(show.Images.Fanart)
	}
	return s
}

func modelSeason(showID string, season catalog.Season) model.Seasons {
	return model.Seasons{
		ShowID:       showID,
		TraktID:      season.IDs.Trakt,
		Number:       season.Number,
		Title:        optional(season.Title),
		EpisodeCount: season.EpisodeCount,
		Overview:     optional(season.Overview),
	}
}

func modelEpisode(showID, seasonID string, episode catalog.Episode) model.Episodes {
	e := model.Episodes{
		SeasonID:     seasonID,
		ShowID:       showID,
		TraktID:      episode.IDs.Trakt,
		SeasonNumber: episode.Season,
		Number:       episode.Number,
		Title:        episode.Title,
		Overview:     optional(episode.Overview),
		Runtime:      valueOr(episode.Runtime, 0),
	}
	if aired, err := episode.FirstAired.Get(); err == nil {
		if t, err := time.Parse(time.RFC3339, aired); err == nil {
			utc := t.UTC()
			e.AiredAt = &utc
		}
	}
	return e
}

func optional[T any](v nullable.Nullable[T]) *T {
	value, err := v.Get()
	if err != nil {
		return nil
	}
	return &value
}

func valueOr[T any](v nullable.Nullable[T], fallback T) T {
	value, err := v.Get()
	if err != nil {
		return fallback
	}
	return value
}
