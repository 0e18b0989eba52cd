package manager

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

// GetShowDetail resolves an identifier (trakt, tvdb or tmdb numeric, imdb or
// slug string) to a locally stored show and returns its season tree with the
// user's watch state. Unknown shows are fetched from the catalog and
// ingested on the fly.
func (m Manager) GetShowDetail(ctx context.Context, userID, identifier string) (*ShowDetail, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrValidation)
	}

	show, err := m.resolveShow(ctx, identifier)
	if err != nil {
		return nil, err
	}

	seasons, err := m.storage.ListSeasons(ctx, show.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	episodes, err := m.storage.ListEpisodes(ctx, show.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	watched, err := m.storage.ListWatchedEpisodes(ctx, userID, show.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch events: %w", err)
	}
	watchedSet := make(map[string]struct{}, len(watched))
	for _, w := range watched {
		watchedSet[w.EpisodeID] = struct{}{}
	}

	bySeason := make(map[int32][]EpisodeDetail)
	for _, episode := range episodes {
		_, isWatched := watchedSet[episode.ID]
		bySeason[episode.SeasonNumber] = append(bySeason[episode.SeasonNumber], EpisodeDetail{
			Episodes: *episode,
			Watched:  isWatched,
		})
	}

	detail := &ShowDetail{
		Show:    *show,
		Seasons: make([]SeasonDetail, 0, len(seasons)),
	}
	for _, season := range seasons {
		detail.Seasons = append(detail.Seasons, SeasonDetail{
			Seasons:  *season,
			Episodes: bySeason[season.Number],
		})
	}

	progress, err := m.showProgress(ctx, userID, show.ID)
	if err != nil {
		return nil, err
	}
	detail.Progress = *progress

	return detail, nil
}

// resolveShow finds a show by any identifier, ingesting it from the catalog
// when unknown locally. The trakt id is tried first; numeric identifiers are
// only compared against numeric columns and string identifiers against
// string columns.
func (m Manager) resolveShow(ctx context.Context, identifier string) (*model.Shows, error) {
	log := logger.FromCtx(ctx)

	ids := externalIDs(identifier)

	if ids.Trakt != nil {
		show, err := m.storage.FindShowByExternalIDs(ctx, storage.ExternalIDs{Trakt: ids.Trakt})
		if err == nil {
			return show, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		ids.Trakt = nil
	}

	show, err := m.storage.FindShowByExternalIDs(ctx, ids)
	if err == nil {
		return show, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	log.Debugw("show unknown locally, fetching from catalog", "identifier", identifier)

	payload, err := m.catalog.GetShow(ctx, identifier)
	if err != nil {
		return nil, UpstreamError{Err: err}
	}

	seasons, err := m.fetchSeasons(ctx, payload.IDs.Trakt, identifier)
	if err != nil {
		return nil, UpstreamError{Err: err}
	}

	ingested, err := m.IngestShow(ctx, *payload, seasons)
	if err != nil {
		return nil, err
	}

	return m.storage.GetShow(ctx, ingested.ShowID)
}

// showProgress reads the aggregate row when the show is on the user's
// default list and otherwise derives the same numbers on the fly.
func (m Manager) showProgress(ctx context.Context, userID, showID string) (*Progress, error) {
	next, err := m.storage.NextUnwatchedEpisode(ctx, userID, showID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to find next episode: %w", err)
	}

	list, err := m.storage.GetDefaultList(ctx, userID)
	if err == nil {
		if row, err := m.storage.GetListShow(ctx, list.ID, showID); err == nil {
			progress := progressFromRow(row, next)
			return &progress, nil
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	total, err := m.storage.CountShowEpisodes(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to count episodes: %w", err)
	}
	watched, err := m.storage.CountWatchedEpisodes(ctx, userID, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to count watched episodes: %w", err)
	}

	return &Progress{
		WatchedEpisodes: watched,
		TotalEpisodes:   total,
		IsCompleted:     total > 0 && watched >= total,
		NextEpisode:     next,
	}, nil
}

// externalIDs classifies an identifier into the columns it may match.
func externalIDs(identifier string) storage.ExternalIDs {
	if n, err := strconv.ParseInt(identifier, 10, 32); err == nil {
		id := int32(n)
		return storage.ExternalIDs{Trakt: &id, TVDB: &id, TMDB: &id}
	}
	return storage.ExternalIDs{IMDB: &identifier, Slug: &identifier}
}
