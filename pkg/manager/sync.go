package manager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/AntonioSertic23/nextup/pkg/catalog"
	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/storage"
)

// SyncAccount re-derives local truth from the upstream bulk watched
// history. Shows are processed strictly sequentially with an inter-show
// throttle to stay under upstream rate limits; one bad show never aborts
// the run. Unlike the incremental reconciler this path trusts upstream: the
// watched set is overwritten, not incremented.
func (m Manager) SyncAccount(ctx context.Context, userID, token string) (*SyncResult, error) {
	log := logger.FromCtx(ctx)

	limiter := rate.NewLimiter(rate.Every(m.config.ShowThrottle), 1)
	result := &SyncResult{}

	page := 1
	for {
		watched, err := m.catalog.WatchedShows(ctx, token, page, m.config.PageSize)
		if err != nil {
			return result, UpstreamError{Err: err}
		}

		for _, watchedShow := range watched.Shows {
			if err := limiter.Wait(ctx); err != nil {
				return result, err
			}

			if err := m.syncShow(ctx, userID, watchedShow); err != nil {
				log.Warnw("failed to sync show", "show", watchedShow.Show.Title, "error", err)
				result.Failed = append(result.Failed, ItemFailure{
					Item: watchedShow.Show.Title,
					Err:  err,
				})
				continue
			}
			result.Synced++
		}

		if len(watched.Shows) == 0 || page >= watched.Pagination.PageCount {
			break
		}
		page++
	}

	log.Infow("account sync finished", "synced", result.Synced, "failed", len(result.Failed))
	return result, nil
}

// syncShow ingests one show's metadata tree and overwrites the user's
// watched set for it with what upstream reports.
func (m Manager) syncShow(ctx context.Context, userID string, watchedShow catalog.WatchedShow) error {
	show := watchedShow.Show
	catalogID := strconv.Itoa(int(show.IDs.Trakt))

	seasons, err := m.catalog.GetSeasons(ctx, catalogID, false)
	if err != nil {
		return fmt.Errorf("failed to fetch seasons: %w", err)
	}
	m.seasons.Set(show.IDs.Trakt, seasons)

	ingested, err := m.IngestShow(ctx, show, seasons)
	if err != nil {
		return err
	}
	showID := ingested.ShowID

	lastWatched := parseUpstreamTime(watchedShow.LastWatchedAt)
	for _, season := range watchedShow.Seasons {
		if season.Number == 0 {
			continue
		}
		for _, episode := range season.Episodes {
			ep, err := m.storage.GetEpisodeByNumber(ctx, showID, season.Number, episode.Number)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					// upstream reports history for an episode the
					// catalog no longer lists
					continue
				}
				return fmt.Errorf("failed to resolve episode s%02de%02d: %w", season.Number, episode.Number, err)
			}

			watchedAt := parseUpstreamTime(episode.LastWatchedAt)
			if err := m.storage.UpsertUserEpisodes(ctx, userID, []string{ep.ID}, watchedAt); err != nil {
				return fmt.Errorf("failed to record watch event: %w", err)
			}
		}
	}

	if err := m.storage.TouchShowLastWatched(ctx, showID, lastWatched); err != nil {
		return fmt.Errorf("failed to update last watched: %w", err)
	}

	// refresh the aggregate cache when the show is on the default list
	list, err := m.storage.GetDefaultList(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	if _, err := m.storage.GetListShow(ctx, list.ID, showID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	row, err := m.computeListShow(ctx, userID, list.ID, showID, time.Now().UTC())
	if err != nil {
		return err
	}
	if _, err := m.storage.UpsertListShow(ctx, *row); err != nil {
		return fmt.Errorf("failed to refresh aggregate: %w", err)
	}

	return nil
}

func parseUpstreamTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
