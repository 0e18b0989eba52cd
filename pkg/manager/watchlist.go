package manager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

// AddShow puts a show on the user's default list. The aggregate row is
// computed from scratch against the user's full watch history, so adding a
// show the user already watched lands with correct progress. Safe to call
// twice.
func (m Manager) AddShow(ctx context.Context, userID, showID string) (*model.ListShows, error) {
	if showID == "" {
		return nil, fmt.Errorf("%w: show id is required", ErrValidation)
	}

	if _, err := m.storage.GetShow(ctx, showID); err != nil {
		return nil, fmt.Errorf("failed to resolve show: %w", err)
	}

	list, err := m.storage.GetDefaultList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default list: %w", err)
	}

	row, err := m.computeListShow(ctx, userID, list.ID, showID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if _, err := m.storage.UpsertListShow(ctx, *row); err != nil {
		return nil, fmt.Errorf("failed to add show to list: %w", err)
	}

	return m.storage.GetListShow(ctx, list.ID, showID)
}

// RemoveShow drops the membership row only. Watch history belongs to the
// user-episode relation and is retained.
func (m Manager) RemoveShow(ctx context.Context, userID, showID string) error {
	if showID == "" {
		return fmt.Errorf("%w: show id is required", ErrValidation)
	}

	list, err := m.storage.GetDefaultList(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve default list: %w", err)
	}

	return m.storage.DeleteListShow(ctx, list.ID, showID)
}

// GetWatchlist returns the user's aggregate rows joined with their shows.
func (m Manager) GetWatchlist(ctx context.Context, userID, sortBy, order string) ([]*storage.WatchlistEntry, error) {
	list, err := m.storage.GetDefaultList(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default list: %w", err)
	}

	return m.storage.ListListShows(ctx, list.ID, sortBy, order)
}

// GetWatchlistDetail enriches the watchlist with upstream season payloads,
// fetched in capped concurrent batches. Each batch is awaited fully before
// the next starts. A failed fetch leaves that entry without seasons and is
// logged; the read never fails as a whole because of one show.
func (m Manager) GetWatchlistDetail(ctx context.Context, userID string) ([]WatchlistDetailItem, error) {
	log := logger.FromCtx(ctx)

	entries, err := m.GetWatchlist(ctx, userID, storage.SortByAdded, storage.OrderDesc)
	if err != nil {
		return nil, err
	}

	items := make([]WatchlistDetailItem, len(entries))
	for i, entry := range entries {
		items[i] = WatchlistDetailItem{WatchlistEntry: *entry}
	}

	batch := m.config.SeasonFetchBatch
	for start := 0; start < len(items); start += batch {
		end := start + batch
		if end > len(items) {
			end = len(items)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				show := items[i].Show
				seasons, err := m.fetchSeasons(ctx, show.TraktID, strconv.Itoa(int(show.TraktID)))
				if err != nil {
					log.Warnw("failed to fetch seasons for watchlist", "show", show.Title, "error", err)
					return
				}
				items[i].Seasons = seasons
			}(i)
		}
		wg.Wait()
	}

	return items, nil
}

// computeListShow derives a full aggregate row from the user's watch
// history, the from-scratch equivalent of the reconciler's incremental
// update.
func (m Manager) computeListShow(ctx context.Context, userID, listID, showID string, now time.Time) (*model.ListShows, error) {
	total, err := m.storage.CountShowEpisodes(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to count episodes: %w", err)
	}

	watched, err := m.storage.CountWatchedEpisodes(ctx, userID, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to count watched episodes: %w", err)
	}

	row := model.ListShows{
		ListID:          listID,
		ShowID:          showID,
		WatchedEpisodes: watched,
		TotalEpisodes:   total,
		IsCompleted:     total > 0 && watched >= total,
	}
	if row.IsCompleted {
		row.CompletedAt = &now
	}

	next, err := m.storage.NextUnwatchedEpisode(ctx, userID, showID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to find next episode: %w", err)
	}
	if next != nil {
		row.NextEpisodeID = &next.ID
	}

	return &row, nil
}
