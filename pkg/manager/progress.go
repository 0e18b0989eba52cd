package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

// MarkEpisodes records the given episodes as watched for the user and pushes
// the change upstream. Marking an already-watched episode is a no-op: the
// aggregate delta is the count of rows actually inserted, so overlapping
// requests never inflate watched_episodes.
//
// Local persistence always completes before the upstream push; a push
// failure surfaces as UpstreamError with local state already committed. The
// next full-account sync reconciles any drift.
func (m Manager) MarkEpisodes(ctx context.Context, userID, token, showID string, episodeIDs []string) (*Progress, error) {
	log := logger.FromCtx(ctx)

	episodes, listID, err := m.resolveMarkRequest(ctx, userID, showID, episodeIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inserted, err := m.storage.InsertUserEpisodes(ctx, userID, episodeIDs, now)
	if err != nil {
		return nil, fmt.Errorf("failed to record watch events: %w", err)
	}
	log.Debugw("marked episodes", "show", showID, "requested", len(episodeIDs), "inserted", inserted)

	progress, err := m.applyProgressDelta(ctx, userID, listID, showID, int32(inserted), now)
	if err != nil {
		return nil, err
	}

	if err := m.storage.TouchShowLastWatched(ctx, showID, now); err != nil {
		return nil, fmt.Errorf("failed to update last watched: %w", err)
	}

	if err := m.catalog.AddToHistory(ctx, token, episodeTraktIDs(episodes)); err != nil {
		log.Warnw("history push failed after local commit", "show", showID, "error", err)
		return nil, UpstreamError{Err: err}
	}

	return progress, nil
}

// UnmarkEpisodes is the mirror of MarkEpisodes: it deletes watch rows,
// decrements the aggregate by the rows actually deleted (floored at zero)
// and pushes the removal upstream.
func (m Manager) UnmarkEpisodes(ctx context.Context, userID, token, showID string, episodeIDs []string) (*Progress, error) {
	log := logger.FromCtx(ctx)

	episodes, listID, err := m.resolveMarkRequest(ctx, userID, showID, episodeIDs)
	if err != nil {
		return nil, err
	}

	deleted, err := m.storage.DeleteUserEpisodes(ctx, userID, episodeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to delete watch events: %w", err)
	}
	log.Debugw("unmarked episodes", "show", showID, "requested", len(episodeIDs), "deleted", deleted)

	progress, err := m.applyProgressDelta(ctx, userID, listID, showID, -int32(deleted), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := m.catalog.RemoveFromHistory(ctx, token, episodeTraktIDs(episodes)); err != nil {
		log.Warnw("history removal push failed after local commit", "show", showID, "error", err)
		return nil, UpstreamError{Err: err}
	}

	return progress, nil
}

// resolveMarkRequest validates the request before any write: every episode
// id must exist and belong to the show, and the user must have a default
// list containing the show.
func (m Manager) resolveMarkRequest(ctx context.Context, userID, showID string, episodeIDs []string) ([]*model.Episodes, string, error) {
	if showID == "" {
		return nil, "", fmt.Errorf("%w: show id is required", ErrValidation)
	}
	if len(episodeIDs) == 0 {
		return nil, "", fmt.Errorf("%w: no episode ids given", ErrValidation)
	}

	episodes, err := m.storage.GetEpisodesByIDs(ctx, episodeIDs)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve episodes: %w", err)
	}
	if len(episodes) != len(uniqueIDs(episodeIDs)) {
		return nil, "", fmt.Errorf("%w: unknown episode ids", ErrValidation)
	}
	for _, episode := range episodes {
		if episode.ShowID != showID {
			return nil, "", fmt.Errorf("%w: episode %s does not belong to show", ErrValidation, episode.ID)
		}
	}

	list, err := m.storage.GetDefaultList(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve default list: %w", err)
	}

	return episodes, list.ID, nil
}

// applyProgressDelta recomputes the next-episode pointer from the full
// watched set and applies the delta to the aggregate row in one atomic
// update.
func (m Manager) applyProgressDelta(ctx context.Context, userID, listID, showID string, delta int32, now time.Time) (*Progress, error) {
	next, err := m.storage.NextUnwatchedEpisode(ctx, userID, showID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to find next episode: %w", err)
	}

	update := storage.ProgressUpdate{
		ListID: listID,
		ShowID: showID,
		Delta:  delta,
		Now:    now,
	}
	if next != nil {
		update.NextEpisodeID = &next.ID
	}

	row, err := m.storage.AdjustListShowProgress(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	progress := progressFromRow(row, next)
	return &progress, nil
}

func episodeTraktIDs(episodes []*model.Episodes) []int32 {
	ids := make([]int32, 0, len(episodes))
	for _, episode := range episodes {
		ids = append(ids, episode.TraktID)
	}
	return ids
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
