package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/table"
)

// CreateList stores a list for a user
func (s SQLite) CreateList(ctx context.Context, list model.Lists) (string, error) {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}

	stmt := table.Lists.
		INSERT(table.Lists.AllColumns.Except(table.Lists.CreatedAt)).
		MODEL(list).
		RETURNING(table.Lists.ID)

	var dest model.Lists
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return "", fmt.Errorf("failed to create list: %w", err)
	}

	return dest.ID, nil
}

// GetDefaultList gets the user's default list
func (s SQLite) GetDefaultList(ctx context.Context, userID string) (*model.Lists, error) {
	stmt := table.Lists.
		SELECT(table.Lists.AllColumns).
		WHERE(
			table.Lists.UserID.EQ(sqlite.String(userID)).
				AND(table.Lists.IsDefault.IS_TRUE()),
		).
		LIMIT(1)

	var list model.Lists
	err := stmt.QueryContext(ctx, s.db, &list)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get default list: %w", err)
	}

	return &list, nil
}

// UpsertListShow adds a show to a list or refreshes its aggregates when the
// membership already exists. added_at is kept from the original row.
func (s SQLite) UpsertListShow(ctx context.Context, listShow model.ListShows) (string, error) {
	if listShow.ID == "" {
		listShow.ID = uuid.New().String()
	}

	stmt := table.ListShows.
		INSERT(table.ListShows.AllColumns.Except(table.ListShows.AddedAt)).
		MODEL(listShow).
		RETURNING(table.ListShows.ID).
		ON_CONFLICT(table.ListShows.ListID, table.ListShows.ShowID).
		DO_UPDATE(sqlite.SET(
			table.ListShows.WatchedEpisodes.SET(table.ListShows.EXCLUDED.WatchedEpisodes),
			table.ListShows.TotalEpisodes.SET(table.ListShows.EXCLUDED.TotalEpisodes),
			table.ListShows.IsCompleted.SET(table.ListShows.EXCLUDED.IsCompleted),
			table.ListShows.CompletedAt.SET(table.ListShows.EXCLUDED.CompletedAt),
			table.ListShows.NextEpisodeID.SET(table.ListShows.EXCLUDED.NextEpisodeID),
		))

	var dest model.ListShows
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return "", fmt.Errorf("failed to upsert list show: %w", err)
	}

	return dest.ID, nil
}

// GetListShow gets a list membership row
func (s SQLite) GetListShow(ctx context.Context, listID, showID string) (*model.ListShows, error) {
	stmt := table.ListShows.
		SELECT(table.ListShows.AllColumns).
		WHERE(
			table.ListShows.ListID.EQ(sqlite.String(listID)).
				AND(table.ListShows.ShowID.EQ(sqlite.String(showID))),
		)

	var listShow model.ListShows
	err := stmt.QueryContext(ctx, s.db, &listShow)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list show: %w", err)
	}

	return &listShow, nil
}

// ListListShows lists a list's memberships joined with their shows
func (s SQLite) ListListShows(ctx context.Context, listID, sortBy, order string) ([]*storage.WatchlistEntry, error) {
	var sortColumn sqlite.Expression
	switch sortBy {
	case storage.SortByTitle:
		sortColumn = table.Shows.Title
	case storage.SortByLastWatched:
		sortColumn = table.Shows.LastWatchedAt
	case storage.SortByProgress:
		sortColumn = table.ListShows.WatchedEpisodes
	default:
		sortColumn = table.ListShows.AddedAt
	}

	orderBy := sortColumn.DESC()
	if order == storage.OrderAsc {
		orderBy = sortColumn.ASC()
	}

	stmt := sqlite.SELECT(
		table.ListShows.AllColumns,
		table.Shows.AllColumns,
	).
		FROM(table.ListShows.
			INNER_JOIN(table.Shows,
				table.ListShows.ShowID.EQ(table.Shows.ID),
			)).
		WHERE(table.ListShows.ListID.EQ(sqlite.String(listID))).
		ORDER_BY(orderBy)

	var entries []*storage.WatchlistEntry
	err := stmt.QueryContext(ctx, s.db, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to list list shows: %w", err)
	}

	return entries, nil
}

// DeleteListShow removes a show from a list
func (s SQLite) DeleteListShow(ctx context.Context, listID, showID string) error {
	stmt := table.ListShows.
		DELETE().
		WHERE(
			table.ListShows.ListID.EQ(sqlite.String(listID)).
				AND(table.ListShows.ShowID.EQ(sqlite.String(showID))),
		)

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete list show: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// AdjustListShowProgress applies a watched-count delta to a membership row in
// a single statement. The new count, completion flag, completion time and
// next episode pointer are all derived from the stored row inside the update
// so concurrent adjustments never lose increments.
func (s SQLite) AdjustListShowProgress(ctx context.Context, update storage.ProgressUpdate) (*model.ListShows, error) {
	adjusted := table.ListShows.WatchedEpisodes.ADD(sqlite.Int32(update.Delta))
	floored := sqlite.IntExp(sqlite.CASE().
		WHEN(adjusted.LT(sqlite.Int32(0))).
		THEN(sqlite.Int32(0)).
		ELSE(adjusted))

	completed := table.ListShows.TotalEpisodes.GT(sqlite.Int32(0)).
		AND(floored.GT_EQ(table.ListShows.TotalEpisodes))

	// completed_at sticks at the first completion and clears when the show
	// drops back below complete
	completedAt := sqlite.TimestampExp(sqlite.CASE().
		WHEN(completed).
		THEN(sqlite.COALESCE(table.ListShows.CompletedAt, timestampValue(update.Now))).
		ELSE(sqlite.NULL))

	// the caller's pointer is computed before this update runs; a
	// concurrent mark may complete the show in between, so the pointer
	// nulls out whenever the derived count says complete
	pointer := sqlite.StringExp(sqlite.NULL)
	if update.NextEpisodeID != nil {
		pointer = sqlite.String(*update.NextEpisodeID)
	}
	nextEpisode := sqlite.StringExp(sqlite.CASE().
		WHEN(completed).
		THEN(sqlite.NULL).
		ELSE(pointer))

	stmt := table.ListShows.
		UPDATE().
		SET(
			table.ListShows.WatchedEpisodes.SET(floored),
			table.ListShows.IsCompleted.SET(completed),
			table.ListShows.CompletedAt.SET(completedAt),
			table.ListShows.NextEpisodeID.SET(nextEpisode),
		).
		WHERE(
			table.ListShows.ListID.EQ(sqlite.String(update.ListID)).
				AND(table.ListShows.ShowID.EQ(sqlite.String(update.ShowID))),
		)

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust list show progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	return s.GetListShow(ctx, update.ListID, update.ShowID)
}
