package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"

	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/table"
)

func userEpisodeRows(userID string, episodeIDs []string, watchedAt time.Time) []model.UserEpisodes {
	rows := make([]model.UserEpisodes, len(episodeIDs))
	for i, episodeID := range episodeIDs {
		rows[i] = model.UserEpisodes{
			ID:        uuid.New().String(),
			UserID:    userID,
			EpisodeID: episodeID,
			WatchedAt: &watchedAt,
		}
	}
	return rows
}

// InsertUserEpisodes records watch events for the given episodes. Episodes
// the user already watched are left untouched; the return value counts only
// the rows that were actually inserted.
func (s SQLite) InsertUserEpisodes(ctx context.Context, userID string, episodeIDs []string, watchedAt time.Time) (int64, error) {
	if len(episodeIDs) == 0 {
		return 0, nil
	}

	stmt := table.UserEpisodes.
		INSERT(table.UserEpisodes.AllColumns).
		MODELS(userEpisodeRows(userID, episodeIDs, watchedAt)).
		ON_CONFLICT(table.UserEpisodes.UserID, table.UserEpisodes.EpisodeID).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user episodes: %w", err)
	}

	return result.RowsAffected()
}

// UpsertUserEpisodes records watch events, overwriting watched_at for
// episodes already marked. Used when the upstream history is authoritative.
func (s SQLite) UpsertUserEpisodes(ctx context.Context, userID string, episodeIDs []string, watchedAt time.Time) error {
	if len(episodeIDs) == 0 {
		return nil
	}

	stmt := table.UserEpisodes.
		INSERT(table.UserEpisodes.AllColumns).
		MODELS(userEpisodeRows(userID, episodeIDs, watchedAt)).
		ON_CONFLICT(table.UserEpisodes.UserID, table.UserEpisodes.EpisodeID).
		DO_UPDATE(sqlite.SET(
			table.UserEpisodes.WatchedAt.SET(table.UserEpisodes.EXCLUDED.WatchedAt),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to upsert user episodes: %w", err)
	}

	return nil
}

// DeleteUserEpisodes removes watch events and returns how many rows existed
func (s SQLite) DeleteUserEpisodes(ctx context.Context, userID string, episodeIDs []string) (int64, error) {
	if len(episodeIDs) == 0 {
		return 0, nil
	}

	idExpressions := make([]sqlite.Expression, len(episodeIDs))
	for i, id := range episodeIDs {
		idExpressions[i] = sqlite.String(id)
	}

	stmt := table.UserEpisodes.
		DELETE().
		WHERE(
			table.UserEpisodes.UserID.EQ(sqlite.String(userID)).
				AND(table.UserEpisodes.EpisodeID.IN(idExpressions...)),
		)

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user episodes: %w", err)
	}

	return result.RowsAffected()
}

// CountWatchedEpisodes counts the user's watched episodes of a show,
// excluding specials.
func (s SQLite) CountWatchedEpisodes(ctx context.Context, userID, showID string) (int32, error) {
	// Jet ORM doesn't properly handle aggregate queries, so we use raw SQL
	query := `SELECT COUNT(*)
		FROM user_episodes ue
		JOIN episodes e ON e.id = ue.episode_id
		WHERE ue.user_id = ? AND e.show_id = ? AND e.season_number != 0`

	var count int32
	err := s.db.QueryRowContext(ctx, query, userID, showID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count watched episodes: %w", err)
	}

	return count, nil
}

// NextUnwatchedEpisode returns the earliest non-special episode of the show
// the user has not watched, in (season, episode) order.
func (s SQLite) NextUnwatchedEpisode(ctx context.Context, userID, showID string) (*model.Episodes, error) {
	watched := table.UserEpisodes.
		SELECT(table.UserEpisodes.ID).
		WHERE(
			table.UserEpisodes.UserID.EQ(sqlite.String(userID)).
				AND(table.UserEpisodes.EpisodeID.EQ(table.Episodes.ID)),
		)

	stmt := table.Episodes.
		SELECT(table.Episodes.AllColumns).
		WHERE(
			table.Episodes.ShowID.EQ(sqlite.String(showID)).
				AND(table.Episodes.SeasonNumber.NOT_EQ(sqlite.Int32(0))).
				AND(sqlite.NOT(sqlite.EXISTS(watched))),
		).
		ORDER_BY(table.Episodes.SeasonNumber.ASC(), table.Episodes.Number.ASC()).
		LIMIT(1)

	var episode model.Episodes
	err := stmt.QueryContext(ctx, s.db, &episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get next unwatched episode: %w", err)
	}

	return &episode, nil
}

// ListWatchedEpisodes lists the user's watch events for a show
func (s SQLite) ListWatchedEpisodes(ctx context.Context, userID, showID string) ([]*model.UserEpisodes, error) {
	stmt := sqlite.SELECT(table.UserEpisodes.AllColumns).
		FROM(table.UserEpisodes.
			INNER_JOIN(table.Episodes,
				table.UserEpisodes.EpisodeID.EQ(table.Episodes.ID),
			)).
		WHERE(
			table.UserEpisodes.UserID.EQ(sqlite.String(userID)).
				AND(table.Episodes.ShowID.EQ(sqlite.String(showID))),
		).
		ORDER_BY(table.Episodes.SeasonNumber.ASC(), table.Episodes.Number.ASC())

	var watched []*model.UserEpisodes
	err := stmt.QueryContext(ctx, s.db, &watched)
	if err != nil {
		return nil, fmt.Errorf("failed to list watched episodes: %w", err)
	}

	return watched, nil
}
