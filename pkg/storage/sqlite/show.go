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

// UpsertShow stores a show, updating the catalog metadata in place when a row
// with the same trakt id already exists. last_watched_at and added_at are
// owned by the tracker and never overwritten here.
func (s SQLite) UpsertShow(ctx context.Context, show model.Shows) (string, error) {
	if show.ID == "" {
		show.ID = uuid.New().String()
	}

	insertColumns := table.Shows.AllColumns.Except(table.Shows.LastWatchedAt, table.Shows.AddedAt)

	stmt := table.Shows.
		INSERT(insertColumns).
		MODEL(show).
		RETURNING(table.Shows.ID).
		ON_CONFLICT(table.Shows.TraktID).
		DO_UPDATE(sqlite.SET(
			table.Shows.Slug.SET(table.Shows.EXCLUDED.Slug),
			table.Shows.TvdbID.SET(table.Shows.EXCLUDED.TvdbID),
			table.Shows.ImdbID.SET(table.Shows.EXCLUDED.ImdbID),
			table.Shows.TmdbID.SET(table.Shows.EXCLUDED.TmdbID),
			table.Shows.Title.SET(table.Shows.EXCLUDED.Title),
			table.Shows.Year.SET(table.Shows.EXCLUDED.Year),
			table.Shows.Overview.SET(table.Shows.EXCLUDED.Overview),
			table.Shows.Runtime.SET(table.Shows.EXCLUDED.Runtime),
			table.Shows.PosterURL.SET(table.Shows.EXCLUDED.PosterURL),
			table.Shows.FanartURL.SET(table.Shows.EXCLUDED.FanartURL),
			table.Shows.Status.SET(table.Shows.EXCLUDED.Status),
		))

	var dest model.Shows
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return "", fmt.Errorf("failed to upsert show: %w", err)
	}

	return dest.ID, nil
}

// GetShow gets a show by id
func (s SQLite) GetShow(ctx context.Context, id string) (*model.Shows, error) {
	stmt := table.Shows.
		SELECT(table.Shows.AllColumns).
		WHERE(table.Shows.ID.EQ(sqlite.String(id)))

	var show model.Shows
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	return &show, nil
}

// FindShowByExternalIDs looks up a show by any of its catalog identifiers.
// The trakt id wins when set; otherwise any matching secondary id is accepted.
func (s SQLite) FindShowByExternalIDs(ctx context.Context, ids storage.ExternalIDs) (*model.Shows, error) {
	var where sqlite.BoolExpression
	switch {
	case ids.Trakt != nil:
		where = table.Shows.TraktID.EQ(sqlite.Int32(*ids.Trakt))
	default:
		conditions := make([]sqlite.BoolExpression, 0, 4)
		if ids.TVDB != nil {
			conditions = append(conditions, table.Shows.TvdbID.EQ(sqlite.Int32(*ids.TVDB)))
		}
		if ids.TMDB != nil {
			conditions = append(conditions, table.Shows.TmdbID.EQ(sqlite.Int32(*ids.TMDB)))
		}
		if ids.IMDB != nil {
			conditions = append(conditions, table.Shows.ImdbID.EQ(sqlite.String(*ids.IMDB)))
		}
		if ids.Slug != nil {
			conditions = append(conditions, table.Shows.Slug.EQ(sqlite.String(*ids.Slug)))
		}
		if len(conditions) == 0 {
			return nil, storage.ErrNotFound
		}
		where = conditions[0]
		for _, c := range conditions[1:] {
			where = where.OR(c)
		}
	}

	stmt := table.Shows.
		SELECT(table.Shows.AllColumns).
		WHERE(where).
		LIMIT(1)

	var show model.Shows
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find show: %w", err)
	}

	return &show, nil
}

// TouchShowLastWatched records the most recent watch activity for a show
func (s SQLite) TouchShowLastWatched(ctx context.Context, id string, watchedAt time.Time) error {
	stmt := table.Shows.
		UPDATE().
		SET(table.Shows.LastWatchedAt.SET(timestampValue(watchedAt))).
		WHERE(table.Shows.ID.EQ(sqlite.String(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show last watched: %w", err)
	}

	return nil
}

// UpsertSeason stores a season, keyed on its trakt id
func (s SQLite) UpsertSeason(ctx context.Context, season model.Seasons) (string, error) {
	if season.ID == "" {
		season.ID = uuid.New().String()
	}

	stmt := table.Seasons.
		INSERT(table.Seasons.AllColumns).
		MODEL(season).
		RETURNING(table.Seasons.ID).
		ON_CONFLICT(table.Seasons.TraktID).
		DO_UPDATE(sqlite.SET(
			table.Seasons.ShowID.SET(table.Seasons.EXCLUDED.ShowID),
			table.Seasons.Number.SET(table.Seasons.EXCLUDED.Number),
			table.Seasons.Title.SET(table.Seasons.EXCLUDED.Title),
			table.Seasons.EpisodeCount.SET(table.Seasons.EXCLUDED.EpisodeCount),
			table.Seasons.Overview.SET(table.Seasons.EXCLUDED.Overview),
		))

	var dest model.Seasons
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return "", fmt.Errorf("failed to upsert season: %w", err)
	}

	return dest.ID, nil
}

// ListSeasons lists all seasons for a show ordered by season number
func (s SQLite) ListSeasons(ctx context.Context, showID string) ([]*model.Seasons, error) {
	stmt := table.Seasons.
		SELECT(table.Seasons.AllColumns).
		WHERE(table.Seasons.ShowID.EQ(sqlite.String(showID))).
		ORDER_BY(table.Seasons.Number.ASC())

	var seasons []*model.Seasons
	err := stmt.QueryContext(ctx, s.db, &seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	return seasons, nil
}

// UpsertEpisode stores an episode, keyed on its trakt id
func (s SQLite) UpsertEpisode(ctx context.Context, episode model.Episodes) (string, error) {
	if episode.ID == "" {
		episode.ID = uuid.New().String()
	}

	stmt := table.Episodes.
		INSERT(table.Episodes.AllColumns).
		MODEL(episode).
		RETURNING(table.Episodes.ID).
		ON_CONFLICT(table.Episodes.TraktID).
		DO_UPDATE(sqlite.SET(
			table.Episodes.SeasonID.SET(table.Episodes.EXCLUDED.SeasonID),
			table.Episodes.ShowID.SET(table.Episodes.EXCLUDED.ShowID),
			table.Episodes.SeasonNumber.SET(table.Episodes.EXCLUDED.SeasonNumber),
			table.Episodes.Number.SET(table.Episodes.EXCLUDED.Number),
			table.Episodes.Title.SET(table.Episodes.EXCLUDED.Title),
			table.Episodes.Overview.SET(table.Episodes.EXCLUDED.Overview),
			table.Episodes.AiredAt.SET(table.Episodes.EXCLUDED.AiredAt),
			table.Episodes.Runtime.SET(table.Episodes.EXCLUDED.Runtime),
		))

	var dest model.Episodes
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return "", fmt.Errorf("failed to upsert episode: %w", err)
	}

	return dest.ID, nil
}

// GetEpisode gets an episode by id
func (s SQLite) GetEpisode(ctx context.Context, id string) (*model.Episodes, error) {
	stmt := table.Episodes.
		SELECT(table.Episodes.AllColumns).
		WHERE(table.Episodes.ID.EQ(sqlite.String(id)))

	var episode model.Episodes
	err := stmt.QueryContext(ctx, s.db, &episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	return &episode, nil
}

// GetEpisodeByNumber gets an episode by its position within a show
func (s SQLite) GetEpisodeByNumber(ctx context.Context, showID string, seasonNumber, number int32) (*model.Episodes, error) {
	stmt := table.Episodes.
		SELECT(table.Episodes.AllColumns).
		WHERE(
			table.Episodes.ShowID.EQ(sqlite.String(showID)).
				AND(table.Episodes.SeasonNumber.EQ(sqlite.Int32(seasonNumber))).
				AND(table.Episodes.Number.EQ(sqlite.Int32(number))),
		)

	var episode model.Episodes
	err := stmt.QueryContext(ctx, s.db, &episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode by number: %w", err)
	}

	return &episode, nil
}

// GetEpisodesByIDs fetches the given episodes; missing ids are simply absent
// from the result.
func (s SQLite) GetEpisodesByIDs(ctx context.Context, ids []string) ([]*model.Episodes, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idExpressions := make([]sqlite.Expression, len(ids))
	for i, id := range ids {
		idExpressions[i] = sqlite.String(id)
	}

	stmt := table.Episodes.
		SELECT(table.Episodes.AllColumns).
		WHERE(table.Episodes.ID.IN(idExpressions...)).
		ORDER_BY(table.Episodes.SeasonNumber.ASC(), table.Episodes.Number.ASC())

	var episodes []*model.Episodes
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}

	return episodes, nil
}

// ListEpisodes lists all episodes for a show in airing order
func (s SQLite) ListEpisodes(ctx context.Context, showID string) ([]*model.Episodes, error) {
	stmt := table.Episodes.
		SELECT(table.Episodes.AllColumns).
		WHERE(table.Episodes.ShowID.EQ(sqlite.String(showID))).
		ORDER_BY(table.Episodes.SeasonNumber.ASC(), table.Episodes.Number.ASC())

	var episodes []*model.Episodes
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}

// CountShowEpisodes counts the trackable episodes of a show. Season 0 rows
// are specials and never count toward progress.
func (s SQLite) CountShowEpisodes(ctx context.Context, showID string) (int32, error) {
	// Jet ORM doesn't properly handle aggregate queries, so we use raw SQL
	query := `SELECT COUNT(*) FROM episodes WHERE show_id = ? AND season_number != 0`

	var count int32
	err := s.db.QueryRowContext(ctx, query, showID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count episodes: %w", err)
	}

	return count, nil
}
