package storage

import (
	"context"
	"errors"
	"time"

	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// Storage is everything the application needs from the persistent store.
type Storage interface {
	ShowStorage
	ListStorage
	UserEpisodeStorage
}

// ExternalIDs carries the identifier set used to locate a locally stored
// show. Numeric identifiers are only ever compared against numeric columns
// and string identifiers against string columns.
type ExternalIDs struct {
	Trakt *int32
	TVDB  *int32
	TMDB  *int32
	IMDB  *string
	Slug  *string
}

type ShowStorage interface {
	// UpsertShow inserts or refreshes a show keyed on its trakt id and
	// returns the canonical row id.
	UpsertShow(ctx context.Context, show model.Shows) (string, error)
	GetShow(ctx context.Context, id string) (*model.Shows, error)
	FindShowByExternalIDs(ctx context.Context, ids ExternalIDs) (*model.Shows, error)
	TouchShowLastWatched(ctx context.Context, id string, watchedAt time.Time) error

	UpsertSeason(ctx context.Context, season model.Seasons) (string, error)
	ListSeasons(ctx context.Context, showID string) ([]*model.Seasons, error)

	UpsertEpisode(ctx context.Context, episode model.Episodes) (string, error)
	ListEpisodes(ctx context.Context, showID string) ([]*model.Episodes, error)
	GetEpisode(ctx context.Context, id string) (*model.Episodes, error)
	GetEpisodeByNumber(ctx context.Context, showID string, seasonNumber, number int32) (*model.Episodes, error)
	GetEpisodesByIDs(ctx context.Context, ids []string) ([]*model.Episodes, error)

	// CountShowEpisodes counts a show's episodes excluding specials.
	CountShowEpisodes(ctx context.Context, showID string) (int32, error)
}

// WatchlistEntry is a list membership row joined with its show.
type WatchlistEntry struct {
	model.ListShows
	Show model.Shows
}

// Watchlist sort columns accepted by ListListShows.
const (
	SortByAdded       = "added"
	SortByTitle       = "title"
	SortByLastWatched = "last_watched"
	SortByProgress    = "progress"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ProgressUpdate describes one atomic adjustment of a list_shows aggregate
// row. Delta is applied relative to the stored watched count (floored at
// zero); completion fields are derived in the same statement so concurrent
// updates cannot lose increments.
type ProgressUpdate struct {
	ListID        string
	ShowID        string
	Delta         int32
	NextEpisodeID *string
	Now           time.Time
}

type ListStorage interface {
	CreateList(ctx context.Context, list model.Lists) (string, error)
	GetDefaultList(ctx context.Context, userID string) (*model.Lists, error)

	UpsertListShow(ctx context.Context, listShow model.ListShows) (string, error)
	GetListShow(ctx context.Context, listID, showID string) (*model.ListShows, error)
	ListListShows(ctx context.Context, listID, sortBy, order string) ([]*WatchlistEntry, error)
	DeleteListShow(ctx context.Context, listID, showID string) error

	AdjustListShowProgress(ctx context.Context, update ProgressUpdate) (*model.ListShows, error)
}

type UserEpisodeStorage interface {
	// InsertUserEpisodes records watch events, ignoring episodes already
	// watched. Returns how many rows were actually inserted.
	InsertUserEpisodes(ctx context.Context, userID string, episodeIDs []string, watchedAt time.Time) (int64, error)
	// UpsertUserEpisodes overwrites watched_at on conflict. Used by the
	// full-account sync where upstream is trusted.
	UpsertUserEpisodes(ctx context.Context, userID string, episodeIDs []string, watchedAt time.Time) error
	// DeleteUserEpisodes removes watch events and returns how many rows
	// were actually deleted.
	DeleteUserEpisodes(ctx context.Context, userID string, episodeIDs []string) (int64, error)

	// CountWatchedEpisodes counts a user's watched episodes of a show,
	// excluding specials.
	CountWatchedEpisodes(ctx context.Context, userID, showID string) (int32, error)
	// NextUnwatchedEpisode returns the earliest non-special episode the
	// user has not watched, by (season, episode) ordering, or ErrNotFound
	// when the show is fully watched.
	NextUnwatchedEpisode(ctx context.Context, userID, showID string) (*model.Episodes, error)
	ListWatchedEpisodes(ctx context.Context, userID, showID string) ([]*model.UserEpisodes, error)
}
