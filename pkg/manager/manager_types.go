package manager

import (
	"time"

	"github.com/AntonioSertic23/nextup/pkg/catalog"
	"github.com/AntonioSertic23/nextup/pkg/pagination"
	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

// ItemFailure records one failed item of a batch operation.
type ItemFailure struct {
	Item string `json:"item"`
	Err  error  `json:"-"`
}

// IngestResult reports what one show ingestion actually wrote. Per-episode
// failures are collected here instead of aborting the whole season.
type IngestResult struct {
	ShowID   string        `json:"showId"`
	Seasons  int           `json:"seasons"`
	Episodes int           `json:"episodes"`
	Failed   []ItemFailure `json:"failed,omitempty"`
}

// SyncResult reports a full-account sync run. The job never aborts on a
// per-show failure; failed shows are listed here and logged.
type SyncResult struct {
	Synced int           `json:"synced"`
	Failed []ItemFailure `json:"failed,omitempty"`
}

// Progress is the per-show aggregate returned by mark/unmark and show
// detail. It mirrors the list_shows cache row.
type Progress struct {
	WatchedEpisodes int32           `json:"watchedEpisodes"`
	TotalEpisodes   int32           `json:"totalEpisodes"`
	IsCompleted     bool            `json:"isCompleted"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
	NextEpisode     *model.Episodes `json:"nextEpisode,omitempty"`
}

// EpisodeDetail is an episode with the user's watch state attached.
type EpisodeDetail struct {
	model.Episodes
	Watched bool `json:"watched"`
}

// SeasonDetail is a season with its episodes.
type SeasonDetail struct {
	model.Seasons
	Episodes []EpisodeDetail `json:"episodes"`
}

// ShowDetail is the full response for a single show: metadata, the season
// tree with per-episode watch state, and the aggregate progress.
type ShowDetail struct {
	Show     model.Shows    `json:"show"`
	Seasons  []SeasonDetail `json:"seasons"`
	Progress Progress       `json:"progress"`
}

// WatchlistDetailItem is one watchlist entry enriched with the upstream
// season tree.
type WatchlistDetailItem struct {
	storage.WatchlistEntry
	Seasons []catalog.Season `json:"seasons,omitempty"`
}

// SearchShowsResponse is a paginated catalog search result.
type SearchShowsResponse struct {
	Results []catalog.SearchResult `json:"results"`
	Meta    pagination.Meta        `json:"meta"`
}

func progressFromRow(row *model.ListShows, next *model.Episodes) Progress {
	p := Progress{
		WatchedEpisodes: row.WatchedEpisodes,
		TotalEpisodes:   row.TotalEpisodes,
		IsCompleted:     row.IsCompleted,
		NextEpisode:     next,
	}
	if row.CompletedAt != nil {
		at := row.CompletedAt.UTC()
		p.CompletedAt = &at
	}
	return p
}
