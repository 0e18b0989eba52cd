package catalog

import (
	"github.com/oapi-codegen/nullable"
)

// IDs is the upstream identifier set attached to shows, seasons and
// episodes. Trakt is always present; the alternates depend on the item.
type IDs struct {
	Trakt int32                     `json:"trakt"`
	Slug  string                    `json:"slug,omitempty"`
	TVDB  nullable.Nullable[int32]  `json:"tvdb,omitempty"`
	IMDB  nullable.Nullable[string] `json:"imdb,omitempty"`
	TMDB  nullable.Nullable[int32]  `json:"tmdb,omitempty"`
}

// Images holds artwork URLs. Only returned when the request asks for the
// images extension, so every field may be absent.
type Images struct {
	Poster nullable.Nullable[string] `json:"poster,omitempty"`
	Fanart nullable.Nullable[string] `json:"fanart,omitempty"`
}

// Show is the upstream show payload. Overview, Runtime, Status and Images
// are extension fields and may be absent depending on request flags.
type Show struct {
	Title    string                    `json:"title"`
	Year     nullable.Nullable[int32]  `json:"year,omitempty"`
	IDs      IDs                       `json:"ids"`
	Overview nullable.Nullable[string] `json:"overview,omitempty"`
	Runtime  nullable.Nullable[int32]  `json:"runtime,omitempty"`
	Status   nullable.Nullable[string] `json:"status,omitempty"`
	Images   *Images                   `json:"images,omitempty"`
}

// Season is a season with its episodes embedded.
type Season struct {
	Number       int32                     `json:"number"`
	Title        nullable.Nullable[string] `json:"title,omitempty"`
	IDs          IDs                       `json:"ids"`
	EpisodeCount int32                     `json:"episode_count"`
	Overview     nullable.Nullable[string] `json:"overview,omitempty"`
	Episodes     []Episode                 `json:"episodes,omitempty"`
}

// Episode is a single episode payload.
type Episode struct {
	Season     int32                     `json:"season"`
	Number     int32                     `json:"number"`
	Title      string                    `json:"title"`
	IDs        IDs                       `json:"ids"`
	Overview   nullable.Nullable[string] `json:"overview,omitempty"`
	FirstAired nullable.Nullable[string] `json:"first_aired,omitempty"`
	Runtime    nullable.Nullable[int32]  `json:"runtime,omitempty"`
}

// WatchedShow is one entry of the bulk per-account watch history.
type WatchedShow struct {
	Plays         int32           `json:"plays"`
	LastWatchedAt string          `json:"last_watched_at"`
	Show          Show            `json:"show"`
	Seasons       []WatchedSeason `json:"seasons"`
}

type WatchedSeason struct {
	Number   int32            `json:"number"`
	Episodes []WatchedEpisode `json:"episodes"`
}

type WatchedEpisode struct {
	Number        int32  `json:"number"`
	Plays         int32  `json:"plays"`
	LastWatchedAt string `json:"last_watched_at"`
}

// WatchedShowsPage is one page of the bulk watched-shows endpoint.
type WatchedShowsPage struct {
	Shows      []WatchedShow
	Pagination Pagination
}

// Pagination is read from the upstream X-Pagination-* response headers.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	ItemCount int `json:"itemCount"`
}

// SearchResult is a single search hit. Score is upstream relevance.
type SearchResult struct {
	Type  string  `json:"type"`
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// SearchResponse is the paginated search envelope.
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}

// historyRequest is the body of history add/remove pushes.
type historyRequest struct {
	Episodes []historyEpisode `json:"episodes"`
}

type historyEpisode struct {
	IDs historyIDs `json:"ids"`
}

type historyIDs struct {
	Trakt int32 `json:"trakt"`
}
