package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	nexthttp "github.com/AntonioSertic23/nextup/pkg/http"
)

const apiVersion = "2"

// Error is returned for any non-success upstream response. The client never
// retries; callers decide whether to abort or continue.
type Error struct {
	StatusCode int
	Message    string
}

func (e Error) Error() string {
	return fmt.Sprintf("catalog: %s (status %d)", e.Message, e.StatusCode)
}

// ClientInterface is the surface the rest of the system depends on.
type ClientInterface interface {
	GetShow(ctx context.Context, id string) (*Show, error)
	GetSeasons(ctx context.Context, id string, includeSpecials bool) ([]Season, error)
	WatchedShows(ctx context.Context, token string, page, pageSize int) (*WatchedShowsPage, error)
	AddToHistory(ctx context.Context, token string, episodeTraktIDs []int32) error
	RemoveFromHistory(ctx context.Context, token string, episodeTraktIDs []int32) error
	SearchShows(ctx context.Context, token, query string, page, pageSize int) (*SearchResponse, error)
}

// Client talks to the upstream catalog/progress API.
type Client struct {
	baseURL  string
	clientID string
	http     nexthttp.HTTPClient
}

type Option func(*Client)

// WithHTTPClient overrides the transport used for requests.
func WithHTTPClient(hc nexthttp.HTTPClient) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a catalog client. clientID is the application-level API key
// sent with every request; user tokens are passed per call.
func New(baseURL, clientID string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		clientID: clientID,
		http:     http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetShow fetches one show by trakt id or slug, with extension fields.
func (c *Client) GetShow(ctx context.Context, id string) (*Show, error) {
	q := url.Values{}
	q.Set("extended", "full,images")

	var show Show
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shows/%s", url.PathEscape(id)), "", q, nil, &show); err != nil {
		return nil, err
	}

	return &show, nil
}

// GetSeasons fetches all seasons with episodes embedded. Specials (season 0)
// are excluded upstream unless includeSpecials is set.
func (c *Client) GetSeasons(ctx context.Context, id string, includeSpecials bool) ([]Season, error) {
	q := url.Values{}
	q.Set("extended", "episodes,full")
	if !includeSpecials {
		q.Set("specials", "false")
	}

	var seasons []Season
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/shows/%s/seasons", url.PathEscape(id)), "", q, nil, &seasons); err != nil {
		return nil, err
	}

	return seasons, nil
}

// WatchedShows fetches one page of the account-wide watch history.
func (c *Client) WatchedShows(ctx context.Context, token string, page, pageSize int) (*WatchedShowsPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("limit", strconv.Itoa(pageSize))
	}

	var shows []WatchedShow
	resp, err := c.do(ctx, http.MethodGet, "/sync/watched/shows", token, q, nil, &shows)
	if err != nil {
		return nil, err
	}

	return &WatchedShowsPage{
		Shows:      shows,
		Pagination: paginationFromHeaders(resp.Header),
	}, nil
}

// AddToHistory marks the given episodes as watched upstream.
func (c *Client) AddToHistory(ctx context.Context, token string, episodeTraktIDs []int32) error {
	_, err := c.do(ctx, http.MethodPost, "/sync/history", token, nil, historyBody(episodeTraktIDs), nil)
	return err
}

// RemoveFromHistory unmarks the given episodes upstream.
func (c *Client) RemoveFromHistory(ctx context.Context, token string, episodeTraktIDs []int32) error {
	_, err := c.do(ctx, http.MethodPost, "/sync/history/remove", token, nil, historyBody(episodeTraktIDs), nil)
	return err
}

// SearchShows queries the upstream show search with pagination.
func (c *Client) SearchShows(ctx context.Context, token, query string, page, pageSize int) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("extended", "full,images")
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("limit", strconv.Itoa(pageSize))
	}

	var results []SearchResult
	resp, err := c.do(ctx, http.MethodGet, "/search/show", token, q, nil, &results)
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		Results:    results,
		Pagination: paginationFromHeaders(resp.Header),
	}, nil
}

func historyBody(episodeTraktIDs []int32) *historyRequest {
	body := historyRequest{
		Episodes: make([]historyEpisode, 0, len(episodeTraktIDs)),
	}
	for _, id := range episodeTraktIDs {
		body.Episodes = append(body.Episodes, historyEpisode{IDs: historyIDs{Trakt: id}})
	}
	return &body
}

// do executes one request and decodes the response into out when non-nil.
// The response body is fully read and closed before returning.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", apiVersion)
	req.Header.Set("trakt-api-key", c.clientID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s %s: %s", method, path, resp.Status),
		}
	}

	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return resp, fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}

	return resp, nil
}

func paginationFromHeaders(h http.Header) Pagination {
	return Pagination{
		Page:      headerInt(h, "X-Pagination-Page"),
		PageSize:  headerInt(h, "X-Pagination-Limit"),
		PageCount: headerInt(h, "X-Pagination-Page-Count"),
		ItemCount: headerInt(h, "X-Pagination-Item-Count"),
	}
}

func headerInt(h http.Header, key string) int {
	v, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return 0
	}
	return v
}
