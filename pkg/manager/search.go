package manager

import (
	"context"
	"fmt"

	"github.com/AntonioSertic23/nextup/pkg/pagination"
)

const (
	defaultSearchPageSize = 20
	maxSearchPageSize     = 100
)

// SearchShows queries the upstream catalog search, passing pagination
// through.
func (m Manager) SearchShows(ctx context.Context, token, query string, params pagination.Params) (*SearchShowsResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is empty", ErrValidation)
	}

	params = params.Normalized(defaultSearchPageSize, maxSearchPageSize)
	resp, err := m.catalog.SearchShows(ctx, token, query, params.Page, params.PageSize)
	if err != nil {
		return nil, UpstreamError{Err: err}
	}

	return &SearchShowsResponse{
		Results: resp.Results,
		Meta:    params.BuildMeta(resp.Pagination.ItemCount),
	}, nil
}
