package pagination

// Params carries the page selection of a request. A PageSize of zero means
// the caller did not ask for paging.
type Params struct {
	Page     int
	PageSize int
}

// Normalized fills in missing values and caps the page size. The catalog
// rejects oversized pages, so callers clamp before passing params through.
func (p Params) Normalized(defaultSize, maxSize int) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	offset = (p.Page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

// BuildMeta derives the response metadata for the given total.
func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// HasMore reports whether pages remain after the current one.
func (m Meta) HasMore() bool {
	return m.Page < m.TotalPages
}
