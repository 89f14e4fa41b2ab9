package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination describes one page of a filtered result set.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate clamps the requested page and page size and derives the total
// page count. Page is never below 1, limit is clamped to [1, MaxPageSize],
// and TotalPages is zero exactly when total is zero. A page past the end is
// not an error; the caller just gets an empty slice of rows back.
func Paginate(page, limit, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Zeroed returns pagination metadata for a failed lookup, keeping the
// requested page and limit so list clients can render without special cases.
func Zeroed(page, limit int) Pagination {
	return Paginate(page, limit, 0)
}

// ParsePage reads page and limit query parameters. Missing or malformed
// values fall back to page 1 and the default page size; out-of-range values
// are clamped by Paginate.
func ParsePage(values url.Values) (page, limit int) {
	page = 1
	if v, err := strconv.Atoi(values.Get("page")); err == nil && v > 0 {
		page = v
	}
	limit = DefaultPageSize
	if v, err := strconv.Atoi(values.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
