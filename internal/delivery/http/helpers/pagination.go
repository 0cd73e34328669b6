package helpers

import (
	"net/http"
	"strconv"

	"eventcheckin/internal/domain"
)

// Pagination query parameter defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// ParsePagination reads page and limit from the request query string.
// Missing or non-numeric values fall back to the defaults; values below 1
// are raised to 1. When maxPageSize is positive, limit is capped to it.
func ParsePagination(r *http.Request, maxPageSize int) domain.PaginationParams {
	q := r.URL.Query()
	page := parsePositive(q.Get("page"), DefaultPage)
	pageSize := parsePositive(q.Get("limit"), DefaultPageSize)
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

func parsePositive(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if v < 1 {
		return 1
	}
	return v
}
