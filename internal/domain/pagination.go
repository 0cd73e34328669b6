package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Bounds returns the half-open slice range [start, end) of the page within
// a list of n items. Pages past the end yield an empty range at n.
func (p PaginationParams) Bounds(n int) (start, end int) {
	if p.PageSize < 1 {
		return 0, 0
	}
	skip := p.Page - 1
	if skip < 0 {
		skip = 0
	}
	// compare in pages so huge page numbers cannot overflow the offset
	if skip > n/p.PageSize {
		return n, n
	}
	start = skip * p.PageSize
	end = n
	if p.PageSize < n-start {
		end = start + p.PageSize
	}
	return start, end
}
