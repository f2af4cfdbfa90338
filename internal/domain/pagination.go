package domain

import "errors"

// ErrInvalidPage is returned when a page parameter is not a positive integer.
var ErrInvalidPage = errors.New("page must be a positive integer")

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// NewWinnerPagination returns PaginationParams for the given page of the winners listing.
func NewWinnerPagination(page int) PaginationParams {
	return PaginationParams{Page: page, PageSize: WinnersPerPage}
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// HasPrevious reports whether a page precedes the current one.
func (p PaginationParams) HasPrevious() bool {
	return p.Page > 1
}
