package domain

import (
	"context"
	"strconv"
	"time"
)

// WinnersPerPage is the fixed page size of the winners listing.
const WinnersPerPage = 10

// Winner represents an Indianapolis 500 winner.
// swagger:model Winner
type Winner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

// NewWinner returns a new Winner with the given fields.
func NewWinner(id int64, name string, year int) *Winner {
	return &Winner{ID: id, Name: name, Year: year}
}

// WinnerRepository defines read access to stored winners.
type WinnerRepository interface {
	// GetWinners returns up to limit winners starting at offset, most recent year first.
	// An empty result is an empty slice, never an error.
	GetWinners(ctx context.Context, offset, limit int) ([]*Winner, error)
}

// TableSource fetches one window of rows already shaped for display.
type TableSource interface {
	FetchTable(ctx context.Context, offset, limit int) (*Table, error)
}

// Table is a rendered result set: column labels plus string cells in row order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NullCell is the text shown for a SQL NULL value.
const NullCell = "null"

// WinnersTable shapes winners into a Table with the id, name and year columns.
func WinnersTable(winners []*Winner) *Table {
	t := &Table{
		Columns: []string{"id", "name", "year"},
		Rows:    make([][]string, 0, len(winners)),
	}
	for _, w := range winners {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(w.ID, 10),
			w.Name,
			strconv.Itoa(w.Year),
		})
	}
	return t
}

// WinnerPage is one fetched page of the winners listing.
type WinnerPage struct {
	Page    int
	Table   *Table
	Elapsed time.Duration
}

// RowCount returns the number of rows on the page.
func (p *WinnerPage) RowCount() int {
	if p == nil || p.Table == nil {
		return 0
	}
	return len(p.Table.Rows)
}

// WinnerService defines the winners listing use case.
type WinnerService interface {
	// GetWinnerPage fetches the given 1-based page. On failure the returned page is
	// still non-nil and carries the page number and elapsed time.
	GetWinnerPage(ctx context.Context, page int) (*WinnerPage, error)
}
