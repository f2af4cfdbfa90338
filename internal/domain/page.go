package domain

import "io"

// WinnersPageTitle is the fixed title of the winners listing page.
const WinnersPageTitle = "Indianapolis 500 Winners"

// WinnersPageView holds everything the winners page template shows.
type WinnersPageView struct {
	Title string
	Table *Table
	// RowCount and ElapsedMS feed the "(N rows in M ms)" line; omitted when Error is set.
	RowCount  int
	ElapsedMS int64
	// Error is shown in-band as "Exception! <Error>" in place of the table.
	Error       string
	PreviousURL string
	NextURL     string
}

// PageRenderer renders HTML pages (infrastructure port).
type PageRenderer interface {
	RenderWinners(w io.Writer, view *WinnersPageView) error
}
