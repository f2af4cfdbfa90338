package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParams_Offset(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{1, 0},
		{2, 10},
		{3, 20},
		{11, 100},
		{0, 0},
		{-4, 0},
	}
	for _, tt := range tests {
		p := NewWinnerPagination(tt.page)
		assert.Equal(t, tt.want, p.Offset(), "page %d", tt.page)
		assert.Equal(t, WinnersPerPage, p.PageSize)
	}
}

func TestPaginationParams_HasPrevious(t *testing.T) {
	assert.False(t, NewWinnerPagination(1).HasPrevious())
	assert.True(t, NewWinnerPagination(2).HasPrevious())
}

func TestWinnersTable(t *testing.T) {
	table := WinnersTable([]*Winner{
		NewWinner(1, "A", 2020),
		NewWinner(2, "B", 2019),
	})

	require.Equal(t, []string{"id", "name", "year"}, table.Columns)
	require.Equal(t, [][]string{
		{"1", "A", "2020"},
		{"2", "B", "2019"},
	}, table.Rows)
}

func TestWinnersTable_Empty(t *testing.T) {
	table := WinnersTable(nil)
	require.NotNil(t, table.Rows)
	require.Len(t, table.Rows, 0)
	require.Len(t, table.Columns, 3)
}

func TestWinnerPage_RowCount(t *testing.T) {
	var nilPage *WinnerPage
	assert.Equal(t, 0, nilPage.RowCount())
	assert.Equal(t, 0, (&WinnerPage{Page: 1}).RowCount())
	assert.Equal(t, 1, (&WinnerPage{Table: WinnersTable([]*Winner{NewWinner(7, "C", 2001)})}).RowCount())
}
