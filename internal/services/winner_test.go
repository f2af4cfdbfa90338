package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indywinners/internal/domain"
)

type mockTableSource struct {
	table      *domain.Table
	err        error
	lastOffset int
	lastLimit  int
	calls      int
}

func (m *mockTableSource) FetchTable(ctx context.Context, offset, limit int) (*domain.Table, error) {
	m.calls++
	m.lastOffset = offset
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

type mockWinnerRepository struct {
	winners    []*domain.Winner
	err        error
	lastOffset int
	lastLimit  int
}

func (m *mockWinnerRepository) GetWinners(ctx context.Context, offset, limit int) ([]*domain.Winner, error) {
	m.lastOffset = offset
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.winners, nil
}

func TestWinnerService_GetWinnerPage_OffsetAndLimit(t *testing.T) {
	for page := 1; page <= 25; page++ {
		src := &mockTableSource{table: &domain.Table{}}
		svc := NewWinnerService(src)

		got, err := svc.GetWinnerPage(context.Background(), page)
		require.NoError(t, err)
		require.Equal(t, page, got.Page)
		require.Equal(t, 1, src.calls)
		assert.Equal(t, (page-1)*10, src.lastOffset, "page %d", page)
		assert.Equal(t, 10, src.lastLimit, "page %d", page)
	}
}

func TestWinnerService_GetWinnerPage_Elapsed(t *testing.T) {
	src := &mockTableSource{table: domain.WinnersTable(nil)}
	base := time.Date(2024, 5, 26, 12, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(42 * time.Millisecond)}
	svc := &winnerService{source: src, now: func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}}

	got, err := svc.GetWinnerPage(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 42*time.Millisecond, got.Elapsed)
	require.Same(t, src.table, got.Table)
}

func TestWinnerService_GetWinnerPage_Error(t *testing.T) {
	boom := errors.New("connection refused")
	src := &mockTableSource{err: boom}
	svc := NewWinnerService(src)

	got, err := svc.GetWinnerPage(context.Background(), 3)
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, got)
	require.Equal(t, 3, got.Page)
	require.Nil(t, got.Table)
	require.Equal(t, 0, got.RowCount())
}

func TestRepositoryTableSource_FetchTable(t *testing.T) {
	repo := &mockWinnerRepository{winners: []*domain.Winner{
		domain.NewWinner(1, "A", 2020),
		domain.NewWinner(2, "B", 2019),
	}}
	src := NewRepositoryTableSource(repo)

	got, err := src.FetchTable(context.Background(), 10, 10)
	require.NoError(t, err)
	require.Equal(t, 10, repo.lastOffset)
	require.Equal(t, 10, repo.lastLimit)
	require.Equal(t, []string{"id", "name", "year"}, got.Columns)
	require.Equal(t, [][]string{{"1", "A", "2020"}, {"2", "B", "2019"}}, got.Rows)
}

func TestRepositoryTableSource_FetchTable_Error(t *testing.T) {
	repo := &mockWinnerRepository{err: errors.New("db down")}
	src := NewRepositoryTableSource(repo)

	got, err := src.FetchTable(context.Background(), 0, 10)
	require.Error(t, err)
	require.Nil(t, got)
}
