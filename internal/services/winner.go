package services

import (
	"context"
	"fmt"
	"time"

	"indywinners/internal/domain"
)

type winnerService struct {
	source domain.TableSource
	now    func() time.Time
}

// NewWinnerService returns a domain.WinnerService reading pages from source.
func NewWinnerService(source domain.TableSource) domain.WinnerService {
	return &winnerService{source: source, now: time.Now}
}

// GetWinnerPage fetches one page of domain.WinnersPerPage rows and times the query step.
func (s *winnerService) GetWinnerPage(ctx context.Context, page int) (*domain.WinnerPage, error) {
	params := domain.NewWinnerPagination(page)

	start := s.now()
	table, err := s.source.FetchTable(ctx, params.Offset(), params.PageSize)
	result := &domain.WinnerPage{Page: page, Elapsed: s.now().Sub(start)}
	if err != nil {
		return result, fmt.Errorf("fetch winners page %d: %w", page, err)
	}
	result.Table = table
	return result, nil
}

type repositoryTableSource struct {
	repo domain.WinnerRepository
}

// NewRepositoryTableSource adapts a domain.WinnerRepository to a domain.TableSource
// with the id, name and year columns.
func NewRepositoryTableSource(repo domain.WinnerRepository) domain.TableSource {
	return &repositoryTableSource{repo: repo}
}

func (s *repositoryTableSource) FetchTable(ctx context.Context, offset, limit int) (*domain.Table, error) {
	winners, err := s.repo.GetWinners(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return domain.WinnersTable(winners), nil
}
