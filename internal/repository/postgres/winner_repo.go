package postgres

import (
	"context"
	"database/sql"

	"indywinners/internal/domain"

	"github.com/rs/zerolog"
)

type winnerRepository struct {
	DB *sql.DB
}

// NewWinnerRepository returns a domain.WinnerRepository implemented with Postgres.
// Query and scan failures are returned to the caller.
func NewWinnerRepository(db *sql.DB) domain.WinnerRepository {
	return &winnerRepository{DB: db}
}

func (r *winnerRepository) GetWinners(ctx context.Context, offset, limit int) ([]*domain.Winner, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, year FROM winners
		 ORDER BY year DESC, id
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	winners := []*domain.Winner{}
	for rows.Next() {
		var w domain.Winner
		if err := rows.Scan(&w.ID, &w.Name, &w.Year); err != nil {
			return nil, err
		}
		winners = append(winners, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return winners, nil
}

type lenientWinnerRepository struct {
	next domain.WinnerRepository
	log  zerolog.Logger
}

// NewLenientWinnerRepository returns a domain.WinnerRepository that logs any storage
// failure and reports it as an empty result instead of an error.
func NewLenientWinnerRepository(db *sql.DB, logger zerolog.Logger) domain.WinnerRepository {
	return &lenientWinnerRepository{
		next: NewWinnerRepository(db),
		log:  logger.With().Str("component", "winner_repository").Logger(),
	}
}

func (r *lenientWinnerRepository) GetWinners(ctx context.Context, offset, limit int) ([]*domain.Winner, error) {
	winners, err := r.next.GetWinners(ctx, offset, limit)
	if err != nil {
		r.log.Error().Err(err).Int("offset", offset).Int("limit", limit).Msg("get winners failed, returning no winners")
		return []*domain.Winner{}, nil
	}
	return winners, nil
}
