package main

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"indywinners/config"
	"indywinners/internal/domain"
	"indywinners/internal/repository/postgres"
	"indywinners/internal/services"
)

// newPageSource picks the winners page source named by config.
func newPageSource(name string, db *sql.DB, logger zerolog.Logger) (domain.TableSource, error) {
	switch name {
	case config.PageSourceRaw:
		return postgres.NewWinnerTableQuery(db), nil
	case config.PageSourceRepository:
		return services.NewRepositoryTableSource(postgres.NewWinnerRepository(db)), nil
	case config.PageSourceLenient:
		return services.NewRepositoryTableSource(postgres.NewLenientWinnerRepository(db, logger)), nil
	default:
		return nil, fmt.Errorf("unknown page source: %q", name)
	}
}
