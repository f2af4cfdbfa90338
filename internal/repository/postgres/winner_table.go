package postgres

import (
	"context"
	"database/sql"

	"indywinners/internal/domain"
)

type winnerTableQuery struct {
	DB *sql.DB
}

// NewWinnerTableQuery returns a domain.TableSource that selects every column of the
// winners table and labels the result with the column names reported by the driver.
func NewWinnerTableQuery(db *sql.DB) domain.TableSource {
	return &winnerTableQuery{DB: db}
}

func (q *winnerTableQuery) FetchTable(ctx context.Context, offset, limit int) (*domain.Table, error) {
	rows, err := q.DB.QueryContext(ctx,
		`SELECT * FROM winners ORDER BY year DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	cells := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range cells {
		dest[i] = &cells[i]
	}

	table := &domain.Table{Columns: columns, Rows: [][]string{}}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			} else {
				row[i] = domain.NullCell
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
