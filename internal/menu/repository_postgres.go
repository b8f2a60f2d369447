package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the price list from the reference_menu table.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Load(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.Query(ctx, `SELECT name, price FROM reference_menu`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]float64)
	for rows.Next() {
		var name string
		var price float64
		if err := rows.Scan(&name, &price); err != nil {
			return nil, err
		}
		prices[name] = price
	}

	return prices, rows.Err()
}
