package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"rea/internal/model"
)

// PostgresRepository serves the listing dataset from a Postgres table and
// records search telemetry
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConns, maxIdleConns int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxIdleConns)

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// ListListings loads the entire dataset into memory. The dataset is small by
// design; filtering and ranking happen in the engine, not in SQL.
func (r *PostgresRepository) ListListings(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT id, city, neighborhood, type, listing_type, price, currency,
		       bedrooms, parking, garden, pool, near_schools, near_transit,
		       description, image_url
		FROM listings
		ORDER BY id`

	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// LogSearch records a completed search for offline analysis
func (r *PostgresRepository) LogSearch(ctx context.Context, filters model.FilterCriteria, total int, tookMS int64) error {
	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}

	query := `
		INSERT INTO search_logs (filters, total_results, took_ms, created_at)
		VALUES ($1, $2, $3, NOW())`

	if _, err := r.db.ExecContext(ctx, query, filtersJSON, total, tookMS); err != nil {
		return fmt.Errorf("failed to insert search log: %w", err)
	}
	return nil
}
