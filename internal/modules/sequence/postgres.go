package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a PostgreSQL counter repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Next(ctx context.Context, name string) (int64, error) {
	// Single-statement upsert so increment-and-fetch is atomic at the
	// database: concurrent callers each get a distinct value.
	query := `
		INSERT INTO sequence_counters (name, last_value)
		VALUES ($1, 1)
		ON CONFLICT (name)
		DO UPDATE SET last_value = sequence_counters.last_value + 1
		RETURNING last_value
	`
	var value int64
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("increment counter %q: %w", name, err)
	}
	return value, nil
}

func (r *postgresRepository) Current(ctx context.Context, name string) (int64, error) {
	query := `SELECT last_value FROM sequence_counters WHERE name = $1`

	var value int64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter %q: %w", name, err)
	}
	return value, nil
}
