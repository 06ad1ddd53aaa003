// Package db provides PostgreSQL access for the job catalog and the
// interaction audit log.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the catalog tables if they do not exist yet, so
// a fresh database can be seeded in one step by the ingest command.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id                   TEXT PRIMARY KEY,
			title                TEXT NOT NULL,
			description          TEXT NOT NULL,
			required_skills      JSONB,
			field_of_study       TEXT,
			company_industry     TEXT,
			company_id           TEXT,
			location             TEXT,
			job_type             TEXT,
			salary               TEXT,
			experience_years     TEXT,
			posted_date          TEXT,
			application_deadline TEXT,
			active               BOOLEAN NOT NULL DEFAULT TRUE,
			created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create jobs table: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interaction_events (
			id               UUID PRIMARY KEY,
			user_id          TEXT NOT NULL,
			job_id           TEXT NOT NULL,
			interaction_type TEXT NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create interaction_events table: %w", err)
	}

	return nil
}
