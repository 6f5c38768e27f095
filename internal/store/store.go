package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DB is the subset of *pgxpool.Pool used by the stores.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var _ DB = (*pgxpool.Pool)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS phrase_replacements (
	phrase      TEXT PRIMARY KEY,
	replacement TEXT NOT NULL DEFAULT '',
	position    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scrub_runs (
	id          UUID PRIMARY KEY,
	variant     TEXT NOT NULL,
	root        TEXT NOT NULL,
	dry_run     BOOLEAN NOT NULL DEFAULT FALSE,
	started_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	finished_at TIMESTAMPTZ,
	modified    INTEGER NOT NULL DEFAULT 0,
	failed      INTEGER NOT NULL DEFAULT 0,
	remaining   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS scrub_files (
	run_id      UUID NOT NULL REFERENCES scrub_runs(id) ON DELETE CASCADE,
	path        TEXT NOT NULL,
	modified    BOOLEAN NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	before_hash TEXT NOT NULL DEFAULT '',
	after_hash  TEXT NOT NULL DEFAULT '',
	phrase_hits INTEGER NOT NULL DEFAULT 0,
	fragments   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, path)
);
`

// Connect opens a pool and verifies the connection.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")

	return pool, nil
}

// EnsureSchema creates the phrase and journal tables.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
