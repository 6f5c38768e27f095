package store

import (
	"context"
	"fmt"

	"script-scrub/internal/phrases"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// PhraseStore persists phrase entries in PostgreSQL, keeping their order.
type PhraseStore struct {
	db DB
}

// NewPhraseStore creates a new phrase store.
func NewPhraseStore(db DB) *PhraseStore {
	return &PhraseStore{db: db}
}

// Load returns all stored entries in position order.
func (ps *PhraseStore) Load(ctx context.Context) ([]phrases.Entry, error) {
	rows, err := ps.db.Query(ctx, `
		SELECT phrase, replacement
		FROM phrase_replacements
		ORDER BY position, phrase
	`)
	if err != nil {
		return nil, fmt.Errorf("query phrases: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (phrases.Entry, error) {
		var e phrases.Entry
		err := row.Scan(&e.Phrase, &e.Replacement)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan phrases: %w", err)
	}

	log.Info().Int("count", len(entries)).Msg("Loaded phrases from PostgreSQL")
	return entries, nil
}

// Seed upserts entries after the last stored position. An existing phrase
// keeps its position and takes the new replacement.
func (ps *PhraseStore) Seed(ctx context.Context, entries []phrases.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var next int
	if err := ps.db.QueryRow(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM phrase_replacements`).Scan(&next); err != nil {
		return 0, fmt.Errorf("query next position: %w", err)
	}

	batch := &pgx.Batch{}
	for i, e := range entries {
		batch.Queue(`
			INSERT INTO phrase_replacements (phrase, replacement, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (phrase) DO UPDATE SET replacement = EXCLUDED.replacement
		`, e.Phrase, e.Replacement, next+i)
	}

	br := ps.db.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			return 0, fmt.Errorf("upsert phrase %q: %w", e.Phrase, err)
		}
	}

	log.Info().Int("count", len(entries)).Msg("Seeded phrases")
	return len(entries), nil
}
