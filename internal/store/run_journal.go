package store

import (
	"context"
	"fmt"

	"script-scrub/internal/scrub"
	"script-scrub/internal/workflow"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RunJournal records scrub runs and their per-file outcomes.
type RunJournal struct {
	db DB
}

// NewRunJournal creates a new run journal.
func NewRunJournal(db DB) *RunJournal {
	return &RunJournal{db: db}
}

// Run is one journaled scrub run. It implements workflow.Recorder.
type Run struct {
	ID uuid.UUID
	db DB
}

// Start inserts a new run row.
func (j *RunJournal) Start(ctx context.Context, variant scrub.Variant, root string, dryRun bool) (*Run, error) {
	id := uuid.New()
	_, err := j.db.Exec(ctx, `
		INSERT INTO scrub_runs (id, variant, root, dry_run)
		VALUES ($1, $2, $3, $4)
	`, id, string(variant), root, dryRun)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	log.Debug().Str("run", id.String()).Msg("Started journal run")
	return &Run{ID: id, db: j.db}, nil
}

// RecordFile stores the outcome for one file.
func (r *Run) RecordFile(ctx context.Context, rec workflow.FileRecord) error {
	var errText string
	if rec.Err != nil {
		errText = rec.Err.Error()
	}

	hits := 0
	for _, h := range rec.Hits {
		hits += h.Count
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO scrub_files (run_id, path, modified, error, before_hash, after_hash, phrase_hits, fragments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (run_id, path) DO UPDATE SET
			modified = EXCLUDED.modified,
			error = EXCLUDED.error,
			before_hash = EXCLUDED.before_hash,
			after_hash = EXCLUDED.after_hash,
			phrase_hits = EXCLUDED.phrase_hits,
			fragments = EXCLUDED.fragments
	`, r.ID, rec.Path, rec.Modified, errText, rec.BeforeHash, rec.AfterHash, hits, len(rec.Fragments))
	if err != nil {
		return fmt.Errorf("insert file record: %w", err)
	}
	return nil
}

// Finish stores the run totals.
func (r *Run) Finish(ctx context.Context, s workflow.Summary) error {
	_, err := r.db.Exec(ctx, `
		UPDATE scrub_runs
		SET finished_at = now(), modified = $2, failed = $3, remaining = $4
		WHERE id = $1
	`, r.ID, len(s.Modified), len(s.Failed), len(s.Remaining))
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	log.Info().Str("run", r.ID.String()).Msg("Journaled scrub run")
	return nil
}
