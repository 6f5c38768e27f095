package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"script-scrub/internal/phrases"
	"script-scrub/internal/scrub"
	"script-scrub/internal/textutil"

	"github.com/rs/zerolog/log"
)

// ErrInvalidEncoding is returned for files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 content")

// FileRecord is the outcome of processing one file.
type FileRecord struct {
	Path     string
	Modified bool
	Err      error
	// Hits and Fragments are empty for skipped files.
	Hits       []phrases.Hit
	Fragments  []string
	BeforeHash string
	AfterHash  string
}

// Summary collects the records of one run.
type Summary struct {
	Variant  scrub.Variant
	DryRun   bool
	Records  []FileRecord
	Modified []string
	Failed   []FileRecord
	// Remaining lists files that still contain Arabic after an aggressive run.
	Remaining []string
	Verified  bool
}

// Recorder receives every file record. Failures are logged and never affect the run.
type Recorder interface {
	RecordFile(ctx context.Context, rec FileRecord) error
}

// Processor runs the detect, transform and write steps file by file.
type Processor struct {
	pipeline  *scrub.Pipeline
	dryRun    bool
	recorders []Recorder
}

// Option configures a Processor.
type Option func(*Processor)

// WithDryRun transforms files without writing them back.
func WithDryRun(dryRun bool) Option {
	return func(p *Processor) { p.dryRun = dryRun }
}

// WithRecorder adds a recorder. Nil recorders are ignored.
func WithRecorder(r Recorder) Option {
	return func(p *Processor) {
		if r != nil {
			p.recorders = append(p.recorders, r)
		}
	}
}

// NewProcessor creates a processor around pipeline.
func NewProcessor(pipeline *scrub.Pipeline, opts ...Option) *Processor {
	p := &Processor{pipeline: pipeline}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process handles paths sequentially. A failing file is recorded and skipped.
// After an aggressive run that wrote files, every path is verified again.
func (p *Processor) Process(ctx context.Context, paths []string) Summary {
	summary := Summary{
		Variant: p.pipeline.Variant(),
		DryRun:  p.dryRun,
		Records: make([]FileRecord, 0, len(paths)),
	}

	for _, path := range paths {
		rec := p.ProcessFile(path)
		summary.Records = append(summary.Records, rec)

		switch {
		case rec.Err != nil:
			log.Error().Err(rec.Err).Str("file", path).Msg("Failed to process file")
			summary.Failed = append(summary.Failed, rec)
		case rec.Modified:
			log.Debug().
				Str("file", path).
				Int("phrases", len(rec.Hits)).
				Int("fragments", len(rec.Fragments)).
				Msg("File scrubbed")
			summary.Modified = append(summary.Modified, path)
		}

		for _, r := range p.recorders {
			if err := r.RecordFile(ctx, rec); err != nil {
				log.Warn().Err(err).Str("file", path).Msg("Failed to record file")
			}
		}
	}

	if summary.Variant == scrub.Aggressive && !p.dryRun {
		summary.Remaining = Verify(paths)
		summary.Verified = true
	}

	log.Info().
		Str("variant", string(summary.Variant)).
		Int("files", len(paths)).
		Int("modified", len(summary.Modified)).
		Int("failed", len(summary.Failed)).
		Msg("Scrub complete")

	return summary
}

// ProcessFile reads path and, if it contains Arabic, rewrites it in place.
// A file without Arabic is never opened for writing.
func (p *Processor) ProcessFile(path string) FileRecord {
	rec := FileRecord{Path: path}

	content, err := readText(path)
	if err != nil {
		rec.Err = err
		return rec
	}

	if !textutil.ContainsArabic(content) {
		return rec
	}

	res := p.pipeline.Transform(content)
	rec.Hits = res.Hits
	rec.Fragments = res.Fragments
	rec.BeforeHash = textutil.Hash(content)
	rec.AfterHash = textutil.Hash(res.Content)

	if !p.dryRun {
		if err := os.WriteFile(path, []byte(res.Content), 0644); err != nil {
			rec.Err = fmt.Errorf("write file: %w", err)
			return rec
		}
	}

	rec.Modified = true
	return rec
}

// Verify re-reads paths and returns those that still contain Arabic.
// Unreadable files are logged and left out.
func Verify(paths []string) []string {
	var remaining []string
	for _, path := range paths {
		content, err := readText(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping file during verification")
			continue
		}
		if textutil.ContainsArabic(content) {
			remaining = append(remaining, path)
		}
	}
	return remaining
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decode %s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
