package graph

import (
	"context"
	"fmt"

	"script-scrub/internal/workflow"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// FragmentCount is a residual script run with its occurrence totals.
type FragmentCount struct {
	Text  string
	Total int64
	Files int64
}

// CoverageGraph tracks which phrases and leftover fragments appear in which
// files, so gaps in the phrase table can be found across runs.
type CoverageGraph struct {
	driver neo4j.DriverWithContext
}

// NewCoverageGraph creates a new coverage graph.
func NewCoverageGraph(driver neo4j.DriverWithContext) *CoverageGraph {
	return &CoverageGraph{driver: driver}
}

// Connect opens a driver and verifies connectivity.
func Connect(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("connect Neo4j: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")

	return driver, nil
}

// EnsureSchema creates uniqueness constraints for the coverage nodes.
func (cg *CoverageGraph) EnsureSchema(ctx context.Context) error {
	session := cg.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (p:Phrase) REQUIRE p.text IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (f:SourceFile) REQUIRE f.path IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (x:Fragment) REQUIRE x.text IS UNIQUE",
	}

	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Coverage graph schema ensured")
	return nil
}

// RecordFile links the file to the phrases and fragments found in it.
// Files that were not modified are skipped.
func (cg *CoverageGraph) RecordFile(ctx context.Context, rec workflow.FileRecord) error {
	if !rec.Modified {
		return nil
	}

	session := cg.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := session.Run(ctx, `
		MERGE (f:SourceFile {path: $path})
		SET f.scrubbed_at = datetime(), f.after_hash = $hash
	`, map[string]any{
		"path": rec.Path,
		"hash": rec.AfterHash,
	})
	if err != nil {
		return fmt.Errorf("upsert file node: %w", err)
	}

	for _, h := range rec.Hits {
		_, err := session.Run(ctx, `
			MERGE (p:Phrase {text: $phrase})
			SET p.replacement = $replacement
			WITH p
			MATCH (f:SourceFile {path: $path})
			MERGE (p)-[r:FOUND_IN]->(f)
			SET r.count = $count
		`, map[string]any{
			"phrase":      h.Phrase,
			"replacement": h.Replacement,
			"path":        rec.Path,
			"count":       h.Count,
		})
		if err != nil {
			return fmt.Errorf("link phrase: %w", err)
		}
	}

	for text, count := range countFragments(rec.Fragments) {
		_, err := session.Run(ctx, `
			MERGE (x:Fragment {text: $text})
			WITH x
			MATCH (f:SourceFile {path: $path})
			MERGE (x)-[r:LEFT_IN]->(f)
			SET r.count = $count
		`, map[string]any{
			"text":  text,
			"path":  rec.Path,
			"count": count,
		})
		if err != nil {
			return fmt.Errorf("link fragment: %w", err)
		}
	}

	return nil
}

// UncoveredFragments returns the most frequent fragments the phrase table missed.
func (cg *CoverageGraph) UncoveredFragments(ctx context.Context, limit int) ([]FragmentCount, error) {
	session := cg.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (x:Fragment)-[r:LEFT_IN]->(f:SourceFile)
		RETURN x.text AS text, sum(r.count) AS total, count(DISTINCT f) AS files
		ORDER BY total DESC, text
		LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("query fragments: %w", err)
	}

	var out []FragmentCount
	for result.Next(ctx) {
		record := result.Record()
		text, _ := record.Get("text")
		total, _ := record.Get("total")
		files, _ := record.Get("files")

		out = append(out, FragmentCount{
			Text:  fmt.Sprintf("%v", text),
			Total: asInt64(total),
			Files: asInt64(files),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read fragments: %w", err)
	}

	return out, nil
}

// countFragments tallies identical fragments.
func countFragments(fragments []string) map[string]int {
	counts := make(map[string]int, len(fragments))
	for _, f := range fragments {
		counts[f]++
	}
	return counts
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
