package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"script-scrub/internal/config"
	"script-scrub/internal/graph"
	"script-scrub/internal/phrases"
	"script-scrub/internal/store"
	"script-scrub/internal/textutil"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func phrasesCmd(getConfig configFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phrases",
		Short: "Inspect, export and seed the phrase table",
	}

	cmd.AddCommand(phrasesExportCmd(getConfig))
	cmd.AddCommand(phrasesLintCmd(getConfig))
	cmd.AddCommand(phrasesSeedCmd(getConfig))

	return cmd
}

func phrasesExportCmd(getConfig configFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the effective phrase table as TSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			m, err := effectivePhraseMap(getConfig())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				err = exportPhrases(cmd.OutOrStdout(), format, m.Entries())
			} else {
				err = writeExportFile(output, format, m.Entries())
			}
			if err != nil {
				return err
			}

			log.Info().Str("format", format).Int("entries", m.Len()).Msg("Exported phrase table")
			return nil
		},
	}

	cmd.Flags().String("format", "tsv", "Export format: tsv or json")
	cmd.Flags().String("output", "-", "Output path, - for stdout")

	return cmd
}

// effectivePhraseMap builds the phrase table a scrub run would use, including
// stored phrases when PostgreSQL is configured and reachable.
func effectivePhraseMap(cfg *config.Config) (*phrases.Map, error) {
	ctx, cancel := setupContext()
	defer cancel()

	pool := openPhrasePool(ctx, cfg)
	if pool != nil {
		defer pool.Close()
	}
	return buildPhraseMap(ctx, cfg, storedPhrases(pool))
}

func writeExportFile(path, format string, entries []phrases.Entry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	return exportPhrases(f, format, entries)
}

func exportPhrases(w io.Writer, format string, entries []phrases.Entry) error {
	switch format {
	case "json":
		return phrases.WriteJSON(w, entries)
	case "tsv":
		return phrases.WriteTSV(w, entries)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func phrasesLintCmd(getConfig configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "List phrases that can never match because an earlier phrase consumes them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := effectivePhraseMap(getConfig())
			if err != nil {
				return err
			}

			shadows := m.Shadowed()
			printShadows(cmd.OutOrStdout(), shadows)

			log.Info().Int("entries", m.Len()).Int("shadowed", len(shadows)).Msg("Phrase table linted")
			return nil
		},
	}
}

func printShadows(w io.Writer, shadows []phrases.Shadow) {
	for _, s := range shadows {
		fmt.Fprintf(w, "%q (-> %q) is shadowed by earlier %q (-> %q)\n",
			s.Later.Phrase, s.Later.Replacement, s.Earlier.Phrase, s.Earlier.Replacement)
	}
	fmt.Fprintf(w, "%d shadowed phrases\n", len(shadows))
}

func phrasesSeedCmd(getConfig configFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in and file phrases in PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is not set")
			}

			ctx, cancel := setupContext()
			defer cancel()

			pool, err := store.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := store.EnsureSchema(ctx, pool); err != nil {
				return err
			}

			m, err := buildPhraseMap(ctx, cfg, nil)
			if err != nil {
				return err
			}

			n, err := store.NewPhraseStore(pool).Seed(ctx, m.Entries())
			if err != nil {
				return fmt.Errorf("seed phrases: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d phrases\n", n)
			return nil
		},
	}
}

func coverageCmd(getConfig configFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "List the most frequent Arabic fragments the phrase table did not cover",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if cfg.Neo4jURI == "" {
				return errors.New("NEO4J_URI is not set")
			}

			limit := cfg.CoverageLimit
			if cmd.Flags().Changed("limit") {
				limit, _ = cmd.Flags().GetInt("limit")
			}

			ctx, cancel := setupContext()
			defer cancel()

			driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
			if err != nil {
				return err
			}
			defer driver.Close(ctx)

			fragments, err := graph.NewCoverageGraph(driver).UncoveredFragments(ctx, limit)
			if err != nil {
				return err
			}

			printFragments(cmd.OutOrStdout(), fragments)
			return nil
		},
	}

	cmd.Flags().Int("limit", 25, "Maximum number of fragments to list (default from COVERAGE_LIMIT)")

	return cmd
}

func printFragments(w io.Writer, fragments []graph.FragmentCount) {
	if len(fragments) == 0 {
		fmt.Fprintln(w, "No uncovered fragments recorded")
		return
	}
	for _, f := range fragments {
		fmt.Fprintf(w, "%6d  %4d files  %s\n", f.Total, f.Files, textutil.Truncate(f.Text, 60))
	}
}
