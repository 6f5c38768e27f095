package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"script-scrub/internal/config"
	"script-scrub/internal/filewalker"
	"script-scrub/internal/graph"
	"script-scrub/internal/phrases"
	"script-scrub/internal/scrub"
	"script-scrub/internal/store"
	"script-scrub/internal/workflow"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "script-scrub",
		Short: "Remove Arabic-script text from source files",
		Long: `Walks a source tree, finds files containing Arabic-script text and rewrites them in place:
known phrases are replaced from a phrase table, any remaining Arabic characters are stripped,
and the punctuation and whitespace left behind is cleaned up.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			level, err := zerolog.ParseLevel(loaded.LogLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}
			zerolog.SetGlobalLevel(level)
			cfg = loaded
			return nil
		},
	}

	getConfig := func() *config.Config { return cfg }

	rootCmd.AddCommand(scrubCmd(getConfig))
	rootCmd.AddCommand(verifyCmd(getConfig))
	rootCmd.AddCommand(phrasesCmd(getConfig))
	rootCmd.AddCommand(coverageCmd(getConfig))

	return rootCmd
}

type configFunc func() *config.Config

func scrubCmd(getConfig configFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub <directory>",
		Short: "Rewrite every candidate file that contains Arabic text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			failOnError, _ := cmd.Flags().GetBool("fail-on-error")
			return runScrub(cmd.OutOrStdout(), cfg, args[0], dryRun, failOnError)
		},
	}

	cmd.Flags().String("variant", "", "Pipeline variant: conservative or aggressive (default from SCRUB_VARIANT)")
	cmd.Flags().StringSlice("ext", nil, "File extensions to scan (default from SCRUB_EXTENSIONS)")
	cmd.Flags().Bool("dry-run", false, "Transform files without writing them back")
	cmd.Flags().Bool("fail-on-error", false, "Exit non-zero when a file fails or Arabic text remains")

	return cmd
}

func verifyCmd(getConfig configFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <directory>",
		Short: "Report candidate files that still contain Arabic text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			return runVerify(cmd.OutOrStdout(), cfg, args[0])
		},
	}

	cmd.Flags().StringSlice("ext", nil, "File extensions to scan (default from SCRUB_EXTENSIONS)")

	return cmd
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if f := cmd.Flags().Lookup("variant"); f != nil && f.Changed {
		cfg.Variant = f.Value.String()
	}
	if cmd.Flags().Changed("ext") {
		exts, _ := cmd.Flags().GetStringSlice("ext")
		cfg.Extensions = exts
	}
	return cfg.Validate()
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// openPhrasePool connects to PostgreSQL when it is configured. An unreachable
// database is logged and returned as nil.
func openPhrasePool(ctx context.Context, cfg *config.Config) *pgxpool.Pool {
	if cfg.DatabaseURL == "" {
		return nil
	}
	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("PostgreSQL unavailable, continuing without phrase store and journal")
		return nil
	}
	if err := store.EnsureSchema(ctx, pool); err != nil {
		log.Warn().Err(err).Msg("PostgreSQL schema unavailable, continuing without it")
		pool.Close()
		return nil
	}
	return pool
}

// initDependencies opens the optional backends. A backend that is not
// configured or cannot be reached is returned as nil.
func initDependencies(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, neo4j.DriverWithContext) {
	pool := openPhrasePool(ctx, cfg)

	var driver neo4j.DriverWithContext
	if cfg.Neo4jURI != "" {
		d, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
		if err != nil {
			log.Warn().Err(err).Msg("Neo4j unavailable, continuing without coverage graph")
		} else {
			driver = d
		}
	}

	return pool, driver
}

// phraseLoader supplies stored phrases.
type phraseLoader interface {
	Load(ctx context.Context) ([]phrases.Entry, error)
}

// storedPhrases returns a loader for pool, or nil without a database.
func storedPhrases(pool *pgxpool.Pool) phraseLoader {
	if pool == nil {
		return nil
	}
	return store.NewPhraseStore(pool)
}

// buildPhraseMap assembles the phrase table: built-in entries, then the
// phrases file, then stored phrases.
func buildPhraseMap(ctx context.Context, cfg *config.Config, stored phraseLoader) (*phrases.Map, error) {
	entries := phrases.Builtin()

	if cfg.PhrasesFile != "" {
		extra, err := phrases.LoadFile(cfg.PhrasesFile)
		if err != nil {
			return nil, err
		}
		entries = append(entries, extra...)
	}

	if stored != nil {
		loaded, err := stored.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load stored phrases")
		} else {
			entries = append(entries, loaded...)
		}
	}

	m, err := phrases.New(entries)
	if err != nil {
		return nil, fmt.Errorf("build phrase map: %w", err)
	}
	return m, nil
}

// runScrub handles the `scrub` command.
func runScrub(out io.Writer, cfg *config.Config, root string, dryRun, failOnError bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	variant, err := scrub.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	pool, driver := initDependencies(ctx, cfg)
	if pool != nil {
		defer pool.Close()
	}
	if driver != nil {
		defer driver.Close(ctx)
	}

	m, err := buildPhraseMap(ctx, cfg, storedPhrases(pool))
	if err != nil {
		return err
	}

	log.Info().
		Str("root", root).
		Str("variant", string(variant)).
		Int("phrases", m.Len()).
		Bool("dry_run", dryRun).
		Msg("Starting scrub")

	paths, err := filewalker.NewWalker(cfg.Extensions...).Paths(root)
	if err != nil {
		log.Error().Err(err).Str("root", root).Msg("Failed to walk directory")
	}

	opts := []workflow.Option{workflow.WithDryRun(dryRun)}

	var run *store.Run
	if pool != nil {
		run, err = store.NewRunJournal(pool).Start(ctx, variant, root, dryRun)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to start journal run")
		} else {
			opts = append(opts, workflow.WithRecorder(run))
		}
	}

	if driver != nil {
		coverage := graph.NewCoverageGraph(driver)
		if err := coverage.EnsureSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to ensure coverage graph schema")
		} else {
			opts = append(opts, workflow.WithRecorder(coverage))
		}
	}

	summary := workflow.NewProcessor(scrub.New(variant, m), opts...).Process(ctx, paths)

	if run != nil {
		if err := run.Finish(ctx, summary); err != nil {
			log.Warn().Err(err).Msg("Failed to finish journal run")
		}
	}

	workflow.PrintSummary(out, summary)

	if failOnError && (len(summary.Failed) > 0 || len(summary.Remaining) > 0) {
		return fmt.Errorf("%d files failed, %d files still contain Arabic text", len(summary.Failed), len(summary.Remaining))
	}
	return nil
}

// runVerify handles the `verify` command.
func runVerify(out io.Writer, cfg *config.Config, root string) error {
	paths, err := filewalker.NewWalker(cfg.Extensions...).Paths(root)
	if err != nil {
		return fmt.Errorf("walk input directory: %w", err)
	}

	remaining := workflow.Verify(paths)
	workflow.PrintVerification(out, remaining)

	log.Info().Int("files", len(paths)).Int("remaining", len(remaining)).Msg("Verification complete")
	return nil
}
