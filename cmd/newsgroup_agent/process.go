package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/newsgroup-processor/internal/artifacts"
	"github.com/jonathan/newsgroup-processor/internal/config"
	"github.com/jonathan/newsgroup-processor/internal/db"
	"github.com/jonathan/newsgroup-processor/internal/observability"
	"github.com/jonathan/newsgroup-processor/internal/pipeline"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

var processCommand = &cobra.Command{
	Use:   "process",
	Short: "Run the full discussion processing pipeline end-to-end",
	Long: `Runs a discussion through the entire pipeline: validation -> spam filter -> transformation -> cleaning -> scoring -> artifacts.

Input comes from --file, --dir (batch) or --demo. With no input flags the built-in sample discussion is used.
Configuration can be loaded from a JSON or YAML file using --config. Command-line arguments override config file values.`,
	RunE: runProcessCmd,
}

var (
	processConfigPath string
	processFile       string
	processDir        string
	processDemo       bool
	processOffline    bool
	processProvider   string
	processAPIKey     string
	processDBURL      string
	processOutputDir  string
	processLogsDir    string
	processNoSave     bool
	processNoLogs     bool
	processHTML       bool
	processWorkers    int
	processVerbose    bool
)

func init() {
	// Config file flag (processed first)
	processCommand.Flags().StringVar(&processConfigPath, "config", "", "Path to config file, .json or .yaml (values can be overridden by other flags)")

	processCommand.Flags().StringVarP(&processFile, "file", "f", "", "Path to a discussion text file")
	processCommand.Flags().StringVar(&processDir, "dir", "", "Directory of .txt discussion files to process as a batch")
	processCommand.Flags().BoolVar(&processDemo, "demo", false, "Process the built-in sample discussion")
	processCommand.Flags().BoolVar(&processOffline, "offline", false, "Use canned model responses instead of a live provider")
	processCommand.Flags().StringVar(&processProvider, "provider", "", "Model provider: gemini, openai or scripted (default gemini)")
	processCommand.Flags().StringVar(&processAPIKey, "api-key", "", "Provider API key (optional, defaults to GEMINI_API_KEY / OPENAI_API_KEY env var)")
	processCommand.Flags().StringVar(&processDBURL, "db-url", "", "PostgreSQL connection URL for run persistence (optional, defaults to DATABASE_URL env var)")
	processCommand.Flags().StringVar(&processOutputDir, "output-dir", "", "Directory for dialogue and score artifacts (default output)")
	processCommand.Flags().StringVar(&processLogsDir, "logs-dir", "", "Directory for per-run log files (default logs)")
	processCommand.Flags().BoolVar(&processNoSave, "no-save", false, "Skip writing dialogue and score artifacts")
	processCommand.Flags().BoolVar(&processNoLogs, "no-logs", false, "Skip writing the per-run log file")
	processCommand.Flags().BoolVar(&processHTML, "html", false, "Also render the dialogue artifact as HTML")
	processCommand.Flags().IntVar(&processWorkers, "workers", 4, "Concurrent runs in --dir batch mode")
	processCommand.Flags().BoolVarP(&processVerbose, "verbose", "v", false, "Print every stage result, not just the final output")

	rootCmd.AddCommand(processCommand)
}

func runProcessCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if processConfigPath != "" {
		loadedCfg, err := config.LoadConfig(processConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if processVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", processConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("file") {
		cfg.File = processFile
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = processProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = processAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = processDBURL
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = processOutputDir
	}
	if cmd.Flags().Changed("logs-dir") {
		cfg.LogsDir = processLogsDir
	}
	if cmd.Flags().Changed("no-save") {
		cfg.NoSave = processNoSave
	}
	if cmd.Flags().Changed("no-logs") {
		cfg.NoLogs = processNoLogs
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = processVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Provider:  "gemini",
		OutputDir: artifacts.DefaultOutputDir,
		LogsDir:   artifacts.DefaultLogsDir,
	})
	if processDemo && (cfg.File != "" || processDir != "") {
		return fmt.Errorf("--demo cannot be combined with --file or --dir")
	}
	if cfg.File != "" && processDir != "" {
		return fmt.Errorf("--file and --dir are mutually exclusive; provide only one")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Build the model client
	client, err := buildClient(ctx, cfg.Provider, cfg.APIKey, processOffline)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// Step 5: Optional database persistence. A broken database never blocks
	// processing; the run still completes and artifacts are still written.
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: database unavailable, runs will not be persisted: %v\n", err)
			database = nil
		} else {
			defer database.Close()
		}
	}

	controller := pipeline.NewController(client, pipeline.Options{})
	store := artifacts.NewStore(cfg.OutputDir, cfg.LogsDir)

	if processDir != "" {
		return runBatch(ctx, controller, store, database, &cfg, processDir)
	}

	text := SampleDiscussion
	source := types.SourceInline
	sourcePath := ""
	if cfg.File != "" {
		raw, err := os.ReadFile(cfg.File)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(raw)
		source = types.SourceFile
		sourcePath = cfg.File
	} else if cfg.Verbose {
		_, _ = fmt.Fprintln(os.Stdout, "No input given, using the built-in sample discussion")
	}

	input := types.NewDiscussionInput(text, source, sourcePath)
	run, err := processOne(ctx, controller, store, database, &cfg, input)
	if err != nil {
		return err
	}
	if !run.Succeeded() {
		return fmt.Errorf("processing ended with status %s: %s", run.Status, run.Reason)
	}
	return nil
}

// processOne drives a single discussion through the pipeline, prints the
// results and writes artifacts. The returned error covers artifact and
// printing problems only; pipeline outcomes live on the returned run.
func processOne(ctx context.Context, controller *pipeline.Controller, store *artifacts.Store, database *db.DB, cfg *config.Config, input *types.DiscussionInput) (*types.PipelineRun, error) {
	printer := observability.NewPrinter(os.Stdout)

	run := controller.Run(ctx, input)

	if cfg.Verbose {
		printer.PrintInput(run.Input)
		printer.PrintVerdict(run.Verdict)
		printer.PrintTransformation(run.Transformation)
	}
	printer.PrintDialogue(run.Dialogue)
	printer.PrintScore(run.Score)
	printer.PrintRunSummary(run)

	if !cfg.NoSave && run.Dialogue != nil {
		if path, err := store.SaveDialogue(run.Dialogue); err != nil {
			return run, fmt.Errorf("failed to save dialogue: %w", err)
		} else if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Dialogue saved to: %s\n", path)
		}
		if run.Score != nil {
			if _, err := store.SaveScore(run.Score); err != nil {
				return run, fmt.Errorf("failed to save score: %w", err)
			}
		}
		if processHTML {
			if _, err := store.SaveHTML(run); err != nil {
				return run, fmt.Errorf("failed to render HTML: %w", err)
			}
		}
	}
	if !cfg.NoLogs {
		if _, err := store.SaveRunLog(run); err != nil {
			return run, fmt.Errorf("failed to write run log: %w", err)
		}
	}

	if database != nil {
		if _, err := database.PersistRun(ctx, run); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist run %s: %v\n", run.ID, err)
		}
	}

	return run, nil
}

// runBatch processes every .txt file in dir concurrently. Each file is an
// independent run; one rejected discussion does not stop the others.
func runBatch(ctx context.Context, controller *pipeline.Controller, store *artifacts.Store, database *db.DB, cfg *config.Config, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt files found in %s", dir)
	}
	sort.Strings(files)

	// Per-run console output would interleave across workers, so batch mode
	// reports one summary line per file instead.
	quiet := *cfg
	quiet.Verbose = false

	var mu sync.Mutex
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(processWorkers)
	for _, path := range files {
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			input := types.NewDiscussionInput(string(raw), types.SourceFile, path)
			run := controller.Run(gctx, input)

			mu.Lock()
			defer mu.Unlock()
			if run.Succeeded() {
				score := "unscored"
				if run.Score != nil && !run.Score.Unparsed {
					score = fmt.Sprintf("%d/10", run.Score.Score)
				}
				_, _ = fmt.Fprintf(os.Stdout, "%-40s %s (%s, %d lines)\n", filepath.Base(path), run.Status, score, len(run.Dialogue.Utterances))
			} else {
				failed++
				_, _ = fmt.Fprintf(os.Stdout, "%-40s %s: %s\n", filepath.Base(path), run.Status, run.Reason)
			}

			if !quiet.NoLogs {
				if _, err := store.SaveRunLog(run); err != nil {
					return fmt.Errorf("failed to write run log for %s: %w", path, err)
				}
			}
			if database != nil {
				if _, err := database.PersistRun(gctx, run); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to persist run %s: %v\n", run.ID, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nProcessed %d files, %d rejected or failed\n", len(files), failed)
	return nil
}
