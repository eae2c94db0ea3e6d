package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsgroup-processor/internal/cleaning"
	"github.com/jonathan/newsgroup-processor/internal/observability"
	"github.com/jonathan/newsgroup-processor/internal/scoring"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score an already-cleaned dialogue file",
	Long: `Rates a dialogue file across the ten quality criteria and prints the 1-10 score with its rationale.

The input is cleaned first, so raw script output from the transform command is accepted directly. An unparseable model response is reported as unparsed, not as an error.`,
	RunE: runScoreCmd,
}

var (
	scoreIn       string
	scoreOffline  bool
	scoreProvider string
	scoreAPIKey   string
)

func init() {
	scoreCommand.Flags().StringVar(&scoreIn, "in", "", "Path to a dialogue text file (required)")
	scoreCommand.Flags().BoolVar(&scoreOffline, "offline", false, "Use canned model responses instead of a live provider")
	scoreCommand.Flags().StringVar(&scoreProvider, "provider", "", "Model provider: gemini, openai or scripted (default gemini)")
	scoreCommand.Flags().StringVar(&scoreAPIKey, "api-key", "", "Provider API key (optional, defaults to env var)")
	_ = scoreCommand.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	raw, err := os.ReadFile(scoreIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	dialogue, err := cleaning.Clean(string(raw))
	if err != nil {
		return fmt.Errorf("input contains no scoreable dialogue: %w", err)
	}

	client, err := buildClient(ctx, scoreProvider, scoreAPIKey, scoreOffline)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	score, err := scoring.Score(ctx, client, dialogue)
	if err != nil {
		return fmt.Errorf("scoring invocation failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintScore(score)
	return nil
}
