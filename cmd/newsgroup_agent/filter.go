package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsgroup-processor/internal/filter"
	"github.com/jonathan/newsgroup-processor/internal/observability"
	"github.com/jonathan/newsgroup-processor/internal/validation"
)

var filterCommand = &cobra.Command{
	Use:   "filter",
	Short: "Run only the spam filter on a discussion file",
	Long:  "Validates a discussion file structurally, then asks the model for a PASS or STOP verdict. The downstream pipeline stages do not run.",
	RunE:  runFilterCmd,
}

var (
	filterIn       string
	filterOffline  bool
	filterProvider string
	filterAPIKey   string
)

func init() {
	filterCommand.Flags().StringVar(&filterIn, "in", "", "Path to a discussion text file (required)")
	filterCommand.Flags().BoolVar(&filterOffline, "offline", false, "Use canned model responses instead of a live provider")
	filterCommand.Flags().StringVar(&filterProvider, "provider", "", "Model provider: gemini, openai or scripted (default gemini)")
	filterCommand.Flags().StringVar(&filterAPIKey, "api-key", "", "Provider API key (optional, defaults to env var)")
	_ = filterCommand.MarkFlagRequired("in")

	rootCmd.AddCommand(filterCommand)
}

func runFilterCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	raw, err := os.ReadFile(filterIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if outcome := validation.ValidateContent(string(raw)); !outcome.OK {
		return fmt.Errorf("input rejected before filtering: %s", outcome.Reason)
	}

	client, err := buildClient(ctx, filterProvider, filterAPIKey, filterOffline)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	verdict, err := filter.Check(ctx, client, string(raw))
	if err != nil {
		return fmt.Errorf("filter invocation failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintVerdict(verdict)
	return nil
}
