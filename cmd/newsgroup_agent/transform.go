package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsgroup-processor/internal/observability"
	"github.com/jonathan/newsgroup-processor/internal/transform"
)

var transformCommand = &cobra.Command{
	Use:   "transform",
	Short: "Run only the dialogue transformation on a discussion file",
	Long: `Runs the three-sub-step transformation (analysis -> script -> format) on a discussion file and prints the sub-step results.

The raw formatted script can be written to a file with --out for later cleaning.`,
	RunE: runTransformCmd,
}

var (
	transformIn       string
	transformOut      string
	transformOffline  bool
	transformProvider string
	transformAPIKey   string
)

func init() {
	transformCommand.Flags().StringVar(&transformIn, "in", "", "Path to a discussion text file (required)")
	transformCommand.Flags().StringVar(&transformOut, "out", "", "Path to write the raw formatted script to (optional)")
	transformCommand.Flags().BoolVar(&transformOffline, "offline", false, "Use canned model responses instead of a live provider")
	transformCommand.Flags().StringVar(&transformProvider, "provider", "", "Model provider: gemini, openai or scripted (default gemini)")
	transformCommand.Flags().StringVar(&transformAPIKey, "api-key", "", "Provider API key (optional, defaults to env var)")
	_ = transformCommand.MarkFlagRequired("in")

	rootCmd.AddCommand(transformCommand)
}

func runTransformCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	raw, err := os.ReadFile(transformIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	client, err := buildClient(ctx, transformProvider, transformAPIKey, transformOffline)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := transform.Transform(ctx, client, string(raw))
	if result != nil {
		observability.NewPrinter(os.Stdout).PrintTransformation(result)
	}
	if err != nil {
		return fmt.Errorf("transformation failed: %w", err)
	}

	if transformOut != "" {
		if err := os.WriteFile(transformOut, []byte(result.Output()+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Formatted script written to: %s\n", transformOut)
	}
	return nil
}
