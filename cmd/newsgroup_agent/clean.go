package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsgroup-processor/internal/cleaning"
	"github.com/jonathan/newsgroup-processor/internal/observability"
	"github.com/jonathan/newsgroup-processor/internal/types"
)

var cleanCommand = &cobra.Command{
	Use:   "clean",
	Short: "Clean raw script text into canonical dialogue",
	Long: `Applies the deterministic cleaning rules to raw script text: markdown fences, stage directions and malformed lines are dropped, speaker names are uppercased.

No model is involved. Reads --in, prints the result, optionally writes it with --out.`,
	RunE: runCleanCmd,
}

var (
	cleanIn  string
	cleanOut string
)

func init() {
	cleanCommand.Flags().StringVar(&cleanIn, "in", "", "Path to a raw script text file (required)")
	cleanCommand.Flags().StringVar(&cleanOut, "out", "", "Path to write the cleaned dialogue to (optional)")
	_ = cleanCommand.MarkFlagRequired("in")

	rootCmd.AddCommand(cleanCommand)
}

func runCleanCmd(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(cleanIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	dialogue, err := cleaning.Clean(string(raw))
	if err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintDialogue(dialogue)

	if cleanOut != "" {
		if err := os.WriteFile(cleanOut, []byte(types.Render(dialogue.Utterances)+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Cleaned dialogue written to: %s\n", cleanOut)
	}
	return nil
}
