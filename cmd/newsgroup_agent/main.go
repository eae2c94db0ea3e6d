// Package main provides the entry point for the newsgroup discussion processor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsgroup_agent",
	Short: "NewsGroup Discussion Processor",
	Long:  "Transforms raw newsgroup discussion transcripts into clean movie-script dialogue through a gated pipeline: validation, spam filtering, transformation, cleaning and quality scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
