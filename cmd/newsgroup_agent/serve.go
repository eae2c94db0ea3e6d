package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/newsgroup-processor/internal/config"
	"github.com/jonathan/newsgroup-processor/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the discussion processing HTTP API server",
	Long: `Starts the REST API: POST /process runs the pipeline, POST /process/stream streams stage progress over SSE, and /runs exposes persisted run history when DATABASE_URL is configured.

Bearer-token auth is enabled when JWT_SECRET (or --jwt-secret) is set; otherwise the API is open.`,
	RunE: runServeCmd,
}

var (
	serveAddr      string
	serveOffline   bool
	serveProvider  string
	serveAPIKey    string
	serveDBURL     string
	serveJWTSecret string
)

func init() {
	serveCommand.Flags().StringVar(&serveAddr, "addr", ":8080", "Address for the HTTP server to listen on")
	serveCommand.Flags().BoolVar(&serveOffline, "offline", false, "Use canned model responses instead of a live provider")
	serveCommand.Flags().StringVar(&serveProvider, "provider", "", "Model provider: gemini, openai or scripted (default gemini)")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Provider API key (optional, defaults to env var)")
	serveCommand.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCommand.Flags().StringVar(&serveJWTSecret, "jwt-secret", "", "JWT signing secret (optional, defaults to JWT_SECRET env var; unset leaves the API open)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	client, err := buildClient(ctx, serveProvider, serveAPIKey, serveOffline)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	dbURL := serveDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		fmt.Println("DATABASE_URL not set, run-history endpoints are disabled")
	}

	jwtCfg, err := config.NewJWTConfig(serveJWTSecret)
	if err != nil {
		return err
	}
	if jwtCfg == nil {
		fmt.Println("JWT_SECRET not set, API authentication is disabled")
	}

	srv, err := server.New(server.Config{
		Addr:        serveAddr,
		DatabaseURL: dbURL,
		Client:      client,
		JWT:         jwtCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return srv.Start()
}
