package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/newsgroup-processor/internal/llm"
)

// buildClient constructs the model client shared by all stage commands.
// Offline mode short-circuits to the scripted client so no credentials are
// needed; otherwise the provider name selects the configuration and the API
// key resolves flag first, then the provider's environment variable.
func buildClient(ctx context.Context, provider, apiKey string, offline bool) (llm.Client, error) {
	if offline || provider == string(llm.ProviderScripted) {
		return llm.NewScriptedClient(llm.DemoResponses()), nil
	}

	var cfg *llm.Config
	var envVar string
	switch provider {
	case "", string(llm.ProviderGemini):
		cfg = llm.DefaultGeminiConfig()
		envVar = "GEMINI_API_KEY"
	case string(llm.ProviderOpenAI):
		cfg = llm.DefaultOpenAIConfig()
		envVar = "OPENAI_API_KEY"
	default:
		return nil, fmt.Errorf("unknown provider %q (expected gemini, openai or scripted)", provider)
	}

	if apiKey == "" {
		apiKey = os.Getenv(envVar)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable or --api-key flag is required (or use --offline)", envVar)
	}

	return llm.NewClient(ctx, cfg, apiKey)
}
