package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/newsgroup-processor/internal/llm"
)

func TestBuildClient_Offline(t *testing.T) {
	client, err := buildClient(context.Background(), "", "", true)
	require.NoError(t, err)
	assert.IsType(t, &llm.ScriptedClient{}, client)
}

func TestBuildClient_ScriptedProvider(t *testing.T) {
	client, err := buildClient(context.Background(), "scripted", "", false)
	require.NoError(t, err)
	assert.IsType(t, &llm.ScriptedClient{}, client)
}

func TestBuildClient_UnknownProvider(t *testing.T) {
	_, err := buildClient(context.Background(), "anthropic", "key", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestBuildClient_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := buildClient(context.Background(), "gemini", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("OPENAI_API_KEY", "")
	_, err = buildClient(context.Background(), "openai", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
