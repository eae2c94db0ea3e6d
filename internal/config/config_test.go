package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"provider": "gemini",
		"database_url": "postgres://localhost/newsgroup",
		"output_dir": "out",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "postgres://localhost/newsgroup", cfg.DatabaseURL)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := `provider: openai
api_key: sk-test
server_addr: ":8080"
no_save: true
`

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.True(t, cfg.NoSave)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	content := "provider: [unclosed"

	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "anthropic"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{File: filepath.Join(t.TempDir(), "missing.txt")}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Provider:    "scripted",
		DatabaseURL: "postgres://localhost/newsgroup",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Provider:    "gemini",
		APIKey:      "default-key",
		OutputDir:   "output",
		DatabaseURL: "postgres://localhost/newsgroup",
	}

	partial := Config{
		Provider: "openai",
		File:     "discussion.txt",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "openai", merged.Provider)
	assert.Equal(t, "discussion.txt", merged.File)

	// Default values should fill in empty fields
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "output", merged.OutputDir)
	assert.Equal(t, "postgres://localhost/newsgroup", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Provider: "gemini",
		File:     "discussion.txt",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "discussion.txt", merged.File)
}
