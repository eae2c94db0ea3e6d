// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents settings that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Input
	File string `json:"file,omitempty" yaml:"file,omitempty"` // Path to a discussion text file

	// Model access
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"` // gemini, openai or scripted
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL
	OutputDir   string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	LogsDir     string `json:"logs_dir,omitempty" yaml:"logs_dir,omitempty"`
	NoSave      bool   `json:"no_save,omitempty" yaml:"no_save,omitempty"`
	NoLogs      bool   `json:"no_logs,omitempty" yaml:"no_logs,omitempty"`

	// Server
	ServerAddr string `json:"server_addr,omitempty" yaml:"server_addr,omitempty"`
	JWTSecret  string `json:"jwt_secret,omitempty" yaml:"jwt_secret,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON or YAML file, keyed on the file
// extension. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: this doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Provider {
	case "", "gemini", "openai", "scripted":
	default:
		return fmt.Errorf("config error: unknown provider %q (expected gemini, openai or scripted)", c.Provider)
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.File)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled
// from defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.File == "" {
		result.File = defaults.File
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LogsDir == "" {
		result.LogsDir = defaults.LogsDir
	}
	if result.ServerAddr == "" {
		result.ServerAddr = defaults.ServerAddr
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
