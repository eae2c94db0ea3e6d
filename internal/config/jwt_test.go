package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "12")

	cfg, err := NewJWTConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, 12, cfg.ExpirationHours)
}

func TestNewJWTConfig_EnvOverridesFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig("file-secret")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_FallbackSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig("file-secret")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "file-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_NoSecretDisablesAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	cfg, err := NewJWTConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestNewJWTConfig_ZeroExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	cfg, err := NewJWTConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "at least 1 hour")
}
