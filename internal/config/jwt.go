package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds settings for bearer token validation on the HTTP API.
// Auth is optional: a nil JWTConfig means the server runs open.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds the JWT configuration from the environment, falling
// back to the config-file secret. It reads JWT_SECRET and
// JWT_EXPIRATION_HOURS (default: 24). When no secret is configured anywhere
// it returns (nil, nil) and the API runs without auth.
func NewJWTConfig(fallbackSecret string) (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = fallbackSecret
	}
	if secret == "" {
		return nil, nil
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}
