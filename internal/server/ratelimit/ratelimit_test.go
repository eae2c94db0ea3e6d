package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/process", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/process", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/process", "POST")
	assert.True(t, allowed)
}

func TestLimiter_BlocksPastBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/process", "POST")
	l.Allow("1.2.3.4", "/process", "POST")

	allowed, info := l.Allow("1.2.3.4", "/process", "POST")
	require.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/process", "POST")
	l.Allow("1.2.3.4", "/process", "POST")

	allowed, _ := l.Allow("5.6.7.8", "/process", "POST")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/process", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("6.6.6.6", "/health", "POST")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/process", "POST")
		require.True(t, allowed)
	}
}

func TestConfig_PrefixMatch(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointConfigs = append(cfg.EndpointConfigs,
		EndpointConfig{Path: "/runs/", Method: "DELETE", Limit: 5, Window: time.Minute})

	matched := cfg.match("/runs/abc-123", "DELETE")
	assert.Equal(t, 5, matched.Limit)
}

func TestConfig_DefaultFallback(t *testing.T) {
	cfg := testConfig()
	matched := cfg.match("/runs", "GET")
	assert.Equal(t, cfg.DefaultLimit, matched.Limit)
}
