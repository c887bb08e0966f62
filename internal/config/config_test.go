package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "PAGE_SIZE", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "2")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.Equal(t, 2*time.Second, cfg.RateLimitWindow)
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("PAGE_SIZE", "lots")

	assert.Equal(t, 10, Load().PageSize)
}
