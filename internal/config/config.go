package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime settings read from the environment.
// godotenv is loaded by main before this is built.
type Config struct {
	DatabaseURL string
	Port        string

	// PageSize applies to every list endpoint.
	PageSize int

	// RateLimitRequests per RateLimitWindow, keyed by client IP.
	// Zero disables throttling.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() Config {
	return Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Port:              getEnv("PORT", "8080"),
		PageSize:          getEnvInt("PAGE_SIZE", 10),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
