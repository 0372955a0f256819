// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL  = "http://localhost:8000"
	DefaultTimeout = 10 * time.Second
)

// Config holds everything the client needs to talk to the warehouse
// server. Nothing is persisted locally.
type Config struct {
	// APIURL is the base URL of the warehouse API.
	APIURL string
	// Timeout applies to every HTTP request.
	Timeout time.Duration
	// LogFile, when set, receives structured logs. Empty disables
	// logging entirely so the TUI owns the terminal.
	LogFile string
}

// Load reads a .env file if present, then the process environment.
// Environment variables win over .env values already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIURL:  envOr("SKLAD_API_URL", DefaultAPIURL),
		Timeout: envDuration("SKLAD_TIMEOUT", DefaultTimeout),
		LogFile: os.Getenv("SKLAD_LOG"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration accepts either a Go duration ("30s") or a bare number of
// seconds ("30").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}
