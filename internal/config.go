package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the demo server configuration, sourced from the
// environment with an optional .env file for development.
type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Store selects where articles come from: "memory" (seeded demo
	// data) or "postgres".
	Store       string
	DatabaseUrl string

	// PerPage is the list page size.
	PerPage int

	// Metrics endpoint authentication. If both are empty, /metrics is
	// unprotected (fine for the demo, not recommended elsewhere).
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		Store:       getEnv("STORE", "memory"),
		DatabaseUrl: getEnv("DATABASE_URL", ""),

		PerPage: getEnvInt("PER_PAGE", 10),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	if cfg.Store == "postgres" {
		if cfg.DatabaseUrl == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE is 'postgres'")
		}
	} else if cfg.Store != "memory" {
		return nil, fmt.Errorf("STORE must be either 'memory' or 'postgres', got: %s", cfg.Store)
	}

	if cfg.PerPage < 1 {
		return nil, fmt.Errorf("PER_PAGE must be at least 1, got: %d", cfg.PerPage)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
