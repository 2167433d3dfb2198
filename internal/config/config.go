// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backend names accepted in FRIDGE_STORAGE.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds the application configuration. Everything has a default;
// no variable is required.
type Config struct {
	Port             string
	Storage          string
	DBPath           string
	DataDir          string
	LogLevel         string
	PollInterval     time.Duration
	ExpiryWindowDays int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             envOr("FRIDGE_PORT", "8080"),
		Storage:          envOr("FRIDGE_STORAGE", StorageSQLite),
		DBPath:           envOr("FRIDGE_DB_PATH", "fridge.db"),
		DataDir:          envOr("FRIDGE_DATA_DIR", "data"),
		LogLevel:         envOr("FRIDGE_LOG_LEVEL", "info"),
		PollInterval:     time.Hour,
		ExpiryWindowDays: 3,
	}

	switch cfg.Storage {
	case StorageMemory, StorageFile, StorageSQLite:
	default:
		return nil, fmt.Errorf("invalid FRIDGE_STORAGE %q: want memory, file, or sqlite", cfg.Storage)
	}

	if raw := os.Getenv("FRIDGE_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FRIDGE_POLL_INTERVAL %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("FRIDGE_POLL_INTERVAL must be positive, got %q", raw)
		}
		cfg.PollInterval = d
	}

	if raw := os.Getenv("FRIDGE_EXPIRY_WINDOW_DAYS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid FRIDGE_EXPIRY_WINDOW_DAYS %q", raw)
		}
		cfg.ExpiryWindowDays = n
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
