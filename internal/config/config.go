// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store backend names accepted in PACKSMART_STORE.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds the configuration for the application.
type Config struct {
	DataDir string // where the durable slot lives
	Store   string // "json" (default) or "sqlite"
}

// NewFromEnv builds a Config from environment variables.
//
//	PACKSMART_DATA_DIR  data directory (default ~/.packsmart)
//	PACKSMART_STORE     json | sqlite (default json)
func NewFromEnv() (*Config, error) {
	dir := os.Getenv("PACKSMART_DATA_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("home: %w", err)
		}
		dir = filepath.Join(home, ".packsmart")
	}

	store := os.Getenv("PACKSMART_STORE")
	if store == "" {
		store = StoreJSON
	}
	if store != StoreJSON && store != StoreSQLite {
		return nil, fmt.Errorf("PACKSMART_STORE: unknown backend %q", store)
	}

	return &Config{DataDir: dir, Store: store}, nil
}
