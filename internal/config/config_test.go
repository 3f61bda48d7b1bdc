package config

import (
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PACKSMART_DATA_DIR", "")
		t.Setenv("PACKSMART_STORE", "")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Store != StoreJSON {
			t.Errorf("Expected default store %q, got %q", StoreJSON, cfg.Store)
		}
		if cfg.DataDir == "" {
			t.Error("Expected a default data dir")
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("PACKSMART_DATA_DIR", "/tmp/packsmart-test")
		t.Setenv("PACKSMART_STORE", "sqlite")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DataDir != "/tmp/packsmart-test" {
			t.Errorf("Expected DataDir '/tmp/packsmart-test', got %q", cfg.DataDir)
		}
		if cfg.Store != StoreSQLite {
			t.Errorf("Expected store %q, got %q", StoreSQLite, cfg.Store)
		}
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		t.Setenv("PACKSMART_STORE", "postgres")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for unknown backend, got nil")
		}
	})
}
