// Package jsonstore is the default Slot backend. Single file,
// human-readable, portable. No locking; fine for a local
// single-user CLI.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/idilsaglam/packsmart/internal/model"
	"github.com/idilsaglam/packsmart/internal/storage"
)

const dataFileName = "checklists.json"

var _ storage.Slot = (*Store)(nil)

// Store reads and writes the collection as one indented JSON file.
type Store struct {
	path string
}

// New returns a Store rooted in dir, creating dir if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{path: filepath.Join(dir, dataFileName)}, nil
}

func (s *Store) Load() ([]model.Checklist, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Checklist{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var checklists []model.Checklist
	if err := json.Unmarshal(b, &checklists); err != nil {
		// Corrupt state means "no trips yet", not a fault.
		slog.Warn("discarding unparsable checklist data", "path", s.path, "err", err)
		return []model.Checklist{}, nil
	}
	return checklists, nil
}

func (s *Store) Save(checklists []model.Checklist) error {
	b, err := json.MarshalIndent(checklists, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
