// Package sqlitestore is a SQLite-backed Slot. The persisted layout is
// still one slot: a single-row table holding the serialized collection,
// matching the JSON backend byte for byte.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/idilsaglam/packsmart/internal/model"
	"github.com/idilsaglam/packsmart/internal/storage"
)

const dataFileName = "packsmart.db"

const schema = `CREATE TABLE IF NOT EXISTS slots (
	name TEXT PRIMARY KEY,
	data TEXT NOT NULL
)`

const slotName = "checklists"

var _ storage.Slot = (*Store)(nil)

// Store keeps the collection in a one-row SQLite table.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database under dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, dataFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Load() ([]model.Checklist, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM slots WHERE name = ?`, slotName).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Checklist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query slot: %w", err)
	}
	var checklists []model.Checklist
	if err := json.Unmarshal([]byte(data), &checklists); err != nil {
		slog.Warn("discarding unparsable checklist data", "slot", slotName, "err", err)
		return []model.Checklist{}, nil
	}
	return checklists, nil
}

func (s *Store) Save(checklists []model.Checklist) error {
	b, err := json.MarshalIndent(checklists, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO slots (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		slotName, string(b),
	)
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
