// Package storage defines the persistence port for the checklist collection.
package storage

import "github.com/idilsaglam/packsmart/internal/model"

// Slot persists the whole checklist collection as one durable value.
// This abstraction allows swapping backends (JSON file, SQLite)
// without changing the store layer.
type Slot interface {
	// Load reads the last saved collection. A missing or unreadable
	// slot loads as an empty collection, never an error the caller
	// must branch on beyond logging.
	Load() ([]model.Checklist, error)

	// Save overwrites the slot with the full collection.
	Save(checklists []model.Checklist) error

	// Close releases any resources held by the slot.
	Close() error
}
