// Package ident mints identifiers for checklists, categories and items.
package ident

import "github.com/google/uuid"

// NewID returns a random UUID string. Collision-free for all practical
// purposes within and across process lifetimes.
func NewID() string {
	return uuid.NewString()
}
