// Package images maps a free-text destination to a cover image URL.
package images

import "strings"

type entry struct {
	key string
	url string
}

// Ordered: the first key contained in the destination wins.
var known = []entry{
	{"Paris", "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?q=80&w=500&auto=format&fit=crop"},
	{"New York", "https://images.unsplash.com/photo-1522083165195-3424ed129620?q=80&w=500&auto=format&fit=crop"},
	{"Tokyo", "https://images.unsplash.com/photo-1536098561742-ca998e48cbcc?q=80&w=500&auto=format&fit=crop"},
	{"London", "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?q=80&w=500&auto=format&fit=crop"},
	{"Sydney", "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?q=80&w=500&auto=format&fit=crop"},
}

// DefaultURL is returned when no known place matches.
const DefaultURL = "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?q=80&w=500&auto=format&fit=crop"

// Resolve returns a representative image URL for a destination.
// Matching is case-insensitive substring containment; total, never fails.
func Resolve(destination string) string {
	d := strings.ToLower(strings.TrimSpace(destination))
	for _, e := range known {
		if strings.Contains(d, strings.ToLower(e.key)) {
			return e.url
		}
	}
	return DefaultURL
}
