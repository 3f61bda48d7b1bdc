package images

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		wantPart    string // substring expected in the returned URL
	}{
		{"exact known place", "Paris", "1502602898657"},
		{"substring with extra text", "Paris, France", "1502602898657"},
		{"case insensitive", "toKYo downtown", "1536098561742"},
		{"leading and trailing spaces", "  London  ", "1513635269975"},
		{"unknown place falls back", "Atlantis", "1469854523086"},
		{"empty destination falls back", "", "1469854523086"},
		{"first declared key wins", "New York to Paris", "1502602898657"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.destination)
			if !strings.Contains(got, tt.wantPart) {
				t.Errorf("Resolve(%q) = %q, want URL containing %q", tt.destination, got, tt.wantPart)
			}
		})
	}
}

func TestResolveDefault(t *testing.T) {
	if got := Resolve("Atlantis"); got != DefaultURL {
		t.Errorf("Resolve(Atlantis) = %q, want DefaultURL", got)
	}
}
