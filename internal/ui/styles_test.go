package ui

import (
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		percent    int
		width      int
		wantFilled int
		wantLabel  string
	}{
		{"empty", 0, 10, 0, "0%"},
		{"half", 50, 10, 5, "50%"},
		{"full", 100, 10, 10, "100%"},
		{"clamped above", 140, 10, 10, "100%"},
		{"clamped below", -5, 10, 0, "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.percent, tt.width)
			if filled := strings.Count(got, "█"); filled != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d", filled, tt.wantFilled)
			}
			if !strings.HasSuffix(got, tt.wantLabel) {
				t.Errorf("ProgressBar = %q, want suffix %q", got, tt.wantLabel)
			}
		})
	}
}
