package dates

import (
	"testing"
	"time"
)

func TestFormatRangeAt(t *testing.T) {
	during2024 := time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)
	during2025 := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end string
		now        time.Time
		want       string
	}{
		{"same year as now omits year", "2024-07-01", "2024-07-10", during2024, "Jul 1 - Jul 10"},
		{"older year includes year", "2024-07-01", "2024-07-10", during2025, "Jul 1, 2024 - Jul 10, 2024"},
		// The year decision looks only at the start date.
		{"range crossing years, start matches now", "2025-12-28", "2026-01-02", during2025, "Dec 28 - Jan 2"},
		{"range crossing years, start differs from now", "2024-12-28", "2025-01-02", during2025, "Dec 28, 2024 - Jan 2, 2025"},
		{"unparsable input passes through", "sometime", "2024-07-10", during2024, "sometime - 2024-07-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRangeAt(tt.start, tt.end, tt.now)
			if got != tt.want {
				t.Errorf("FormatRangeAt(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
