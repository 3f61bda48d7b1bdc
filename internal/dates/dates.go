// Package dates formats trip date ranges for display.
package dates

import "time"

const isoDay = "2006-01-02"

// FormatRange renders "Jul 1 - Jul 10", appending the year to both ends
// when the start date's year differs from the current calendar year.
// The decision looks only at the start date; this is intentional, it
// keeps current-year trips short.
func FormatRange(startISO, endISO string) string {
	return FormatRangeAt(startISO, endISO, time.Now())
}

// FormatRangeAt is FormatRange with an explicit "now" for tests.
func FormatRangeAt(startISO, endISO string, now time.Time) string {
	start, err := time.Parse(isoDay, startISO)
	if err != nil {
		return startISO + " - " + endISO
	}
	end, err := time.Parse(isoDay, endISO)
	if err != nil {
		return startISO + " - " + endISO
	}

	layout := "Jan 2"
	if start.Year() != now.Year() {
		layout = "Jan 2, 2006"
	}
	return start.Format(layout) + " - " + end.Format(layout)
}
