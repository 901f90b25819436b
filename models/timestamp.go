package models

import (
	"fmt"
	"time"
)

// Corpus timestamp layouts, tried in order: the organizer's canonical
// format, ISO-8601 variants, then the legacy platform export format.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Mon Jan 02 15:04:05 -0700 2006",
}

// ParseTimestamp parses a record timestamp in any of the corpus layouts.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// DayKey returns the calendar-day grouping key (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey returns the calendar-month grouping key (YYYY-MM).
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
