package util

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates in requests and config.
const DateLayout = "2006-01-02"

// MDYLayout is the display format used in forecast mappings.
const MDYLayout = "01/02/2006"

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseDateDefault parses a date or returns default if empty/invalid.
func ParseDateDefault(s string, def time.Time) time.Time {
	if s == "" {
		return def
	}
	if t, err := ParseDate(s); err == nil {
		return t
	}
	return def
}

// Day truncates a time to UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b. Both are
// normalized to UTC midnight first, so the result is negative when b < a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// DateSequence returns the contiguous daily sequence [start, end], inclusive,
// each at UTC midnight. Returns nil when end precedes start.
func DateSequence(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}
	n := DaysBetween(start, end) + 1
	seq := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		seq = append(seq, d)
	}
	return seq
}

// FormatMDY formats a date as MM/DD/YYYY.
func FormatMDY(t time.Time) string {
	return t.UTC().Format(MDYLayout)
}
