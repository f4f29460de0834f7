package event

import (
	"strings"
	"time"
)

// Timestamp layouts used by the release feeds (iCalendar basic format).
const (
	layoutUTC      = "20060102T150405Z"
	layoutNaive    = "20060102T150405"
	layoutDateOnly = "20060102"
)

// ParseStart attempts to parse the start time carried on a raw DTSTART line.
// Returns time.Time{} (zero value) if the line has no value or parsing fails.
//
// The value after the first ':' is tried against three shapes: an explicit
// UTC instant ("...T...Z"), a naive date-time with no zone designator
// ("...T..."), and a bare date. Naive values are read as UTC; they are only
// used for recency decisions, never written back to the calendar. Property
// parameters such as TZID sit before the ':', so a zone-qualified line
// yields its wall-clock value here.
func ParseStart(line string) time.Time {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return time.Time{}
	}
	value := strings.TrimSpace(line[idx+1:])

	layout := layoutDateOnly
	switch {
	case strings.Contains(value, "T") && strings.HasSuffix(value, "Z"):
		layout = layoutUTC
	case strings.Contains(value, "T"):
		layout = layoutNaive
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatICSTime formats a timestamp as an ICS UTC instant (basic format).
func FormatICSTime(t time.Time) string {
	return t.UTC().Format(layoutUTC)
}

// FormatICSDate formats a date-only ICS value.
func FormatICSDate(t time.Time) string {
	return t.UTC().Format(layoutDateOnly)
}
