// Package event defines the in-memory representation of calendar events
// flowing through an update run.
//
// An event is a block of raw iCalendar lines preserved byte-for-byte from
// its upstream feed, plus the provenance tag of the feed that produced it.
// Blocks are created by feed extraction or FOMC scraping, annotated and
// timezone-normalized in place, and consumed by the calendar merger.
package event
