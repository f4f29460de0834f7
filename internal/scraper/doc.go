// Package scraper extracts FOMC meeting dates from the Federal Reserve's
// public calendar page.
//
// The page is flattened to plain text, sliced into per-year sections by
// their "<year> FOMC Meetings" headers, and searched for month/day-range
// patterns like "January 27-28*". The second day of each range is the
// policy decision day; every unique future decision day becomes one
// synthesized all-day calendar event.
package scraper
