package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/macro-calendar/internal/event"
)

// FOMCURL is the Federal Reserve's meeting calendar page.
const FOMCURL = "https://www.federalreserve.gov/monetarypolicy/fomccalendars.htm"

// DefaultYears are the meeting years scanned on the calendar page; the
// page lists the current and the next two years.
var DefaultYears = []int{2025, 2026, 2027}

// Scraper turns the FOMC calendar page into synthesized decision-day
// events.
type Scraper struct {
	years   []int
	matcher Matcher
}

// New creates a Scraper covering DefaultYears with the standard
// pattern matcher.
func New() *Scraper {
	return &Scraper{
		years:   DefaultYears,
		matcher: NewPatternMatcher(),
	}
}

// Scrape extracts meeting decision dates from the page HTML and returns
// one synthesized all-day event block per unique future date, in scan
// order (ascending year, document order within a year).
//
// Candidates that do not form a real calendar date, fall before now, or
// repeat a date already produced this run are dropped silently.
func (s *Scraper) Scrape(page string, now time.Time) ([]event.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar page: %w", err)
	}

	text := flatten(doc)

	var events []event.Block
	seen := make(map[string]bool)

	for _, c := range s.matcher.Candidates(text, s.years) {
		date := time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.UTC)
		if date.Year() != c.Year || date.Month() != c.Month || date.Day() != c.Day {
			// The matched day does not exist in that month; time.Date
			// rolled it over into a neighboring one.
			continue
		}
		if date.Before(now) {
			continue
		}

		key := event.FormatICSDate(date)
		if seen[key] {
			continue
		}
		seen[key] = true

		events = append(events, synthesize(date, c.Year, now))
	}

	return events, nil
}

// flatten renders the document as plain text, one text node per line,
// so section headers and meeting ranges sit on separate lines that the
// matcher can bound and scan.
func flatten(doc *goquery.Document) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(parts, "\n")
}

// synthesize builds the all-day decision event for one meeting date.
func synthesize(date time.Time, year int, now time.Time) event.Block {
	uid := fmt.Sprintf("FOMC-%s@us-macro", event.FormatICSDate(date))
	return event.Block{
		Lines: []string{
			"BEGIN:VEVENT",
			"UID:" + uid,
			"DTSTAMP:" + event.FormatICSTime(now),
			"DTSTART;VALUE=DATE:" + event.FormatICSDate(date),
			"SUMMARY:FOMC Meeting – Rate Decision",
			fmt.Sprintf("DESCRIPTION:Federal Open Market Committee meeting "+
				"(second day, policy statement expected). "+
				"(Source: Federal Reserve FOMC calendar, %d)", year),
			"END:VEVENT",
		},
	}
}
