package feed

import (
	"strings"
	"time"

	"github.com/pfrederiksen/macro-calendar/internal/event"
)

// Release schedule feeds for the two statistical agencies.
const (
	// BLSURL is the Bureau of Labor Statistics release schedule feed.
	BLSURL = "https://www.bls.gov/schedule/news_release/bls.ics"
	// BEAURL is the Bureau of Economic Analysis release schedule feed.
	// If this ever changes, update here.
	BEAURL = "https://www.bea.gov/news/schedule/ics/online-calendar-subscription.ics"
)

// MajorKeywords are the release names worth keeping from the BLS and BEA
// schedules. Matching is a case-sensitive substring test against every
// line of a candidate block.
var MajorKeywords = []string{
	"Consumer Price Index",        // CPI
	"Employment Situation",        // Nonfarm Payrolls
	"Producer Price Index",        // PPI
	"Gross Domestic Product",      // GDP
	"Personal Income and Outlays", // PCE
}

// Extract walks feed lines and returns the VEVENT blocks worth keeping:
// those mentioning a major release whose start time has not passed as of
// now. Kept blocks are annotated with their source tag.
//
// A block with no parseable start time is kept on relevance alone. Lines
// outside BEGIN:VEVENT/END:VEVENT are dropped, as is an unterminated
// trailing block.
func Extract(lines []string, source event.Tag, now time.Time) []event.Block {
	var events []event.Block
	var current []string
	inEvent := false
	include := false
	var start time.Time

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "BEGIN:VEVENT"):
			inEvent = true
			current = []string{line}
			include = false
			start = time.Time{}
		case strings.HasPrefix(line, "END:VEVENT"):
			current = append(current, line)
			if include && (start.IsZero() || !start.Before(now)) {
				events = append(events, event.Block{
					Lines:  Annotate(current, source),
					Source: source,
				})
			}
			inEvent = false
			current = nil
			include = false
			start = time.Time{}
		case inEvent:
			if strings.HasPrefix(line, "DTSTART") {
				if t := event.ParseStart(line); !t.IsZero() {
					start = t
				}
			}
			if relevant(line) {
				include = true
			}
			current = append(current, line)
		}
	}

	return events
}

func relevant(line string) bool {
	for _, keyword := range MajorKeywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}
