package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Candidate is a prospective decision date produced by a Matcher, before
// calendar validation and deduplication.
type Candidate struct {
	Year  int
	Month time.Month
	Day   int
}

// Matcher locates meeting candidates in the flattened page text. An
// implementation owns the section bounding and pattern matching for one
// layout of the page.
type Matcher interface {
	Candidates(text string, years []int) []Candidate
}

// monthNumbers maps the full month names the calendar page spells out.
var monthNumbers = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// meetingPattern matches ranges like "January 27-28*": a month name, a
// short run of filler between it and the numbers, then start-end days
// with an optional footnote marker.
var meetingPattern = regexp.MustCompile(
	`(January|February|March|April|May|June|July|August|September|October|November|December)` +
		`[^\d]{0,20}` +
		`(\d{1,2})-(\d{1,2})\*?`,
)

// PatternMatcher is the standard Matcher: per-year section bounding via
// the "<year> FOMC Meetings" headers, then the month/day-range pattern
// within each section.
type PatternMatcher struct{}

// NewPatternMatcher creates the standard matcher.
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{}
}

// Candidates scans each year's section in order. The decision date is the
// second day of every matched range; the first day is never used.
func (m *PatternMatcher) Candidates(text string, years []int) []Candidate {
	var candidates []Candidate

	for _, year := range years {
		section, ok := sectionFor(text, year, years)
		if !ok {
			continue
		}

		for _, match := range meetingPattern.FindAllStringSubmatch(section, -1) {
			day, err := strconv.Atoi(match[3])
			if err != nil {
				continue
			}
			candidates = append(candidates, Candidate{
				Year:  year,
				Month: monthNumbers[match[1]],
				Day:   day,
			})
		}
	}

	return candidates
}

// sectionFor bounds one year's slice of the page text: from the first
// occurrence of its header to the earliest later-year header after it,
// or the end of the text. Absent headers skip the year entirely.
func sectionFor(text string, year int, years []int) (string, bool) {
	header := fmt.Sprintf("%d FOMC Meetings", year)
	idx := strings.Index(text, header)
	if idx == -1 {
		return "", false
	}

	end := len(text)
	for _, other := range years {
		if other <= year {
			continue
		}
		otherHeader := fmt.Sprintf("%d FOMC Meetings", other)
		if pos := strings.Index(text, otherHeader); pos > idx && pos < end {
			end = pos
		}
	}

	return text[idx:end], true
}
