package scraper

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/macro-calendar/internal/event"
)

var scrapeNow = time.Date(2025, time.August, 22, 10, 15, 0, 0, time.UTC)

func allLines(blocks []event.Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(strings.Join(blk.Lines, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func TestScrape_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/fomc_calendar.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	events, err := New().Scrape(string(data), scrapeNow)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	// Three 2025 meetings remain after late August, plus eight each in
	// 2026 and 2027.
	if len(events) != 19 {
		t.Fatalf("Scrape() returned %d events, want 19\n%s", len(events), allLines(events))
	}

	joined := allLines(events)
	for _, want := range []string{
		"UID:FOMC-20250917@us-macro",
		"UID:FOMC-20260128@us-macro",
		"UID:FOMC-20271208@us-macro",
		"DTSTAMP:20250822T101500Z",
		"DTSTART;VALUE=DATE:20251210",
		"SUMMARY:FOMC Meeting – Rate Decision",
		"(Source: Federal Reserve FOMC calendar, 2026)",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Scrape() output missing %q", want)
		}
	}

	for _, absent := range []string{
		"FOMC-2024",      // unscanned year
		"FOMC-20250729",  // past meeting
		"FOMC-20250916@", // first day of a range, never the decision day
		"FOMC-20260127@",
	} {
		if strings.Contains(joined, absent) {
			t.Errorf("Scrape() output should not contain %q", absent)
		}
	}

	first := strings.Join(events[0].Lines, "\n")
	if !strings.Contains(first, "UID:FOMC-20250917@us-macro") {
		t.Errorf("first event should be the September 2025 decision, got:\n%s", first)
	}
	last := strings.Join(events[len(events)-1].Lines, "\n")
	if !strings.Contains(last, "UID:FOMC-20271208@us-macro") {
		t.Errorf("last event should be the December 2027 decision, got:\n%s", last)
	}
}

func TestScrape_SecondDayOnly(t *testing.T) {
	page := `<html><body>
<h4>2026 FOMC Meetings</h4>
<div>January</div><div>27-28*</div>
</body></html>`

	events, err := New().Scrape(page, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Scrape() returned %d events, want 1", len(events))
	}

	joined := allLines(events)
	if !strings.Contains(joined, "DTSTART;VALUE=DATE:20260128") {
		t.Errorf("want the decision dated on the range's second day, got:\n%s", joined)
	}
	if strings.Contains(joined, "20260127") {
		t.Errorf("first day of the range must never be used, got:\n%s", joined)
	}
}

func TestScrape_DedupesDates(t *testing.T) {
	page := `<html><body>
<h4>2026 FOMC Meetings</h4>
<p>January 27-28*</p>
<p>Rescheduling note: the January 27-28 session is unchanged.</p>
</body></html>`

	events, err := New().Scrape(page, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Scrape() returned %d events for a repeated date, want 1\n%s",
			len(events), allLines(events))
	}
}

func TestScrape_SkipsInvalidDates(t *testing.T) {
	page := `<html><body>
<h4>2027 FOMC Meetings</h4>
<p>February 29-30</p>
</body></html>`

	events, err := New().Scrape(page, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Scrape() returned %d events for a nonexistent date, want 0\n%s",
			len(events), allLines(events))
	}
}

func TestScrape_SkipsPastDates(t *testing.T) {
	page := `<html><body>
<h4>2025 FOMC Meetings</h4>
<p>January 28-29</p>
</body></html>`

	events, err := New().Scrape(page, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Scrape() returned %d past events, want 0", len(events))
	}
}

func TestScrape_DecisionDayAtRunInstantKept(t *testing.T) {
	page := `<html><body>
<h4>2026 FOMC Meetings</h4>
<p>January 27-28</p>
</body></html>`

	// Midnight UTC on the decision day itself.
	events, err := New().Scrape(page, time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Scrape() returned %d events, want the same-instant decision kept", len(events))
	}
}

func TestScrape_MissingYearSkipped(t *testing.T) {
	page := `<html><body>
<h4>2026 FOMC Meetings</h4>
<p>January 27-28</p>
<p>No further calendars published yet.</p>
</body></html>`

	events, err := New().Scrape(page, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 1 {
		t.Errorf("Scrape() returned %d events, want 1 (absent years skip silently)", len(events))
	}
}

type fixedMatcher struct {
	candidates []Candidate
}

func (m *fixedMatcher) Candidates(text string, years []int) []Candidate {
	return m.candidates
}

func TestScrape_ValidatesAndDedupesCandidates(t *testing.T) {
	s := &Scraper{
		years: DefaultYears,
		matcher: &fixedMatcher{candidates: []Candidate{
			{Year: 2026, Month: time.January, Day: 28},
			{Year: 2026, Month: time.January, Day: 28},  // duplicate
			{Year: 2026, Month: time.February, Day: 30}, // rolls over, not a real date
			{Year: 2025, Month: time.March, Day: 19},    // past
		}},
	}

	events, err := s.Scrape("<html></html>", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Scrape() returned %d events, want 1\n%s", len(events), allLines(events))
	}
	if !strings.Contains(allLines(events), "UID:FOMC-20260128@us-macro") {
		t.Errorf("unexpected surviving event:\n%s", allLines(events))
	}
}

func TestSynthesizedBlockShape(t *testing.T) {
	page := `<html><body>
<h4>2026 FOMC Meetings</h4>
<p>January 27-28*</p>
</body></html>`

	now := time.Date(2026, time.January, 1, 9, 30, 0, 0, time.UTC)
	events, err := New().Scrape(page, now)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("Scrape() returned %d events, want 1", len(events))
	}

	want := []string{
		"BEGIN:VEVENT",
		"UID:FOMC-20260128@us-macro",
		"DTSTAMP:20260101T093000Z",
		"DTSTART;VALUE=DATE:20260128",
		"SUMMARY:FOMC Meeting – Rate Decision",
		"DESCRIPTION:Federal Open Market Committee meeting (second day, policy statement expected). (Source: Federal Reserve FOMC calendar, 2026)",
		"END:VEVENT",
	}
	got := events[0].Lines
	if len(got) != len(want) {
		t.Fatalf("synthesized block has %d lines, want %d:\n%s", len(got), len(want),
			strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	if events[0].Source != "" {
		t.Errorf("synthesized events carry no source tag, got %q", events[0].Source)
	}
}

func TestFlatten(t *testing.T) {
	page := `<html><body>
<h4>2026 FOMC Meetings</h4>
<div class="row"><strong>January</strong><span>27-28*</span></div>
<p>Statement &amp; minutes</p>
</body></html>`

	doc := mustParse(t, page)
	got := flatten(doc)

	want := "2026 FOMC Meetings\nJanuary\n27-28*\nStatement & minutes"
	if got != want {
		t.Errorf("flatten() = %q, want %q", got, want)
	}
}
