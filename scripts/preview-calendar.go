package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/macro-calendar/internal/calendar"
	"github.com/pfrederiksen/macro-calendar/internal/event"
	"github.com/pfrederiksen/macro-calendar/internal/feed"
	"github.com/pfrederiksen/macro-calendar/internal/scraper"
)

func main() {
	now := time.Now().UTC()

	jobs := now.AddDate(0, 1, 0)
	cpi := now.AddDate(0, 1, 14)
	gdp := now.AddDate(0, 2, 0)

	blsLines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:sample-jobs@bls.gov",
		"DTSTART:" + event.FormatICSTime(jobs),
		"SUMMARY:Employment Situation",
		"DESCRIPTION:Monthly jobs report",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:sample-cpi@bls.gov",
		"DTSTART;TZID=America/New_York:" + cpi.Format("20060102T150405"),
		"SUMMARY:Consumer Price Index",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:sample-housing@bls.gov",
		"DTSTART:" + event.FormatICSTime(gdp),
		"SUMMARY:Housing Starts",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	beaLines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:sample-gdp@bea.gov",
		"DTSTART:" + event.FormatICSTime(gdp),
		"SUMMARY:Gross Domestic Product (Advance Estimate)",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	blsEvents := feed.Extract(blsLines, event.TagBLS, now)
	for i := range blsEvents {
		feed.NormalizeEastern(&blsEvents[i])
	}
	beaEvents := feed.Extract(beaLines, event.TagBEA, now)

	// A meeting page covering the last configured scrape year.
	year := scraper.DefaultYears[len(scraper.DefaultYears)-1]
	page := fmt.Sprintf(`<html><body>
<h4>%d FOMC Meetings</h4>
<div>January</div><div>27-28</div>
<div>December</div><div>7-8*</div>
</body></html>`, year)

	fomcEvents, err := scraper.New().Scrape(page, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scraping sample page: %v\n", err)
		os.Exit(1)
	}

	lines := calendar.Build(blsEvents, beaEvents, fomcEvents)

	filename := "us_macro_sample.ics"
	if err := calendar.WriteFile(filename, lines); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated sample calendar: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(strings.Join(lines, "\n"))
}
