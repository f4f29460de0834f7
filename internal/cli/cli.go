package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/macro-calendar/internal/calendar"
	"github.com/pfrederiksen/macro-calendar/internal/event"
	"github.com/pfrederiksen/macro-calendar/internal/feed"
	"github.com/pfrederiksen/macro-calendar/internal/fetch"
	"github.com/pfrederiksen/macro-calendar/internal/logger"
	"github.com/pfrederiksen/macro-calendar/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagOutput  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macro-calendar",
		Short: "Build a merged calendar of major US macro events",
		Long: `A batch tool that builds one merged iCalendar file of major upcoming
US macroeconomic events: BLS and BEA release schedules plus FOMC decision
days scraped from the Federal Reserve calendar page.`,
		RunE: runUpdate,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOutput, "output", calendar.DefaultOutputPath, "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd())

	return cmd
}

// updater wires the pipeline together. The URLs and output path are fields
// so tests can point a run at local servers and a scratch directory.
type updater struct {
	fetcher *fetch.Client
	blsURL  string
	beaURL  string
	fomcURL string
	scraper *scraper.Scraper
	output  string
}

func newUpdater() *updater {
	return &updater{
		fetcher: fetch.New(),
		blsURL:  feed.BLSURL,
		beaURL:  feed.BEAURL,
		fomcURL: scraper.FOMCURL,
		scraper: scraper.New(),
		output:  calendar.DefaultOutputPath,
	}
}

// run executes one full update: fetch, extract, normalize, scrape, merge,
// write. now is the single reference instant for every recency decision in
// the run.
func (u *updater) run(now time.Time) (*RunResult, error) {
	blsEvents, err := u.feedEvents(u.blsURL, event.TagBLS, now)
	if err != nil {
		return nil, err
	}

	beaEvents, err := u.feedEvents(u.beaURL, event.TagBEA, now)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := u.fetcher.Text(u.fomcURL)
	if err != nil {
		return nil, fmt.Errorf("fetching FOMC calendar page: %w", err)
	}
	logger.RecordTiming("fetch.fomc", time.Since(start))

	fomcEvents, err := u.scraper.Scrape(page, now)
	if err != nil {
		return nil, fmt.Errorf("scraping FOMC calendar: %w", err)
	}
	logger.AddCounter("events.fomc", int64(len(fomcEvents)))
	logger.Debug("Scraped FOMC meetings", logger.Fields{"events": len(fomcEvents)})

	lines := calendar.Build(blsEvents, beaEvents, fomcEvents)
	if err := calendar.WriteFile(u.output, lines); err != nil {
		return nil, err
	}

	total := len(blsEvents) + len(beaEvents) + len(fomcEvents)
	logger.SetGauge("events.total", float64(total))
	logger.Info("Wrote calendar", logger.Fields{
		"path":   u.output,
		"events": total,
	})

	return &RunResult{
		UpdatedAt:   now,
		OutputPath:  u.output,
		BLSEvents:   len(blsEvents),
		BEAEvents:   len(beaEvents),
		FOMCEvents:  len(fomcEvents),
		TotalEvents: total,
	}, nil
}

// feedEvents fetches one ICS feed and returns its surviving blocks, with
// Eastern-zoned timestamps rewritten to UTC.
func (u *updater) feedEvents(url string, source event.Tag, now time.Time) ([]event.Block, error) {
	name := strings.ToLower(string(source))

	start := time.Now()
	lines, err := u.fetcher.Lines(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s feed: %w", source, err)
	}
	logger.RecordTiming("fetch."+name, time.Since(start))

	events := feed.Extract(lines, source, now)
	for i := range events {
		feed.NormalizeEastern(&events[i])
	}

	logger.AddCounter("events."+name, int64(len(events)))
	logger.Debug("Extracted feed events", logger.Fields{
		"source": string(source),
		"events": len(events),
	})

	return events, nil
}

// runUpdate is the root command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	u := newUpdater()
	u.output = flagOutput

	now := time.Now().UTC()
	result, err := u.run(now)
	if err != nil {
		return err
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing run summary: %w", err)
	}

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
