package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apognu/gocal"
	"github.com/pfrederiksen/macro-calendar/internal/calendar"
	"github.com/pfrederiksen/macro-calendar/internal/event"
	"github.com/spf13/cobra"
)

// listWindow bounds how far ahead the list command looks.
const listWindow = 12 * 30 * 24 * time.Hour

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "List upcoming events from a generated calendar",
		Long: `Parses a previously generated calendar file and prints one line per
upcoming event. Reads ` + calendar.DefaultOutputPath + ` unless a file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

// runList is the list subcommand logic
func runList(cmd *cobra.Command, args []string) error {
	path := calendar.DefaultOutputPath
	if len(args) == 1 {
		path = args[0]
	}
	return listUpcoming(os.Stdout, path, time.Now().UTC())
}

// listUpcoming parses the calendar at path and prints one line per event
// starting inside the window, earliest first.
func listUpcoming(w io.Writer, path string, now time.Time) error {
	events, err := parseUpcoming(path, now, now.Add(listWindow))
	if err != nil {
		return err
	}

	sortByStart(events)

	if len(events) == 0 {
		fmt.Fprintln(w, "No upcoming events.")
		return nil
	}

	for _, evt := range events {
		fmt.Fprintf(w, "%s  %s\n", formatStart(evt.Start), evt.Summary)
	}
	fmt.Fprintf(w, "\nTotal: %d events\n", len(events))

	return nil
}

// parseUpcoming parses the calendar at path and returns the events falling
// inside [start, end). Events without a DTEND are completed with their
// implied one before parsing.
func parseUpcoming(path string, start, end time.Time) ([]gocal.Event, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	parser := gocal.NewParser(strings.NewReader(strings.Join(withImplicitEnds(lines), "\n")))
	parser.Start, parser.End = &start, &end
	if err := parser.Parse(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return parser.Events, nil
}

// readLines reads the calendar file as raw lines, line endings stripped.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() // nolint:errcheck

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}

// withImplicitEnds returns the lines with a DTEND added to every VEVENT
// block that has none: the following day for a date-only start (an all-day
// event lasts one day), the same instant for a timed one. Decision-day
// events are synthesized without an end, and some feed publishers omit it.
func withImplicitEnds(lines []string) []string {
	out := make([]string, 0, len(lines))
	var block []string
	inEvent := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "BEGIN:VEVENT"):
			inEvent = true
			block = []string{line}
		case strings.HasPrefix(line, "END:VEVENT") && inEvent:
			block = append(block, line)
			out = append(out, completeBlock(block)...)
			inEvent = false
			block = nil
		case inEvent:
			block = append(block, line)
		default:
			out = append(out, line)
		}
	}
	if inEvent {
		out = append(out, block...)
	}

	return out
}

// completeBlock inserts the implied DTEND right after the DTSTART line of a
// block that lacks one. Blocks with a DTEND, without a DTSTART, or with a
// start the end cannot be derived from pass through unchanged.
func completeBlock(block []string) []string {
	for _, line := range block {
		if strings.HasPrefix(line, "DTEND") {
			return block
		}
	}

	for i, line := range block {
		end, ok := impliedEnd(line)
		if !ok {
			continue
		}
		completed := make([]string, 0, len(block)+1)
		completed = append(completed, block[:i+1]...)
		completed = append(completed, end)
		completed = append(completed, block[i+1:]...)
		return completed
	}

	return block
}

// impliedEnd derives the DTEND line a DTSTART implies when the block
// carries no explicit end.
func impliedEnd(line string) (string, bool) {
	if !strings.HasPrefix(line, "DTSTART") {
		return "", false
	}
	idx := strings.Index(line, ":")
	if idx == -1 {
		return "", false
	}

	if strings.HasPrefix(line, "DTSTART;VALUE=DATE:") {
		day, err := time.Parse("20060102", strings.TrimSpace(line[idx+1:]))
		if err != nil {
			return "", false
		}
		return "DTEND;VALUE=DATE:" + event.FormatICSDate(day.AddDate(0, 0, 1)), true
	}

	return "DTEND" + line[len("DTSTART"):], true
}

// sortByStart orders events by start date. Events without a parsed start
// sort last; ties fall back to the summary.
func sortByStart(events []gocal.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareByStart(events[i], events[j])
	})
}

// compareByStart reports whether event i should come before event j
func compareByStart(i, j gocal.Event) bool {
	// If both starts are present, compare them
	if i.Start != nil && j.Start != nil {
		if !i.Start.Equal(*j.Start) {
			return i.Start.Before(*j.Start)
		}
		return strings.ToLower(i.Summary) < strings.ToLower(j.Summary)
	}

	// If only one start is present, put that one first
	if i.Start != nil {
		return true
	}
	if j.Start != nil {
		return false
	}

	return strings.ToLower(i.Summary) < strings.ToLower(j.Summary)
}

// formatStart renders a start for the listing, keeping column width when
// the date is missing
func formatStart(t *time.Time) string {
	if t == nil {
		return "????-??-??"
	}
	return t.Format("2006-01-02")
}
