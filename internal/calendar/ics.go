// Package calendar assembles and writes the merged VCALENDAR document.
package calendar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pfrederiksen/macro-calendar/internal/event"
)

// DefaultOutputPath is where the merged calendar lands unless overridden.
const DefaultOutputPath = "us_macro.ics"

// headerLines open the container. Exactly these lines, in this order,
// precede the first event block.
var headerLines = []string{
	"BEGIN:VCALENDAR",
	"VERSION:2.0",
	"PRODID:-//Macro Calendar//macro-calendar//EN",
	"CALSCALE:GREGORIAN",
	"METHOD:PUBLISH",
	"X-WR-CALNAME:US Macro Major Events",
}

const footerLine = "END:VCALENDAR"

// Build concatenates event groups under the fixed container, in the order
// given. Blocks pass through untouched: no re-sorting, no cross-source
// dedup, no folding or escaping beyond what the lines already carry.
func Build(groups ...[]event.Block) []string {
	lines := make([]string, 0, 64)
	lines = append(lines, headerLines...)
	for _, group := range groups {
		for _, b := range group {
			lines = append(lines, b.Lines...)
		}
	}
	return append(lines, footerLine)
}

// Write emits the document to w, one line per output line, LF-terminated.
func Write(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return fmt.Errorf("writing calendar line: %w", err)
		}
	}
	return nil
}

// WriteFile writes the document to path, replacing whatever was there.
func WriteFile(path string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
