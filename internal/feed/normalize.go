package feed

import (
	"strings"
	"time"
	// Embedded zone rules so Eastern conversion works without a host
	// zoneinfo database.
	_ "time/tzdata"

	"github.com/pfrederiksen/macro-calendar/internal/event"
)

// easternTZID is the one named zone these feeds are known to emit.
const easternTZID = "America/New_York"

var eastern *time.Location

func init() {
	loc, err := time.LoadLocation(easternTZID)
	if err != nil {
		// Leave eastern nil; normalization then passes lines through
		// untouched rather than guessing an offset.
		return
	}
	eastern = loc
}

// NormalizeEastern rewrites, in place, any DTSTART/DTEND line qualified
// with the US Eastern TZID into an absolute UTC instant, applying the
// standard or daylight offset in force on that date.
//
// Lines that are already UTC, date-only, or carry any other zone are left
// alone, as is any qualified line whose value fails to parse. Running it
// again over its own output changes nothing.
func NormalizeEastern(b *event.Block) {
	for i, line := range b.Lines {
		b.Lines[i] = normalizeLine(line)
	}
}

func normalizeLine(line string) string {
	for _, prop := range []string{"DTSTART", "DTEND"} {
		prefix := prop + ";TZID=" + easternTZID + ":"
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		if eastern == nil {
			return line
		}
		value := strings.TrimSpace(line[len(prefix):])
		t, err := time.ParseInLocation("20060102T150405", value, eastern)
		if err != nil {
			return line
		}
		return prop + ":" + event.FormatICSTime(t)
	}
	return line
}
