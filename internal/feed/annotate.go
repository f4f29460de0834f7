package feed

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/macro-calendar/internal/event"
)

// Annotate returns the block with a source marker added exactly once.
//
// When the block has a DESCRIPTION property, a continuation line (leading
// whitespace, so calendar clients fold it into the description) is placed
// directly after the first one. Blocks without a description get a
// COMMENT property as their second line instead, right after BEGIN:VEVENT.
func Annotate(lines []string, source event.Tag) []string {
	out := make([]string, 0, len(lines)+1)
	inserted := false

	for _, line := range lines {
		out = append(out, line)
		if !inserted && strings.HasPrefix(line, "DESCRIPTION:") {
			out = append(out, fmt.Sprintf("  (Source: %s)", source))
			inserted = true
		}
	}

	if !inserted {
		comment := fmt.Sprintf("COMMENT:Source=%s", source)
		if len(out) == 0 {
			return []string{comment}
		}
		annotated := make([]string, 0, len(out)+1)
		annotated = append(annotated, out[0])
		annotated = append(annotated, comment)
		annotated = append(annotated, out[1:]...)
		return annotated
	}
	return out
}
