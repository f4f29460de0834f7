package event

// Tag identifies which upstream feed an event block came from.
type Tag string

const (
	// TagBLS marks events extracted from the BLS release schedule feed.
	TagBLS Tag = "BLS"
	// TagBEA marks events extracted from the BEA release schedule feed.
	TagBEA Tag = "BEA"
)

// Block is one VEVENT held as raw calendar lines, BEGIN:VEVENT through
// END:VEVENT inclusive. Lines stay exactly as the upstream feed served
// them apart from source annotation and timezone normalization.
//
// Synthesized FOMC blocks carry an empty Source; their provenance is
// written into the description text instead.
type Block struct {
	Lines  []string
	Source Tag
}
