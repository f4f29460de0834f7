package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the run summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunResult contains the outcome of one update run
type RunResult struct {
	UpdatedAt   time.Time `json:"updated_at"`
	OutputPath  string    `json:"output_path"`
	BLSEvents   int       `json:"bls_events"`
	BEAEvents   int       `json:"bea_events"`
	FOMCEvents  int       `json:"fomc_events"`
	TotalEvents int       `json:"total_events"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as indented JSON
func writeJSON(w io.Writer, result *RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, result *RunResult, verbose bool) error {
	fmt.Fprintf(w, "Wrote %s: %d events (BLS %d, BEA %d, FOMC %d)\n",
		result.OutputPath, result.TotalEvents,
		result.BLSEvents, result.BEAEvents, result.FOMCEvents)
	if verbose {
		fmt.Fprintf(w, "Updated at: %s\n", result.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}
