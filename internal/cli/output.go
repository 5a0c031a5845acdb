package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"courtwatch/internal/availability"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output after a check cycle.
type OutputResult struct {
	CheckedAt      time.Time                 `json:"checked_at"`
	Days           int                       `json:"days"`
	AvailableCount int                       `json:"available_count"`
	Summary        *availability.WeekSummary `json:"summary"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	summary := result.Summary

	if len(summary.Available) == 0 {
		fmt.Fprintln(w, "No available slots found.")
	} else {
		fmt.Fprintf(w, "Found %d available slots:\n", len(summary.Available))
		for _, slot := range summary.Available {
			fmt.Fprintf(w, "  %s at %s - %s\n", slot.Date, slot.Time, slot.Court)
		}
	}

	for _, day := range summary.ClosedDays {
		fmt.Fprintf(w, "Closed %s: %s\n", day.Date, day.Message)
	}

	if verbose {
		avail, booked, session, closed := summary.Counts()
		fmt.Fprintf(w, "\nTotals: %d available, %d booked, %d sessions, %d closed days\n",
			avail, booked, session, closed)
	}

	return nil
}
