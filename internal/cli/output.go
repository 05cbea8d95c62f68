// Package cli provides CLI output helpers for Duala.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dualahq/duala/internal/models"
	"github.com/dualahq/duala/pkg/utils"
)

// OutputFormat is the format for listing output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat maps a format flag value to an OutputFormat. Empty means text.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", string(OutputText):
		return OutputText, nil
	case string(OutputJSON):
		return OutputJSON, nil
	default:
		return OutputText, fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

// WriteListings writes listings to w in the given format. Use OutputJSON for
// parseable output consumable by other apps.
func WriteListings(w io.Writer, listings []*models.Listing, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}
	fmt.Fprintf(w, "\nFound %d listings\n\n", len(listings))
	for _, l := range listings {
		writeOneListing(w, l)
	}
	return nil
}

// WritePage writes one page of advanced search results, with the pagination
// footer in text mode.
func WritePage(w io.Writer, page *models.SearchPage, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}
	fmt.Fprintf(w, "\nFound %d listings (page %d of %d)\n\n", page.Total, page.Page, page.TotalPages)
	for _, l := range page.Results {
		writeOneListing(w, l)
	}
	return nil
}

func writeOneListing(w io.Writer, l *models.Listing) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "[%d] %s (%s)\n", l.ID, l.Name, l.ServiceType)
	fmt.Fprintf(w, "Location: %s\n", utils.JoinNonEmpty(", ", l.Community, l.City, l.County))
	if l.Description != "" {
		fmt.Fprintf(w, "%s\n", utils.Truncate(l.Description, 200))
	}
	status := "available"
	if !l.Available {
		status = "unavailable"
	}
	fmt.Fprintf(w, "Status: %s | Views: %d\n\n", status, l.ViewCount)
}
