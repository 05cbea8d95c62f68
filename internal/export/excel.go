// Package export writes listings to Excel workbooks for offline sharing.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dualahq/duala/internal/models"
)

const sheetName = "Listings"

var listingHeaders = []string{
	"ID",
	"Name",
	"Service Type",
	"County",
	"City",
	"Community",
	"Description",
	"Tags",
	"Features",
	"Available",
	"Views",
	"Last Updated",
}

// WriteListings writes the listings to an Excel workbook at path, one row per
// listing with a header row. Existing files are overwritten.
func WriteListings(path string, listings []*models.Listing) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range listingHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}

	for i, l := range listings {
		row := i + 2
		values := []interface{}{
			l.ID,
			l.Name,
			l.ServiceType,
			l.County,
			l.City,
			l.Community,
			l.Description,
			l.Tags,
			l.Features,
			l.Available,
			l.ViewCount,
			formatTime(l.LastUpdated),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to build cell for row %d: %w", row, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
