package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dualahq/duala/internal/models"
)

func TestWriteListings(t *testing.T) {
	listings := []*models.Listing{
		{
			ID:          1,
			Name:        "Sinkor Palm Rooms",
			ServiceType: "Room",
			County:      "Montserrado",
			City:        "Monrovia",
			Community:   "Sinkor",
			Description: "Furnished rooms with backup power",
			Tags:        "room, rental",
			Available:   true,
			ViewCount:   12,
			LastUpdated: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Name:        "Mama Kema Diner",
			ServiceType: "Restaurant",
			County:      "Bomi",
			City:        "Tubmanburg",
			Community:   "Center Street",
			Available:   false,
		},
	}

	path := filepath.Join(t.TempDir(), "listings.xlsx")
	if err := WriteListings(path, listings); err != nil {
		t.Fatalf("WriteListings failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Listings" {
		t.Fatalf("sheets = %v, want [Listings]", sheets)
	}

	rows, err := f.GetRows("Listings")
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 listings)", len(rows))
	}

	if rows[0][0] != "ID" || rows[0][1] != "Name" || rows[0][11] != "Last Updated" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "Sinkor Palm Rooms" {
		t.Errorf("row 1 name = %q", rows[1][1])
	}
	if rows[1][2] != "Room" {
		t.Errorf("row 1 service type = %q", rows[1][2])
	}
	if rows[1][9] != "TRUE" {
		t.Errorf("row 1 available = %q", rows[1][9])
	}
	if rows[1][11] != "2024-03-10T08:00:00Z" {
		t.Errorf("row 1 last updated = %q", rows[1][11])
	}
	if rows[2][1] != "Mama Kema Diner" {
		t.Errorf("row 2 name = %q", rows[2][1])
	}
	if rows[2][9] != "FALSE" {
		t.Errorf("row 2 available = %q", rows[2][9])
	}
}

func TestWriteListingsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteListings(path, nil); err != nil {
		t.Fatalf("WriteListings failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows("Listings")
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestWriteListingsBadPath(t *testing.T) {
	err := WriteListings(filepath.Join(t.TempDir(), "missing", "deep", "out.xlsx"), nil)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
