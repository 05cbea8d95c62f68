package models

import (
	"strings"
	"testing"
)

func validListing() *Listing {
	return &Listing{
		Name:        "Bendu Guest House",
		ServiceType: "Hotel",
		County:      "Bomi",
		City:        "Tubmanburg",
		Community:   "Government Camp",
		Available:   true,
	}
}

func TestListingValidate(t *testing.T) {
	if err := validListing().Validate(); err != nil {
		t.Fatalf("valid listing rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Listing)
		wantErr string
	}{
		{"empty name", func(l *Listing) { l.Name = "" }, "name"},
		{"whitespace name", func(l *Listing) { l.Name = "   " }, "name"},
		{"empty serviceType", func(l *Listing) { l.ServiceType = "" }, "serviceType"},
		{"empty county", func(l *Listing) { l.County = "" }, "county"},
		{"empty city", func(l *Listing) { l.City = "" }, "city"},
		{"empty community", func(l *Listing) { l.Community = "" }, "community"},
		{"negative views", func(l *Listing) { l.ViewCount = -1 }, "viewCount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(l)
			err := l.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
