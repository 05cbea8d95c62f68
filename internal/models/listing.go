// Package models defines core data structures for listings, search options, and result pages.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Listing represents a service listing registered by a provider.
// Tags and Features are comma-delimited free text as entered by the provider.
// JSON keys are camelCase to match the wire format existing clients consume.
type Listing struct {
	ID                  int64     `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	ServiceType         string    `json:"serviceType" db:"service_type"`
	County              string    `json:"county" db:"county"`
	City                string    `json:"city" db:"city"`
	Community           string    `json:"community" db:"community"`
	Description         string    `json:"description" db:"description"`
	DetailedDescription string    `json:"detailedDescription,omitempty" db:"detailed_description"`
	Tags                string    `json:"tags,omitempty" db:"tags"`
	Features            string    `json:"features,omitempty" db:"features"`
	Available           bool      `json:"available" db:"available"`
	ViewCount           int64     `json:"viewCount" db:"view_count"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	LastUpdated         time.Time `json:"lastUpdated" db:"last_updated"`
}

// Validate checks the fields every listing must carry. The search engine
// assumes these are non-empty on eligible records, so they are enforced at
// the write boundary instead.
func (l *Listing) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", l.Name},
		{"serviceType", l.ServiceType},
		{"county", l.County},
		{"city", l.City},
		{"community", l.Community},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if l.ViewCount < 0 {
		return fmt.Errorf("viewCount cannot be negative")
	}
	return nil
}
