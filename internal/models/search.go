package models

import "strings"

// Sort selects the ordering of advanced search results.
type Sort string

const (
	// SortRelevance orders by score descending (default).
	SortRelevance Sort = "relevance"
	// SortNewest orders by lastUpdated descending, then id descending.
	SortNewest Sort = "newest"
	// SortPopular orders by viewCount descending.
	SortPopular Sort = "popular"
)

// ParseSort maps a raw sort parameter to a Sort, defaulting to relevance for
// empty or unknown values. Bad input must not block a search, so there is no
// error return.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest:
		return SortNewest
	case SortPopular:
		return SortPopular
	default:
		return SortRelevance
	}
}

// Pagination bounds for advanced search.
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// SearchOptions are the structured filters for advanced search.
// Zero values mean "not set"; Normalize fills defaults.
type SearchOptions struct {
	// County and City filter by case-insensitive substring.
	County string `json:"county,omitempty"`
	City   string `json:"city,omitempty"`
	// ServiceType filters by case-insensitive equality.
	ServiceType string `json:"serviceType,omitempty"`
	// Available filters by the availability flag; nil means available-only.
	Available *bool `json:"available,omitempty"`
	Sort      Sort  `json:"sort,omitempty"`
	Page      int   `json:"page,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

// Normalize trims filter values, fills defaults and clamps pagination.
// defaultLimit and maxLimit override the package constants when positive
// (they come from server config). Whitespace-only filters become unset.
func (o *SearchOptions) Normalize(defaultLimit, maxLimit int) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	o.County = strings.TrimSpace(o.County)
	o.City = strings.TrimSpace(o.City)
	o.ServiceType = strings.TrimSpace(o.ServiceType)
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if o.Sort == "" {
		o.Sort = SortRelevance
	}
}

// WantAvailable reports the availability filter value, defaulting to true.
func (o *SearchOptions) WantAvailable() bool {
	return o.Available == nil || *o.Available
}

// SearchPage is one page of advanced search results.
type SearchPage struct {
	Results    []*Listing `json:"results"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
}
