// Package e2e provides end-to-end tests over a generated directory corpus.
package e2e

import (
	"fmt"

	"github.com/dualahq/duala/internal/models"
)

// QueryCase defines a query with listing names that must appear in the simple
// search results and names that must not (unavailable or unrelated listings).
type QueryCase struct {
	Query         string
	ExpectedNames []string
	AbsentNames   []string
	Description   string
}

// Corpus holds generated listings and query cases for end-to-end tests.
type Corpus struct {
	Listings      []*models.Listing
	Cases         []QueryCase
	TotalListings int
	TotalQueries  int
}

// AvailableCount returns the number of available listings in the corpus.
func (c *Corpus) AvailableCount() int {
	n := 0
	for _, l := range c.Listings {
		if l.Available {
			n++
		}
	}
	return n
}

var corpusPlaces = []struct {
	county    string
	city      string
	community string
}{
	{"Montserrado", "Monrovia", "Sinkor"},
	{"Montserrado", "Monrovia", "West Point"},
	{"Montserrado", "Monrovia", "Congo Town"},
	{"Montserrado", "Paynesville", "Red Light"},
	{"Bomi", "Tubmanburg", "City Center"},
	{"Bong", "Gbarnga", "Broad Street"},
	{"Nimba", "Ganta", "Main Street"},
	{"Margibi", "Kakata", "Central Kakata"},
	{"Grand Bassa", "Buchanan", "Port Area"},
	{"Maryland", "Harper", "Seaside"},
}

var corpusTypes = []string{"Room", "Restaurant", "Market", "Taxi", "Pharmacy", "Salon"}

// BuildCorpus returns a corpus of listings spread over ten places and six
// service types, with deterministic view counts and every tenth listing
// unavailable. Listing names carry their ordinal so queries can assert the
// exact records returned.
func BuildCorpus() *Corpus {
	listings := buildListings()
	cases := buildQueryCases()
	return &Corpus{
		Listings:      listings,
		Cases:         cases,
		TotalListings: len(listings),
		TotalQueries:  len(cases),
	}
}

func buildListings() []*models.Listing {
	listings := make([]*models.Listing, 0, len(corpusPlaces)*len(corpusTypes))
	i := 0
	for _, place := range corpusPlaces {
		for _, typ := range corpusTypes {
			i++
			listings = append(listings, &models.Listing{
				Name:        fmt.Sprintf("%s %s %d", place.community, typ, i),
				ServiceType: typ,
				County:      place.county,
				City:        place.city,
				Community:   place.community,
				Description: fmt.Sprintf("%s services in %s, %s.", typ, place.community, place.city),
				Available:   i%10 != 0,
				ViewCount:   int64((i * 37) % 250),
			})
		}
	}
	return listings
}

func buildQueryCases() []QueryCase {
	return []QueryCase{
		{
			Query:         "room",
			ExpectedNames: []string{"Sinkor Room 1", "Seaside Room 55"},
			Description:   "plain service type",
		},
		{
			Query:         "apartment",
			ExpectedNames: []string{"Sinkor Room 1"},
			Description:   "category synonym expands to room",
		},
		{
			Query:         "cook shop",
			ExpectedNames: []string{"Sinkor Restaurant 2", "Sinkor Market 3"},
			Description:   "multi-word synonym reaches restaurants and shops",
		},
		{
			Query:         "drug store",
			ExpectedNames: []string{"Sinkor Pharmacy 5", "Sinkor Market 3"},
			Description:   "pharmacy synonym",
		},
		{
			Query:         "keke",
			ExpectedNames: []string{"Sinkor Taxi 4"},
			AbsentNames:   []string{"West Point Taxi 10"},
			Description:   "transport synonym skips unavailable taxi",
		},
		{
			Query:         "tubman burg",
			ExpectedNames: []string{"City Center Room 25", "City Center Market 27"},
			AbsentNames:   []string{"City Center Salon 30"},
			Description:   "split compound city name collapses",
		},
		{
			Query:         "gbanga",
			ExpectedNames: []string{"Broad Street Room 31"},
			Description:   "city alias",
		},
		{
			Query:         "gompa",
			ExpectedNames: []string{"Main Street Room 37"},
			AbsentNames:   []string{"Main Street Taxi 40"},
			Description:   "historical city name skips unavailable listing",
		},
		{
			Query:         "bomi hills",
			ExpectedNames: []string{"City Center Pharmacy 29"},
			Description:   "county variant",
		},
		{
			Query:         "redlight",
			ExpectedNames: []string{"Red Light Room 19"},
			AbsentNames:   []string{"Red Light Restaurant 20"},
			Description:   "joined community name",
		},
		{
			Query:         "monrovia",
			ExpectedNames: []string{"Sinkor Room 1", "Congo Town Room 13"},
			AbsentNames:   []string{"Broad Street Room 31"},
			Description:   "city name excludes other cities",
		},
	}
}
