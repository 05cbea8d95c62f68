package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dualahq/duala/internal/models"
)

// Seed populates an empty store with the sample listings. A store that
// already holds data is left alone; the number of inserted listings is
// returned either way.
func Seed(ctx context.Context, s ListingStore) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	listings := SampleListings()
	for _, l := range listings {
		if err := s.Create(ctx, l); err != nil {
			return 0, err
		}
	}
	return len(listings), nil
}

// LoadJSON reads a JSON array of listings from path and creates each one.
// Every listing is validated first so a bad file does not leave a partial
// import behind. Ids from the file are ignored; the store assigns its own.
func LoadJSON(ctx context.Context, s ListingStore, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read listings file: %w", err)
	}
	var listings []*models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return 0, fmt.Errorf("failed to parse listings file: %w", err)
	}
	for i, l := range listings {
		if err := l.Validate(); err != nil {
			return 0, fmt.Errorf("listing %d (%q): %w", i+1, l.Name, err)
		}
	}
	for _, l := range listings {
		l.ID = 0
		if err := s.Create(ctx, l); err != nil {
			return 0, err
		}
	}
	return len(listings), nil
}

// SampleListings returns a fresh copy of the built-in demo directory: a
// spread of service types across Liberian counties, with one unavailable
// entry and varied view counts so sorting and filtering have something to
// bite on.
func SampleListings() []*models.Listing {
	return []*models.Listing{
		{
			Name:                "Sinkor Palm Suites",
			ServiceType:         "Room",
			County:              "Montserrado",
			City:                "Monrovia",
			Community:           "Sinkor",
			Description:         "Furnished rooms and short stay apartments off Tubman Boulevard.",
			DetailedDescription: "Self contained rooms with ensuite bathrooms, weekly and monthly rates.",
			Tags:                "apartment, short stay, furnished",
			Features:            "generator, wifi, hot water",
			Available:           true,
			ViewCount:           142,
		},
		{
			Name:                "Duala Market Cook Shop",
			ServiceType:         "Restaurant",
			County:              "Montserrado",
			City:                "Monrovia",
			Community:           "Duala",
			Description:         "Home cooked Liberian dishes a short walk from Duala Market.",
			DetailedDescription: "Daily pots of palm butter, cassava leaf, potato greens and jollof rice.",
			Tags:                "cook shop, local food, lunch",
			Features:            "takeaway, cold drinks",
			Available:           true,
			ViewCount:           87,
		},
		{
			Name:        "Bomi Hills Guest House",
			ServiceType: "Hotel",
			County:      "Bomi",
			City:        "Tubmanburg",
			Community:   "City Center",
			Description: "Quiet guest house on the Monrovia road into Tubmanburg.",
			Tags:        "guest house, lodging",
			Features:    "parking, restaurant",
			Available:   true,
			ViewCount:   34,
		},
		{
			Name:        "Red Light Auto Parts",
			ServiceType: "Market",
			County:      "Montserrado",
			City:        "Paynesville",
			Community:   "Red Light",
			Description: "Spare parts and motor oil stall at the Red Light market.",
			Tags:        "spare parts, motorbike",
			Features:    "wholesale",
			Available:   true,
			ViewCount:   56,
		},
		{
			Name:        "Kakata Express Taxi",
			ServiceType: "Taxi",
			County:      "Margibi",
			City:        "Kakata",
			Community:   "Central Kakata",
			Description: "Shared taxis between Kakata and Monrovia every morning.",
			Tags:        "transport, shared ride",
			Features:    "daily departures",
			Available:   true,
			ViewCount:   29,
		},
		{
			Name:                "Gbarnga Mobile Money Point",
			ServiceType:         "Money Transfer",
			County:              "Bong",
			City:                "Gbarnga",
			Community:           "Broad Street",
			Description:         "Orange Money and MTN cash in and cash out.",
			DetailedDescription: "Registered agent for transfers, airtime and bill payment.",
			Tags:                "mobile money, momo",
			Features:            "open sundays",
			Available:           true,
			ViewCount:           203,
		},
		{
			Name:        "ELWA Junction Pharmacy",
			ServiceType: "Pharmacy",
			County:      "Montserrado",
			City:        "Paynesville",
			Community:   "ELWA",
			Description: "Licensed chemist at ELWA Junction with cold storage.",
			Tags:        "medicine, drug store",
			Features:    "cold chain, open late",
			Available:   true,
			ViewCount:   118,
		},
		{
			Name:        "West Point Fish Market",
			ServiceType: "Market",
			County:      "Montserrado",
			City:        "Monrovia",
			Community:   "West Point",
			Description: "Fresh catch landed every morning at West Point.",
			Tags:        "fish, fresh food",
			Available:   true,
			ViewCount:   41,
		},
		{
			Name:        "Harper Seaside Rooms",
			ServiceType: "Room",
			County:      "Maryland",
			City:        "Harper",
			Community:   "Seaside",
			Description: "Rooms overlooking the beach near the Cape Palmas lighthouse.",
			Tags:        "guest house, beach",
			Available:   false,
			ViewCount:   12,
		},
		{
			Name:        "Ganta United Motors",
			ServiceType: "Mechanic",
			County:      "Nimba",
			City:        "Ganta",
			Community:   "Main Street",
			Description: "Engine work and tire service on the Gbarnga highway.",
			Tags:        "garage, tires",
			Available:   true,
			ViewCount:   64,
		},
		{
			Name:        "Congo Town Beauty Salon",
			ServiceType: "Salon",
			County:      "Montserrado",
			City:        "Monrovia",
			Community:   "Congo Town",
			Description: "Braiding, cuts and nails next to the Congo Town junction.",
			Tags:        "braiding, barber",
			Available:   true,
			ViewCount:   77,
		},
		{
			Name:        "Buchanan Port School of Trades",
			ServiceType: "School",
			County:      "Grand Bassa",
			City:        "Buchanan",
			Community:   "Port Area",
			Description: "Evening classes in carpentry, masonry and electrical work.",
			Tags:        "vocational, evening classes",
			Available:   true,
			ViewCount:   22,
		},
	}
}
