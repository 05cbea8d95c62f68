package search

// Weights holds the scoring weights for relevance ranking
type Weights struct {
	// Exact field matches
	ServiceTypeExact float64 `yaml:"service_type_exact"` // default: 15
	CommunityExact   float64 `yaml:"community_exact"`    // default: 12
	CityExact        float64 `yaml:"city_exact"`         // default: 10
	CountyExact      float64 `yaml:"county_exact"`       // default: 8
	NameExact        float64 `yaml:"name_exact"`         // default: 15

	// Fuzzy field matches
	ServiceTypeFuzzy float64 `yaml:"service_type_fuzzy"` // default: 10
	CommunityFuzzy   float64 `yaml:"community_fuzzy"`    // default: 8
	CityFuzzy        float64 `yaml:"city_fuzzy"`         // default: 6
	CountyFuzzy      float64 `yaml:"county_fuzzy"`       // default: 4
	NameFuzzy        float64 `yaml:"name_fuzzy"`         // default: 8
	DescriptionFuzzy float64 `yaml:"description_fuzzy"`  // default: 5
	DetailFuzzy      float64 `yaml:"detail_fuzzy"`       // default: 6
	TagsFuzzy        float64 `yaml:"tags_fuzzy"`         // default: 12
	FeaturesFuzzy    float64 `yaml:"features_fuzzy"`     // default: 7

	// Record-level boosts
	AvailableBoost    float64 `yaml:"available_boost"`    // default: 5
	PopularityDivisor float64 `yaml:"popularity_divisor"` // default: 10
	PopularityCap     float64 `yaml:"popularity_cap"`     // default: 5
}

// DefaultWeights returns the default scoring weights
func DefaultWeights() *Weights {
	return &Weights{
		ServiceTypeExact: 15,
		CommunityExact:   12,
		CityExact:        10,
		CountyExact:      8,
		NameExact:        15,

		ServiceTypeFuzzy: 10,
		CommunityFuzzy:   8,
		CityFuzzy:        6,
		CountyFuzzy:      4,
		NameFuzzy:        8,
		DescriptionFuzzy: 5,
		DetailFuzzy:      6,
		TagsFuzzy:        12,
		FeaturesFuzzy:    7,

		AvailableBoost:    5,
		PopularityDivisor: 10,
		PopularityCap:     5,
	}
}

// ApplyDefaults fills in zero values with defaults
func (w *Weights) ApplyDefaults() {
	defaults := DefaultWeights()

	if w.ServiceTypeExact == 0 {
		w.ServiceTypeExact = defaults.ServiceTypeExact
	}
	if w.CommunityExact == 0 {
		w.CommunityExact = defaults.CommunityExact
	}
	if w.CityExact == 0 {
		w.CityExact = defaults.CityExact
	}
	if w.CountyExact == 0 {
		w.CountyExact = defaults.CountyExact
	}
	if w.NameExact == 0 {
		w.NameExact = defaults.NameExact
	}
	if w.ServiceTypeFuzzy == 0 {
		w.ServiceTypeFuzzy = defaults.ServiceTypeFuzzy
	}
	if w.CommunityFuzzy == 0 {
		w.CommunityFuzzy = defaults.CommunityFuzzy
	}
	if w.CityFuzzy == 0 {
		w.CityFuzzy = defaults.CityFuzzy
	}
	if w.CountyFuzzy == 0 {
		w.CountyFuzzy = defaults.CountyFuzzy
	}
	if w.NameFuzzy == 0 {
		w.NameFuzzy = defaults.NameFuzzy
	}
	if w.DescriptionFuzzy == 0 {
		w.DescriptionFuzzy = defaults.DescriptionFuzzy
	}
	if w.DetailFuzzy == 0 {
		w.DetailFuzzy = defaults.DetailFuzzy
	}
	if w.TagsFuzzy == 0 {
		w.TagsFuzzy = defaults.TagsFuzzy
	}
	if w.FeaturesFuzzy == 0 {
		w.FeaturesFuzzy = defaults.FeaturesFuzzy
	}
	if w.AvailableBoost == 0 {
		w.AvailableBoost = defaults.AvailableBoost
	}
	if w.PopularityDivisor == 0 {
		w.PopularityDivisor = defaults.PopularityDivisor
	}
	if w.PopularityCap == 0 {
		w.PopularityCap = defaults.PopularityCap
	}
}
