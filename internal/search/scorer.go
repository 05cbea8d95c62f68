package search

import (
	"math"
	"strings"

	"github.com/dualahq/duala/internal/models"
)

// Scorer computes a relevance score for a listing against a set of expanded
// query terms. Field weights come from a Weights table so deployments can
// tune ranking without code changes.
type Scorer struct {
	weights *Weights
}

// NewScorer returns a scorer using the given weights, or the defaults when
// weights is nil.
func NewScorer(weights *Weights) *Scorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Score sums per-term field points and record-level boosts. Each term scores
// every field independently: a case-insensitive whole-field match earns the
// exact weight, otherwise a fuzzy match earns the fuzzy weight. Availability
// and view-count boosts are added once per listing. With no terms the score
// is 0 so an empty query ranks nothing above anything else.
func (s *Scorer) Score(listing *models.Listing, terms []string) float64 {
	if len(terms) == 0 {
		return 0
	}

	w := s.weights
	var score float64
	for _, term := range terms {
		score += fieldPoints(term, listing.ServiceType, w.ServiceTypeExact, w.ServiceTypeFuzzy)
		score += fieldPoints(term, listing.Community, w.CommunityExact, w.CommunityFuzzy)
		score += fieldPoints(term, listing.City, w.CityExact, w.CityFuzzy)
		score += fieldPoints(term, listing.County, w.CountyExact, w.CountyFuzzy)
		score += fieldPoints(term, listing.Name, w.NameExact, w.NameFuzzy)
		score += fieldPoints(term, listing.Description, 0, w.DescriptionFuzzy)
		score += fieldPoints(term, listing.DetailedDescription, 0, w.DetailFuzzy)
		score += fieldPoints(term, listing.Tags, 0, w.TagsFuzzy)
		score += fieldPoints(term, listing.Features, 0, w.FeaturesFuzzy)
	}

	if listing.Available {
		score += w.AvailableBoost
	}
	if listing.ViewCount > 0 && w.PopularityDivisor > 0 {
		score += math.Min(float64(listing.ViewCount)/w.PopularityDivisor, w.PopularityCap)
	}
	return score
}

// fieldPoints scores one term against one field. Exact beats fuzzy; fields
// without an exact weight pass 0 and only score the fuzzy path.
func fieldPoints(term, field string, exact, fuzzy float64) float64 {
	if exact > 0 && strings.EqualFold(strings.TrimSpace(field), strings.TrimSpace(term)) {
		return exact
	}
	if Matches(term, field) {
		return fuzzy
	}
	return 0
}
