// Package search implements query expansion, fuzzy matching, relevance
// scoring and the listings search engine.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/dualahq/duala/internal/config"
	"github.com/dualahq/duala/internal/lexicon"
	"github.com/dualahq/duala/internal/models"
	"github.com/dualahq/duala/internal/store"
	"github.com/dualahq/duala/pkg/utils"
)

// Engine runs free-text and filtered searches over the listing store.
// Each call fetches its own snapshot and computes over it without shared
// state, so concurrent searches need no coordination.
type Engine struct {
	store    store.ListingStore
	lexicons *lexicon.Provider
	scorer   *Scorer
	config   *config.SearchConfig
}

// NewEngine creates a search engine with the given dependencies.
func NewEngine(
	store store.ListingStore,
	lexicons *lexicon.Provider,
	scorer *Scorer,
	cfg *config.SearchConfig,
) *Engine {
	if lexicons == nil {
		lexicons = lexicon.NewProvider(nil)
	}
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &Engine{
		store:    store,
		lexicons: lexicons,
		scorer:   scorer,
		config:   cfg,
	}
}

// Search runs simple free-text search over available listings. The query is
// expanded through the lexicon, listings whose searchable fields match any
// term are kept, and survivors are ranked by score then id descending. An
// empty query matches everything. Store errors are returned unchanged.
func (e *Engine) Search(ctx context.Context, query string) ([]*models.Listing, error) {
	listings, err := e.store.AllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	terms := NewNormalizer(e.lexicons.Current()).Expand(query)

	matched := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if matchesAnyTerm(l, terms) {
			matched = append(matched, l)
		}
	}
	e.sortByRelevance(matched, terms)
	return matched, nil
}

// AdvancedSearch applies structured filters, then the same text pipeline as
// Search over the filtered candidates, then the selected sort and 1-based
// pagination. Total and totalPages describe the full match set, not the page.
func (e *Engine) AdvancedSearch(ctx context.Context, query string, opts models.SearchOptions) (*models.SearchPage, error) {
	opts.Normalize(e.limits())

	candidates, err := e.fetchCandidates(ctx, &opts)
	if err != nil {
		return nil, err
	}

	terms := NewNormalizer(e.lexicons.Current()).Expand(query)

	matched := make([]*models.Listing, 0, len(candidates))
	for _, l := range candidates {
		if !matchesFilters(l, &opts) {
			continue
		}
		if !matchesAnyTerm(l, terms) {
			continue
		}
		matched = append(matched, l)
	}

	switch opts.Sort {
	case models.SortNewest:
		sortByNewest(matched)
	case models.SortPopular:
		sortByPopularity(matched)
	default:
		e.sortByRelevance(matched, terms)
	}

	total := len(matched)
	return &models.SearchPage{
		Results:    pageSlice(matched, opts.Page, opts.Limit),
		Total:      total,
		Page:       opts.Page,
		TotalPages: utils.CeilDiv(total, opts.Limit),
	}, nil
}

// ByLocation returns available listings for a county and/or city, matched by
// case-insensitive substring or by resolving both sides to the same canonical
// location in the lexicon. With neither parameter it returns every available
// listing. Results are ordered by id descending.
func (e *Engine) ByLocation(ctx context.Context, county, city string) ([]*models.Listing, error) {
	listings, err := e.store.AllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	county = strings.TrimSpace(county)
	city = strings.TrimSpace(city)

	lex := e.lexicons.Current()
	matched := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if county != "" && !locationMatches(lex, l.County, county) {
			continue
		}
		if city != "" && !locationMatches(lex, l.City, city) {
			continue
		}
		matched = append(matched, l)
	}
	sortByID(matched)
	return matched, nil
}

// limits returns the configured pagination bounds, zero when unconfigured so
// SearchOptions.Normalize falls back to its package defaults.
func (e *Engine) limits() (defaultLimit, maxLimit int) {
	if e.config == nil {
		return 0, 0
	}
	return e.config.DefaultLimit, e.config.MaxLimit
}

// fetchCandidates pulls the availability-filtered snapshot the search runs
// over. The unavailable-only case has no dedicated store query; it fetches
// everything and keeps the rest.
func (e *Engine) fetchCandidates(ctx context.Context, opts *models.SearchOptions) ([]*models.Listing, error) {
	if opts.WantAvailable() {
		return e.store.AllAvailable(ctx)
	}
	all, err := e.store.All(ctx)
	if err != nil {
		return nil, err
	}
	unavailable := make([]*models.Listing, 0, len(all))
	for _, l := range all {
		if !l.Available {
			unavailable = append(unavailable, l)
		}
	}
	return unavailable, nil
}

// matchesAnyTerm is the inclusion predicate for text search: any term against
// any of the six searchable fields. No terms means no text filtering.
func matchesAnyTerm(l *models.Listing, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, term := range terms {
		if Matches(term, l.ServiceType) ||
			Matches(term, l.Community) ||
			Matches(term, l.City) ||
			Matches(term, l.County) ||
			Matches(term, l.Name) ||
			Matches(term, l.Description) {
			return true
		}
	}
	return false
}

// matchesFilters applies the structured filters. County and city match by
// case-insensitive substring, serviceType by case-insensitive equality.
// Empty filters pass everything.
func matchesFilters(l *models.Listing, opts *models.SearchOptions) bool {
	if opts.County != "" && !containsFold(l.County, opts.County) {
		return false
	}
	if opts.City != "" && !containsFold(l.City, opts.City) {
		return false
	}
	if opts.ServiceType != "" && !strings.EqualFold(strings.TrimSpace(l.ServiceType), opts.ServiceType) {
		return false
	}
	return true
}

// locationMatches reports whether a location field satisfies a location
// query, by substring or by canonical equivalence ("gbanga" finds Gbarnga).
func locationMatches(lex *lexicon.Lexicon, field, query string) bool {
	if containsFold(field, query) {
		return true
	}
	qc, ok := lex.CanonicalLocation(query)
	if !ok {
		return false
	}
	fc, ok := lex.CanonicalLocation(field)
	return ok && qc == fc
}

func containsFold(field, sub string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(sub))
}

// sortByRelevance orders by score descending, ties by id descending. Scores
// are computed once per listing before sorting.
func (e *Engine) sortByRelevance(listings []*models.Listing, terms []string) {
	scores := make(map[int64]float64, len(listings))
	for _, l := range listings {
		scores[l.ID] = e.scorer.Score(l, terms)
	}
	sort.Slice(listings, func(i, j int) bool {
		si, sj := scores[listings[i].ID], scores[listings[j].ID]
		if si != sj {
			return si > sj
		}
		return listings[i].ID > listings[j].ID
	})
}

// sortByNewest orders by lastUpdated descending, listings without a
// timestamp after timestamped ones, ties by id descending.
func sortByNewest(listings []*models.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		a, b := listings[i].LastUpdated, listings[j].LastUpdated
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		if !a.Equal(b) {
			return a.After(b)
		}
		return listings[i].ID > listings[j].ID
	})
}

// sortByPopularity orders by view count descending, ties by id descending.
func sortByPopularity(listings []*models.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].ViewCount != listings[j].ViewCount {
			return listings[i].ViewCount > listings[j].ViewCount
		}
		return listings[i].ID > listings[j].ID
	})
}

func sortByID(listings []*models.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].ID > listings[j].ID
	})
}

// pageSlice cuts one 1-based page out of the sorted results. Pages past the
// end yield an empty, non-nil slice so JSON encodes an empty array.
func pageSlice(listings []*models.Listing, page, limit int) []*models.Listing {
	start := (page - 1) * limit
	if start >= len(listings) {
		return []*models.Listing{}
	}
	end := start + limit
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}
