// Package lexicon provides the alias and synonym tables used by query expansion.
//
// Two tables exist: location aliases (place-name spelling variants) and
// category synonyms (service-type synonyms). Both map a canonical lowercase
// term to its known variants. A Lexicon is immutable after construction;
// reloading builds a whole new value.
package lexicon

import (
	"sort"
	"strings"
)

// Entry maps a canonical term to its known variant spellings or synonyms.
type Entry struct {
	Canonical string
	Variants  []string
}

// Lexicon holds the location-alias and category-synonym tables.
type Lexicon struct {
	locations  []Entry
	categories []Entry
	combined   []Entry
}

// New builds a Lexicon from the two canonical → variants tables. Terms are
// lowercased and whitespace-normalized; empty terms are dropped. The input
// maps are copied, so callers may reuse them.
func New(locations, categories map[string][]string) *Lexicon {
	lex := &Lexicon{
		locations:  normalizeTable(locations),
		categories: normalizeTable(categories),
	}
	lex.combined = make([]Entry, 0, len(lex.locations)+len(lex.categories))
	lex.combined = append(lex.combined, lex.locations...)
	lex.combined = append(lex.combined, lex.categories...)
	return lex
}

func normalizeTable(table map[string][]string) []Entry {
	entries := make([]Entry, 0, len(table))
	for canonical, variants := range table {
		canonical = normalizeTerm(canonical)
		if canonical == "" {
			continue
		}
		entry := Entry{Canonical: canonical}
		for _, v := range variants {
			if v = normalizeTerm(v); v != "" {
				entry.Variants = append(entry.Variants, v)
			}
		}
		entries = append(entries, entry)
	}
	// Map iteration order is random; sort for deterministic expansion and logging.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Canonical < entries[j].Canonical })
	return entries
}

func normalizeTerm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func compactTerm(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Locations returns the location-alias entries, sorted by canonical term.
// Callers must not modify the returned slice.
func (l *Lexicon) Locations() []Entry {
	return l.locations
}

// Categories returns the category-synonym entries, sorted by canonical term.
// Callers must not modify the returned slice.
func (l *Lexicon) Categories() []Entry {
	return l.categories
}

// Entries returns all entries, locations first. Callers must not modify the
// returned slice.
func (l *Lexicon) Entries() []Entry {
	return l.combined
}

// Size returns the total number of entries across both tables.
func (l *Lexicon) Size() int {
	return len(l.combined)
}

// CanonicalLocation resolves a free-text place value to its canonical
// location term. A value resolves when it equals the canonical term or any
// of its variants, compared case-insensitively and ignoring whitespace
// ("Tubman Burg" resolves to "tubmanburg"). Returns false when the value
// matches no location entry.
func (l *Lexicon) CanonicalLocation(value string) (string, bool) {
	v := normalizeTerm(value)
	if v == "" {
		return "", false
	}
	compact := compactTerm(v)
	for _, e := range l.locations {
		if v == e.Canonical || compact == compactTerm(e.Canonical) {
			return e.Canonical, true
		}
		for _, variant := range e.Variants {
			if v == variant || compact == compactTerm(variant) {
				return e.Canonical, true
			}
		}
	}
	return "", false
}
