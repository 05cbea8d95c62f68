package search

import "strings"

// Matches reports whether a single query term matches a record field.
//
// Matching is case-insensitive and tolerant of internal whitespace: a term
// matches when it appears as a substring of the field, when it appears as a
// substring after removing all whitespace from both sides (so "tubman burg"
// finds "tubmanburg"), or when any whitespace-separated word of one side is a
// prefix of the other. An empty field never matches anything.
func Matches(term, field string) bool {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return false
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}

	if strings.Contains(field, term) {
		return true
	}

	if strings.Contains(stripSpace(field), stripSpace(term)) {
		return true
	}

	for _, word := range strings.Fields(field) {
		if strings.HasPrefix(word, term) || strings.HasPrefix(term, word) {
			return true
		}
	}
	return false
}

// stripSpace removes all whitespace runs from s.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
