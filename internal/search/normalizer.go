package search

import (
	"strings"

	"github.com/dualahq/duala/internal/lexicon"
)

// Normalizer expands a raw query into the set of terms used for matching and
// scoring. Expansion is driven by a lexicon snapshot: each query token that
// names a known location or category pulls in the canonical form and its
// spelling variants, so "tubman burg" reaches listings tagged "Tubmanburg"
// and "room" reaches listings tagged "apartment".
type Normalizer struct {
	lex *lexicon.Lexicon
}

// NewNormalizer returns a normalizer bound to the given lexicon snapshot.
// A nil lexicon falls back to the built-in defaults.
func NewNormalizer(lex *lexicon.Lexicon) *Normalizer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Normalizer{lex: lex}
}

// tubmanburgTails are the trailing fragments that, combined with "tubman",
// identify a split or misspelled mention of Tubmanburg. Ordered longest
// first so "bourg" is not shadowed by "burg".
var tubmanburgTails = []string{"bourg", "burg", "berg"}

// Expand lowercases and tokenizes the query, collapses split mentions of
// Tubmanburg into one token, then adds lexicon expansions for every token.
// The original tokens always come first and each term appears once, in the
// order it was produced. An empty or all-whitespace query expands to nil.
func (n *Normalizer) Expand(query string) []string {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}
	tokens = collapseTubmanburg(tokens)

	terms := make([]string, 0, len(tokens)*2)
	seen := make(map[string]bool, len(tokens)*2)
	add := func(t string) {
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		terms = append(terms, t)
	}

	for _, tok := range tokens {
		add(tok)
	}

	for _, tok := range tokens {
		for _, entry := range n.lex.Entries() {
			if tok == entry.Canonical {
				for _, v := range entry.Variants {
					add(stripSpace(v))
				}
				continue
			}
			for _, v := range entry.Variants {
				if variantMatches(tok, v) {
					add(entry.Canonical)
					break
				}
			}
		}
	}
	return terms
}

// variantMatches reports whether a query token refers to the given lexicon
// variant. Containment runs both directions so the token "gbanga" hits the
// variant "gbanga" and the token "gbanga-city" still hits it too.
func variantMatches(tok, variant string) bool {
	v := stripSpace(variant)
	if v == "" {
		return false
	}
	t := stripSpace(tok)
	return strings.Contains(t, v) || strings.Contains(v, t)
}

// collapseTubmanburg rewrites mentions of Tubmanburg that arrive split in two
// tokens ("tubman burg") or in a variant spelling ("tubmanberg") into the
// single token "tubmanburg" before lexicon expansion runs. Tokens are already
// lowercased. The input slice is never modified.
func collapseTubmanburg(tokens []string) []string {
	tubmanAt := -1
	for i, tok := range tokens {
		if strings.Contains(tok, "tubman") {
			tubmanAt = i
			break
		}
	}
	if tubmanAt == -1 {
		return tokens
	}

	// Variant spelling inside one token, e.g. "tubmanberg" or "tubman-burg".
	for _, tail := range tubmanburgTails {
		if strings.Contains(tokens[tubmanAt], tail) {
			out := append([]string(nil), tokens...)
			out[tubmanAt] = "tubmanburg"
			return out
		}
	}

	// Split across two tokens, e.g. "tubman burg". The tail may sit anywhere
	// in the query, not only right after "tubman".
	tailAt := -1
	for i, tok := range tokens {
		if i == tubmanAt {
			continue
		}
		for _, tail := range tubmanburgTails {
			if strings.Contains(tok, tail) {
				tailAt = i
				break
			}
		}
		if tailAt != -1 {
			break
		}
	}
	if tailAt == -1 {
		return tokens
	}

	out := make([]string, 0, len(tokens)-1)
	for i, tok := range tokens {
		switch i {
		case tubmanAt:
			out = append(out, "tubmanburg")
		case tailAt:
			// dropped, merged into the token above
		default:
			out = append(out, tok)
		}
	}
	return out
}
