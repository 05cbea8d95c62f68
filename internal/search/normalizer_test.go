package search

import (
	"reflect"
	"testing"

	"github.com/dualahq/duala/internal/lexicon"
)

func TestExpand_Empty(t *testing.T) {
	n := NewNormalizer(nil)
	if got := n.Expand(""); got != nil {
		t.Errorf("Expand(\"\") = %v, want nil", got)
	}
	if got := n.Expand("   \t "); got != nil {
		t.Errorf("Expand(whitespace) = %v, want nil", got)
	}
}

func TestExpand_CategorySynonyms(t *testing.T) {
	n := NewNormalizer(nil)
	terms := n.Expand("room")

	if len(terms) == 0 || terms[0] != "room" {
		t.Fatalf("original token should come first, got %v", terms)
	}
	for _, want := range []string{"apartment", "house", "flat", "rent", "bedroom"} {
		if !containsTerm(terms, want) {
			t.Errorf("Expand(\"room\") missing %q: %v", want, terms)
		}
	}
}

func TestExpand_VariantToCanonical(t *testing.T) {
	n := NewNormalizer(nil)

	terms := n.Expand("gbanga")
	if !containsTerm(terms, "gbarnga") {
		t.Errorf("Expand(\"gbanga\") should add canonical gbarnga: %v", terms)
	}

	terms = n.Expand("cook shop")
	if !containsTerm(terms, "restaurant") {
		t.Errorf("Expand(\"cook shop\") should add restaurant: %v", terms)
	}
}

// A token contained in several categories' variants pulls in each of those
// canonicals, in lexicon order.
func TestExpand_VariantFanOut(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Expand("cook shop")
	want := []string{"cook", "shop", "restaurant", "market", "mechanic", "salon"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(\"cook shop\") = %v, want %v", got, want)
	}
}

func TestExpand_TubmanburgCollapse(t *testing.T) {
	n := NewNormalizer(nil)

	split := n.Expand("tubman burg")
	joined := n.Expand("tubmanburg")
	if !reflect.DeepEqual(split, joined) {
		t.Errorf("split and joined spellings should expand identically:\n%v\n%v", split, joined)
	}
	if len(split) == 0 || split[0] != "tubmanburg" {
		t.Fatalf("collapsed token should come first, got %v", split)
	}
	for _, leftover := range []string{"tubman", "burg"} {
		if containsTerm(split, leftover) {
			t.Errorf("fragment %q should not survive the collapse: %v", leftover, split)
		}
	}

	for _, q := range []string{"tubmanberg", "tubman-burg", "tubman berg", "tubmanbourg"} {
		terms := n.Expand(q)
		if !containsTerm(terms, "tubmanburg") {
			t.Errorf("Expand(%q) should include tubmanburg: %v", q, terms)
		}
	}
}

func TestExpand_CollapseKeepsOtherTokens(t *testing.T) {
	n := NewNormalizer(nil)
	terms := n.Expand("cheap room tubman berg")

	for _, want := range []string{"cheap", "room", "tubmanburg", "apartment"} {
		if !containsTerm(terms, want) {
			t.Errorf("missing %q in %v", want, terms)
		}
	}
	if containsTerm(terms, "berg") {
		t.Errorf("tail token should be merged away: %v", terms)
	}
}

func TestExpand_Dedupes(t *testing.T) {
	n := NewNormalizer(nil)
	terms := n.Expand("room room monrovia")

	seen := make(map[string]int)
	for _, term := range terms {
		seen[term]++
	}
	for term, count := range seen {
		if count > 1 {
			t.Errorf("term %q appears %d times: %v", term, count, terms)
		}
	}
}

func TestCollapseTubmanburg(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no mention", []string{"cheap", "room"}, []string{"cheap", "room"}},
		{"split", []string{"tubman", "burg"}, []string{"tubmanburg"}},
		{"reversed", []string{"burg", "tubman"}, []string{"tubmanburg"}},
		{"single variant", []string{"tubmanberg"}, []string{"tubmanburg"}},
		{"hyphenated", []string{"tubman-burg"}, []string{"tubmanburg"}},
		{"bourg spelling", []string{"tubman", "bourg"}, []string{"tubmanburg"}},
		{"with context", []string{"rooms", "tubman", "berg"}, []string{"rooms", "tubmanburg"}},
		{"tubman alone", []string{"tubman", "boulevard"}, []string{"tubman", "boulevard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.in...)
			got := collapseTubmanburg(in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("collapseTubmanburg(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !reflect.DeepEqual(in, tt.in) {
				t.Errorf("input slice was mutated: %v", in)
			}
		})
	}
}

func TestNormalizer_CustomLexicon(t *testing.T) {
	lex := lexicon.New(
		map[string][]string{"monrovia": {"the capital"}},
		map[string][]string{"clinic": {"hospital"}},
	)
	n := NewNormalizer(lex)

	terms := n.Expand("hospital")
	if !containsTerm(terms, "clinic") {
		t.Errorf("custom lexicon not applied: %v", terms)
	}
	terms = n.Expand("room")
	if containsTerm(terms, "apartment") {
		t.Errorf("default tables should not leak into a custom lexicon: %v", terms)
	}
}

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}
