// Package matching implements the deterministic resume matching engine: concept extraction over a
// static thesaurus, edit-distance similarity, tiered concept matching, skill vocabularies and the
// ATS formatting score. Every exported function is pure and safe for concurrent use.
package matching

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds compatibility forms (full-width letters, ligatures) and lowercases text so that
// containment checks see the same surface as the vocabulary tables.
func Normalize(text string) string {
	return strings.ToLower(norm.NFKC.String(text))
}

// containsAny reports whether any of terms occurs in text.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// orderedSet collects strings once, keeping first-insertion order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		seen:  make(map[string]struct{}, capacity),
		items: make([]string, 0, capacity),
	}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *orderedSet) has(item string) bool {
	_, ok := s.seen[item]
	return ok
}

func (s *orderedSet) slice() []string {
	return s.items
}
