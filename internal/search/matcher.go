// Package search implements the in-memory verse matchers and the match
// highlighter used by the search service.
package search

import (
	"strings"

	"github.com/tanakh-search-api/internal/hebrew"
)

// Verse is the unit the matchers operate on. Ref is an opaque handle the
// caller uses to find its own record again; the matchers only carry it.
type Verse struct {
	Number int
	Hebrew string
	Ref    int
}

// SearchExact returns the verses where any query word equals any verse
// word after normalization. Order is preserved.
func SearchExact(verses []Verse, term string, stripPrefixes bool) []Verse {
	if len(verses) == 0 || term == "" {
		return []Verse{}
	}

	searchWords := strings.Fields(hebrew.Normalize(term, stripPrefixes))
	if len(searchWords) == 0 {
		return []Verse{}
	}
	wanted := make(map[string]struct{}, len(searchWords))
	for _, w := range searchWords {
		wanted[w] = struct{}{}
	}

	matches := []Verse{}
	for _, v := range verses {
		for _, w := range strings.Fields(hebrew.Normalize(v.Hebrew, stripPrefixes)) {
			if _, ok := wanted[w]; ok {
				matches = append(matches, v)
				break
			}
		}
	}
	return matches
}

// SearchFuzzy returns the verses whose normalized text contains the
// normalized query as a substring. Surrounding whitespace in the query is
// ignored in both prefix modes. Order is preserved.
func SearchFuzzy(verses []Verse, term string, stripPrefixes bool) []Verse {
	if len(verses) == 0 || term == "" {
		return []Verse{}
	}

	prepared := hebrew.Normalize(strings.TrimSpace(term), stripPrefixes)
	if prepared == "" {
		return []Verse{}
	}

	matches := []Verse{}
	for _, v := range verses {
		if strings.Contains(hebrew.Normalize(v.Hebrew, stripPrefixes), prepared) {
			matches = append(matches, v)
		}
	}
	return matches
}
