package search

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tanakh-search-api/internal/hebrew"
)

// Highlight markers inserted around every match
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

var markupRe = regexp.MustCompile(`<[^>]*>`)

type span struct {
	start, end int
}

// HighlightMatch wraps every occurrence of query in text with MarkOpen and
// MarkClose. Markup already present in text is removed first. Matching
// ignores nikud and case; the markers are placed in the original text, so
// vowel points inside or trailing a match stay inside the highlight.
func HighlightMatch(text, query string) string {
	clean := markupRe.ReplaceAllString(text, "")

	needle := hebrew.StripNikud(query)
	if clean == "" || needle == "" {
		return clean
	}

	// stripped is clean without nikud; origAt maps every byte offset of
	// stripped to the offset in clean where the same rune starts.
	var b strings.Builder
	b.Grow(len(clean))
	origAt := make([]int, 0, len(clean)+1)
	for i, r := range clean {
		if hebrew.IsNikud(r) {
			continue
		}
		for range utf8.RuneLen(r) {
			origAt = append(origAt, i)
		}
		b.WriteRune(r)
	}
	origAt = append(origAt, len(clean))
	stripped := b.String()

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(needle))
	locs := re.FindAllStringIndex(stripped, -1)

	spans := make([]span, 0, len(locs))
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		spans = append(spans, span{start: origAt[loc[0]], end: origAt[loc[1]]})
	}
	if len(spans) == 0 {
		return clean
	}

	result := clean
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		result = result[:s.start] + MarkOpen + result[s.start:s.end] + MarkClose + result[s.end:]
	}
	return result
}
