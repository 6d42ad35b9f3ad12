package books

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tanakh-search-api/internal/hebrew"
	"github.com/tanakh-search-api/internal/models"
)

// Reference forms, tried in order: arabic chapter:verse, arabic chapter,
// Hebrew chapter:verse, Hebrew chapter.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)$`),
	regexp.MustCompile(`^(.+?)\s+(\d+)$`),
	regexp.MustCompile(`^(.+?)\s+([א-ת׳״"']+):([א-ת׳״"']+)$`),
	regexp.MustCompile(`^(.+?)\s+([א-ת׳״"']+)$`),
}

// ParseReference parses "Genesis 1:1", "Genesis 1", "בראשית א:א" or
// "בראשית א" against the catalog. The chapter must exist in the book; the
// verse is optional and not range checked.
func (c *Catalog) ParseReference(s string) (models.Reference, bool) {
	ref := strings.TrimSpace(s)
	if ref == "" {
		return models.Reference{}, false
	}

	for _, re := range referencePatterns {
		m := re.FindStringSubmatch(ref)
		if m == nil {
			continue
		}

		chapter, ok := parseNumber(m[2])
		if !ok {
			continue
		}
		verse := 0
		if len(m) > 3 {
			if verse, ok = parseNumber(m[3]); !ok {
				continue
			}
		}

		book, ok := c.ByName(m[1])
		if !ok || chapter < 1 || chapter > book.Chapters {
			continue
		}
		return models.Reference{BookKey: book.Key, Chapter: chapter, Verse: verse}, true
	}
	return models.Reference{}, false
}

func parseNumber(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n > 0
	}
	return hebrew.ParseNumeral(s)
}
