package index

import (
	"log"
	"strings"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/models"
)

type verseKey struct {
	bookKey        string
	chapter, verse int
}

// Validate drops records that cannot be searched or addressed: a missing
// book key or text, a chapter or verse below 1, or a repeat of an earlier
// (bookKey, chapter, verse). Each dropped record is logged. Missing book
// names are filled in from catalog when it knows the key. Order is kept.
func Validate(records []models.VerseRecord, catalog *books.Catalog) []models.VerseRecord {
	out := make([]models.VerseRecord, 0, len(records))
	seen := make(map[verseKey]struct{}, len(records))

	for i, r := range records {
		switch {
		case r.BookKey == "":
			log.Printf("Skipping index record %d: missing bookKey", i)
			continue
		case strings.TrimSpace(r.Text) == "":
			log.Printf("Skipping index record %d (%s %d:%d): missing text", i, r.BookKey, r.Chapter, r.Verse)
			continue
		case r.Chapter < 1 || r.Verse < 1:
			log.Printf("Skipping index record %d (%s %d:%d): invalid chapter or verse", i, r.BookKey, r.Chapter, r.Verse)
			continue
		}

		k := verseKey{r.BookKey, r.Chapter, r.Verse}
		if _, dup := seen[k]; dup {
			log.Printf("Skipping index record %d (%s %d:%d): duplicate verse", i, r.BookKey, r.Chapter, r.Verse)
			continue
		}
		seen[k] = struct{}{}

		if catalog != nil && (r.Book == "" || r.BookHebrew == "") {
			if b, ok := catalog.ByKey(r.BookKey); ok {
				if r.Book == "" {
					r.Book = b.English
				}
				if r.BookHebrew == "" {
					r.BookHebrew = b.Hebrew
				}
			}
		}
		out = append(out, r)
	}
	return out
}
