package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/search"
)

// SearchService runs full-text searches over the cached verse index
type SearchService struct {
	index   *index.Cache
	results *lru.Cache[string, []models.SearchResult]
}

// NewSearchService creates a search service over idx. Results of the last
// cacheSize distinct queries are memoized; 0 disables memoization.
func NewSearchService(idx *index.Cache, cacheSize int) *SearchService {
	s := &SearchService{index: idx}
	if cacheSize > 0 {
		results, err := lru.New[string, []models.SearchResult](cacheSize)
		if err != nil {
			log.Printf("Search result cache disabled: %v", err)
		} else {
			s.results = results
		}
	}
	return s
}

// SearchAllBooks returns every verse matching q in canonical order, each
// with the query highlighted. Surrounding whitespace in the term is
// ignored; an empty term returns no results without touching the index.
func (s *SearchService) SearchAllBooks(ctx context.Context, q models.Query) ([]models.SearchResult, error) {
	q.Term = strings.TrimSpace(q.Term)
	if q.Term == "" {
		return []models.SearchResult{}, nil
	}

	key := resultKey(q)
	if s.results != nil {
		if cached, ok := s.results.Get(key); ok {
			return slices.Clone(cached), nil
		}
	}

	records, err := s.index.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load search index: %w", err)
	}

	candidates := projectVerses(records, q.BookFilter)

	var matches []search.Verse
	switch q.Mode {
	case models.ModeFuzzy:
		matches = search.SearchFuzzy(candidates, q.Term, q.StripPrefixes)
	default:
		matches = search.SearchExact(candidates, q.Term, q.StripPrefixes)
	}

	results := make([]models.SearchResult, len(matches))
	for i, m := range matches {
		rec := records[m.Ref]
		results[i] = models.SearchResult{
			BookKey:         rec.BookKey,
			BookName:        rec.Book,
			BookNameHebrew:  rec.BookHebrew,
			Chapter:         rec.Chapter,
			Verse:           rec.Verse,
			VerseText:       rec.Text,
			HighlightedText: search.HighlightMatch(rec.Text, q.Term),
		}
	}

	if s.results != nil {
		s.results.Add(key, results)
		return slices.Clone(results), nil
	}
	return results, nil
}

// projectVerses converts index records to matcher input, keeping only the
// books in filter when it is non-empty. Ref is the record's index position.
func projectVerses(records []models.VerseRecord, filter []string) []search.Verse {
	var allowed map[string]bool
	if len(filter) > 0 {
		allowed = make(map[string]bool, len(filter))
		for _, k := range filter {
			allowed[k] = true
		}
	}

	verses := make([]search.Verse, 0, len(records))
	for i, r := range records {
		if allowed != nil && !allowed[r.BookKey] {
			continue
		}
		verses = append(verses, search.Verse{Number: r.Verse, Hebrew: r.Text, Ref: i})
	}
	return verses
}

func resultKey(q models.Query) string {
	mode := models.ModeExact
	if q.Mode == models.ModeFuzzy {
		mode = models.ModeFuzzy
	}
	filter := slices.Clone(q.BookFilter)
	slices.Sort(filter)
	filter = slices.Compact(filter)

	return strings.Join([]string{
		string(mode),
		strconv.FormatBool(q.StripPrefixes),
		strings.Join(filter, ","),
		q.Term,
	}, "\x00")
}
