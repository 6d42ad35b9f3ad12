package services

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/internal/models"
)

type countingSource struct {
	calls   atomic.Int32
	records []models.VerseRecord
	err     error
}

func (s *countingSource) FetchIndex(context.Context) ([]models.VerseRecord, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

var corpus = []models.VerseRecord{
	{Book: "Genesis", BookKey: "genesis", BookHebrew: "בראשית", Chapter: 1, Verse: 1, Text: "בְּרֵאשִׁית בָּרָא אֱלֹהִים אֵת הַשָּׁמַיִם וְאֵת הָאָרֶץ"},
	{Book: "Genesis", BookKey: "genesis", BookHebrew: "בראשית", Chapter: 1, Verse: 2, Text: "וְהָאָרֶץ הָיְתָה תֹהוּ וָבֹהוּ"},
	{Book: "Genesis", BookKey: "genesis", BookHebrew: "בראשית", Chapter: 1, Verse: 3, Text: "וַיֹּאמֶר אֱלֹהִים יְהִי אוֹר וַיְהִי־אוֹר"},
	{Book: "Genesis", BookKey: "genesis", BookHebrew: "בראשית", Chapter: 1, Verse: 5, Text: "וַיְהִי עֶרֶב וַיְהִי בֹקֶר"},
	{Book: "Genesis", BookKey: "genesis", BookHebrew: "בראשית", Chapter: 1, Verse: 8, Text: "וַיְהִי עֶרֶב וַיְהִי בֹקֶר"},
	{Book: "Exodus", BookKey: "exodus", BookHebrew: "שמות", Chapter: 1, Verse: 1, Text: "וְאֵלֶּה שְׁמוֹת בְּנֵי יִשְׂרָאֵל"},
	{Book: "Psalms", BookKey: "psalms", BookHebrew: "תהלים", Chapter: 150, Verse: 6, Text: "כֹּל הַנְּשָׁמָה תְּהַלֵּל יָהּ"},
}

func newService(t *testing.T, cacheSize int) (*SearchService, *countingSource) {
	t.Helper()
	src := &countingSource{records: corpus}
	return NewSearchService(index.NewCache(src, books.Tanakh()), cacheSize), src
}

type verseRef struct {
	book           string
	chapter, verse int
}

func refs(results []models.SearchResult) []verseRef {
	out := make([]verseRef, len(results))
	for i, r := range results {
		out[i] = verseRef{r.BookKey, r.Chapter, r.Verse}
	}
	return out
}

func TestSearchAllBooks(t *testing.T) {
	tests := []struct {
		name  string
		query models.Query
		want  []verseRef
	}{
		{
			name:  "exact whole word",
			query: models.Query{Term: "אלהים", Mode: models.ModeExact},
			want:  []verseRef{{"genesis", 1, 1}, {"genesis", 1, 3}},
		},
		{
			name:  "exact partial word misses",
			query: models.Query{Term: "אלהי", Mode: models.ModeExact},
			want:  []verseRef{},
		},
		{
			name:  "fuzzy partial word",
			query: models.Query{Term: "אלהי", Mode: models.ModeFuzzy},
			want:  []verseRef{{"genesis", 1, 1}, {"genesis", 1, 3}},
		},
		{
			name:  "unset mode is exact",
			query: models.Query{Term: "אלהי"},
			want:  []verseRef{},
		},
		{
			name:  "prefix stripping",
			query: models.Query{Term: "ארץ", Mode: models.ModeExact, StripPrefixes: true},
			want:  []verseRef{{"genesis", 1, 1}, {"genesis", 1, 2}},
		},
		{
			name:  "book filter",
			query: models.Query{Term: "ואלה", Mode: models.ModeFuzzy, BookFilter: []string{"exodus", "psalms"}},
			want:  []verseRef{{"exodus", 1, 1}},
		},
		{
			name:  "filter excludes every match",
			query: models.Query{Term: "אלהים", BookFilter: []string{"psalms"}},
			want:  []verseRef{},
		},
		{
			name:  "across books in canonical order",
			query: models.Query{Term: "ה", Mode: models.ModeFuzzy},
			want: []verseRef{
				{"genesis", 1, 1}, {"genesis", 1, 2}, {"genesis", 1, 3}, {"genesis", 1, 5}, {"genesis", 1, 8},
				{"exodus", 1, 1}, {"psalms", 150, 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, 0)
			got, err := svc.SearchAllBooks(context.Background(), tt.query)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, refs(got))
		})
	}
}

func TestSearchAllBooks_ResultFields(t *testing.T) {
	svc, _ := newService(t, 0)

	got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: "שמות", Mode: models.ModeExact})
	require.NoError(t, err)
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, "exodus", r.BookKey)
	assert.Equal(t, "Exodus", r.BookName)
	assert.Equal(t, "שמות", r.BookNameHebrew)
	assert.Equal(t, corpus[5].Text, r.VerseText)
	assert.Equal(t, "וְאֵלֶּה <mark>שְׁמוֹת</mark> בְּנֵי יִשְׂרָאֵל", r.HighlightedText)
}

func TestSearchAllBooks_EmptyTermSkipsLoad(t *testing.T) {
	svc, src := newService(t, 0)

	for _, term := range []string{"", "   ", "\t"} {
		got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: term})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.Equal(t, int32(0), src.calls.Load())
}

func TestSearchAllBooks_DuplicateTextKeepsIdentity(t *testing.T) {
	svc, _ := newService(t, 0)

	got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: "ערב", Mode: models.ModeExact})
	require.NoError(t, err)
	assert.Equal(t, []verseRef{{"genesis", 1, 5}, {"genesis", 1, 8}}, refs(got))
}

func TestSearchAllBooks_LoadErrorPropagates(t *testing.T) {
	loadErr := errors.New("index unavailable")
	src := &countingSource{err: loadErr}
	svc := NewSearchService(index.NewCache(src, nil), 10)

	_, err := svc.SearchAllBooks(context.Background(), models.Query{Term: "אור"})
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)

	// retried on the next query
	src.err = nil
	src.records = corpus
	got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: "אור"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestSearchAllBooks_LoadsIndexOnce(t *testing.T) {
	svc, src := newService(t, 0)

	for _, term := range []string{"אור", "ערב", "שמות"} {
		_, err := svc.SearchAllBooks(context.Background(), models.Query{Term: term})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestSearchAllBooks_MemoizedResultsAreCopies(t *testing.T) {
	svc, _ := newService(t, 4)
	q := models.Query{Term: "אלהים"}

	first, err := svc.SearchAllBooks(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, first, 2)
	first[0].BookKey = "mutated"

	second, err := svc.SearchAllBooks(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "genesis", second[0].BookKey)
	assert.Equal(t, 1, svc.results.Len())

	// the filter order does not matter, the raw term does
	_, err = svc.SearchAllBooks(context.Background(), models.Query{Term: "אלהים", BookFilter: []string{"b", "a"}})
	require.NoError(t, err)
	_, err = svc.SearchAllBooks(context.Background(), models.Query{Term: "אלהים", BookFilter: []string{"a", "b"}})
	require.NoError(t, err)
	_, err = svc.SearchAllBooks(context.Background(), models.Query{Term: "אֱלֹהִים"})
	require.NoError(t, err)
	assert.Equal(t, 3, svc.results.Len())
}

func TestSearchAllBooks_OrderIsCanonical(t *testing.T) {
	svc, _ := newService(t, 0)
	catalog := books.Tanakh()

	got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: "ה", Mode: models.ModeFuzzy, StripPrefixes: true})
	require.NoError(t, err)

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		po, co := catalog.Order(prev.BookKey), catalog.Order(cur.BookKey)
		ordered := po < co ||
			(po == co && prev.Chapter < cur.Chapter) ||
			(po == co && prev.Chapter == cur.Chapter && prev.Verse <= cur.Verse)
		assert.True(t, ordered, "%v before %v", prev, cur)
	}
}

func TestSearchAllBooks_HighlightsRawQuery(t *testing.T) {
	svc, _ := newService(t, 0)

	got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: "אור", Mode: models.ModeExact})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, strings.Count(got[0].HighlightedText, "<mark>"))
}

func TestSearchAllBooks_PaddedTermMatchesAndHighlights(t *testing.T) {
	svc, _ := newService(t, 0)

	for _, strip := range []bool{false, true} {
		got, err := svc.SearchAllBooks(context.Background(), models.Query{Term: " ארץ ", Mode: models.ModeFuzzy, StripPrefixes: strip})
		require.NoError(t, err)
		assert.Equal(t, []verseRef{{"genesis", 1, 1}, {"genesis", 1, 2}}, refs(got), "stripPrefixes=%v", strip)
		for _, r := range got {
			assert.Contains(t, r.HighlightedText, "<mark>", "stripPrefixes=%v", strip)
		}
	}
}
