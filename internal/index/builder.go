package index

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// FailedChapter records a chapter the builder could not read
type FailedChapter struct {
	BookKey string `json:"bookKey"`
	Chapter int    `json:"chapter"`
	Error   string `json:"error"`
}

// BuildReport summarizes an index build
type BuildReport struct {
	Books    int             `json:"books"`
	Chapters int             `json:"chapters"`
	Verses   int             `json:"verses"`
	Failed   []FailedChapter `json:"failed"`
}

// Build reads every chapter of every book in catalog order and flattens the
// verses into index records. Chapters that fail to load are reported and
// skipped; only a cancelled context stops the build.
func Build(ctx context.Context, chapters repository.ChapterRepository, catalog *books.Catalog) ([]models.VerseRecord, BuildReport, error) {
	report := BuildReport{Failed: []FailedChapter{}}
	records := []models.VerseRecord{}

	for _, book := range catalog.Books() {
		report.Books++
		for n := 1; n <= book.Chapters; n++ {
			if err := ctx.Err(); err != nil {
				return nil, report, fmt.Errorf("build index: %w", err)
			}

			ch, err := chapters.GetChapter(ctx, book.Key, n)
			if err != nil {
				log.Printf("Failed to load %s chapter %d: %v", book.Key, n, err)
				report.Failed = append(report.Failed, FailedChapter{BookKey: book.Key, Chapter: n, Error: err.Error()})
				continue
			}
			report.Chapters++

			verses := slices.Clone(ch.Verses)
			slices.SortStableFunc(verses, func(a, b models.ChapterVerse) int {
				return cmp.Compare(a.Number, b.Number)
			})
			for _, v := range verses {
				records = append(records, models.VerseRecord{
					Book:       book.English,
					BookKey:    book.Key,
					BookHebrew: book.Hebrew,
					Chapter:    n,
					Verse:      v.Number,
					Text:       v.Hebrew,
				})
			}
			report.Verses += len(verses)
		}
	}
	return records, report, nil
}

// WriteJSON writes records as an indented JSON array
func WriteJSON(w io.Writer, records []models.VerseRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode search index: %w", err)
	}
	return nil
}
