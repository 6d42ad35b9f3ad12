package repository

import (
	"context"
	"errors"

	"github.com/tanakh-search-api/internal/models"
)

// ErrNotFound is returned when a requested chapter or text does not exist
var ErrNotFound = errors.New("not found")

// IndexSource defines how the flat search index artifact is fetched
type IndexSource interface {
	// FetchIndex returns every verse record in canonical order
	FetchIndex(ctx context.Context) ([]models.VerseRecord, error)
}

// ChapterRepository defines access to per-chapter verse data
type ChapterRepository interface {
	// GetChapter returns a single chapter of a book
	GetChapter(ctx context.Context, bookKey string, chapter int) (*models.Chapter, error)
}

// CommentaryRepository defines access to verse commentaries
type CommentaryRepository interface {
	// GetCommentary returns one commentator's text on a verse
	GetCommentary(ctx context.Context, commentator models.Commentator, bookName string, chapter, verse int) (*models.Commentary, error)
}

// VerseStore defines write access to a persisted search index
type VerseStore interface {
	// ReplaceAll swaps the stored index for records, keeping their order
	ReplaceAll(ctx context.Context, records []models.VerseRecord) error
}
