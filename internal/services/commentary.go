package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// ErrCommentaryUnavailable is returned when every commentator failed for a
// reason other than having no comment on the verse
var ErrCommentaryUnavailable = errors.New("commentary service unavailable")

// DefaultCommentators are fetched for every verse, in display order
var DefaultCommentators = []models.Commentator{
	{Name: "Rashi", NameHebrew: `רש"י`, Slug: "Rashi"},
	{Name: "Ibn Ezra", NameHebrew: "אבן עזרא", Slug: "Ibn_Ezra"},
}

// CommentaryService collects commentaries on a verse
type CommentaryService struct {
	repo         repository.CommentaryRepository
	commentators []models.Commentator
}

// NewCommentaryService creates a commentary service. With no commentators
// given it uses DefaultCommentators.
func NewCommentaryService(repo repository.CommentaryRepository, commentators ...models.Commentator) *CommentaryService {
	if len(commentators) == 0 {
		commentators = DefaultCommentators
	}
	return &CommentaryService{
		repo:         repo,
		commentators: commentators,
	}
}

// GetCommentaries fetches every commentator concurrently. Commentators that
// fail are left out; the rest keep their configured order.
func (s *CommentaryService) GetCommentaries(ctx context.Context, bookName string, chapter, verse int) ([]models.Commentary, error) {
	found := make([]*models.Commentary, len(s.commentators))
	errs := make([]error, len(s.commentators))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range s.commentators {
		g.Go(func() error {
			commentary, err := s.repo.GetCommentary(gctx, c, bookName, chapter, verse)
			if err != nil {
				log.Printf("Commentary %s on %s %d:%d unavailable: %v", c.Name, bookName, chapter, verse, err)
				errs[i] = err
				return nil
			}
			found[i] = commentary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	commentaries := make([]models.Commentary, 0, len(found))
	var upstream error
	for i, c := range found {
		if c != nil {
			commentaries = append(commentaries, *c)
		} else if !errors.Is(errs[i], repository.ErrNotFound) {
			upstream = errs[i]
		}
	}
	if len(commentaries) == 0 && upstream != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommentaryUnavailable, upstream)
	}
	return commentaries, nil
}
