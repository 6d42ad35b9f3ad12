// Package sqlstore persists the search index in a SQL database.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tanakh-search-api/internal/models"
)

// VerseRepository implements repository.IndexSource and repository.VerseStore
// over the verses table. It works with any driver sqlx can rebind for.
type VerseRepository struct {
	db *sqlx.DB
}

// NewVerseRepository creates a verse repository on db
func NewVerseRepository(db *sqlx.DB) *VerseRepository {
	return &VerseRepository{db: db}
}

// FetchIndex loads every verse in stored order
func (r *VerseRepository) FetchIndex(ctx context.Context) ([]models.VerseRecord, error) {
	records := []models.VerseRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT book, book_key, book_hebrew, chapter, verse, text
		FROM verses
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("select verses: %w", err)
	}
	return records, nil
}

// ReplaceAll deletes the stored verses and inserts records in one transaction.
// A record's position in the slice becomes its stored position.
func (r *VerseRepository) ReplaceAll(ctx context.Context, records []models.VerseRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM verses`); err != nil {
		return fmt.Errorf("delete verses: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(`
		INSERT INTO verses (position, book_key, book, book_hebrew, chapter, verse, text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("prepare verse insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range records {
		if _, err := stmt.ExecContext(ctx, i, v.BookKey, v.Book, v.BookHebrew, v.Chapter, v.Verse, v.Text); err != nil {
			return fmt.Errorf("insert verse %s %d:%d: %w", v.BookKey, v.Chapter, v.Verse, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit verses: %w", err)
	}
	return nil
}

// Count returns the number of stored verses
func (r *VerseRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM verses`); err != nil {
		return 0, fmt.Errorf("count verses: %w", err)
	}
	return n, nil
}
