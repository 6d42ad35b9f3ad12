// Package file reads the search index and chapter files from local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// IndexRepository implements repository.IndexSource for a JSON file
type IndexRepository struct {
	path string
}

// NewIndexRepository creates an index source reading the artifact at path
func NewIndexRepository(path string) repository.IndexSource {
	return &IndexRepository{path: path}
}

// FetchIndex reads and decodes the whole index file
func (r *IndexRepository) FetchIndex(ctx context.Context) ([]models.VerseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open search index %s: %w", r.path, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("open search index: %w", err)
	}
	defer f.Close()

	var records []models.VerseRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode search index %s: %w", r.path, err)
	}
	if records == nil {
		records = []models.VerseRecord{}
	}
	return records, nil
}
