package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// ChapterRepository implements repository.ChapterRepository over a data
// directory laid out as <dataDir>/<bookKey>/<chapter>.json
type ChapterRepository struct {
	dataDir string
}

// NewChapterRepository creates a chapter repository rooted at dataDir
func NewChapterRepository(dataDir string) repository.ChapterRepository {
	return &ChapterRepository{dataDir: dataDir}
}

// GetChapter reads one chapter file
func (r *ChapterRepository) GetChapter(ctx context.Context, bookKey string, chapter int) (*models.Chapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bookKey == "" || bookKey != filepath.Base(bookKey) || chapter < 1 {
		return nil, fmt.Errorf("chapter %s %d: %w", bookKey, chapter, repository.ErrNotFound)
	}

	path := filepath.Join(r.dataDir, bookKey, strconv.Itoa(chapter)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("chapter %s %d: %w", bookKey, chapter, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("read chapter file: %w", err)
	}

	var ch models.Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, fmt.Errorf("decode chapter file %s: %w", path, err)
	}
	if ch.Verses == nil {
		return nil, fmt.Errorf("chapter file %s has no verses", path)
	}
	if ch.Chapter == 0 {
		ch.Chapter = chapter
	}
	return &ch, nil
}
