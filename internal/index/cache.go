// Package index loads, validates and caches the flat verse index, and builds
// it from per-chapter files.
package index

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// ErrNoSource is returned by Load when the cache has nothing to load from
var ErrNoSource = errors.New("no index source configured")

// Cache holds the search index for the lifetime of the process. The first
// successful Load stores the records; a failed Load stores nothing, so the
// next call fetches again. Concurrent first loads share one fetch.
type Cache struct {
	source  repository.IndexSource
	catalog *books.Catalog
	group   singleflight.Group

	mu      sync.RWMutex
	records []models.VerseRecord
	loaded  bool
}

// NewCache creates an empty cache over source. catalog is used to fill in
// book names missing from the records and may be nil.
func NewCache(source repository.IndexSource, catalog *books.Catalog) *Cache {
	return &Cache{
		source:  source,
		catalog: catalog,
	}
}

// Load returns the index, fetching it on first use. The returned slice is
// shared and must not be modified.
func (c *Cache) Load(ctx context.Context) ([]models.VerseRecord, error) {
	if records, ok := c.cached(); ok {
		return records, nil
	}
	if c.source == nil {
		return nil, ErrNoSource
	}

	// The shared fetch outlives any single caller; each caller still stops
	// waiting when its own context is done.
	ch := c.group.DoChan("index", func() (any, error) {
		if records, ok := c.cached(); ok {
			return records, nil
		}
		return c.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.VerseRecord), nil
	}
}

func (c *Cache) fetch(ctx context.Context) ([]models.VerseRecord, error) {
	raw, err := c.source.FetchIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch search index: %w", err)
	}

	records := Validate(raw, c.catalog)
	log.Printf("Search index loaded: %d verses (%d skipped)", len(records), len(raw)-len(records))

	c.mu.Lock()
	c.records = records
	c.loaded = true
	c.mu.Unlock()

	return records, nil
}

func (c *Cache) cached() ([]models.VerseRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records, c.loaded
}

// Loaded reports whether the index has been loaded
func (c *Cache) Loaded() bool {
	_, ok := c.cached()
	return ok
}

// Len returns the number of cached verses, 0 before the first load
func (c *Cache) Len() int {
	records, _ := c.cached()
	return len(records)
}
