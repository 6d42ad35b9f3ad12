// Package httpsource fetches the search index artifact over HTTP.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// IndexRepository implements repository.IndexSource for a URL serving the
// index JSON
type IndexRepository struct {
	url        string
	httpClient *http.Client
}

// NewIndexRepository creates an index source that GETs url. A nil client
// falls back to http.DefaultClient.
func NewIndexRepository(url string, httpClient *http.Client) repository.IndexSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &IndexRepository{
		url:        url,
		httpClient: httpClient,
	}
}

// FetchIndex downloads and decodes the index
func (r *IndexRepository) FetchIndex(ctx context.Context) ([]models.VerseRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("search index %s: %w", r.url, repository.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search index server error (%d): %s", resp.StatusCode, string(body))
	}

	var records []models.VerseRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode search index: %w", err)
	}
	if records == nil {
		records = []models.VerseRecord{}
	}
	return records, nil
}
