// Package sefaria fetches verse commentaries from the Sefaria texts API.
package sefaria

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository"
)

// DefaultBaseURL is the public Sefaria API root
const DefaultBaseURL = "https://www.sefaria.org/api"

// CommentaryRepository implements repository.CommentaryRepository against
// the Sefaria API
type CommentaryRepository struct {
	baseURL    string
	httpClient *http.Client
}

// NewCommentaryRepository creates a Sefaria client. An empty baseURL uses
// DefaultBaseURL and a nil client uses http.DefaultClient.
func NewCommentaryRepository(baseURL string, httpClient *http.Client) repository.CommentaryRepository {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CommentaryRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type textResponse struct {
	Ref   string          `json:"ref"`
	He    json.RawMessage `json:"he"`
	Text  json.RawMessage `json:"text"`
	Error string          `json:"error"`
}

// GetCommentary fetches commentator's comments on bookName chapter:verse
func (r *CommentaryRepository) GetCommentary(ctx context.Context, commentator models.Commentator, bookName string, chapter, verse int) (*models.Commentary, error) {
	ref := fmt.Sprintf("%s_on_%s.%d.%d", commentator.Slug, strings.ReplaceAll(bookName, " ", "_"), chapter, verse)
	endpoint := r.baseURL + "/texts/" + url.PathEscape(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call commentary service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("commentary %s: %w", ref, repository.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("commentary service error (%d): %s", resp.StatusCode, string(body))
	}

	var tr textResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	// Sefaria reports unknown refs with 200 and an error field
	if tr.Error != "" {
		return nil, fmt.Errorf("commentary %s: %s: %w", ref, tr.Error, repository.ErrNotFound)
	}

	if tr.Ref == "" {
		tr.Ref = ref
	}
	return &models.Commentary{
		Name:       commentator.Name,
		NameHebrew: commentator.NameHebrew,
		Ref:        tr.Ref,
		Hebrew:     flattenText(tr.He),
		English:    flattenText(tr.Text),
	}, nil
}

// flattenText turns a Sefaria text field, a string or arbitrarily nested
// arrays of strings, into a flat list of non-empty comments
func flattenText(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return out
	}

	var walk func(any)
	walk = func(v any) {
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case []any:
			for _, e := range t {
				walk(e)
			}
		}
	}
	walk(v)
	return out
}
