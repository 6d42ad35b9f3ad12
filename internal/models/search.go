package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a search mode string is not recognised
var ErrInvalidMode = errors.New("invalid search mode")

// Mode selects the match policy of a search
type Mode string

const (
	ModeExact Mode = "exact" // whole-word match
	ModeFuzzy Mode = "fuzzy" // substring match
)

// ParseMode parses a mode name; an empty string means exact
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeExact:
		return ModeExact, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// VerseRecord is one entry of the flat search index
type VerseRecord struct {
	Book       string `json:"book" db:"book"`
	BookKey    string `json:"bookKey" db:"book_key"`
	BookHebrew string `json:"bookHebrew" db:"book_hebrew"`
	Chapter    int    `json:"chapter" db:"chapter"`
	Verse      int    `json:"verse" db:"verse"`
	Text       string `json:"text" db:"text"`
}

// Query describes a full-text search over the index
type Query struct {
	Term          string
	Mode          Mode
	StripPrefixes bool
	BookFilter    []string // nil or empty searches every book
}

// SearchResult is a matching verse with the query highlighted
type SearchResult struct {
	BookKey         string `json:"bookKey"`
	BookName        string `json:"bookName"`
	BookNameHebrew  string `json:"bookNameHebrew"`
	Chapter         int    `json:"chapter"`
	Verse           int    `json:"verse"`
	VerseText       string `json:"verseText"`
	HighlightedText string `json:"highlightedText"`
}

// SearchRequest is the request body for POST /search
type SearchRequest struct {
	Query         string   `json:"query" query:"q"`
	Mode          string   `json:"mode" query:"mode"`
	StripPrefixes bool     `json:"strip_prefixes" query:"strip_prefixes"`
	Books         []string `json:"books"`
	Limit         int      `json:"limit" query:"limit"`
	Offset        int      `json:"offset" query:"offset"`
}

// SearchResponse is the response for search endpoints
type SearchResponse struct {
	Query         string         `json:"query"`
	Mode          Mode           `json:"mode"`
	StripPrefixes bool           `json:"strip_prefixes"`
	Total         int            `json:"total"`
	Offset        int            `json:"offset"`
	Results       []SearchResult `json:"results"`
}
