package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"API_PREFIX", "INDEX_SOURCE", "INDEX_PATH", "DATA_DIR", "INDEX_PRELOAD", "SEARCH_CACHE_SIZE", "HTTP_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := loadConfig()
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "file", cfg.IndexSource)
	assert.Equal(t, "data/search-index.json", cfg.IndexPath)
	assert.True(t, cfg.IndexPreload)
	assert.Equal(t, 256, cfg.SearchCacheSize)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("INDEX_SOURCE", "Database")
	t.Setenv("DATA_DIR", "/srv/tanakh")
	t.Setenv("INDEX_PATH", "")
	t.Setenv("INDEX_PRELOAD", "false")
	t.Setenv("SEARCH_CACHE_SIZE", "not-a-number")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")

	cfg := loadConfig()
	assert.Equal(t, "database", cfg.IndexSource)
	assert.Equal(t, "/srv/tanakh", cfg.DataDir)
	assert.Equal(t, "/srv/tanakh/search-index.json", cfg.IndexPath)
	assert.False(t, cfg.IndexPreload)
	assert.Equal(t, 256, cfg.SearchCacheSize)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestParseCORSOrigins(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`["https://a.example","https://b.example"]`, []string{"https://a.example", "https://b.example"}},
		{"https://a.example, https://b.example,", []string{"https://a.example", "https://b.example"}},
		{"*", []string{"*"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseCORSOrigins(tt.input), tt.input)
	}
}
