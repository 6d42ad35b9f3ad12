package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Search index source: "file", "http" or "database"
	IndexSource  string
	IndexPath    string
	IndexURL     string
	IndexPreload bool

	// Per-chapter JSON files: <DataDir>/<bookKey>/<chapter>.json
	DataDir string

	// Search
	SearchCacheSize int
	SearchMaxLimit  int

	// Upstream services
	SefariaAPIURL string
	HTTPTimeout   time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	dataDir := getEnv("DATA_DIR", "data")
	return &Config{
		APITitle:    getEnv("API_TITLE", "Tanakh Search API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		IndexSource:  strings.ToLower(getEnv("INDEX_SOURCE", "file")),
		IndexPath:    getEnv("INDEX_PATH", dataDir+"/search-index.json"),
		IndexURL:     getEnv("INDEX_URL", ""),
		IndexPreload: getEnvBool("INDEX_PRELOAD", true),

		DataDir: dataDir,

		SearchCacheSize: getEnvInt("SEARCH_CACHE_SIZE", 256),
		SearchMaxLimit:  getEnvInt("SEARCH_MAX_LIMIT", 500),

		SefariaAPIURL: getEnv("SEFARIA_API_URL", "https://www.sefaria.org/api"),
		HTTPTimeout:   time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return b
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
