package config

import (
	"os"
	"strconv"
	"sync"
)

// Config holds configuration for the verse database
type Config struct {
	// Database driver: "postgres" or "sqlite"
	DatabaseDriver string
	DatabaseURI    string

	// Connection pool
	DatabaseMaxConns int
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
	return &Config{
		DatabaseDriver:   getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURI:      getEnv("DATABASE_URI", getEnv("POSTGRES_URI", "")),
		DatabaseMaxConns: getEnvInt("DATABASE_MAX_CONNS", 25),
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
