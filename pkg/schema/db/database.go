package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tanakh-search-api/pkg/schema/config"
)

var (
	database *sqlx.DB
	dbOnce   sync.Once
	dbMu     sync.RWMutex
	dbDriver string
)

// databaseEnabled tracks whether the database was initialized
var databaseEnabled bool

// InitDatabase initializes the verse database connection from configuration.
func InitDatabase(ctx context.Context) error {
	var initErr error
	dbOnce.Do(func() {
		cfg := config.GetConfig()

		if cfg.DatabaseURI == "" {
			initErr = fmt.Errorf("DATABASE_URI is required")
			return
		}

		conn, err := Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURI, cfg.DatabaseMaxConns)
		if err != nil {
			initErr = err
			return
		}

		dbMu.Lock()
		database = conn
		dbDriver = cfg.DatabaseDriver
		databaseEnabled = true
		dbMu.Unlock()
	})
	return initErr
}

// Open connects to a database and configures its pool. SQLite databases are
// limited to a single connection.
func Open(ctx context.Context, driver, dsn string, maxConns int) (*sqlx.DB, error) {
	if !SupportedDriver(driver) {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	if driver == DriverSQLite || maxConns < 1 {
		maxConns = 1
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)
	conn.SetConnMaxLifetime(5 * time.Minute)
	conn.SetConnMaxIdleTime(1 * time.Minute)

	// Verify connectivity
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}
	return conn, nil
}

// DatabaseEnabled returns whether the database is available
func DatabaseEnabled() bool {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return databaseEnabled
}

// GetDatabase returns the database instance
func GetDatabase() *sqlx.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return database
}

// Driver returns the driver name of the initialized database
func Driver() string {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return dbDriver
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	dbMu.Lock()
	defer dbMu.Unlock()
	if database != nil {
		return database.Close()
	}
	return nil
}
