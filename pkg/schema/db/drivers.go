package db

import (
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Registered database/sql driver names
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// SupportedDriver reports whether driver is one the verse store can use
func SupportedDriver(driver string) bool {
	return driver == DriverPostgres || driver == DriverSQLite
}
