package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, filepath.Join(t.TempDir(), "verses.db"), 10)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)

	require.NoError(t, EnsureSchema(ctx, conn))
	// idempotent
	require.NoError(t, EnsureSchema(ctx, conn))

	var n int
	require.NoError(t, conn.GetContext(ctx, &n, `SELECT COUNT(*) FROM verses`))
	assert.Equal(t, 0, n)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn", 1)
	assert.ErrorContains(t, err, "unsupported")
}

func TestSupportedDriver(t *testing.T) {
	assert.True(t, SupportedDriver("postgres"))
	assert.True(t, SupportedDriver("sqlite"))
	assert.False(t, SupportedDriver("sqlite3"))
}
