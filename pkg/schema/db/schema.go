package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// versesSchema is valid for both PostgreSQL and SQLite
var versesSchema = []string{
	`CREATE TABLE IF NOT EXISTS verses (
		position    INTEGER NOT NULL,
		book_key    TEXT    NOT NULL,
		book        TEXT    NOT NULL DEFAULT '',
		book_hebrew TEXT    NOT NULL DEFAULT '',
		chapter     INTEGER NOT NULL,
		verse       INTEGER NOT NULL,
		text        TEXT    NOT NULL,
		PRIMARY KEY (book_key, chapter, verse)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS verses_position_idx ON verses (position)`,
}

// EnsureSchema creates the verses table if it does not exist
func EnsureSchema(ctx context.Context, conn *sqlx.DB) error {
	for _, stmt := range versesSchema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create verses schema: %w", err)
		}
	}
	return nil
}
