package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// NewSQLite - opens the sqlite database at path and creates the history table.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS games (
		seq           INTEGER PRIMARY KEY AUTOINCREMENT,
		id            TEXT NOT NULL UNIQUE,
		mode          TEXT NOT NULL DEFAULT '',
		winner_name   TEXT NOT NULL,
		winner_symbol TEXT NOT NULL,
		loser_name    TEXT NOT NULL,
		loser_symbol  TEXT NOT NULL,
		is_tie        INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	)`

	if _, err = conn.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("can't create table: %w", err)
	}

	return conn, nil
}
