// Package database persists rounds, goals, and progress entries in a local
// SQLite file. It owns the schema, the secondary indexes the engine's
// callers rely on, and the cascade lifecycle of progress with its round.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle. All methods take a context and return
// typed errors; see errors.go.
type Database struct {
	DB *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			frequency TEXT NOT NULL,
			duration_seconds INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(round_id) REFERENCES rounds(id)
		);`,
		`CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id INTEGER NOT NULL,
			goal_id INTEGER NOT NULL,
			target_date TEXT NOT NULL,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			duration_seconds INTEGER DEFAULT 0,
			notes TEXT,
			is_amendment INTEGER DEFAULT 0,
			FOREIGN KEY(round_id) REFERENCES rounds(id),
			FOREIGN KEY(goal_id) REFERENCES goals(id)
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		// One entry per goal and target date; the engine relies on this.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_progress_goal_date ON progress(goal_id, target_date);`,
		`CREATE INDEX IF NOT EXISTS idx_progress_round ON progress(round_id);`,
		`CREATE INDEX IF NOT EXISTS idx_goals_round ON goals(round_id);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}
