package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// One row per imported file
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS datasets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			wine_type TEXT NOT NULL UNIQUE,
			source_path TEXT NOT NULL DEFAULT '',
			row_count INTEGER NOT NULL,
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Header of each dataset, in file order
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS dataset_columns (
			dataset_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (dataset_id, position),
			FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// One cell per row per column. NULL stores NaN.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS measurements (
			dataset_id INTEGER NOT NULL,
			row_index INTEGER NOT NULL,
			position INTEGER NOT NULL,
			value REAL,
			PRIMARY KEY (dataset_id, row_index, position),
			FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
		)
	`)
	return err
}
