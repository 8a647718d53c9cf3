package repository

import (
	"context"
	"fmt"
)

// Portable DDL: runs unmodified on SQLite and Postgres. Hashes are stored as
// hex text for the same reason.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS model_files (
		id           TEXT PRIMARY KEY,
		source_path  TEXT NOT NULL,
		filename     TEXT NOT NULL,
		file_ext     TEXT NOT NULL,
		file_size    BIGINT NOT NULL,
		content_hash TEXT NOT NULL UNIQUE,
		uploaded_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS print_metadata (
		id               TEXT PRIMARY KEY,
		file_id          TEXT NOT NULL UNIQUE REFERENCES model_files(id),
		status           TEXT NOT NULL,
		print_duration   TEXT,
		total_weight     TEXT,
		layer_height     TEXT,
		infill           TEXT,
		nozzle_diameter  TEXT,
		printer_model    TEXT,
		primary_material TEXT,
		metadata_json    TEXT NOT NULL,
		error            TEXT,
		extracted_at     TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_model_files_uploaded_at ON model_files (uploaded_at)`,
}

// Migrate creates the catalog schema when missing.
func Migrate(ctx context.Context, db *DB) error {
	for _, stmt := range migrations {
		if _, err := db.SQL.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
