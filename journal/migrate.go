package journal

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by the migrator.
const SchemaVersion = 1

// Migrate ensures the journal schema exists and is upgraded to
// SchemaVersion.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("journal: migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("journal: migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("journal: migrate: read current version: %w", err)
	}

	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("journal: migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if current < 1 {
		_, err = tx.Exec(`CREATE TABLE IF NOT EXISTS counterexamples (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			domain TEXT NOT NULL,
			property TEXT NOT NULL,
			seed INTEGER NOT NULL,
			max_actions INTEGER NOT NULL,
			trial INTEGER NOT NULL,
			violation_index INTEGER NOT NULL,
			actions TEXT NOT NULL,
			state TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`)
		if err != nil {
			return fmt.Errorf("journal: migrate: create counterexamples: %w", err)
		}
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("journal: migrate: record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("journal: migrate: commit: %w", err)
	}
	return nil
}
