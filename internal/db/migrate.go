package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the case store schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cases (
		id            TEXT PRIMARY KEY,
		first_name    TEXT NOT NULL DEFAULT '',
		last_name     TEXT NOT NULL DEFAULT '',
		id_number     TEXT NOT NULL DEFAULT '',
		date_of_birth TEXT,
		phone         TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		address       TEXT NOT NULL DEFAULT '',
		case_summary  TEXT NOT NULL DEFAULT '',
		main_concerns TEXT NOT NULL DEFAULT '',
		goals         TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'active'
		              CHECK(status IN ('active','closed','archived')),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cases_status ON cases(status)`,

	`CREATE TABLE IF NOT EXISTS form_records (
		case_id    TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		domain     TEXT NOT NULL CHECK(domain IN ('rights','career','emotional')),
		answers    TEXT NOT NULL DEFAULT '{}',
		completed  INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (case_id, domain)
	)`,

	`CREATE TABLE IF NOT EXISTS recommendations (
		case_id    TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		rec_id     TEXT NOT NULL,
		title      TEXT NOT NULL,
		reason     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		PRIMARY KEY (case_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_case ON recommendations(case_id)`,
}
