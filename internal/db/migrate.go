package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS saved_profile (
		id          TEXT PRIMARY KEY CHECK (id = 'default'),
		gender      TEXT NOT NULL,
		age_group   TEXT NOT NULL,
		latitude    REAL NOT NULL,
		longitude   REAL NOT NULL,
		favorites   TEXT NOT NULL,
		weekday     TEXT,
		start_time  TEXT,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS routine_history (
		id                 TEXT PRIMARY KEY,
		plan_range         TEXT NOT NULL DEFAULT '',
		subtitle           TEXT NOT NULL DEFAULT '',
		focus              TEXT NOT NULL DEFAULT '',
		target_sessions    INTEGER NOT NULL DEFAULT 0,
		total_minutes      INTEGER NOT NULL DEFAULT 0,
		estimated_calories INTEGER NOT NULL DEFAULT 0,
		schedule           TEXT NOT NULL,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_routine_history_created
		ON routine_history(created_at DESC)`,
}
