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
	`CREATE TABLE IF NOT EXISTS appointments (
		id          TEXT PRIMARY KEY,
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		type        TEXT NOT NULL DEFAULT 'appointment'
		            CHECK(type IN ('appointment','break','blocked','availability','recovery')),
		status      TEXT NOT NULL DEFAULT 'confirmed'
		            CHECK(status IN ('confirmed','pending','cancelled','completed','no_show')),
		client_name TEXT NOT NULL DEFAULT '',
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_appointments_start ON appointments(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                     INTEGER PRIMARY KEY CHECK(id = 1),
		work_day_start_hour    INTEGER NOT NULL DEFAULT 8,
		work_day_end_hour      INTEGER NOT NULL DEFAULT 18,
		break_duration_min     INTEGER NOT NULL DEFAULT 20,
		max_daily_appointments INTEGER NOT NULL DEFAULT 8,
		max_weekly_hours       INTEGER NOT NULL DEFAULT 40
	)`,

	`INSERT OR IGNORE INTO settings (id) VALUES (1)`,
}
