package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Each statement is
// idempotent (CREATE ... IF NOT EXISTS / INSERT OR IGNORE) so re-running
// the full list against an existing database is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_items (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		type       TEXT NOT NULL
		           CHECK(type IN ('live-hold','travel-segment','promo-slot',
		                          'release-milestone','legal-action','finance-action')),
		lane       TEXT NOT NULL DEFAULT '',
		starts_at  TEXT,
		ends_at    TEXT,
		territory  TEXT NOT NULL DEFAULT '',
		priority   INTEGER NOT NULL DEFAULT 0,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_items_starts_at ON schedule_items(starts_at)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		from_item_id TEXT NOT NULL REFERENCES schedule_items(id) ON DELETE CASCADE,
		to_item_id   TEXT NOT NULL REFERENCES schedule_items(id) ON DELETE CASCADE,
		kind         TEXT NOT NULL DEFAULT 'FS',
		note         TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (from_item_id, to_item_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_to_item ON dependencies(to_item_id)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id           INTEGER PRIMARY KEY CHECK(id = 1),
		buffer_hours REAL NOT NULL DEFAULT 4,
		granularity  TEXT NOT NULL DEFAULT 'week'
	)`,

	`INSERT OR IGNORE INTO settings (id, buffer_hours, granularity) VALUES (1, 4, 'week')`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
