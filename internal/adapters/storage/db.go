package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations holds schema migrations in order. Index i is version i+1.
// Never edit an applied migration; append a new one.
var migrations = []string{
	// v1: initial five-table schema
	`
	CREATE TABLE IF NOT EXISTS member (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		photo TEXT NOT NULL DEFAULT '',
		joined_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS event (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		poster TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS announcement (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS gallery_image (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		caption TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT 'uncategorized',
		uploaded_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_message (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`,
	// v2: lookup indexes for the hot public queries
	`
	CREATE INDEX IF NOT EXISTS idx_event_date ON event(date);
	CREATE INDEX IF NOT EXISTS idx_gallery_image_category ON gallery_image(category);
	CREATE INDEX IF NOT EXISTS idx_announcement_created_at ON announcement(created_at);
	`,
}

// LatestSchemaVersion returns the schema version after all migrations.
func LatestSchemaVersion() int {
	return len(migrations)
}

// MigrateDB brings the database schema up to the latest version.
// PRE: db is a valid database connection
// POST: schema_version equals LatestSchemaVersion(); pending migrations applied in order
func MigrateDB(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	version, err := currentVersion(db)
	if err != nil {
		return err
	}

	for v := version; v < len(migrations); v++ {
		if _, err := db.Exec(migrations[v]); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", v+1, err)
		}
		if err := setVersion(db, v+1); err != nil {
			return err
		}
		slog.Info("migration_applied", "version", v+1)
	}
	return nil
}

// currentVersion reads the stored schema version, 0 when none recorded.
func currentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// setVersion records the schema version, replacing any previous row.
func setVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(`DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}
