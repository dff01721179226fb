// Package db stores the extraction history in SQLite so past sessions can
// be reviewed with the history command.
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens or creates the SQLite database at the default location.
// The database file is created at ~/.local/share/move-dataset-cli/data.db.
// Parent directories are created if they don't exist.
func Open() (*sql.DB, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath)
}

// OpenAt opens or creates the database at an explicit path.
func OpenAt(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate runs all database migrations.
// Migrations are idempotent (safe to run multiple times).
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS extractions (
			id INTEGER PRIMARY KEY,
			session_id TEXT,
			video_path TEXT,
			character TEXT,
			move TEXT,
			timestamp_seconds REAL,
			start_seconds REAL,
			end_seconds REAL,
			frame_count INTEGER,
			output_path TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// getDBPath returns the path to the database file.
func getDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".local", "share", "move-dataset-cli", "data.db"), nil
}
