package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	slot       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore persists the snapshot in a single-row sqlite table.
// Useful when the collection should live alongside other sqlite data
// or on filesystems where rename is not atomic.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: database path required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load implements Port.
func (s *SQLiteStore) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM snapshots WHERE slot = ?`, SlotName,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", SlotName, err)
	}
	return data, nil
}

// Save implements Port.
func (s *SQLiteStore) Save(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, SlotName, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", SlotName, err)
	}
	return nil
}

// Close implements Port.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
