package settings

import (
	"context"
	"database/sql"
	"time"

	"github.com/contre95/soundbridge/src/music"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore is a SQLite implementation of the SettingsStore interface.
// It stands in for the host platform's settings manager when the adapter
// runs as a standalone service.
type SqliteStore struct {
	db *sql.DB
}

var _ music.SettingsStore = (*SqliteStore)(nil)

// NewSqliteStore creates a new SqliteStore.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &SqliteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	return err
}

// Get returns the stored value for key and whether it was present.
func (s *SqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores or replaces the value for key.
func (s *SqliteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().Format(time.RFC3339))
	return err
}

// Delete removes the value for key. Deleting an absent key is a no-op.
func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}

// Close closes the underlying database.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}
