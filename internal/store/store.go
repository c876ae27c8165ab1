// Package store persists the resume snapshot in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/khrees2412/quickcv/pkg/models"
	_ "github.com/mattn/go-sqlite3"
)

// SnapshotKey is the single slot the resume is stored under
const SnapshotKey = "resumeData"

var (
	// ErrPersistence wraps any failure to read or write the snapshot
	ErrPersistence = errors.New("persistence failure")
	// ErrSchemaMismatch means a stored snapshot does not fit the current schema
	ErrSchemaMismatch = errors.New("stored snapshot does not match resume schema")
)

// Store reads and writes the resume snapshot
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the database file if needed and runs migrations
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open with DSN options for SQLite pragmas
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RunMigrations creates all necessary tables
func RunMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		saved_at DATETIME NOT NULL
	);
	`

	_, err := db.Exec(schema)
	return err
}

// Save replaces the stored snapshot with r
func (s *Store) Save(ctx context.Context, r models.Resume) error {
	data, err := json.Marshal(r.Normalize())
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrPersistence, err)
	}

	query := `INSERT INTO snapshots (key, data, saved_at) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET data=excluded.data, saved_at=excluded.saved_at`
	if _, err := s.db.ExecContext(ctx, query, SnapshotKey, string(data), s.now().UTC()); err != nil {
		return fmt.Errorf("%w: write snapshot: %v", ErrPersistence, err)
	}
	return nil
}

// Load returns the stored resume. ok is false when nothing has been saved
// yet. A snapshot that fails the schema guard returns ErrSchemaMismatch.
func (s *Store) Load(ctx context.Context) (r models.Resume, ok bool, err error) {
	raw, ok, err := s.LoadRaw(ctx)
	if err != nil || !ok {
		return models.Resume{}, ok, err
	}

	r, err = Decode(raw)
	if err != nil {
		return models.Resume{}, true, err
	}
	return r, true, nil
}

// LoadRaw returns the stored JSON without decoding it
func (s *Store) LoadRaw(ctx context.Context) ([]byte, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key=?`, SnapshotKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: read snapshot: %v", ErrPersistence, err)
	}
	return []byte(data), true, nil
}

// SavedAt returns when the snapshot was last written
func (s *Store) SavedAt(ctx context.Context) (time.Time, bool, error) {
	var savedAt time.Time
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshots WHERE key=?`, SnapshotKey).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: read snapshot time: %v", ErrPersistence, err)
	}
	return savedAt, true, nil
}

// Delete removes the stored snapshot
func (s *Store) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key=?`, SnapshotKey); err != nil {
		return fmt.Errorf("%w: delete snapshot: %v", ErrPersistence, err)
	}
	return nil
}
