/*
Package sqlite provides a SQLite-backed implementation of hr.Backend.

PURPOSE:
  Persists the HR snapshot as a single versioned JSON document. The store
  rewrites the snapshot in full after every mutation, so the schema is one
  key/payload row — the same shape a browser's localStorage gave the
  original dataset, with real durability.

KEY TABLE:
  snapshots:
    key        TEXT PRIMARY KEY   versioned snapshot key (hr.SnapshotKey)
    payload    TEXT NOT NULL      JSON-encoded hr.Snapshot
    updated_at TEXT NOT NULL      RFC 3339, last write

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Readers don't block the single writer
  - Better crash recovery

INVALID PAYLOADS:
  A payload that fails to decode is reported as an error from Load; the
  hr.Store treats any Load failure as "no usable snapshot" and falls back
  to seed data. Nothing here is fatal.

USAGE:
  backend, err := sqlite.New("./data/ems.db")
  if err != nil {
      log.Fatal(err)
  }
  defer backend.Close()

  store, err := hr.Open(backend, nil)

SEE ALSO:
  - hr/store.go: Backend interface and load-or-seed behavior
  - hr/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/emsdesk/hr-engine/hr"
)

// Backend implements hr.Backend using SQLite.
type Backend struct {
	db *sql.DB
	mu sync.Mutex
}

var _ hr.Backend = (*Backend)(nil)

// New creates a SQLite backend at the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Backend, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	b := &Backend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return b, nil
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}

func (b *Backend) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := b.db.Exec(schema)
	return err
}

// Load returns the snapshot stored under hr.SnapshotKey, or (nil, nil) when
// none has been saved.
func (b *Backend) Load() (*hr.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var payload string
	err := b.db.QueryRow(
		`SELECT payload FROM snapshots WHERE key = ?`, hr.SnapshotKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap hr.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save replaces the stored snapshot in full.
func (b *Backend) Save(s *hr.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = b.db.Exec(`
		INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		hr.SnapshotKey, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
