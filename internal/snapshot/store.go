// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/snapshot/store.go
// Summary: SQLite history of saved level contents.
//
// Every save from the editor records the serialized level so earlier
// versions can be listed and restored:
//   - one row per save, keyed by level path
//   - identical consecutive saves are collapsed
//   - newest-first listing

package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a level has no snapshots.
var ErrNotFound = errors.New("no snapshot")

// Snapshot is one saved version of a level.
type Snapshot struct {
	ID      int64
	Level   string
	SavedAt time.Time
	Content string
}

// Store persists snapshots in a SQLite database.
type Store struct {
	db     *sql.DB
	logger hclog.Logger
}

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    level TEXT NOT NULL,
    saved_at INTEGER NOT NULL,        -- UnixNano
    content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_level ON snapshots(level, id);
`

// Open opens or creates the snapshot database at path.
func Open(path string, logger hclog.Logger) (*Store, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := checkSchema(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema version: %w", err)
	}

	return &Store{db: db, logger: logger.Named("snapshot")}, nil
}

func checkSchema(db *sql.DB, logger hclog.Logger) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if current == schemaVersion {
		return nil
	}
	if current != 0 {
		logger.Info("snapshot schema version changed", "from", current, "to", schemaVersion)
	}
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
	return err
}

// Save records content for level. It returns false when content matches
// the latest snapshot and nothing was written.
func (s *Store) Save(ctx context.Context, level, content string) (bool, error) {
	latest, err := s.Latest(ctx, level)
	switch {
	case err == nil && latest.Content == content:
		s.logger.Debug("snapshot unchanged", "level", level)
		return false, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		return false, err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO snapshots (level, saved_at, content) VALUES (?, ?, ?)",
		level, time.Now().UnixNano(), content)
	if err != nil {
		return false, fmt.Errorf("insert snapshot: %w", err)
	}
	s.logger.Debug("snapshot saved", "level", level, "bytes", len(content))
	return true, nil
}

// Latest returns the newest snapshot of level.
func (s *Store) Latest(ctx context.Context, level string) (Snapshot, error) {
	list, err := s.List(ctx, level, 1)
	if err != nil {
		return Snapshot{}, err
	}
	if len(list) == 0 {
		return Snapshot{}, fmt.Errorf("%s: %w", level, ErrNotFound)
	}
	return list[0], nil
}

// List returns up to limit snapshots of level, newest first. A
// non-positive limit returns all of them.
func (s *Store) List(ctx context.Context, level string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, level, saved_at, content FROM snapshots WHERE level = ? ORDER BY id DESC LIMIT ?",
		level, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var savedAt int64
		if err := rows.Scan(&snap.ID, &snap.Level, &savedAt, &snap.Content); err != nil {
			return nil, err
		}
		snap.SavedAt = time.Unix(0, savedAt)
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Get returns the snapshot with the given id.
func (s *Store) Get(ctx context.Context, id int64) (Snapshot, error) {
	var snap Snapshot
	var savedAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, level, saved_at, content FROM snapshots WHERE id = ?", id).
		Scan(&snap.ID, &snap.Level, &savedAt, &snap.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, err
	}
	snap.SavedAt = time.Unix(0, savedAt)
	return snap, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
