// Package history keeps a log of past segmentation runs in sqlite. Only run
// metadata is stored — never block contents or categories; every session
// re-segments from the source document.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded run.
type Entry struct {
	ID              int64
	Source          string
	BlockCount      int
	TotalCharacters int
	MarkerFound     bool
	MaxChunkLength  int
	CreatedAt       time.Time
}

// DB wraps the history database.
type DB struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	source           TEXT    NOT NULL,
	block_count      INTEGER NOT NULL,
	total_characters INTEGER NOT NULL,
	marker_found     INTEGER NOT NULL,
	max_chunk_length INTEGER NOT NULL,
	created_at       TEXT    NOT NULL
);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (h *DB) Close() error {
	return h.db.Close()
}

// Record inserts a run entry. A zero CreatedAt is stamped with the current time.
func (h *DB) Record(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := h.db.Exec(
		`INSERT INTO runs (source, block_count, total_characters, marker_found, max_chunk_length, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Source, e.BlockCount, e.TotalCharacters, boolInt(e.MarkerFound), e.MaxChunkLength,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (h *DB) Recent(limit int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT id, source, block_count, total_characters, marker_found, max_chunk_length, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var marker int
		var created string
		if err := rows.Scan(&e.ID, &e.Source, &e.BlockCount, &e.TotalCharacters, &marker, &e.MaxChunkLength, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.MarkerFound = marker != 0
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded runs.
func (h *DB) Count() (int, error) {
	var n int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
