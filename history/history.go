// Package history records the device actions the front ends perform
// (captures, playbacks, resets) in a small SQLite table so the web UI
// can show what happened recently.
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded action.
type Entry struct {
	ID        int64
	Action    string
	Profile   string
	Detail    string
	CreatedAt time.Time
}

// Store is the SQLite-backed action log.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := `
    CREATE TABLE IF NOT EXISTS history (
       id INTEGER PRIMARY KEY AUTOINCREMENT,
       action TEXT NOT NULL,
       profile TEXT,
       detail TEXT,
       created_at BIGINT
    );
    CREATE INDEX IF NOT EXISTS idx_history_created ON history (created_at);
    `
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Append records one action.
func (s *Store) Append(action, profile, detail string) error {
	_, err := s.db.Exec(
		"INSERT INTO history (action, profile, detail, created_at) VALUES (?, ?, ?, ?)",
		action, profile, detail, time.Now().Unix(),
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, action, profile, detail, created_at FROM history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &e.Action, &e.Profile, &e.Detail, &ts); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
