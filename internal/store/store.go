// Package store persists client session state between runs: the backend
// session cookie (which a browser keeps for free) and last-used form
// defaults. Authoritative practice data always lives server-side; nothing
// here is ever trusted over a fresh fetch.
package store

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_cookies (
	endpoint TEXT NOT NULL,
	name     TEXT NOT NULL,
	value    TEXT NOT NULL,
	path     TEXT NOT NULL DEFAULT '/',
	expires  INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (endpoint, name)
);
CREATE TABLE IF NOT EXISTS form_defaults (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a SQLite-backed session store.
type Store struct {
	db *sql.DB
}

// Open opens the store at path, creating the schema if needed.
// ":memory:" opens an ephemeral store for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCookies upserts cookies for an endpoint. Cookies with a zero value
// or a past expiry are removed instead.
func (s *Store) SaveCookies(endpoint string, cookies []*http.Cookie) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting cookie save: %w", err)
	}
	defer tx.Rollback()

	for _, c := range cookies {
		expired := c.Value == "" || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) || c.MaxAge < 0
		if expired {
			if _, err := tx.Exec(
				`DELETE FROM session_cookies WHERE endpoint = ? AND name = ?`,
				endpoint, c.Name,
			); err != nil {
				return fmt.Errorf("deleting cookie %s: %w", c.Name, err)
			}
			continue
		}

		var expires int64
		if !c.Expires.IsZero() {
			expires = c.Expires.Unix()
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		if _, err := tx.Exec(
			`INSERT INTO session_cookies (endpoint, name, value, path, expires)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (endpoint, name) DO UPDATE SET value = excluded.value,
			 path = excluded.path, expires = excluded.expires`,
			endpoint, c.Name, c.Value, path, expires,
		); err != nil {
			return fmt.Errorf("saving cookie %s: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// LoadCookies returns the stored, unexpired cookies for an endpoint.
func (s *Store) LoadCookies(endpoint string) ([]*http.Cookie, error) {
	rows, err := s.db.Query(
		`SELECT name, value, path, expires FROM session_cookies WHERE endpoint = ?`,
		endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("loading cookies: %w", err)
	}
	defer rows.Close()

	var cookies []*http.Cookie
	for rows.Next() {
		var c http.Cookie
		var expires int64
		if err := rows.Scan(&c.Name, &c.Value, &c.Path, &expires); err != nil {
			return nil, fmt.Errorf("scanning cookie: %w", err)
		}
		if expires > 0 {
			c.Expires = time.Unix(expires, 0)
			if c.Expires.Before(time.Now()) {
				continue
			}
		}
		cookies = append(cookies, &c)
	}
	return cookies, rows.Err()
}

// ClearCookies drops the stored session for an endpoint (logout).
func (s *Store) ClearCookies(endpoint string) error {
	if _, err := s.db.Exec(`DELETE FROM session_cookies WHERE endpoint = ?`, endpoint); err != nil {
		return fmt.Errorf("clearing cookies: %w", err)
	}
	return nil
}

// SetDefault stores a last-used form value (e.g. instrument, duration).
func (s *Store) SetDefault(key, value string) error {
	if _, err := s.db.Exec(
		`INSERT INTO form_defaults (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	); err != nil {
		return fmt.Errorf("saving default %s: %w", key, err)
	}
	return nil
}

// GetDefault returns a stored form default, reporting whether it exists.
func (s *Store) GetDefault(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM form_defaults WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading default %s: %w", key, err)
	}
	return value, true, nil
}
