package storage

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite keeps the slot as one row of a key/value table.
type SQLite struct {
	db   *sql.DB
	name string
}

func OpenSQLite(dbPath, name string) (*SQLite, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db, name: name}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Name() string { return s.name }

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS slots (
	name TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLite) Read() ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE name = ?;`, s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSlot
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *SQLite) Write(data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		s.name, data, now)
	return err
}

// modernc.org/sqlite uses driver name "sqlite" and prefers a file: DSN.
// mode=rwc creates the database file if it doesn't exist.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
