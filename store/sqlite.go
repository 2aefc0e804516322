package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/osutil"
)

// SQLite stores the countdown state in a SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (and if necessary creates) a SQLite database at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	s := &SQLite{path: dbPath}

	if err := s.Open(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SQLite) Open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), osutil.DirPermission); err != nil {
		return errOpenDB.Wrap(fmt.Errorf("create db dir: %w", err))
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errOpenDB.Wrap(fmt.Errorf("open sqlite: %w", err))
	}

	if err = ensureSchema(context.Background(), db); err != nil {
		_ = db.Close()

		return err
	}

	s.db = db

	return nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS state (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return errMigrate.Wrap(fmt.Errorf("create state table: %w", err))
	}

	return nil
}

func (s *SQLite) GetState() ([]byte, error) {
	var value []byte

	err := s.db.QueryRowContext(
		context.Background(),
		`SELECT value FROM state WHERE key = ?`,
		models.StateKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	return value, nil
}

func (s *SQLite) UpdateState(value []byte) error {
	const stmt = `
INSERT INTO state (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(
		context.Background(),
		stmt,
		models.StateKey,
		value,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}

	return nil
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
