package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	// Pure-Go SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/yaklabco/mdnote/pkg/document"
	"github.com/yaklabco/mdnote/pkg/fsutil"
)

// SQLite stores the record in a key-value table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path in WAL mode and ensures the schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite store: empty path")
	}
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("sqlite store: %w", err)
	}

	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	return &SQLite{db: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	return err
}

// Load implements Store.
func (s *SQLite) Load(ctx context.Context) (document.List, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, Key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return document.List{}, nil
		}
		return document.List{}, fmt.Errorf("load %s: %w", Key, err)
	}
	return decode([]byte(value))
}

// Save implements Store.
func (s *SQLite) Save(ctx context.Context, list document.List) error {
	data, err := document.Marshal(list)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		Key, string(data))
	if err != nil {
		return fmt.Errorf("save %s: %w", Key, err)
	}
	return nil
}

// PutRaw writes a raw record value, bypassing the codec.
func (s *SQLite) PutRaw(ctx context.Context, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		Key, value)
	return err
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
