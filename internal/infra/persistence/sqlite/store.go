// Package sqlite provides the default persistence backend: a single-file
// database holding one row per collection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"tqmcore/pkg/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS state (
    bucket  TEXT PRIMARY KEY,
    payload BLOB NOT NULL
);`

// Store persists collection payloads in a local sqlite file.
type Store struct {
	db *sql.DB
}

var _ domain.Store = (*Store)(nil)

// Open creates the database file (and its parent directory) when missing and
// prepares the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The driver is in-process; a single connection avoids write contention.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("prepare sqlite schema: %w", err), closeErr)
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context, key domain.CollectionKey) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM state WHERE bucket = ?`, string(key)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *Store) Save(ctx context.Context, key domain.CollectionKey, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (bucket, payload) VALUES (?, ?)
		 ON CONFLICT (bucket) DO UPDATE SET payload = excluded.payload`,
		string(key), payload)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
