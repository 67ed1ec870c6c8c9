// Package postgres provides a shared-server persistence backend for installs
// where the database outlives the host machine.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"tqmcore/pkg/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS state (
    bucket  TEXT PRIMARY KEY,
    payload JSONB NOT NULL
);`

// Store persists collection payloads in a postgres table, one row per
// collection. Payloads are JSON documents, so JSONB keeps them inspectable
// with plain SQL.
type Store struct {
	db *sql.DB
}

var _ domain.Store = (*Store)(nil)

// Open connects with the given DSN, verifies the connection, and prepares
// the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), closeErr)
	}
	if _, err := db.Exec(schema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("prepare postgres schema: %w", err), closeErr)
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context, key domain.CollectionKey) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM state WHERE bucket = $1`, string(key)).Scan(&payload)
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
		`INSERT INTO state (bucket, payload) VALUES ($1, $2)
		 ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload`,
		string(key), payload)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
