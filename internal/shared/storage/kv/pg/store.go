package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resume-studio/internal/shared/storage/kv"
)

// Store implements kv.Store on a single Postgres table.
type Store struct {
	DB *sql.DB
}

// New constructs a Postgres-backed store. The kv_blobs table is created by
// the embedded migrations (see internal/shared/storage/db).
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	row := s.DB.QueryRowContext(ctx, `
SELECT value FROM kv_blobs WHERE key = $1`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("select blob: %w", err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.DB.ExecContext(ctx, `
INSERT INTO kv_blobs (key, value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert blob: %w", err)
	}
	return nil
}
