package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"edna/ports"

	"github.com/jmoiron/sqlx"
)

// flagStore implements the KeyValueStore interface over the user_flags table
type flagStore struct {
	db *sqlx.DB
}

// NewFlagStore creates a Postgres-backed key-value store
func NewFlagStore(db *sqlx.DB) ports.KeyValueStore {
	return &flagStore{db: db}
}

func (s *flagStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM user_flags WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get flag %s: %w", key, err)
	}
	return value, true, nil
}

func (s *flagStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO user_flags (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set flag %s: %w", key, err)
	}
	return nil
}
