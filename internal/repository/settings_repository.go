package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SettingsRepository provides data access methods for the setting table,
// a small key/value store for application settings such as the encrypted
// quotes API key.
type SettingsRepository struct {
	q Querier
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{q: db}
}

// Get retrieves a setting value by key.
// Returns ("", false, nil) when the key is not present.
func (s *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.q.QueryRowContext(ctx, `SELECT value FROM setting WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query setting table: %w", err)
	}

	return value, true, nil
}

// Set stores a setting value, replacing any existing value for the key.
func (s *SettingsRepository) Set(ctx context.Context, key, value string) error {
	query := `
          INSERT INTO setting (key, value) VALUES (?, ?)
          ON CONFLICT (key) DO UPDATE SET value = excluded.value
      `
	if _, err := s.q.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to store setting: %w", err)
	}
	return nil
}
