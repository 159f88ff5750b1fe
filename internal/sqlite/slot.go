package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/proyek-akademik/internal/repository"
)

// SlotRepository stores string values under string keys. It implements
// project.Storage.
type SlotRepository struct {
	db *DB
}

// NewSlotRepository creates a new SlotRepository
func NewSlotRepository(db *DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Get returns the value stored under key, or repository.ErrNotFound
func (r *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errEmptyKey
	}

	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get slot %q: %w", key, err)
	}

	return value, nil
}

// Set writes value under key, replacing any previous value
func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errEmptyKey
	}

	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		if isBusy(err) {
			return fmt.Errorf("slot %q is locked by another writer: %w", key, err)
		}
		return fmt.Errorf("failed to set slot %q: %w", key, err)
	}

	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (r *SlotRepository) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errEmptyKey
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		if isBusy(err) {
			return fmt.Errorf("slot %q is locked by another writer: %w", key, err)
		}
		return fmt.Errorf("failed to remove slot %q: %w", key, err)
	}

	return nil
}
