package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SlotRepository persists named string slots in the client database.
// A missing slot reads back as the empty string, not an error.
type SlotRepository struct {
	db DBTX
}

func NewSlotRepository(db DBTX) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get slot[%s]: %w", name, err)
	}
	return value, nil
}

func (r *SlotRepository) Set(ctx context.Context, name, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, value)
	if err != nil {
		return fmt.Errorf("failed to set slot[%s]: %w", name, err)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete slot[%s]: %w", name, err)
	}
	return nil
}

// Clear removes every slot. Used on session-invalidating failures and logout,
// mirroring the all-or-nothing wipe of client session state.
func (r *SlotRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots`)
	if err != nil {
		return fmt.Errorf("failed to clear slots: %w", err)
	}
	return nil
}
