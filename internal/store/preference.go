package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// KeyDarkMode is the only preference the app persists.
const KeyDarkMode = "darkMode"

// PreferenceRepo reads and writes local user preferences.
type PreferenceRepo interface {
	// DarkMode returns the saved theme preference, or false if none is saved.
	DarkMode(ctx context.Context) (bool, error)

	// SetDarkMode saves the theme preference.
	SetDarkMode(ctx context.Context, dark bool) error

	// Reset deletes every saved preference.
	Reset(ctx context.Context) error
}

type preferenceRepo struct {
	db *sql.DB
}

func (r *preferenceRepo) DarkMode(ctx context.Context) (bool, error) {
	v, ok, err := r.get(ctx, KeyDarkMode)
	if err != nil || !ok {
		return false, err
	}
	dark, err := strconv.ParseBool(v)
	if err != nil {
		// Anything but a recognised true reads as light, like the browser flag.
		return false, nil
	}
	return dark, nil
}

func (r *preferenceRepo) SetDarkMode(ctx context.Context, dark bool) error {
	return r.set(ctx, KeyDarkMode, strconv.FormatBool(dark))
}

func (r *preferenceRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preference`); err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}

func (r *preferenceRepo) get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preference WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return v, true, nil
}

func (r *preferenceRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preference (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}
