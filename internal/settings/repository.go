package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/HerbHall/salesdesk/internal/store"
	"github.com/HerbHall/salesdesk/internal/theme"
)

// ErrNotFound is returned when a settings key does not exist.
var ErrNotFound = errors.New("setting not found")

// ThemeKey is the key of the admin theme record.
const ThemeKey = "theme"

// Setting is one stored key/value pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

var migrations = []store.Migration{
	{
		Version:     1,
		Description: "create settings table",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE settings (
					key        TEXT     PRIMARY KEY,
					value      TEXT     NOT NULL,
					updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`)
			return err
		},
	},
}

// Repository persists settings in SQLite.
type Repository struct {
	db *sql.DB
}

// Compile-time interface guard.
var _ theme.OverrideSource = (*Repository)(nil)

// NewRepository runs the settings migrations and returns a Repository.
func NewRepository(ctx context.Context, s store.Migrator) (*Repository, error) {
	if err := s.Migrate(ctx, "settings", migrations); err != nil {
		return nil, fmt.Errorf("settings migrations: %w", err)
	}
	return &Repository{db: s.DB()}, nil
}

// Get returns the setting for key, or ErrNotFound.
func (r *Repository) Get(ctx context.Context, key string) (*Setting, error) {
	var s Setting
	err := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = ?`, key,
	).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get setting %q: %w", key, err)
	}
	return &s, nil
}

// Set creates or replaces the value for key.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAll returns every setting ordered by key.
func (r *Repository) GetAll(ctx context.Context) ([]Setting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ThemeOverride reads the stored theme record. A missing record is reported
// as theme.ErrRecordNotFound.
func (r *Repository) ThemeOverride(ctx context.Context) (theme.Override, error) {
	s, err := r.Get(ctx, ThemeKey)
	if errors.Is(err, ErrNotFound) {
		return theme.Override{}, theme.ErrRecordNotFound
	}
	if err != nil {
		return theme.Override{}, err
	}

	var ov theme.Override
	if err := json.Unmarshal([]byte(s.Value), &ov); err != nil {
		return theme.Override{}, fmt.Errorf("decode theme record: %w", err)
	}
	return ov, nil
}

// SaveThemeOverride replaces the stored theme record.
func (r *Repository) SaveThemeOverride(ctx context.Context, ov theme.Override) error {
	data, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("encode theme record: %w", err)
	}
	return r.Set(ctx, ThemeKey, string(data))
}
