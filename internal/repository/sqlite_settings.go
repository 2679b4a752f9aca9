package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adelarue/backline/internal/db"
)

// SQLiteSettingsRepo implements SettingsRepo over the single-row settings table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(dbtx db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: dbtx}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.db.QueryRowContext(ctx,
		`SELECT buffer_hours, granularity FROM settings WHERE id = 1`,
	).Scan(&s.BufferHours, &s.Granularity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Update(ctx context.Context, s *Settings) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE settings SET buffer_hours = ?, granularity = ? WHERE id = 1`,
		s.BufferHours, s.Granularity)
	if err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	return nil
}
