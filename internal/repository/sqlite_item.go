package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/adelarue/backline/internal/db"
	"github.com/adelarue/backline/internal/domain"
)

// itemColumns is the canonical SELECT column list for schedule_items.
const itemColumns = `id, title, type, lane, starts_at, ends_at,
		territory, priority, note, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo over a SQLite database or transaction.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo. Pass a *sql.Tx to get a
// transaction-scoped repository.
func NewSQLiteItemRepo(dbtx db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: dbtx}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.ScheduleItem) error {
	query := `INSERT INTO schedule_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		string(item.Type),
		item.Lane,
		nullableTimeToString(item.StartsAt, time.RFC3339),
		nullableTimeToString(item.EndsAt, time.RFC3339),
		item.Territory,
		item.Priority,
		item.Note,
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM schedule_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule item: %w", err)
	}
	return item, nil
}

func (r *SQLiteItemRepo) List(ctx context.Context) ([]domain.ScheduleItem, error) {
	// Scheduled items first by start time; unscheduled last by creation.
	// This ordering is the engine's deterministic input order.
	query := `SELECT ` + itemColumns + ` FROM schedule_items
		ORDER BY starts_at IS NULL, starts_at, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedule items: %w", err)
	}
	defer rows.Close()

	var items []domain.ScheduleItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.ScheduleItem) error {
	query := `UPDATE schedule_items SET
		title = ?, type = ?, lane = ?, starts_at = ?, ends_at = ?,
		territory = ?, priority = ?, note = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Title,
		string(item.Type),
		item.Lane,
		nullableTimeToString(item.StartsAt, time.RFC3339),
		nullableTimeToString(item.EndsAt, time.RFC3339),
		item.Territory,
		item.Priority,
		item.Note,
		item.UpdatedAt.Format(time.RFC3339),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("schedule item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*domain.ScheduleItem, error) {
	var item domain.ScheduleItem
	var typeStr string
	var startsAtStr, endsAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	if err := s.Scan(
		&item.ID,
		&item.Title,
		&typeStr,
		&item.Lane,
		&startsAtStr,
		&endsAtStr,
		&item.Territory,
		&item.Priority,
		&item.Note,
		&createdAtStr,
		&updatedAtStr,
	); err != nil {
		return nil, err
	}

	item.Type = domain.ItemType(typeStr)
	item.StartsAt = parseNullableTime(startsAtStr, time.RFC3339)
	item.EndsAt = parseNullableTime(endsAtStr, time.RFC3339)
	if t, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
		item.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAtStr); err == nil {
		item.UpdatedAt = t
	}
	return &item, nil
}
