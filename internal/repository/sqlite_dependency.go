package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adelarue/backline/internal/db"
	"github.com/adelarue/backline/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo over a SQLite database or
// transaction.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(dbtx db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: dbtx}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, edge *domain.DependencyEdge) error {
	query := `INSERT INTO dependencies (from_item_id, to_item_id, kind, note) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		edge.FromItemID, edge.ToItemID, string(edge.Kind), edge.Note)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, fromItemID, toItemID string) error {
	query := `DELETE FROM dependencies WHERE from_item_id = ? AND to_item_id = ?`
	res, err := r.db.ExecContext(ctx, query, fromItemID, toItemID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("dependency %s -> %s: %w", fromItemID, toItemID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListAll(ctx context.Context) ([]domain.DependencyEdge, error) {
	query := `SELECT from_item_id, to_item_id, kind, note
		FROM dependencies ORDER BY from_item_id, to_item_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListForItem(ctx context.Context, itemID string) ([]domain.DependencyEdge, error) {
	query := `SELECT from_item_id, to_item_id, kind, note
		FROM dependencies WHERE from_item_id = ? OR to_item_id = ?
		ORDER BY from_item_id, to_item_id`
	rows, err := r.db.QueryContext(ctx, query, itemID, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies for item: %w", err)
	}
	defer rows.Close()
	return scanDependencies(rows)
}

// scanDependencies scans dependency rows, coercing stored kinds through the
// domain parser so unknown values read back as FS.
func scanDependencies(rows *sql.Rows) ([]domain.DependencyEdge, error) {
	var edges []domain.DependencyEdge
	for rows.Next() {
		var e domain.DependencyEdge
		var kindStr string
		if err := rows.Scan(&e.FromItemID, &e.ToItemID, &kindStr, &e.Note); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		e.Kind = domain.ParseDependencyKind(kindStr)
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return edges, nil
}
