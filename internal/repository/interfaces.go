package repository

import (
	"context"
	"errors"

	"github.com/adelarue/backline/internal/domain"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type ItemRepo interface {
	Create(ctx context.Context, item *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	// List returns all items ordered by start time (unscheduled items last,
	// by creation time) so engine input order is stable across runs.
	List(ctx context.Context) ([]domain.ScheduleItem, error)
	Update(ctx context.Context, item *domain.ScheduleItem) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, edge *domain.DependencyEdge) error
	Delete(ctx context.Context, fromItemID, toItemID string) error
	ListAll(ctx context.Context) ([]domain.DependencyEdge, error)
	ListForItem(ctx context.Context, itemID string) ([]domain.DependencyEdge, error)
}

// Settings is the single-row studio configuration.
type Settings struct {
	BufferHours float64
	Granularity string
}

type SettingsRepo interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}
