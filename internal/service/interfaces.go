package service

import (
	"context"

	"github.com/adelarue/backline/internal/contract"
	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/importer"
	"github.com/adelarue/backline/internal/repository"
)

type ItemService interface {
	Create(ctx context.Context, item *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error)
	List(ctx context.Context) ([]domain.ScheduleItem, error)
	ListUnscheduled(ctx context.Context) ([]domain.ScheduleItem, error)
	Update(ctx context.Context, item *domain.ScheduleItem) error
	Delete(ctx context.Context, id string) error
}

type DependencyService interface {
	Create(ctx context.Context, edge *domain.DependencyEdge) error
	Delete(ctx context.Context, fromItemID, toItemID string) error
	ListAll(ctx context.Context) ([]domain.DependencyEdge, error)
	ListForItem(ctx context.Context, itemID string) ([]domain.DependencyEdge, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*repository.Settings, error)
	SetBufferHours(ctx context.Context, hours float64) (*repository.Settings, error)
	SetGranularity(ctx context.Context, granularity string) (*repository.Settings, error)
}

type StudioService interface {
	BuildStudio(ctx context.Context, req contract.StudioRequest) (*contract.StudioResponse, error)
	BuildCalendar(ctx context.Context, req contract.CalendarRequest) (*contract.CalendarResponse, error)
}

// ImportResult holds the outcome of an itinerary import.
type ImportResult struct {
	ItemCount       int
	DependencyCount int
	SettingsUpdated bool
}

type ImportService interface {
	ImportTimeline(ctx context.Context, filePath string) (*ImportResult, error)
	ImportTimelineFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
