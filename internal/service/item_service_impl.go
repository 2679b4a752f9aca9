package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items repository.ItemRepo
}

func NewItemService(items repository.ItemRepo) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(ctx context.Context, item *domain.ScheduleItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.Lane = item.EffectiveLane()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.items.Create(ctx, item)
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context) ([]domain.ScheduleItem, error) {
	return s.items.List(ctx)
}

func (s *itemService) ListUnscheduled(ctx context.Context) ([]domain.ScheduleItem, error) {
	all, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	var drafts []domain.ScheduleItem
	for _, item := range all {
		if !item.IsScheduled() {
			drafts = append(drafts, item)
		}
	}
	return drafts, nil
}

func (s *itemService) Update(ctx context.Context, item *domain.ScheduleItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item.Lane = item.EffectiveLane()
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func validateItem(item *domain.ScheduleItem) error {
	if item.Title == "" {
		return fmt.Errorf("item title is required")
	}
	if !domain.ValidItemTypes[string(item.Type)] {
		return fmt.Errorf("unknown item type %q", item.Type)
	}
	if item.Priority < 0 {
		return fmt.Errorf("priority must not be negative")
	}
	return nil
}
