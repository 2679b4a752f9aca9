package service

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/repository"
)

type dependencyService struct {
	items repository.ItemRepo
	deps  repository.DependencyRepo
}

func NewDependencyService(items repository.ItemRepo, deps repository.DependencyRepo) DependencyService {
	return &dependencyService{items: items, deps: deps}
}

func (s *dependencyService) Create(ctx context.Context, edge *domain.DependencyEdge) error {
	if edge.FromItemID == edge.ToItemID {
		return fmt.Errorf("an item cannot depend on itself")
	}
	if _, err := s.items.GetByID(ctx, edge.FromItemID); err != nil {
		return fmt.Errorf("source item %s: %w", edge.FromItemID, err)
	}
	if _, err := s.items.GetByID(ctx, edge.ToItemID); err != nil {
		return fmt.Errorf("target item %s: %w", edge.ToItemID, err)
	}
	edge.Kind = domain.ParseDependencyKind(string(edge.Kind))
	return s.deps.Create(ctx, edge)
}

func (s *dependencyService) Delete(ctx context.Context, fromItemID, toItemID string) error {
	return s.deps.Delete(ctx, fromItemID, toItemID)
}

func (s *dependencyService) ListAll(ctx context.Context) ([]domain.DependencyEdge, error) {
	return s.deps.ListAll(ctx)
}

func (s *dependencyService) ListForItem(ctx context.Context, itemID string) ([]domain.DependencyEdge, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.deps.ListForItem(ctx, itemID)
}
