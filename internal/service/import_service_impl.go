package service

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/db"
	"github.com/adelarue/backline/internal/importer"
	"github.com/adelarue/backline/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportTimeline(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportTimelineFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)

	result := &ImportResult{
		ItemCount:       len(generated.Items),
		DependencyCount: len(generated.Edges),
	}

	// All writes land in one transaction so a failed import leaves nothing behind.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)
		txSettings := repository.NewSQLiteSettingsRepo(tx)

		for _, item := range generated.Items {
			if err := txItems.Create(ctx, item); err != nil {
				return fmt.Errorf("creating item %q: %w", item.Title, err)
			}
		}
		for i := range generated.Edges {
			if err := txDeps.Create(ctx, &generated.Edges[i]); err != nil {
				return fmt.Errorf("creating dependency: %w", err)
			}
		}

		if generated.BufferHours != nil || generated.Granularity != nil {
			stored, err := txSettings.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			if generated.BufferHours != nil {
				stored.BufferHours = *generated.BufferHours
			}
			if generated.Granularity != nil {
				stored.Granularity = *generated.Granularity
			}
			if err := txSettings.Update(ctx, stored); err != nil {
				return fmt.Errorf("updating settings: %w", err)
			}
			result.SettingsUpdated = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
