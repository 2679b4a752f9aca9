package service

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/repository"
	"github.com/adelarue/backline/internal/timeline"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*repository.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) SetBufferHours(ctx context.Context, hours float64) (*repository.Settings, error) {
	if hours < 0 || hours > 24 {
		return nil, fmt.Errorf("buffer must be between 0 and 24 hours, got %v", hours)
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	current.BufferHours = hours
	if err := s.settings.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *settingsService) SetGranularity(ctx context.Context, granularity string) (*repository.Settings, error) {
	if !timeline.ValidGranularities[timeline.Granularity(granularity)] {
		return nil, fmt.Errorf("unknown granularity %q (valid: day, week, month, quarter, year)", granularity)
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	current.Granularity = granularity
	if err := s.settings.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
