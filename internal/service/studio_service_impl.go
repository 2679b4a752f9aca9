package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adelarue/backline/internal/contract"
	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/repository"
	"github.com/adelarue/backline/internal/timeline"
)

type studioService struct {
	items    repository.ItemRepo
	deps     repository.DependencyRepo
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewStudioService(
	items repository.ItemRepo,
	deps repository.DependencyRepo,
	settings repository.SettingsRepo,
	observers ...UseCaseObserver,
) StudioService {
	return &studioService{
		items:    items,
		deps:     deps,
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *studioService) BuildStudio(ctx context.Context, req contract.StudioRequest) (*contract.StudioResponse, error) {
	started := time.Now()

	resp, err := s.buildStudio(ctx, req)

	event := UseCaseEvent{
		Name:      "studio_build",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if resp != nil {
		event.Fields = map[string]any{
			"item_count":     resp.ItemCount,
			"edge_count":     resp.EdgeCount,
			"conflict_count": len(resp.Result.Conflicts),
		}
	}
	s.observer.ObserveUseCase(ctx, event)

	return resp, err
}

func (s *studioService) buildStudio(ctx context.Context, req contract.StudioRequest) (*contract.StudioResponse, error) {
	now := resolveNow(req.Now)

	stored, err := s.settings.Get(ctx)
	if err != nil {
		return nil, &contract.StudioError{Code: contract.ErrInternalError, Message: err.Error()}
	}

	buffer, err := resolveBuffer(req.BufferHours, stored.BufferHours)
	if err != nil {
		return nil, err
	}

	granularity := timeline.ParseGranularity(stored.Granularity)
	if req.Granularity != "" {
		granularity = timeline.ParseGranularity(req.Granularity)
	}

	window, err := resolveWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, &contract.StudioError{Code: contract.ErrDataIntegrity, Message: err.Error()}
	}
	edges, err := s.deps.ListAll(ctx)
	if err != nil {
		return nil, &contract.StudioError{Code: contract.ErrDataIntegrity, Message: err.Error()}
	}

	result := timeline.Build(timeline.Input{
		Items:       items,
		Edges:       edges,
		Window:      window,
		Granularity: granularity,
		BufferHours: buffer,
		Now:         now,
	})

	return &contract.StudioResponse{
		GeneratedAt: now,
		Result:      result,
		BufferHours: buffer,
		ItemCount:   len(items),
		EdgeCount:   len(edges),
	}, nil
}

func (s *studioService) BuildCalendar(ctx context.Context, req contract.CalendarRequest) (*contract.CalendarResponse, error) {
	if req.Mode != contract.CalendarDays && req.Mode != contract.CalendarWeeks {
		return nil, &contract.CalendarError{
			Code:    contract.CalendarErrInvalidMode,
			Message: fmt.Sprintf("unknown calendar mode %q (valid: day, week)", req.Mode),
		}
	}

	now := resolveNow(req.Now)

	stored, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	buffer, err := resolveBuffer(req.BufferHours, stored.BufferHours)
	if err != nil {
		return nil, err
	}
	explicit, err := resolveWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	scheduled, unscheduled := timeline.ResolveSchedule(items)
	window := timeline.DeriveWindow(scheduled, explicit, now)

	var columns []timeline.Column
	if req.Mode == contract.CalendarDays {
		columns = timeline.BuildDayColumns(window)
	} else {
		columns = timeline.BuildWeekColumns(window)
	}

	// The conflict recheck runs per lane-and-column cell: the rules are the
	// global ones, the candidate set is only what that cell shows.
	cells := make([]contract.CalendarCell, 0, len(columns))
	for _, col := range columns {
		var hits []timeline.Scheduled
		byLane := make(map[string][]timeline.Scheduled)
		var lanes []string
		for _, s := range scheduled {
			if !timeline.ItemOverlapsColumn(s, col) {
				continue
			}
			hits = append(hits, s)
			lane := timeline.NormalizeLane(s.Item.Lane)
			if _, ok := byLane[lane]; !ok {
				lanes = append(lanes, lane)
			}
			byLane[lane] = append(byLane[lane], s)
		}

		var conflicts []timeline.Conflict
		for _, lane := range timeline.SortLanes(lanes) {
			conflicts = append(conflicts, timeline.CellConflicts(byLane[lane], buffer)...)
		}
		cells = append(cells, contract.CalendarCell{
			Column:    col,
			Items:     hits,
			Conflicts: conflicts,
		})
	}

	return &contract.CalendarResponse{
		GeneratedAt: now,
		Mode:        req.Mode,
		Window:      window,
		Cells:       cells,
		Unscheduled: unscheduled,
	}, nil
}

func resolveNow(explicit *time.Time) time.Time {
	if explicit != nil {
		return explicit.UTC()
	}
	return time.Now().UTC()
}

func resolveBuffer(override *float64, stored float64) (float64, error) {
	buffer := domain.Float64FromPtrWithDefault(stored, override)
	if buffer < 0 || buffer > 24 {
		return 0, &contract.StudioError{
			Code:    contract.ErrInvalidBuffer,
			Message: fmt.Sprintf("buffer must be between 0 and 24 hours, got %v", buffer),
		}
	}
	return buffer, nil
}

func resolveWindow(start, end *time.Time) (*timeline.Window, error) {
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil || end == nil {
		return nil, &contract.StudioError{
			Code:    contract.ErrInvalidWindow,
			Message: "window start and end must be supplied together",
		}
	}
	if !end.After(*start) {
		return nil, &contract.StudioError{
			Code:    contract.ErrInvalidWindow,
			Message: "window end must be after window start",
		}
	}
	return &timeline.Window{Start: *start, End: *end}, nil
}
