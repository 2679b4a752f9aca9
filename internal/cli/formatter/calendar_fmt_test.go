package formatter

import (
	"testing"
	"time"

	"github.com/adelarue/backline/internal/contract"
	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
	"github.com/stretchr/testify/assert"
)

func TestFormatCalendar(t *testing.T) {
	start := time.Date(2025, 5, 1, 19, 0, 0, 0, time.UTC)
	item := domain.ScheduleItem{ID: "a", Title: "Brixton hold", Lane: "Live"}
	scheduled := timeline.Scheduled{Item: item, Start: start, End: start.Add(4 * time.Hour)}

	resp := &contract.CalendarResponse{
		Mode:   contract.CalendarDays,
		Window: timeline.Window{Start: start, End: start.AddDate(0, 0, 2)},
		Cells: []contract.CalendarCell{
			{
				Column: timeline.Column{Start: start, End: start.AddDate(0, 0, 1), Label: "Thu May 1"},
				Items:  []timeline.Scheduled{scheduled},
				Conflicts: []timeline.Conflict{
					{Items: [2]domain.ScheduleItem{item, item}, Severity: domain.SeverityWarning, Message: "overlap"},
				},
			},
			{
				Column: timeline.Column{Start: start.AddDate(0, 0, 1), End: start.AddDate(0, 0, 2), Label: "Fri May 2"},
			},
		},
		Unscheduled: []domain.ScheduleItem{{Title: "Draft promo"}},
	}

	out := FormatCalendar(resp)
	assert.Contains(t, out, "CALENDAR · DAYS")
	assert.Contains(t, out, "Thu May 1")
	assert.Contains(t, out, "Brixton hold")
	assert.Contains(t, out, "⚠ 1", "cells with conflicts carry a badge")
	assert.Contains(t, out, "Fri May 2")
	assert.Contains(t, out, "Draft promo")
}
