package testutil

import (
	"time"

	"github.com/adelarue/backline/internal/domain"
)

// Schedule item options
type ItemOption func(*domain.ScheduleItem)

func WithType(ty domain.ItemType) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Type = ty
		it.Lane = domain.LaneForType(ty)
	}
}

func WithLane(lane string) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Lane = lane
	}
}

func WithSchedule(start, end time.Time) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.StartsAt = &start
		it.EndsAt = &end
	}
}

func WithStart(start time.Time) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.StartsAt = &start
	}
}

func WithTerritory(territory string) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Territory = territory
	}
}

func WithPriority(p int) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Priority = p
	}
}

func WithNote(note string) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Note = note
	}
}

// NewTestItem builds an unscheduled live-hold item with the given ID.
// Options schedule it or move it to another lane.
func NewTestItem(id, title string, opts ...ItemOption) *domain.ScheduleItem {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	it := &domain.ScheduleItem{
		ID:        id,
		Title:     title,
		Type:      domain.ItemLiveHold,
		Lane:      "Live",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// NewTestEdge builds a finish-to-start dependency edge between two items.
func NewTestEdge(from, to string) *domain.DependencyEdge {
	return &domain.DependencyEdge{FromItemID: from, ToItemID: to, Kind: domain.DependencyFS}
}
