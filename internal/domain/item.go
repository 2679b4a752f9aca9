package domain

import (
	"strings"
	"time"
)

// ScheduleItem is a thing placed on the timeline: a live hold, a travel
// segment, a promo slot, a milestone, or a legal/finance action.
// Either timestamp may be absent; an item without a start is "unscheduled"
// and excluded from layout and conflict detection.
type ScheduleItem struct {
	ID        string
	Title     string
	Type      ItemType
	Lane      string
	StartsAt  *time.Time
	EndsAt    *time.Time
	Territory string
	Priority  int
	Note      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled reports whether the item has a resolvable start time.
func (i ScheduleItem) IsScheduled() bool {
	return i.StartsAt != nil
}

// EffectiveLane returns the item's lane label, falling back to the type's
// default lane and then the catch-all lane.
func (i ScheduleItem) EffectiveLane() string {
	if lane := strings.TrimSpace(i.Lane); lane != "" {
		return lane
	}
	return LaneForType(i.Type)
}
