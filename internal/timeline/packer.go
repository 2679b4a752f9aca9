package timeline

import (
	"sort"
	"time"

	"github.com/adelarue/backline/internal/domain"
)

// Scheduled is an item whose timestamps have been resolved to a concrete
// [Start, End) interval. Only scheduled items participate in packing,
// scaling, and conflict detection.
type Scheduled struct {
	Item  domain.ScheduleItem
	Start time.Time
	End   time.Time
}

// Packed is a Scheduled item with its assigned row within a lane.
type Packed struct {
	Scheduled
	RowIndex int
}

// ResolveSchedule splits items into scheduled ones with resolved intervals
// and unscheduled ones (no start time). Input order is preserved in both
// slices so downstream packing stays deterministic.
func ResolveSchedule(items []domain.ScheduleItem) (scheduled []Scheduled, unscheduled []domain.ScheduleItem) {
	for _, item := range items {
		if item.StartsAt == nil {
			unscheduled = append(unscheduled, item)
			continue
		}
		start := *item.StartsAt
		scheduled = append(scheduled, Scheduled{
			Item:  item,
			Start: start,
			End:   ResolveEnd(start, item.EndsAt),
		})
	}
	return scheduled, unscheduled
}

// PackRows assigns each item in one lane a row index such that no two items
// sharing a row overlap, using greedy first-fit packing over items sorted by
// start time (ties keep input order). The greedy earliest-available-row
// placement uses exactly as many rows as the maximum instantaneous overlap.
func PackRows(items []Scheduled) (packed []Packed, rowCount int) {
	if len(items) == 0 {
		return nil, 0
	}

	sorted := make([]Scheduled, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	// rowEnds[r] is the end of the last item placed in row r.
	var rowEnds []time.Time
	packed = make([]Packed, 0, len(sorted))

	for _, s := range sorted {
		row := -1
		for r, end := range rowEnds {
			if !end.After(s.Start) {
				row = r
				break
			}
		}
		if row == -1 {
			rowEnds = append(rowEnds, s.End)
			row = len(rowEnds) - 1
		} else {
			rowEnds[row] = s.End
		}
		packed = append(packed, Packed{Scheduled: s, RowIndex: row})
	}

	return packed, len(rowEnds)
}
