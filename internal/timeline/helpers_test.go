package timeline

import (
	"testing"
	"time"

	"github.com/adelarue/backline/internal/domain"
	"github.com/stretchr/testify/require"
)

// mustTime parses an RFC3339 timestamp or fails the test.
func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

// testItem builds a scheduled item from RFC3339 strings. Empty start leaves
// the item unscheduled; empty end leaves EndsAt nil.
func testItem(t *testing.T, id, lane, territory, start, end string) domain.ScheduleItem {
	t.Helper()
	item := domain.ScheduleItem{
		ID:        id,
		Title:     "Item " + id,
		Type:      domain.ItemLiveHold,
		Lane:      lane,
		Territory: territory,
	}
	if start != "" {
		ts := mustTime(t, start)
		item.StartsAt = &ts
	}
	if end != "" {
		te := mustTime(t, end)
		item.EndsAt = &te
	}
	return item
}

// testScheduled resolves a single test item into its Scheduled form.
func testScheduled(t *testing.T, id, lane, territory, start, end string) Scheduled {
	t.Helper()
	scheduled, _ := ResolveSchedule([]domain.ScheduleItem{testItem(t, id, lane, territory, start, end)})
	require.Len(t, scheduled, 1)
	return scheduled[0]
}
