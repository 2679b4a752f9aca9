package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDayColumns(t *testing.T) {
	w := testWindow(t, "2025-01-01T06:00:00Z", "2025-01-04T06:00:00Z")

	cols := BuildDayColumns(w)

	require.Len(t, cols, 4) // Jan 1 through Jan 4
	assert.Equal(t, "Wed Jan 1", cols[0].Label)
	assert.Equal(t, mustTime(t, "2025-01-01T00:00:00Z"), cols[0].Start)
	assert.Equal(t, mustTime(t, "2025-01-02T00:00:00Z"), cols[0].End)
	assert.Equal(t, "Sat Jan 4", cols[3].Label)

	// Columns tile the window with no gaps.
	for i := 1; i < len(cols); i++ {
		assert.Equal(t, cols[i-1].End, cols[i].Start)
	}
}

func TestBuildWeekColumns_MondayAlignedAndCapped(t *testing.T) {
	// 2025-01-01 is a Wednesday; its ISO week starts Monday 2024-12-30.
	w := testWindow(t, "2025-01-01T00:00:00Z", "2025-01-20T00:00:00Z")

	cols := BuildWeekColumns(w)

	require.Len(t, cols, 3)
	assert.Equal(t, mustTime(t, "2024-12-30T00:00:00Z"), cols[0].Start)
	assert.Equal(t, "W01", cols[0].Label)
	assert.Equal(t, "W03", cols[2].Label)

	// A six-month window caps at 13 week columns.
	long := testWindow(t, "2025-01-01T00:00:00Z", "2025-07-01T00:00:00Z")
	assert.Len(t, BuildWeekColumns(long), MaxWeekColumns)
}

func TestItemOverlapsColumn(t *testing.T) {
	col := Column{
		Start: mustTime(t, "2025-01-02T00:00:00Z"),
		End:   mustTime(t, "2025-01-03T00:00:00Z"),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside", "2025-01-02T10:00:00Z", "2025-01-02T12:00:00Z", true},
		{"spans column", "2025-01-01T00:00:00Z", "2025-01-05T00:00:00Z", true},
		{"ends at column start", "2025-01-01T20:00:00Z", "2025-01-02T00:00:00Z", false},
		{"starts at column end", "2025-01-03T00:00:00Z", "2025-01-03T04:00:00Z", false},
		{"straddles start", "2025-01-01T22:00:00Z", "2025-01-02T02:00:00Z", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testScheduled(t, "a", "Live", "", tc.start, tc.end)
			assert.Equal(t, tc.want, ItemOverlapsColumn(s, col))
		})
	}
}

func TestCellConflicts_MatchesGlobalRulesOnNarrowedSet(t *testing.T) {
	a := testScheduled(t, "a", "Live", "UK", "2025-01-02T10:00:00Z", "2025-01-02T12:00:00Z")
	b := testScheduled(t, "b", "Live", "UK", "2025-01-02T11:00:00Z", "2025-01-02T13:00:00Z")
	// Same pair through the global detector.
	global := DetectConflicts([]Scheduled{a, b}, 4)

	cell := CellConflicts([]Scheduled{a, b}, 4)

	assert.Equal(t, global, cell)
	require.Len(t, cell, 2) // lane overlap + territory buffer
}
