package timeline

import (
	"testing"
	"time"

	"github.com/adelarue/backline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FullPass(t *testing.T) {
	items := []domain.ScheduleItem{
		testItem(t, "a", "Live", "UK", "2025-01-01T10:00:00Z", "2025-01-01T12:00:00Z"),
		testItem(t, "b", "Live", "UK", "2025-01-01T11:00:00Z", "2025-01-01T13:00:00Z"),
		testItem(t, "c", "Travel", "", "2025-01-02T08:00:00Z", "2025-01-02T10:00:00Z"),
		testItem(t, "draft", "Live", "", "", ""), // unscheduled
	}
	edges := []domain.DependencyEdge{
		{FromItemID: "a", ToItemID: "c", Kind: domain.DependencyFS},
		{FromItemID: "draft", ToItemID: "c", Kind: domain.DependencyFS}, // unscheduled endpoint
	}

	result := Build(Input{
		Items:       items,
		Edges:       edges,
		Granularity: GranularityWeek,
		BufferHours: 4,
	})

	// Lanes stack in canonical order.
	require.Len(t, result.Lanes, 2)
	assert.Equal(t, "Live", result.Lanes[0].Name)
	assert.Equal(t, "Travel", result.Lanes[1].Name)

	// Overlapping Live items packed into two rows (scenario 1).
	live := result.Lanes[0]
	require.Len(t, live.Items, 2)
	assert.Equal(t, 2, live.RowCount)
	assert.Equal(t, "a", live.Items[0].Item.ID)
	assert.Equal(t, 0, live.Items[0].RowIndex)
	assert.Equal(t, "b", live.Items[1].Item.ID)
	assert.Equal(t, 1, live.Items[1].RowIndex)

	// Vertical contract: Live lane starts below the axis header, Travel
	// directly below Live.
	assert.Equal(t, HeaderHeight, live.Top)
	assert.Equal(t, 2*RowHeight+RowGap+2*LanePadding, live.Height)
	assert.Equal(t, live.Top+live.Height, result.Lanes[1].Top)
	assert.Equal(t, result.Lanes[1].Top+result.Lanes[1].Height, result.TotalHeight)

	// One lane conflict and one territory conflict between a and b.
	require.Len(t, result.Conflicts, 2)

	// The unscheduled item is enumerable but appears in no lane and anchors
	// no edge; only a→c survives.
	require.Len(t, result.Unscheduled, 1)
	assert.Equal(t, "draft", result.Unscheduled[0].ID)
	require.Len(t, result.Edges, 1)
	assert.Equal(t, "a", result.Edges[0].Edge.FromItemID)

	require.NotEmpty(t, result.Ticks)
}

func TestBuild_MissingEndGetsTwoHourFloor(t *testing.T) {
	// Concrete scenario: start 09:00Z with no end resolves to 11:00Z, and
	// the width ratio reflects exactly two hours of the active window.
	window := Window{
		Start: mustTime(t, "2025-03-01T00:00:00Z"),
		End:   mustTime(t, "2025-03-02T00:00:00Z"),
	}
	items := []domain.ScheduleItem{testItem(t, "a", "Live", "", "2025-03-01T09:00:00Z", "")}

	result := Build(Input{Items: items, Window: &window})

	require.Len(t, result.Lanes, 1)
	require.Len(t, result.Lanes[0].Items, 1)
	p := result.Lanes[0].Items[0]
	assert.Equal(t, mustTime(t, "2025-03-01T11:00:00Z"), p.End)
	assert.InDelta(t, 2.0/24.0, p.WidthRatio, 1e-9)
	assert.InDelta(t, 9.0/24.0, p.LeftRatio, 1e-9)
}

func TestBuild_DerivedWindowPadsRange(t *testing.T) {
	items := []domain.ScheduleItem{
		testItem(t, "a", "Live", "", "2025-01-10T00:00:00Z", "2025-01-12T00:00:00Z"),
	}

	result := Build(Input{Items: items})

	// Two-day span: one-day padding dominates the 5% rule.
	assert.Equal(t, mustTime(t, "2025-01-09T00:00:00Z"), result.Window.Start)
	assert.Equal(t, mustTime(t, "2025-01-13T00:00:00Z"), result.Window.End)
}

func TestBuild_DerivedWindowUsesPercentPaddingOnLongRanges(t *testing.T) {
	items := []domain.ScheduleItem{
		testItem(t, "a", "Live", "", "2025-01-01T00:00:00Z", "2025-01-02T00:00:00Z"),
		testItem(t, "b", "Live", "", "2025-03-01T00:00:00Z", "2025-03-02T00:00:00Z"),
	}

	result := Build(Input{Items: items})

	// 60-day span: 5% (3 days) beats the one-day floor.
	span := mustTime(t, "2025-03-02T00:00:00Z").Sub(mustTime(t, "2025-01-01T00:00:00Z"))
	pad := span / 20
	assert.Equal(t, mustTime(t, "2025-01-01T00:00:00Z").Add(-pad), result.Window.Start)
	assert.Equal(t, mustTime(t, "2025-03-02T00:00:00Z").Add(pad), result.Window.End)
}

func TestBuild_EmptyItemSetFallsBackToDefaultWindow(t *testing.T) {
	now := mustTime(t, "2025-06-15T12:00:00Z")

	result := Build(Input{Now: now})

	assert.Equal(t, now.AddDate(0, 0, -3), result.Window.Start)
	assert.Equal(t, now.AddDate(0, 0, 10), result.Window.End)
	assert.Empty(t, result.Lanes)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.Edges)
	assert.Equal(t, HeaderHeight, result.TotalHeight)
}

func TestBuild_Deterministic(t *testing.T) {
	items := []domain.ScheduleItem{
		testItem(t, "a", "Live", "UK", "2025-01-01T10:00:00Z", "2025-01-01T12:00:00Z"),
		testItem(t, "b", "Live", "UK", "2025-01-01T11:00:00Z", "2025-01-01T13:00:00Z"),
		testItem(t, "c", "", "JP", "2025-01-01T14:00:00Z", ""),
	}
	edges := []domain.DependencyEdge{{FromItemID: "a", ToItemID: "c", Kind: domain.DependencySS}}

	in := Input{Items: items, Edges: edges, BufferHours: 6, Now: mustTime(t, "2025-06-15T12:00:00Z")}

	first := Build(in)
	second := Build(in)

	assert.Equal(t, first, second, "re-running on identical input must be byte-identical")
}

func TestBuild_EmptyLaneLabelLandsInDefaultLane(t *testing.T) {
	items := []domain.ScheduleItem{
		testItem(t, "a", "", "", "2025-01-01T10:00:00Z", "2025-01-01T12:00:00Z"),
	}

	result := Build(Input{Items: items})

	require.Len(t, result.Lanes, 1)
	assert.Equal(t, domain.DefaultLane, result.Lanes[0].Name)
}

func TestBuild_IsPure(t *testing.T) {
	start := mustTime(t, "2025-01-01T10:00:00Z")
	end := start.Add(-time.Hour) // inverted on purpose
	items := []domain.ScheduleItem{{ID: "a", Title: "A", Lane: "Live", StartsAt: &start, EndsAt: &end}}

	Build(Input{Items: items})

	// The engine corrects the inverted end in its output only; the caller's
	// item is untouched.
	assert.Equal(t, start.Add(-time.Hour), *items[0].EndsAt)
}
