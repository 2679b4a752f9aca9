// Package timeline implements the studio scheduling engine: greedy row
// packing of items into lanes, a normalized horizontal time scale, pairwise
// conflict detection, and rendering-oriented dependency resolution.
//
// The engine is a pure, synchronous computation: identical input produces
// identical output, and it holds no state between invocations.
package timeline

import (
	"time"

	"github.com/adelarue/backline/internal/domain"
)

// Vertical layout constants. These are part of the output contract the
// rendering layer positions against.
const (
	HeaderHeight = 48 // reserved at the top for the time axis
	RowHeight    = 36
	RowGap       = 8
	LanePadding  = 12
)

// PositionedItem is the engine's per-item output: the original item plus its
// resolved interval, normalized horizontal position, and vertical placement.
type PositionedItem struct {
	Item       domain.ScheduleItem
	Start      time.Time
	End        time.Time
	LeftRatio  float64
	WidthRatio float64
	RowIndex   int
	Top        int
	Height     int
}

// LaneLayout is the per-lane output: positioned items, the number of packed
// rows, and the lane's vertical extent in the stacked layout.
type LaneLayout struct {
	Name     string
	Items    []PositionedItem
	RowCount int
	Top      int
	Height   int
}

// Input is everything a single engine run needs. Window may be nil, in which
// case the range is derived from the scheduled items (falling back to a
// window around Now when nothing is scheduled).
type Input struct {
	Items       []domain.ScheduleItem
	Edges       []domain.DependencyEdge
	Window      *Window
	Granularity Granularity
	BufferHours float64
	Now         time.Time
}

// Result is the engine's single output contract.
type Result struct {
	Window      Window
	Granularity Granularity
	Ticks       []Tick
	Lanes       []LaneLayout
	Unscheduled []domain.ScheduleItem
	Conflicts   []Conflict
	Edges       []ResolvedEdge
	TotalHeight int
}

// Build runs the full engine pass over the supplied items and edges.
// Malformed input degrades rather than failing: unscheduled items are listed
// separately, dangling edges are dropped, and an empty item set produces an
// empty layout over a default window.
func Build(in Input) Result {
	scheduled, unscheduled := ResolveSchedule(in.Items)

	window := DeriveWindow(scheduled, in.Window, in.Now)
	granularity := in.Granularity
	if granularity == "" {
		granularity = GranularityWeek
	}

	lanes, positioned := layoutLanes(scheduled, window)

	return Result{
		Window:      window,
		Granularity: granularity,
		Ticks:       BuildTicks(window, granularity),
		Lanes:       lanes,
		Unscheduled: unscheduled,
		Conflicts:   DetectConflicts(scheduled, in.BufferHours),
		Edges:       ResolveDependencies(in.Edges, positioned),
		TotalHeight: totalHeight(lanes),
	}
}

// DeriveWindow returns the explicit window if supplied, otherwise scans the
// scheduled items for min(start) / max(end) and pads each side by one day or
// 5% of the span, whichever is larger. With no scheduled items the window
// falls back to 3 days before now through 10 days after.
func DeriveWindow(scheduled []Scheduled, explicit *Window, now time.Time) Window {
	if explicit != nil {
		return *explicit
	}
	if len(scheduled) == 0 {
		return Window{Start: now.AddDate(0, 0, -3), End: now.AddDate(0, 0, 10)}
	}

	min, max := scheduled[0].Start, scheduled[0].End
	for _, s := range scheduled[1:] {
		if s.Start.Before(min) {
			min = s.Start
		}
		if s.End.After(max) {
			max = s.End
		}
	}

	pad := 24 * time.Hour
	if pct := max.Sub(min) / 20; pct > pad {
		pad = pct
	}
	return Window{Start: min.Add(-pad), End: max.Add(pad)}
}

// layoutLanes groups scheduled items by normalized lane, packs each lane's
// rows, and stacks lanes vertically in canonical order below the axis header.
// It also returns a positioned-item index keyed by item ID for dependency
// anchoring.
func layoutLanes(scheduled []Scheduled, window Window) ([]LaneLayout, map[string]PositionedItem) {
	byLane := make(map[string][]Scheduled)
	var encountered []string
	for _, s := range scheduled {
		lane := NormalizeLane(s.Item.Lane)
		if _, ok := byLane[lane]; !ok {
			encountered = append(encountered, lane)
		}
		byLane[lane] = append(byLane[lane], s)
	}

	positioned := make(map[string]PositionedItem, len(scheduled))
	var lanes []LaneLayout
	top := HeaderHeight

	for _, name := range SortLanes(encountered) {
		packed, rowCount := PackRows(byLane[name])

		height := rowCount*RowHeight + (rowCount-1)*RowGap + 2*LanePadding
		lane := LaneLayout{
			Name:     name,
			RowCount: rowCount,
			Top:      top,
			Height:   height,
			Items:    make([]PositionedItem, 0, len(packed)),
		}

		for _, p := range packed {
			left := window.Ratio(p.Start)
			item := PositionedItem{
				Item:       p.Item,
				Start:      p.Start,
				End:        p.End,
				LeftRatio:  left,
				WidthRatio: window.Ratio(p.End) - left,
				RowIndex:   p.RowIndex,
				Top:        top + LanePadding + p.RowIndex*(RowHeight+RowGap),
				Height:     RowHeight,
			}
			lane.Items = append(lane.Items, item)
			positioned[item.Item.ID] = item
		}

		lanes = append(lanes, lane)
		top += height
	}

	return lanes, positioned
}

func totalHeight(lanes []LaneLayout) int {
	if len(lanes) == 0 {
		return HeaderHeight
	}
	last := lanes[len(lanes)-1]
	return last.Top + last.Height
}
