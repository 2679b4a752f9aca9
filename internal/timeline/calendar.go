package timeline

import (
	"fmt"
	"time"
)

// MaxWeekColumns caps the quarter view at 13 ISO weeks.
const MaxWeekColumns = 13

// Column is one cell-width slice of the display range in the calendar view:
// a calendar day or a Monday-aligned ISO week.
type Column struct {
	Start time.Time
	End   time.Time
	Label string
}

// BuildDayColumns decomposes the window into consecutive calendar days.
func BuildDayColumns(w Window) []Column {
	var cols []Column
	day := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, w.Start.Location())
	for day.Before(w.End) {
		next := day.AddDate(0, 0, 1)
		cols = append(cols, Column{Start: day, End: next, Label: day.Format("Mon Jan 2")})
		day = next
	}
	return cols
}

// BuildWeekColumns decomposes the window into consecutive Monday-aligned ISO
// weeks, capped at MaxWeekColumns.
func BuildWeekColumns(w Window) []Column {
	var cols []Column
	week := mondayOnOrBefore(w.Start)
	for week.Before(w.End) && len(cols) < MaxWeekColumns {
		next := week.AddDate(0, 0, 7)
		_, isoWeek := week.ISOWeek()
		cols = append(cols, Column{Start: week, End: next, Label: fmt.Sprintf("W%02d", isoWeek)})
		week = next
	}
	return cols
}

// ItemOverlapsColumn reports whether the item's resolved [Start, End)
// interval intersects the column's range.
func ItemOverlapsColumn(s Scheduled, col Column) bool {
	return s.Start.Before(col.End) && s.End.After(col.Start)
}

// CellConflicts re-runs the pairwise conflict rules restricted to the items
// visible in one lane/column cell, so a dense grid can show per-cell badges.
// The rules are identical to the global pass; only the candidate set is
// narrowed, which means a buffer-violating neighbor just outside the column
// is not seen here. That boundary effect is inherent to windowed analysis.
func CellConflicts(cellItems []Scheduled, bufferHours float64) []Conflict {
	return DetectConflicts(cellItems, bufferHours)
}
