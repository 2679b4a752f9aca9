package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/adelarue/backline/internal/domain"
)

// Conflict is a detected scheduling problem between exactly two items.
// The ID is deterministic across runs with identical input so UI lists can
// update stably.
type Conflict struct {
	ID       string
	Items    [2]domain.ScheduleItem
	Severity domain.Severity
	Message  string
}

const (
	categoryLane      = "lane"
	categoryTerritory = "territory"
	categoryTravel    = "travel"
)

// DetectConflicts runs the pairwise conflict rules over all scheduled items:
//
//  1. Lane overlap (warning): same lane, overlapping [start, end) intervals.
//  2. Territory buffer violation (error): same non-empty territory, start
//     times closer than the buffer, regardless of overlap.
//  3. Travel adjacency violation (warning): different non-empty territories
//     with less than the buffer between the first item's end and the second
//     item's start.
//
// Each pair can contribute at most one conflict per category. Conflicts are
// informational only; nothing is mutated or auto-resolved.
func DetectConflicts(items []Scheduled, bufferHours float64) []Conflict {
	buffer := time.Duration(bufferHours * float64(time.Hour))

	var conflicts []Conflict
	seen := make(map[string]bool)

	emit := func(c Conflict) {
		if seen[c.ID] {
			return
		}
		seen[c.ID] = true
		conflicts = append(conflicts, c)
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]

			if c, ok := laneOverlapConflict(a, b); ok {
				emit(c)
			}
			if c, ok := territoryBufferConflict(a, b, buffer, bufferHours); ok {
				emit(c)
			}
			if c, ok := travelAdjacencyConflict(a, b, buffer, bufferHours); ok {
				emit(c)
			}
		}
	}

	return conflicts
}

func laneOverlapConflict(a, b Scheduled) (Conflict, bool) {
	laneA := NormalizeLane(a.Item.Lane)
	if laneA != NormalizeLane(b.Item.Lane) {
		return Conflict{}, false
	}
	if !overlaps(a, b) {
		return Conflict{}, false
	}
	return Conflict{
		ID:       pairKey(a.Item.ID, b.Item.ID, categoryLane),
		Items:    [2]domain.ScheduleItem{a.Item, b.Item},
		Severity: domain.SeverityWarning,
		Message:  fmt.Sprintf("%q and %q are double-booked in lane %s", a.Item.Title, b.Item.Title, laneA),
	}, true
}

func territoryBufferConflict(a, b Scheduled, buffer time.Duration, bufferHours float64) (Conflict, bool) {
	terr := strings.TrimSpace(a.Item.Territory)
	if terr == "" || terr != strings.TrimSpace(b.Item.Territory) {
		return Conflict{}, false
	}
	gap := a.Start.Sub(b.Start)
	if gap < 0 {
		gap = -gap
	}
	if gap >= buffer {
		return Conflict{}, false
	}
	return Conflict{
		ID:       pairKey(a.Item.ID, b.Item.ID, categoryTerritory),
		Items:    [2]domain.ScheduleItem{a.Item, b.Item},
		Severity: domain.SeverityError,
		Message: fmt.Sprintf("%q and %q are both in %s within the %gh buffer",
			a.Item.Title, b.Item.Title, terr, bufferHours),
	}, true
}

func travelAdjacencyConflict(a, b Scheduled, buffer time.Duration, bufferHours float64) (Conflict, bool) {
	terrA := strings.TrimSpace(a.Item.Territory)
	terrB := strings.TrimSpace(b.Item.Territory)
	if terrA == "" || terrB == "" || terrA == terrB {
		return Conflict{}, false
	}

	first, second := chronological(a, b)
	gap := second.Start.Sub(first.End)
	if gap >= buffer {
		return Conflict{}, false
	}

	gapHours := int(gap.Hours())
	if gapHours < 0 {
		gapHours = 0
	}
	return Conflict{
		ID:       first.Item.ID + "~" + second.Item.ID + "~" + categoryTravel,
		Items:    [2]domain.ScheduleItem{first.Item, second.Item},
		Severity: domain.SeverityWarning,
		Message: fmt.Sprintf("only %dh between %q (%s) and %q (%s), buffer is %gh",
			gapHours, first.Item.Title, strings.TrimSpace(first.Item.Territory),
			second.Item.Title, strings.TrimSpace(second.Item.Territory), bufferHours),
	}, true
}

// overlaps reports whether two resolved [start, end) intervals intersect.
func overlaps(a, b Scheduled) bool {
	return a.End.After(b.Start) && b.End.After(a.Start)
}

// chronological orders a pair by end time, then start time, then ID, so the
// result is independent of input order.
func chronological(a, b Scheduled) (first, second Scheduled) {
	switch {
	case a.End.Before(b.End):
		return a, b
	case b.End.Before(a.End):
		return b, a
	case a.Start.Before(b.Start):
		return a, b
	case b.Start.Before(a.Start):
		return b, a
	case a.Item.ID < b.Item.ID:
		return a, b
	default:
		return b, a
	}
}

// pairKey builds a deterministic conflict ID from the unordered item pair
// and the conflict category.
func pairKey(idA, idB, category string) string {
	if idB < idA {
		idA, idB = idB, idA
	}
	return idA + "~" + idB + "~" + category
}
