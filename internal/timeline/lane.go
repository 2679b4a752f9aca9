package timeline

import (
	"sort"
	"strings"

	"github.com/adelarue/backline/internal/domain"
)

// NormalizeLane maps a raw, possibly absent lane label to a canonical lane
// name: trimmed, with empty input becoming the default catch-all lane.
// No case folding or synonym inference happens here.
func NormalizeLane(raw string) string {
	lane := strings.TrimSpace(raw)
	if lane == "" {
		return domain.DefaultLane
	}
	return lane
}

// SortLanes orders lane names canonically: known lanes first in their
// preferred sequence, then any custom lanes alphabetically.
func SortLanes(names []string) []string {
	knownRank := make(map[string]int, len(domain.KnownLanes))
	for i, lane := range domain.KnownLanes {
		knownRank[lane] = i
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iKnown := knownRank[sorted[i]]
		rj, jKnown := knownRank[sorted[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}
