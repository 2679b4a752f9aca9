package timeline

import "github.com/adelarue/backline/internal/domain"

// Anchor is a rendering attachment point for a dependency edge, expressed in
// the same coordinate space as PositionedItem: X is a normalized [0,1]
// horizontal ratio, Y is a pixel offset at the item's vertical center.
type Anchor struct {
	X float64
	Y int
}

// ResolvedEdge is a dependency edge whose endpoints both exist in the active
// item set, with anchors the rendering layer can connect directly.
type ResolvedEdge struct {
	Edge     domain.DependencyEdge
	From     Anchor
	To       Anchor
	FromItem PositionedItem
	ToItem   PositionedItem
}

// ResolveDependencies filters edges to those whose endpoints are both
// positioned (edges to missing or unscheduled items are silently dropped),
// coerces unknown kinds to FS, and computes anchors: an FS edge leaves the
// source's finish edge and enters the target's start edge; an SS edge
// connects both start edges.
func ResolveDependencies(edges []domain.DependencyEdge, positioned map[string]PositionedItem) []ResolvedEdge {
	var resolved []ResolvedEdge
	for _, e := range edges {
		from, okFrom := positioned[e.FromItemID]
		to, okTo := positioned[e.ToItemID]
		if !okFrom || !okTo {
			continue
		}

		e.Kind = domain.ParseDependencyKind(string(e.Kind))

		fromX := from.LeftRatio
		if e.Kind == domain.DependencyFS {
			fromX = from.LeftRatio + from.WidthRatio
		}

		resolved = append(resolved, ResolvedEdge{
			Edge:     e,
			From:     Anchor{X: fromX, Y: from.Top + from.Height/2},
			To:       Anchor{X: to.LeftRatio, Y: to.Top + to.Height/2},
			FromItem: from,
			ToItem:   to,
		})
	}
	return resolved
}

// IndexByTarget groups resolved edges by their target item so a renderer can
// enumerate, per item, what blocks it. The index is built fresh per call;
// nothing is cached.
func IndexByTarget(edges []ResolvedEdge) map[string][]ResolvedEdge {
	idx := make(map[string][]ResolvedEdge)
	for _, e := range edges {
		idx[e.Edge.ToItemID] = append(idx[e.Edge.ToItemID], e)
	}
	return idx
}
