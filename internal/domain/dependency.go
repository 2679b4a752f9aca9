package domain

// DependencyEdge is a directed relationship between two schedule items.
// The edge is rendering-oriented: the engine draws it but does not enforce
// the temporal ordering it implies.
type DependencyEdge struct {
	FromItemID string
	ToItemID   string
	Kind       DependencyKind
	Note       string
}
