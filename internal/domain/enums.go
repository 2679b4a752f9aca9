package domain

type ItemType string

const (
	ItemLiveHold         ItemType = "live-hold"
	ItemTravelSegment    ItemType = "travel-segment"
	ItemPromoSlot        ItemType = "promo-slot"
	ItemReleaseMilestone ItemType = "release-milestone"
	ItemLegalAction      ItemType = "legal-action"
	ItemFinanceAction    ItemType = "finance-action"
)

// ValidItemTypes is the canonical set of accepted item type strings.
var ValidItemTypes = map[string]bool{
	"live-hold": true, "travel-segment": true, "promo-slot": true,
	"release-milestone": true, "legal-action": true, "finance-action": true,
}

// DefaultLane is the catch-all lane for items that carry no lane label.
const DefaultLane = "General"

// KnownLanes is the preferred top-to-bottom lane order in the studio view.
// Custom lanes encountered in the data are stacked after these, alphabetically.
var KnownLanes = []string{"Live", "Travel", "Promo", "Release", "Legal", "Finance", DefaultLane}

// laneForType maps each item type to the lane it belongs on when the item
// itself carries no lane label.
var laneForType = map[ItemType]string{
	ItemLiveHold:         "Live",
	ItemTravelSegment:    "Travel",
	ItemPromoSlot:        "Promo",
	ItemReleaseMilestone: "Release",
	ItemLegalAction:      "Legal",
	ItemFinanceAction:    "Finance",
}

// LaneForType returns the default lane for an item type, or DefaultLane
// for types outside the known set.
func LaneForType(t ItemType) string {
	if lane, ok := laneForType[t]; ok {
		return lane
	}
	return DefaultLane
}

type DependencyKind string

const (
	// DependencyFS is finish-to-start: the target should not start before
	// the source finishes.
	DependencyFS DependencyKind = "FS"
	// DependencySS is start-to-start: the target should not start before
	// the source starts.
	DependencySS DependencyKind = "SS"
)

// ParseDependencyKind coerces a raw kind string to a valid DependencyKind.
// Anything outside the FS/SS set becomes FS.
func ParseDependencyKind(raw string) DependencyKind {
	if raw == string(DependencySS) {
		return DependencySS
	}
	return DependencyFS
}

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)
