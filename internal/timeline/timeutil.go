package timeline

import (
	"strings"
	"time"
)

// MinItemDuration is the floor applied to resolved item durations so that
// zero- and negative-duration items still occupy a visible, clickable extent.
const MinItemDuration = 2 * time.Hour

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-like timestamp string. Returns nil on empty
// or unparsable input rather than an error: an item with a bad timestamp is
// simply unscheduled. Layouts without an explicit zone are read as UTC.
func ParseTimestamp(value string) *time.Time {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// ResolveEnd returns the effective end time for an item. A nil end, or an
// end at or before the start, yields start + MinItemDuration. An explicit
// end before its start is a data anomaly and is corrected, not rejected.
func ResolveEnd(start time.Time, rawEnd *time.Time) time.Time {
	if rawEnd == nil || !rawEnd.After(start) {
		return start.Add(MinItemDuration)
	}
	return *rawEnd
}
