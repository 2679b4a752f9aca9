package timeline

import "time"

type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

var ValidGranularities = map[Granularity]bool{
	GranularityDay:     true,
	GranularityWeek:    true,
	GranularityMonth:   true,
	GranularityQuarter: true,
	GranularityYear:    true,
}

// ParseGranularity coerces a raw granularity string, defaulting to week.
func ParseGranularity(raw string) Granularity {
	if ValidGranularities[Granularity(raw)] {
		return Granularity(raw)
	}
	return GranularityWeek
}

// Window is the absolute time range the studio view covers.
type Window struct {
	Start time.Time
	End   time.Time
}

// Span returns the window's extent, floored to one day to guard against
// division instability on degenerate ranges.
func (w Window) Span() time.Duration {
	span := w.End.Sub(w.Start)
	if span < 24*time.Hour {
		return 24 * time.Hour
	}
	return span
}

// Ratio converts an absolute time to a normalized [0,1] horizontal position
// within the window. Times outside the window clamp to the edges.
func (w Window) Ratio(t time.Time) float64 {
	r := float64(t.Sub(w.Start)) / float64(w.Span())
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Tick is a labeled position on the horizontal time axis.
type Tick struct {
	LeftRatio float64
	Label     string
}

// BuildTicks generates axis tick marks at fixed calendar boundaries for the
// given granularity: daily midnights for day/week views, Monday-aligned week
// starts for month/quarter views, and month starts for the year view.
// Boundaries are collected over the floored effective span, not the raw End,
// so a sub-day window with no midnight of its own still gets a tick.
func BuildTicks(w Window, g Granularity) []Tick {
	end := w.Start.Add(w.Span())
	var ticks []Tick
	switch g {
	case GranularityDay, GranularityWeek:
		for t := midnightOnOrAfter(w.Start); !t.After(end); t = t.AddDate(0, 0, 1) {
			ticks = append(ticks, Tick{LeftRatio: w.Ratio(t), Label: t.Format("Jan 2")})
		}
	case GranularityMonth, GranularityQuarter:
		for t := mondayOnOrAfter(w.Start); !t.After(end); t = t.AddDate(0, 0, 7) {
			ticks = append(ticks, Tick{LeftRatio: w.Ratio(t), Label: t.Format("Jan 2")})
		}
	case GranularityYear:
		t := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, w.Start.Location())
		if t.Before(w.Start) {
			t = t.AddDate(0, 1, 0)
		}
		for ; !t.After(end); t = t.AddDate(0, 1, 0) {
			ticks = append(ticks, Tick{LeftRatio: w.Ratio(t), Label: t.Format("Jan 2006")})
		}
	}
	return ticks
}

// midnightOnOrAfter returns the first midnight at or after t.
func midnightOnOrAfter(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if day.Before(t) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// mondayOnOrAfter returns the first Monday midnight at or after t.
func mondayOnOrAfter(t time.Time) time.Time {
	day := midnightOnOrAfter(t)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// mondayOnOrBefore returns the Monday midnight at or before t.
func mondayOnOrBefore(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}
