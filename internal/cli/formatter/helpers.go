package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID shortens an ID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatHours renders a fractional hour count compactly: "4h", "1.5h".
func FormatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}

// FormatTimeRange renders an interval, eliding the date on the end side when
// both ends fall on the same day.
func FormatTimeRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return fmt.Sprintf("%s – %s", start.Format("Jan 2 15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2 15:04"), end.Format("Jan 2 15:04"))
}

// FormatMaybeTime renders an optional timestamp, or a dimmed placeholder.
func FormatMaybeTime(t *time.Time) string {
	if t == nil {
		return Dim("—")
	}
	return t.Format("2006-01-02 15:04")
}
