package formatter

import (
	"fmt"
	"strings"

	"github.com/adelarue/backline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// laneStyles assigns a stable color to each well-known lane. Custom lanes
// fall back to the foreground style.
var laneStyles = map[string]lipgloss.Style{
	"Live":    StyleGreen,
	"Travel":  StyleBlue,
	"Promo":   StylePurple,
	"Release": StyleYellow,
	"Legal":   StyleRed,
	"Finance": StyleAqua,
	"General": StyleFg,
}

// LaneStyle returns the lipgloss style for a lane name.
func LaneStyle(lane string) lipgloss.Style {
	if s, ok := laneStyles[lane]; ok {
		return s
	}
	return StyleFg
}

// SeverityStyle returns the lipgloss style corresponding to a conflict severity.
func SeverityStyle(sev domain.Severity) lipgloss.Style {
	if sev == domain.SeverityError {
		return StyleRed
	}
	return StyleYellow
}

// SeverityIndicator returns a colored severity badge such as "● ERROR".
func SeverityIndicator(sev domain.Severity) string {
	if sev == domain.SeverityError {
		return StyleRed.Render("● ERROR")
	}
	return StyleYellow.Render("● WARNING")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
