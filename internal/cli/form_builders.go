package cli

import (
	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func backlineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func itemTypeOptions() []huh.Option[string] {
	types := []domain.ItemType{
		domain.ItemLiveHold,
		domain.ItemTravelSegment,
		domain.ItemPromoSlot,
		domain.ItemReleaseMilestone,
		domain.ItemLegalAction,
		domain.ItemFinanceAction,
	}
	options := make([]huh.Option[string], 0, len(types))
	for _, ty := range types {
		options = append(options, huh.NewOption(string(ty), string(ty)))
	}
	return options
}

// timestampInput returns a huh.Input for an optional timestamp field.
func timestampInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30 19:00").
		Value(value).
		Validate(validateOptionalTimestamp)
}

func validateOptionalTimestamp(raw string) error {
	if raw == "" {
		return nil
	}
	if timeline.ParseTimestamp(raw) == nil {
		return errInvalidTimestamp
	}
	return nil
}

var errInvalidTimestamp = errValidation("expected RFC3339 or YYYY-MM-DD")

type errValidation string

func (e errValidation) Error() string { return string(e) }

// itemAddForm collects the fields for a new schedule item.
func itemAddForm(title, itemType, lane, start, end, territory *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(title),
			huh.NewSelect[string]().Title("Type").Options(itemTypeOptions()...).Value(itemType),
			huh.NewInput().Title("Lane (blank for the type's lane)").Value(lane),
			timestampInput("Starts (blank to leave unscheduled)", start),
			timestampInput("Ends (blank for a short hold)", end),
			huh.NewInput().Title("Territory").Placeholder("UK").Value(territory),
		),
	).WithTheme(backlineHuhTheme()).WithShowHelp(false)
}
