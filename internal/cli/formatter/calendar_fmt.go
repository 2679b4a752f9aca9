package formatter

import (
	"fmt"
	"strings"

	"github.com/adelarue/backline/internal/contract"
)

// FormatCalendar renders the calendar view: one section per column with the
// items touching it and any conflicts confined to that cell.
func FormatCalendar(resp *contract.CalendarResponse) string {
	var b strings.Builder

	title := "Calendar · weeks"
	if resp.Mode == contract.CalendarDays {
		title = "Calendar · days"
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s – %s",
		resp.Window.Start.Format("Jan 2 2006"),
		resp.Window.End.Format("Jan 2 2006"))))
	b.WriteString("\n\n")

	for _, cell := range resp.Cells {
		label := StyleBold.Render(cell.Column.Label)
		if len(cell.Conflicts) > 0 {
			label += "  " + StyleRed.Render(fmt.Sprintf("⚠ %d", len(cell.Conflicts)))
		}
		b.WriteString(label + "\n")

		if len(cell.Items) == 0 {
			b.WriteString(Dim("  —") + "\n")
		}
		for _, s := range cell.Items {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				LaneStyle(s.Item.Lane).Render("▪"),
				StyleFg.Render(s.Item.Title),
				Dim(FormatTimeRange(s.Start, s.End))))
		}
		b.WriteString("\n")
	}

	if len(resp.Unscheduled) > 0 {
		b.WriteString(Header("Unscheduled"))
		b.WriteString("\n")
		for _, item := range resp.Unscheduled {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("·"), StyleFg.Render(item.Title)))
		}
	}

	return b.String()
}
