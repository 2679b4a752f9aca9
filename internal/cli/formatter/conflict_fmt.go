package formatter

import (
	"fmt"
	"strings"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
)

// FormatConflicts renders a conflict list, one indented entry per conflict.
func FormatConflicts(conflicts []timeline.Conflict) string {
	var b strings.Builder
	for _, c := range conflicts {
		b.WriteString(fmt.Sprintf("  %s  %s %s %s\n",
			SeverityIndicator(c.Severity),
			StyleFg.Render(c.Items[0].Title),
			Dim("↔"),
			StyleFg.Render(c.Items[1].Title)))
		b.WriteString(fmt.Sprintf("     %s\n", Dim(c.Message)))
	}
	return b.String()
}

// FormatConflictReport renders the standalone conflicts command output,
// including a summary line and an all-clear message when empty.
func FormatConflictReport(conflicts []timeline.Conflict, bufferHours float64) string {
	var b strings.Builder
	b.WriteString(Header("Conflict Report"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("territory buffer: %s", FormatHours(bufferHours))))
	b.WriteString("\n\n")

	if len(conflicts) == 0 {
		b.WriteString(StyleGreen.Render("No conflicts detected."))
		b.WriteString("\n")
		return b.String()
	}

	errors := 0
	for _, c := range conflicts {
		if c.Severity == domain.SeverityError {
			errors++
		}
	}
	b.WriteString(FormatConflicts(conflicts))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleRed.Render(fmt.Sprintf("%d errors", errors)),
		StyleYellow.Render(fmt.Sprintf("%d warnings", len(conflicts)-errors))))
	return b.String()
}
