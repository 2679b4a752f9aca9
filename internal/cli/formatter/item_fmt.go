package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adelarue/backline/internal/domain"
)

// FormatItemList renders schedule items as an aligned table.
func FormatItemList(items []domain.ScheduleItem) string {
	if len(items) == 0 {
		return Dim("No items yet. Add one with: backline item add") + "\n"
	}

	headers := []string{"ID", "TITLE", "TYPE", "LANE", "STARTS", "ENDS", "TERRITORY", "PRI"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			Dim(TruncID(item.ID)),
			StyleFg.Render(item.Title),
			string(item.Type),
			LaneStyle(item.Lane).Render(item.Lane),
			FormatMaybeTime(item.StartsAt),
			FormatMaybeTime(item.EndsAt),
			item.Territory,
			strconv.Itoa(item.Priority),
		})
	}
	return RenderTable(headers, rows)
}

// FormatItemDetail renders one item with its dependency edges. Titles of
// linked items are looked up in the supplied index; unknown IDs fall back to
// the truncated ID.
func FormatItemDetail(item *domain.ScheduleItem, edges []domain.DependencyEdge, titles map[string]string) string {
	var b strings.Builder

	b.WriteString(Header(item.Title))
	b.WriteString("\n")

	field := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(name+":"), value))
	}
	field("ID", item.ID)
	field("Type", string(item.Type))
	field("Lane", LaneStyle(item.Lane).Render(item.Lane))
	field("Starts", FormatMaybeTime(item.StartsAt))
	field("Ends", FormatMaybeTime(item.EndsAt))
	if item.Territory != "" {
		field("Territory", item.Territory)
	}
	if item.Priority != 0 {
		field("Priority", strconv.Itoa(item.Priority))
	}
	if item.Note != "" {
		field("Note", item.Note)
	}
	if !item.IsScheduled() {
		b.WriteString("  " + StyleYellow.Render("unscheduled") + "\n")
	}

	if len(edges) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Dependencies") + "\n")
		for _, edge := range edges {
			from := titleOrID(titles, edge.FromItemID)
			to := titleOrID(titles, edge.ToItemID)
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				StyleFg.Render(from), Dim("→"), StyleFg.Render(to), Dim("("+string(edge.Kind)+")")))
		}
	}

	return b.String()
}

// FormatEdgeList renders dependency edges as a table.
func FormatEdgeList(edges []domain.DependencyEdge, titles map[string]string) string {
	if len(edges) == 0 {
		return Dim("No dependencies defined.") + "\n"
	}

	headers := []string{"FROM", "TO", "KIND", "NOTE"}
	rows := make([][]string, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, []string{
			StyleFg.Render(titleOrID(titles, edge.FromItemID)),
			StyleFg.Render(titleOrID(titles, edge.ToItemID)),
			string(edge.Kind),
			Dim(edge.Note),
		})
	}
	return RenderTable(headers, rows)
}

func titleOrID(titles map[string]string, id string) string {
	if title, ok := titles[id]; ok && title != "" {
		return title
	}
	return TruncID(id)
}
