package formatter

import (
	"fmt"
	"strings"

	"github.com/adelarue/backline/internal/contract"
	"github.com/adelarue/backline/internal/timeline"
)

// MinStudioWidth is the narrowest usable timeline rendering.
const MinStudioWidth = 40

// FormatStudio renders the engine output as a fixed-width text timeline:
// a tick axis, one bar chart per lane, then unscheduled items and conflicts.
func FormatStudio(resp *contract.StudioResponse, width int) string {
	if width < MinStudioWidth {
		width = MinStudioWidth
	}
	result := resp.Result

	var b strings.Builder

	rangeLine := fmt.Sprintf("%s – %s  ·  %s view  ·  buffer %s",
		result.Window.Start.Format("Jan 2 2006"),
		result.Window.End.Format("Jan 2 2006"),
		result.Granularity,
		FormatHours(resp.BufferHours),
	)
	b.WriteString(Header("Timeline Studio"))
	b.WriteString("\n")
	b.WriteString(Dim(rangeLine))
	b.WriteString("\n\n")

	b.WriteString(renderAxis(result.Ticks, width))
	b.WriteString("\n")

	for _, lane := range result.Lanes {
		b.WriteString(LaneStyle(lane.Name).Bold(true).Render(lane.Name))
		b.WriteString("\n")
		b.WriteString(renderLaneRows(lane, width))
	}

	if len(result.Unscheduled) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Unscheduled"))
		b.WriteString("\n")
		for _, item := range result.Unscheduled {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				Dim("·"), StyleFg.Render(item.Title), Dim("["+string(item.Type)+"]")))
		}
	}

	if len(result.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("Conflicts (%d)", len(result.Conflicts))))
		b.WriteString("\n")
		b.WriteString(FormatConflicts(result.Conflicts))
	}

	if len(result.Edges) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Dependencies"))
		b.WriteString("\n")
		for _, edge := range result.Edges {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				StyleFg.Render(edge.FromItem.Item.Title),
				Dim("→"),
				StyleFg.Render(edge.ToItem.Item.Title),
				Dim("("+string(edge.Edge.Kind)+")")))
		}
	}

	return b.String()
}

// renderAxis lays tick labels across a width-column ruler line.
func renderAxis(ticks []timeline.Tick, width int) string {
	labels := make([]rune, width)
	ruler := make([]rune, width)
	for i := range labels {
		labels[i] = ' '
		ruler[i] = '─'
	}

	for _, tick := range ticks {
		col := ratioToCol(tick.LeftRatio, width)
		ruler[col] = '┬'
		for i, r := range tick.Label {
			pos := col + i
			if pos >= width {
				break
			}
			// Keep one space between adjacent labels.
			if pos > 0 && labels[pos-1] != ' ' && i == 0 {
				break
			}
			labels[pos] = r
		}
	}

	return Dim(string(labels)) + "\n" + Dim(string(ruler)) + "\n"
}

// renderLaneRows draws each packed row of the lane as a bar line, followed by
// a dimmed legend naming the bars left to right.
func renderLaneRows(lane timeline.LaneLayout, width int) string {
	var b strings.Builder

	rows := make([][]timeline.PositionedItem, lane.RowCount)
	for _, item := range lane.Items {
		rows[item.RowIndex] = append(rows[item.RowIndex], item)
	}

	style := LaneStyle(lane.Name)
	for _, row := range rows {
		line := make([]rune, width)
		for i := range line {
			line[i] = ' '
		}
		for _, item := range row {
			start := ratioToCol(item.LeftRatio, width)
			end := ratioToCol(item.LeftRatio+item.WidthRatio, width)
			if end <= start {
				end = start + 1
			}
			for i := start; i < end && i < width; i++ {
				line[i] = '█'
			}
		}
		b.WriteString(style.Render(string(line)))
		b.WriteString("\n")

		for _, item := range row {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				Dim("·"),
				StyleFg.Render(item.Item.Title),
				Dim(FormatTimeRange(item.Start, item.End))))
		}
	}

	return b.String()
}

func ratioToCol(ratio float64, width int) int {
	col := int(ratio * float64(width-1))
	if col < 0 {
		return 0
	}
	if col > width-1 {
		return width - 1
	}
	return col
}
