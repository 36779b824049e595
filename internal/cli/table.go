package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders rows under a styled header with left-aligned columns
// padded to the widest cell. Styled cell values are measured by their
// visible width, so color codes do not skew alignment.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(joinRow(headers, widths)))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(joinRow(row, widths))
		b.WriteString("\n")
	}
	return b.String()
}

func joinRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	return strings.Join(parts, "  ")
}
