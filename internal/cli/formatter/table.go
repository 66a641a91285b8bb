package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap separates adjacent columns.
const colGap = 2

// RenderTable renders an aligned table with a dim separator under the
// header row. Cells may carry ANSI styling; widths are measured on visible
// characters. The last column is never padded, so lines carry no trailing
// spaces.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := columnWidths(cols, headers, rows)

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(alignCell(StyleHeader.Render(h), lipgloss.Width(h), widths[i], i == cols-1))
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(alignCell(StyleDim.Render(strings.Repeat("─", w)), w, w, i == cols-1))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(alignCell(cell, lipgloss.Width(cell), widths[i], i == cols-1))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// alignCell pads cell out to width plus the column gap. The rendered cell
// may be wider than its visible width when styled, so the visible width is
// passed in rather than measured here.
func alignCell(cell string, visible, width int, last bool) string {
	if last {
		return cell
	}
	pad := width - visible
	if pad < 0 {
		pad = 0
	}
	return cell + strings.Repeat(" ", pad+colGap)
}

// columnWidths finds the widest visible cell per column across headers and
// rows.
func columnWidths(cols int, headers []string, rows [][]string) []int {
	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
