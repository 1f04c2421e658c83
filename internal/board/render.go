package board

import (
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	colorFlap   = lipgloss.Color("#1A1A1A")
	colorLetter = lipgloss.Color("#F2F2F2")
	colorFrame  = lipgloss.Color("#444444")
)

var (
	cellStyle  = lipgloss.NewStyle().Background(colorFlap).Foreground(colorLetter).Bold(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFrame).Padding(0, 1)
)

// Render draws the grid as it would look on the board, with color tiles
// filled in.
func Render(g Grid) string {
	lines := make([]string, Rows)
	for r, row := range g {
		var b strings.Builder
		for _, code := range row {
			b.WriteString(renderCell(code))
		}
		lines[r] = b.String()
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

func renderCell(code int) string {
	if c, ok := Color(code); ok {
		return lipgloss.NewStyle().Background(c).Foreground(c).Render("  ")
	}
	return cellStyle.Render(string(Char(code)) + " ")
}
