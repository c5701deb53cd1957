package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a progress bar with percentage using the theme glyphs.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if done < 0 {
		done = 0
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(current.BarFilled, filled) + strings.Repeat(current.BarEmpty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames inner in a box using the current theme. A positive width
// fixes the outer width of the box.
func Panel(inner string, width int) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1)
	if width > 0 {
		// Width excludes the border itself.
		border = border.Width(width - border.GetHorizontalBorderSize())
	}
	return border.Render(inner)
}
