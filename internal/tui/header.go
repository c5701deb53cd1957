package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/quicktodo/internal/ui"
)

// logo stands in for the app icon.
var logo = []string{
	"╭───────╮",
	"│ ☑ ─── │",
	"│ ☐ ─── │",
	"│ ☐ ─── │",
	"╰───────╯",
}

// renderHeader draws the static branding block centered in width.
func renderHeader(c Copy, width int) string {
	t := ui.Current()
	block := lipgloss.JoinVertical(lipgloss.Center,
		t.Accent.Render(strings.Join(logo, "\n")),
		"",
		t.Title.Render(c.Title),
		t.Subtitle.Render(c.Subtitle),
	)
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
