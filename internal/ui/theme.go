package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Subtitle, Muted, Accent  lipgloss.Style
	Success, Pending, Error         lipgloss.Style
	Selected, Done, Help, Button    lipgloss.Style
	ButtonFocused, Empty            lipgloss.Style
	Border                          lipgloss.Border
	BorderColor                     lipgloss.TerminalColor
	BoxUnchecked, BoxChecked        string
	BarFilled, BarEmpty, SymCounter string
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

func classic() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Name:          "classic",
		Title:         s.Bold(true),
		Subtitle:      s.Foreground(lipgloss.Color("245")),
		Muted:         s.Faint(true),
		Accent:        s.Foreground(lipgloss.Color("12")),
		Success:       s.Foreground(lipgloss.Color("42")),
		Pending:       s.Foreground(lipgloss.Color("214")),
		Error:         s.Foreground(lipgloss.Color("9")).Bold(true),
		Selected:      s.Bold(true).Reverse(true),
		Done:          s.Faint(true).Strikethrough(true),
		Help:          s.Faint(true),
		Button:        s.Foreground(lipgloss.Color("12")),
		ButtonFocused: s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Bold(true),
		Empty:         s.Foreground(lipgloss.Color("243")).Italic(true),
		Border:        lipgloss.RoundedBorder(),
		BorderColor:   lipgloss.Color("8"),
		BoxUnchecked:  "☐",
		BoxChecked:    "☑",
		BarFilled:     "█",
		BarEmpty:      "░",
		SymCounter:    "·",
	}
}

func neon() Theme {
	t := classic()
	s := lipgloss.NewStyle()
	t.Name = "neon"
	t.Title = s.Bold(true).Foreground(lipgloss.Color("13"))
	t.Subtitle = s.Foreground(lipgloss.Color("14"))
	t.Accent = s.Foreground(lipgloss.Color("14"))
	t.Pending = s.Foreground(lipgloss.Color("11"))
	t.Button = s.Foreground(lipgloss.Color("13"))
	t.ButtonFocused = s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Bold(true)
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked = "◻"
	t.BoxChecked = "◼"
	return t
}

// mono carries no colors at all; only attributes that survive a dumb terminal.
func mono() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Name:          "mono",
		Title:         s.Bold(true),
		Subtitle:      s,
		Muted:         s,
		Accent:        s,
		Success:       s,
		Pending:       s,
		Error:         s,
		Selected:      s.Reverse(true),
		Done:          s.Strikethrough(true),
		Help:          s,
		Button:        s,
		ButtonFocused: s.Reverse(true),
		Empty:         s,
		Border:        lipgloss.NormalBorder(),
		BorderColor:   lipgloss.NoColor{},
		BoxUnchecked:  "[ ]",
		BoxChecked:    "[x]",
		BarFilled:     "#",
		BarEmpty:      "-",
		SymCounter:    "-",
	}
}
