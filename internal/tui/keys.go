package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Press     key.Binding
	Toggle    key.Binding
	Filter    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "add")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpFor lists what the focused control reacts to.
func (k keyMap) helpFor(f focus) []key.Binding {
	switch f {
	case focusButton:
		return []key.Binding{k.Press, k.Next, k.Prev, k.Quit}
	case focusList:
		return []key.Binding{k.Toggle, k.Filter, k.Next, k.Prev, k.Quit}
	default:
		return []key.Binding{k.Submit, k.Next, k.ForceQuit}
	}
}
