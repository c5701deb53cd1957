package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/quicktodo/internal/model"
	"github.com/idilsaglam/quicktodo/internal/ui"
)

// listItem adapts model.Task to bubbles/list.Item. The row never mutates the
// task; the Model toggles it through the session by id.
type listItem struct {
	task model.Task
}

func (i listItem) Title() string       { return i.task.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.task.Text }

func toListItems(tasks model.TaskList) []list.Item {
	out := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, listItem{task: t})
	}
	return out
}

// itemDelegate renders one task per line and marks the cursor row while the
// list has focus.
type itemDelegate struct {
	focused bool
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderTaskRow(it.task, d.focused && index == m.Index(), m.Width()))
}

// renderTaskRow draws a task on exactly one line. Text that does not fit in
// width is cut with an ellipsis; width <= 0 means no limit.
func renderTaskRow(task model.Task, selected bool, width int) string {
	t := ui.Current()
	boxGlyph := t.BoxUnchecked
	if task.Done {
		boxGlyph = t.BoxChecked
	}

	text := task.Text
	if width > 0 {
		room := width - 2 - lipgloss.Width(boxGlyph) - 1
		if room < 1 {
			room = 1
		}
		text = ansi.Truncate(text, room, "…")
	}

	box := t.Pending.Render(boxGlyph)
	if task.Done {
		box = t.Success.Render(boxGlyph)
		text = t.Done.Render(text)
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}
	return fmt.Sprintf("%s%s %s", prefix, box, text)
}
