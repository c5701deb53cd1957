package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/quicktodo/internal/session"
	"github.com/idilsaglam/quicktodo/internal/ui"
)

type focus int

const (
	focusInput focus = iota
	focusButton
	focusList
	focusCount
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minListHeight = 3
	minBarWidth   = 5
	maxBarWidth   = 20
)

// Options tune what the screen shows.
type Options struct {
	Language     string
	ShowProgress bool
	CharLimit    int
}

// Model is the whole screen. All state lives in the session; the Model only
// owns widget state (focus, cursor, filter, size).
type Model struct {
	sess *session.Session
	copy Copy
	opt  Options
	keys keyMap

	input textinput.Model
	list  list.Model
	help  help.Model
	focus focus

	width, height int
}

func New(sess *session.Session, opt Options) Model {
	if sess == nil {
		sess = session.New()
	}
	m := Model{
		sess:   sess,
		copy:   CopyFor(opt.Language),
		opt:    opt,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.help.Styles.ShortKey = ui.Current().Accent
	m.help.Styles.ShortDesc = ui.Current().Help
	m.help.Styles.ShortSeparator = ui.Current().Help

	// set up text input bound to the session input buffer
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = m.copy.Placeholder
	m.input.CharLimit = opt.CharLimit
	m.input.SetValue(sess.Input())
	m.input.Focus()

	l := list.New(toListItems(sess.Tasks()), itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	// Quitting is decided by the Model, not the list.
	l.KeyMap.Quit = key.NewBinding()
	l.KeyMap.ForceQuit = key.NewBinding()
	m.list = l

	m.resize()
	return m
}

// Session exposes the controller behind the screen.
func (m Model) Session() *session.Session { return m.sess }

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		// the filter prompt owns the keyboard while it is open
		if m.focus == focusList && m.list.SettingFilter() {
			return m.updateList(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			cmd := m.setFocus((m.focus + 1) % focusCount)
			return m, cmd
		case key.Matches(msg, m.keys.Prev):
			cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, cmd
		}

		switch m.focus {
		case focusInput:
			if key.Matches(msg, m.keys.Submit) {
				return m.submit()
			}
			if msg.Type == tea.KeyEsc {
				// only ctrl+c leaves while typing
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.sess.SetInput(m.input.Value())
			return m, cmd

		case focusButton:
			switch {
			case key.Matches(msg, m.keys.Press):
				return m.submit()
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m, nil

		case focusList:
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m.toggleSelected()
			case msg.Type == tea.KeyEsc && m.list.FilterState() == list.FilterApplied:
				// esc clears an applied filter before it quits
				return m.updateList(msg)
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m.updateList(msg)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// submit commits the input buffer. Blank input leaves everything as it was.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.sess.SetInput(m.input.Value())
	if !m.sess.Submit() {
		return m, nil
	}
	m.input.SetValue(m.sess.Input())
	cmd := m.syncList()
	return m, cmd
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return m, nil
	}
	if !m.sess.Toggle(it.task.ID) {
		return m, nil
	}
	cmd := m.syncList()
	return m, cmd
}

// syncList re-reads the session list. The cursor keeps its row index.
func (m *Model) syncList() tea.Cmd {
	idx := m.list.Index()
	cmd := m.list.SetItems(toListItems(m.sess.Tasks()))
	if m.list.FilterState() == list.Unfiltered {
		m.list.Select(idx)
	}
	return cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.list.SetDelegate(itemDelegate{focused: f == focusList})
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// innerWidth is the room left inside the panel border and padding.
func (m Model) innerWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) resize() {
	inner := m.innerWidth()

	m.input.Width = inner - lipgloss.Width(m.renderButton()) - lipgloss.Width(m.input.Prompt) - 3
	if m.input.Width < 10 {
		m.input.Width = 10
	}
	m.help.Width = inner

	// header, blank, input, counters, blank, blank, help, two border rows
	chrome := lipgloss.Height(renderHeader(m.copy, inner)) + 8
	h := m.height - chrome
	if h < minListHeight {
		h = minListHeight
	}
	m.list.SetSize(inner, h)
}

func (m Model) View() string {
	inner := m.innerWidth()

	content := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.copy, inner),
		"",
		m.renderInputRow(),
		m.renderCounters(),
		"",
		m.renderTasks(inner),
		"",
		m.help.ShortHelpView(m.keys.helpFor(m.focus)),
	)
	return ui.Panel(content, inner+4)
}

func (m Model) renderInputRow() string {
	return lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", m.renderButton())
}

func (m Model) renderButton() string {
	label := "[ " + m.copy.AddButton + " ]"
	if m.focus == focusButton {
		return ui.Current().ButtonFocused.Render(label)
	}
	return ui.Current().Button.Render(label)
}

// renderCounters derives both numbers from the current list on every render.
func (m Model) renderCounters() string {
	c := m.sess.Counters()
	line := ui.Current().Muted.Render(m.copy.counterLine(c.Total, c.Completed, ui.Current().SymCounter))
	if !m.opt.ShowProgress || c.Total == 0 {
		return line
	}
	// the bar gets what is left of the row, up to maxBarWidth; "  " + " 100%"
	bar := m.innerWidth() - lipgloss.Width(line) - 2 - 5
	if bar > maxBarWidth {
		bar = maxBarWidth
	}
	if bar < minBarWidth {
		return line
	}
	return line + "  " + ui.Current().Success.Render(ui.ProgressBar(c.Completed, c.Total, bar))
}

func (m Model) renderTasks(width int) string {
	if m.sess.Counters().Total == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, ui.Current().Empty.Render(m.copy.Empty))
	}
	return m.list.View()
}
