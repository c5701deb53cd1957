package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/quicktodo/internal/config"
	"github.com/idilsaglam/quicktodo/internal/logging"
	"github.com/idilsaglam/quicktodo/internal/session"
	"github.com/idilsaglam/quicktodo/internal/tui"
	"github.com/idilsaglam/quicktodo/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options are the root flags. Empty/zero values defer to the config file.
type Options struct {
	ConfigPath  string
	Theme       string
	Language    string
	NoAltScreen bool
	Debug       bool
	Tasks       []string
	Done        []int
	Once        bool
}

// usageError marks mistakes in how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{err: fmt.Errorf(format, args...)}
}

// programRunner starts the interactive screen. Tests swap it out.
var programRunner = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// Run executes the command line and returns an exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		ui.Hint(stderr, "Run `quicktodo --help` for usage.")
		return ExitUsage
	}
	return ExitError
}

// NewRootCommand builds the quicktodo command.
func NewRootCommand() *cobra.Command {
	var opt Options

	cmd := &cobra.Command{
		Use:   "quicktodo",
		Short: "A tiny in-memory to-do list for the terminal",
		Long: `quicktodo is a single-screen to-do list. Type a task and press enter to
add it; the newest task goes on top. Move to the list with tab and press
space to mark a task done or not done. Nothing is saved: the list lives
for as long as the program runs.

KEYS:
  enter                add the typed task (input or button focused)
  tab / shift+tab      move between input, button and list
  space / enter        toggle the selected task (list focused)
  /                    filter the list
  q / esc              quit outside the input (ctrl+c quits anywhere)

CONFIGURATION:
  Flags > environment > config file > defaults.
  Config file: --config, QUICKTODO_CONFIG, or ~/.config/quicktodo/config.toml
    QUICKTODO_UI_THEME           classic | neon | mono (default: classic)
    QUICKTODO_UI_LANGUAGE        en | es (default: en)
    QUICKTODO_UI_ALT_SCREEN      use the alternate screen (default: true)
    QUICKTODO_UI_SHOW_PROGRESS   progress bar next to the counters (default: true)
    QUICKTODO_UI_CHAR_LIMIT      max task length, 0 = unlimited (default: 200)
    QUICKTODO_LOG_FILE           debug log path (default: quicktodo.log)
    QUICKTODO_LOG_DEBUG          write the debug log (default: false)
    QUICKTODO_DEBUG              force the debug log on

EXAMPLES:
  quicktodo
  quicktodo --lang es --theme neon
  quicktodo --task "Buy milk" --task "Walk dog" --done 1 --once`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opt)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	f := cmd.Flags()
	f.StringVar(&opt.ConfigPath, "config", "", "config file (TOML)")
	f.StringVar(&opt.Theme, "theme", "", "color theme: classic, neon, mono")
	f.StringVar(&opt.Language, "lang", "", "interface language: en, es")
	f.BoolVar(&opt.NoAltScreen, "no-alt-screen", false, "draw inline instead of on the alternate screen")
	f.BoolVar(&opt.Debug, "debug", false, "write a debug log (see log.file)")
	f.StringArrayVar(&opt.Tasks, "task", nil, "add a task before the screen opens (repeatable)")
	f.IntSliceVar(&opt.Done, "done", nil, "toggle the task at this 1-based position after seeding (repeatable)")
	f.BoolVar(&opt.Once, "once", false, "print the screen once and exit")
	return cmd
}

func run(cmd *cobra.Command, opt Options) error {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, opt)
	if err := cfg.Validate(); err != nil {
		return usageError{err: err}
	}

	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	ui.SetTheme(cfg.UI.Theme)

	sess, err := seed(opt.Tasks, opt.Done)
	if err != nil {
		return err
	}
	m := tui.New(sess, tui.Options{
		Language:     cfg.UI.Language,
		ShowProgress: cfg.UI.ShowProgress,
		CharLimit:    cfg.UI.CharLimit,
	})

	if opt.Once {
		fmt.Fprintln(cmd.OutOrStdout(), m.View())
		return nil
	}

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := programRunner(m, progOpts...); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags win over file and env.
func applyFlags(cfg *config.Config, opt Options) {
	if opt.Theme != "" {
		cfg.UI.Theme = strings.ToLower(opt.Theme)
	}
	if opt.Language != "" {
		cfg.UI.Language = strings.ToLower(opt.Language)
	}
	if opt.NoAltScreen {
		cfg.UI.AltScreen = false
	}
	if opt.Debug {
		cfg.Log.Debug = true
	}
}

// seed builds the starting session through the same add and toggle
// operations the screen uses. Blank seed tasks are dropped like blank input.
func seed(tasks []string, done []int) (*session.Session, error) {
	sess := session.New()
	for _, t := range tasks {
		sess.SetInput(t)
		sess.Submit()
	}
	sess.SetInput("")

	list := sess.Tasks()
	for _, n := range done {
		if n < 1 || n > len(list) {
			return nil, usagef("--done: index out of range: have %d, got %d", len(list), n)
		}
	}
	for _, n := range done {
		sess.Toggle(list[n-1].ID)
	}
	return sess, nil
}
