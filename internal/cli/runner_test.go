package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/quicktodo/internal/tui"
	"github.com/idilsaglam/quicktodo/internal/ui"
)

// isolate keeps user config, env overrides and global theme out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("QUICKTODO_CONFIG", "")
	t.Setenv("QUICKTODO_DEBUG", "")
	t.Setenv("QUICKTODO_LOG_FILE", filepath.Join(dir, "quicktodo.log"))
	t.Cleanup(func() { ui.SetTheme("classic") })
	return dir
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func stubProgram(t *testing.T, err error) *[]tea.ProgramOption {
	t.Helper()
	var got []tea.ProgramOption
	called := false
	orig := programRunner
	programRunner = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		called = true
		got = opts
		_, ok := m.(tui.Model)
		assert.True(t, ok, "program should run the tui model, got %T", m)
		return m, err
	}
	t.Cleanup(func() {
		programRunner = orig
		assert.True(t, called, "program runner was not called")
	})
	return &got
}

func TestRun_OnceEmpty(t *testing.T) {
	isolate(t)

	code, out, errOut := runCLI("--once")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "No tasks yet. Add the first one!")
	assert.Contains(t, out, "Total tasks: 0 · Completed: 0")
}

func TestRun_OnceSeeded(t *testing.T) {
	isolate(t)

	code, out, _ := runCLI("--task", "A", "--task", "  ", "--task", "B", "--done", "1", "--once")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "☑ B")
	assert.Contains(t, out, "☐ A")
	assert.Contains(t, out, "Total tasks: 2 · Completed: 1")
}

func TestRun_OnceSpanish(t *testing.T) {
	isolate(t)

	code, out, _ := runCLI("--lang", "ES", "--once")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Todavía no hay tareas. ¡Añade la primera!")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"Done out of range", []string{"--task", "A", "--done", "2", "--once"}, "index out of range: have 1, got 2"},
		{"Done zero", []string{"--task", "A", "--done", "0", "--once"}, "index out of range"},
		{"Unknown theme", []string{"--theme", "solarized", "--once"}, "ui.theme"},
		{"Unknown language", []string{"--lang", "fr", "--once"}, "ui.language"},
		{"Unknown flag", []string{"--nope"}, "unknown flag"},
		{"Positional argument", []string{"extra"}, "unknown command"},
		{"Bad done value", []string{"--done", "x"}, "invalid argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			code, out, errOut := runCLI(tt.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.wantErr)
			assert.Contains(t, errOut, "quicktodo --help")
		})
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	dir := isolate(t)

	code, _, errOut := runCLI("--config", filepath.Join(dir, "missing.toml"), "--once")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "read config")
}

func TestRun_ConfigFileTheme(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(p, []byte("[ui]\ntheme = \"mono\"\nlanguage = \"es\"\n"), 0o644))

	code, out, _ := runCLI("--config", p, "--task", "A", "--once")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "mono", ui.Current().Name)
	assert.Contains(t, out, "[ ] A")
	assert.Contains(t, out, "Tareas totales: 1")
}

func TestRun_Help(t *testing.T) {
	isolate(t)

	code, out, _ := runCLI("--help")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "quicktodo")
	assert.Contains(t, out, "--task")
}

func TestRun_Interactive(t *testing.T) {
	isolate(t)
	opts := stubProgram(t, nil)

	code, _, _ := runCLI()
	assert.Equal(t, ExitOK, code)
	assert.Len(t, *opts, 1, "alt screen on by default")
}

func TestRun_InteractiveNoAltScreen(t *testing.T) {
	isolate(t)
	opts := stubProgram(t, nil)

	code, _, _ := runCLI("--no-alt-screen")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, *opts)
}

func TestRun_InteractiveFailure(t *testing.T) {
	isolate(t)
	stubProgram(t, errors.New("no tty"))

	code, _, errOut := runCLI()
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "tui: no tty")
}

func TestRun_DebugLog(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "debug.log")
	t.Setenv("QUICKTODO_LOG_FILE", logPath)

	code, _, _ := runCLI("--debug", "--task", "A", "--done", "1", "--once")
	require.Equal(t, ExitOK, code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "add id=")
	assert.Contains(t, string(b), "done=true")

	// leave the standard logger discarding for the next test
	code, _, _ = runCLI("--once")
	require.Equal(t, ExitOK, code)
}

func TestSeed(t *testing.T) {
	sess, err := seed([]string{"A", "B", "C"}, []int{1, 3})
	require.NoError(t, err)

	tasks := sess.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "C", tasks[0].Text)
	assert.True(t, tasks[0].Done)
	assert.False(t, tasks[1].Done)
	assert.True(t, tasks[2].Done)
	assert.Equal(t, "", sess.Input())

	twice, err := seed([]string{"A"}, []int{1, 1})
	require.NoError(t, err)
	assert.False(t, twice.Tasks()[0].Done, "toggling twice restores the flag")
}
