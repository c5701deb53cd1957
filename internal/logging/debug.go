package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// EnvDebug turns debug logging on regardless of configuration.
const EnvDebug = "QUICKTODO_DEBUG"

var enabled bool

// DebugEnabled returns true if debug mode is enabled via QUICKTODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(EnvDebug) != ""
}

// Setup points the standard logger at path when debug is requested.
// The terminal belongs to the TUI, so there is no stderr fallback: when
// debugging is off all log output is discarded.
func Setup(path string, debug bool) (io.Closer, error) {
	if !debug && !DebugEnabled() {
		log.SetOutput(io.Discard)
		enabled = false
		return nopCloser{}, nil
	}
	if path == "" {
		return nil, fmt.Errorf("log file: empty path")
	}
	f, err := tea.LogToFile(path, "quicktodo")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	enabled = true
	return f, nil
}

// Debugf logs a formatted message only if Setup enabled logging
func Debugf(format string, args ...interface{}) {
	if enabled {
		log.Printf(format, args...)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
