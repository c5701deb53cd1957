package ui

import (
	"fmt"
	"io"
)

const symCross = "✖"

// Fail prints an error line, usually to stderr.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render(symCross+" "+msg)) }

// Hint prints a muted follow-up line under a failure.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, current.Muted.Render(msg)) }
