package logging

import (
	"io"

	"github.com/pterm/pterm"
)

// New returns a logger that writes to w at Info level, or Debug when
// verbose is set.
func New(w io.Writer, verbose bool) *pterm.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(level).
		WithTime(false)
}
