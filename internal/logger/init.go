// Package logger provides leveled logging for the metro CLI on top of pterm.
package logger

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// InitPterm routes every pterm prefix printer to stderr.
// The status report is the only thing written to stdout.
func InitPterm() {
	SetOutput(os.Stderr)
}

// SetOutput points all diagnostic printers at w and returns the writer that
// was previously used by the error printer.
func SetOutput(w io.Writer) io.Writer {
	previous := pterm.Error.Writer

	pterm.Info.Writer = w
	pterm.Success.Writer = w
	pterm.Warning.Writer = w
	pterm.Error.Writer = w
	pterm.Debug.Writer = w

	return previous
}
