package output

import (
	"io"
	"os"
	"sync"

	"github.com/kedare/metro/internal/logger"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Spinner shows progress on stderr while the feed is fetched.
// It stays silent when stderr isn't a TTY.
type Spinner struct {
	mu      sync.Mutex
	enabled bool
	active  bool
	stopped bool
	message string
	writer  io.Writer
	printer *pterm.SpinnerPrinter
}

// NewSpinner creates a spinner with the provided message. Call Start before using.
func NewSpinner(message string) *Spinner {
	return newSpinner(message, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func newSpinner(message string, writer io.Writer, enabled bool) *Spinner {
	return &Spinner{
		enabled: enabled,
		message: message,
		writer:  writer,
	}
}

// Start begins rendering the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.active {
		return
	}
	s.active = true

	if !s.enabled {
		logger.Log.Debugf("%s...", s.message)

		return
	}

	printer, err := pterm.DefaultSpinner.
		WithWriter(s.writer).
		WithRemoveWhenDone(true).
		Start(s.message)
	if err != nil {
		logger.Log.Debugf("Spinner unavailable: %v", err)

		return
	}
	s.printer = printer
}

// Stop clears the spinner. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true

	if s.printer != nil {
		_ = s.printer.Stop()
	}
}
