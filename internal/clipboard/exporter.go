// Package clipboard copies the final buffer of a session to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/logger"
)

// WriteFunc stores text on a clipboard.
type WriteFunc func(text string) error

// Exporter writes the buffer to the clipboard when a session finishes.
type Exporter struct {
	write    WriteFunc
	exported bool
	lastErr  error
}

// NewExporter creates an exporter backed by the system clipboard.
func NewExporter() *Exporter {
	return NewExporterWith(clipboard.WriteAll)
}

// NewExporterWith creates an exporter using write instead of the system clipboard.
func NewExporterWith(write WriteFunc) *Exporter {
	return &Exporter{write: write}
}

// Available reports whether a system clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Subscribe registers the exporter for session completion.
func (x *Exporter) Subscribe(bus *event.Manager) {
	bus.Subscribe(event.TypeSessionFinished, x.handleSessionFinished)
}

// Export copies text to the clipboard.
func (x *Exporter) Export(text string) error {
	if err := x.write(text); err != nil {
		x.lastErr = fmt.Errorf("failed to copy buffer to clipboard: %w", err)
		return x.lastErr
	}
	x.exported = true
	logger.Debugf("Clipboard: Copied %d bytes", len(text))
	return nil
}

// Exported reports whether a copy succeeded.
func (x *Exporter) Exported() bool { return x.exported }

// Err returns the last copy failure.
func (x *Exporter) Err() error { return x.lastErr }

func (x *Exporter) handleSessionFinished(e event.Event) bool {
	data, ok := e.Data.(event.SessionFinishedData)
	if !ok {
		return false
	}
	// A failed session still exports what it had; the error is reported elsewhere.
	if err := x.Export(data.Text); err != nil {
		logger.Warnf("Clipboard: %v", err)
	}
	return false
}
