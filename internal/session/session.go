// Package session drives the read-dispatch-act loop over one buffer.
package session

import (
	"errors"

	"github.com/bethropolis/tidebuf/internal/editor"
	"github.com/bethropolis/tidebuf/internal/history"
	"github.com/bethropolis/tidebuf/internal/text"
)

// ErrNotInitialized is returned by Next when Initialize has not run.
var ErrNotInitialized = errors.New("session not initialized")

// LineSource supplies raw command lines. io.EOF or a blank line ends the input.
type LineSource interface {
	ReadLine() (string, error)
}

// LineSink receives output lines.
type LineSink interface {
	WriteLine(line string) error
}

// Session owns the buffer state and its event log.
type Session struct {
	State     editor.State
	Log       *history.Log
	Aggregate *editor.Aggregate
	Applier   *editor.Applier
	Units     text.Units
}

// New creates an empty session measuring characters with units.
func New(units text.Units) *Session {
	if units == nil {
		units = text.Graphemes{}
	}
	return &Session{
		State:     editor.NewState(),
		Log:       history.NewLog(),
		Aggregate: editor.NewAggregate(units),
		Applier:   editor.NewApplier(units),
		Units:     units,
	}
}

// Text returns the current buffer.
func (s *Session) Text() string {
	return s.State.Text
}

// UndoDepth returns the number of edits that can be undone.
func (s *Session) UndoDepth() int {
	return s.Log.Len()
}
