// Package history keeps the applied edit events of a session so the most recent one can be undone.
package history

import (
	"github.com/bethropolis/tidebuf/internal/editor"
	"github.com/bethropolis/tidebuf/internal/logger"
)

// Log is an append-only event stack. Only the tail is ever removed.
// It is owned by one session and is not safe for concurrent use.
type Log struct {
	events []editor.Event
}

// NewLog creates an empty event log.
func NewLog() *Log {
	return &Log{}
}

// Record pushes an applied event onto the log.
func (l *Log) Record(evt editor.Event) {
	l.events = append(l.events, evt)
	logger.DebugTagf("history", "History: Recorded %v. Count: %d", evt, len(l.events))
}

// Pop removes and returns the most recent event. ok is false when the log is empty.
func (l *Log) Pop() (evt editor.Event, ok bool) {
	if len(l.events) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return nil, false
	}
	last := len(l.events) - 1
	evt = l.events[last]
	l.events[last] = nil
	l.events = l.events[:last]
	logger.DebugTagf("history", "History: Popped %v. Count: %d", evt, len(l.events))
	return evt, true
}

// Peek returns the most recent event without removing it.
func (l *Log) Peek() (editor.Event, bool) {
	if len(l.events) == 0 {
		return nil, false
	}
	return l.events[len(l.events)-1], true
}

// Len returns the number of events that can still be undone.
func (l *Log) Len() int {
	return len(l.events)
}

// Events returns a copy of the log, oldest first.
func (l *Log) Events() []editor.Event {
	out := make([]editor.Event, len(l.events))
	copy(out, l.events)
	return out
}
