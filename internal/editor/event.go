package editor

import "fmt"

// Event is an applied edit, kept so it can be reversed later.
// The set of implementations is closed: Appended and Deleted.
type Event interface {
	fmt.Stringer
	isEvent()
}

// Appended records text added to the end of the buffer.
type Appended struct {
	Text string
}

// Deleted records a trailing run removed from the buffer.
// Text is the exact removed substring, so undo never has to recompute it.
type Deleted struct {
	Count int
	Text  string
}

func (e Appended) String() string { return fmt.Sprintf("appended %q", e.Text) }
func (e Deleted) String() string  { return fmt.Sprintf("deleted %d (%q)", e.Count, e.Text) }

func (Appended) isEvent() {}
func (Deleted) isEvent()  {}
