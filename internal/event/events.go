// Package event is the synchronous notification bus of a session.
package event

import "github.com/bethropolis/tidebuf/internal/editor"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeSessionStarted   // The declared command count was consumed
	TypeBufferModified   // An append or delete was applied
	TypeEditUndone       // The most recent edit was reverted
	TypeCharacterPrinted // A print command wrote one output line
	TypeSessionFinished  // Input ended or a command failed
)

func (t Type) String() string {
	switch t {
	case TypeSessionStarted:
		return "SessionStarted"
	case TypeBufferModified:
		return "BufferModified"
	case TypeEditUndone:
		return "EditUndone"
	case TypeCharacterPrinted:
		return "CharacterPrinted"
	case TypeSessionFinished:
		return "SessionFinished"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// SessionStartedData carries the declared command count line, unvalidated.
type SessionStartedData struct {
	DeclaredCount string
}

// BufferModifiedData describes an applied edit and the resulting text.
type BufferModifiedData struct {
	Edit      editor.Event
	Text      string
	UndoDepth int
}

// EditUndoneData describes a reverted edit and the restored text.
type EditUndoneData struct {
	Edit      editor.Event
	Text      string
	UndoDepth int
}

// CharacterPrintedData is the character written for a print command.
type CharacterPrintedData struct {
	Position  int
	Character string
}

// SessionFinishedData is the final buffer and how the session ended.
type SessionFinishedData struct {
	Text     string
	Commands int
	Err      error
}
