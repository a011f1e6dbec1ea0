package editor

import "fmt"

// OperationID is the numeric operation code that starts every command line.
type OperationID int

const (
	OpAppend OperationID = iota + 1
	OpDelete
	OpPrint
	OpUndo
)

func (op OperationID) String() string {
	switch op {
	case OpAppend:
		return "append"
	case OpDelete:
		return "delete"
	case OpPrint:
		return "print"
	case OpUndo:
		return "undo"
	}
	return fmt.Sprintf("OperationID(%d)", int(op))
}

// Command is one parsed input line. The set of implementations is closed.
type Command interface {
	Op() OperationID
	isCommand()
}

// AppendText appends Text to the end of the buffer.
type AppendText struct {
	Text string
}

// DeleteLastCharacters removes the last Count characters of the buffer.
type DeleteLastCharacters struct {
	Count int
}

// PrintCharacter emits the character at Position (1-based).
type PrintCharacter struct {
	Position int
}

// UndoLastEdit reverts the most recent append or delete.
type UndoLastEdit struct{}

func (AppendText) Op() OperationID           { return OpAppend }
func (DeleteLastCharacters) Op() OperationID { return OpDelete }
func (PrintCharacter) Op() OperationID       { return OpPrint }
func (UndoLastEdit) Op() OperationID         { return OpUndo }

func (AppendText) isCommand()           {}
func (DeleteLastCharacters) isCommand() {}
func (PrintCharacter) isCommand()       {}
func (UndoLastEdit) isCommand()         {}
