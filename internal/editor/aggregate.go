package editor

import (
	"fmt"

	"github.com/bethropolis/tidebuf/internal/text"
)

// Aggregate decides which event a command produces against the current state.
// It never modifies the state it is given.
type Aggregate struct {
	units text.Units
}

// NewAggregate creates an aggregate measuring characters with units.
func NewAggregate(units text.Units) *Aggregate {
	return &Aggregate{units: units}
}

// Append records the text to append. It always succeeds.
func (a *Aggregate) Append(_ State, cmd AppendText) Appended {
	return Appended{Text: cmd.Text}
}

// Delete captures the last cmd.Count characters of the buffer as the removed text.
func (a *Aggregate) Delete(state State, cmd DeleteLastCharacters) (Deleted, error) {
	_, tail, ok := a.units.Tail(state.Text, cmd.Count)
	if !ok {
		return Deleted{}, fmt.Errorf("%w: delete %d from %d characters",
			ErrDeleteUnderflow, cmd.Count, a.units.Count(state.Text))
	}
	return Deleted{Count: cmd.Count, Text: tail}, nil
}
