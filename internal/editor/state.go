package editor

import (
	"fmt"

	"github.com/bethropolis/tidebuf/internal/text"
)

// State is the buffer content at one step of the session.
// The Applier returns a new State instead of mutating the one it is given.
type State struct {
	Text string
}

// NewState returns the empty state a session starts with.
func NewState() State {
	return State{}
}

// CharacterAt returns the character at 1-based position pos.
func (s State) CharacterAt(units text.Units, pos int) (string, error) {
	ch, ok := units.At(s.Text, pos-1)
	if !ok {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, pos, units.Count(s.Text))
	}
	return ch, nil
}

// Len returns the buffer length in characters.
func (s State) Len(units text.Units) int {
	return units.Count(s.Text)
}
