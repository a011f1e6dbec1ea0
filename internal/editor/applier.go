package editor

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidebuf/internal/text"
)

// Applier computes the state after an event, or before it on undo.
// Both directions are pure functions of (state, event).
type Applier struct {
	units text.Units
}

// NewApplier creates an applier measuring characters with units.
func NewApplier(units text.Units) *Applier {
	return &Applier{units: units}
}

// Apply returns the state after evt.
func (a *Applier) Apply(state State, evt Event) (State, error) {
	switch e := evt.(type) {
	case Appended:
		return State{Text: state.Text + e.Text}, nil
	case Deleted:
		head, _, ok := a.units.Tail(state.Text, e.Count)
		if !ok {
			return state, fmt.Errorf("%w: delete %d from %d characters",
				ErrDeleteUnderflow, e.Count, a.units.Count(state.Text))
		}
		return State{Text: head}, nil
	default:
		return state, fmt.Errorf("apply: unknown event %T", evt)
	}
}

// Undo returns the state as it was before evt. evt must be the most recent
// event applied to state.
func (a *Applier) Undo(state State, evt Event) (State, error) {
	switch e := evt.(type) {
	case Appended:
		// Drop by length: the tail is exactly the appended bytes.
		if len(e.Text) > len(state.Text) {
			return state, fmt.Errorf("%w: undo append of %d bytes from %d",
				ErrDeleteUnderflow, len(e.Text), len(state.Text))
		}
		return State{Text: state.Text[:len(state.Text)-len(e.Text)]}, nil
	case Deleted:
		var b strings.Builder
		b.Grow(len(state.Text) + len(e.Text))
		b.WriteString(state.Text)
		b.WriteString(e.Text)
		return State{Text: b.String()}, nil
	default:
		return state, fmt.Errorf("undo: unknown event %T", evt)
	}
}
