package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bethropolis/tidebuf/internal/editor"
	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/logger"
)

// Phase is the lifecycle position of a Processor.
type Phase int

const (
	Uninitialized Phase = iota
	Running
	Finished
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Processor reads commands one at a time and applies them to its session.
// It is the only writer of the session's state and log.
type Processor struct {
	input    LineSource
	output   LineSink
	session  *Session
	events   *event.Manager
	phase    Phase
	commands int
}

// NewProcessor wires a session to its line collaborators. events may be nil.
func NewProcessor(input LineSource, output LineSink, s *Session, events *event.Manager) *Processor {
	return &Processor{
		input:   input,
		output:  output,
		session: s,
		events:  events,
	}
}

// Phase returns the current lifecycle phase.
func (p *Processor) Phase() Phase { return p.phase }

// Session returns the session being processed.
func (p *Processor) Session() *Session { return p.session }

// Commands returns how many commands have been executed.
func (p *Processor) Commands() int { return p.commands }

// Initialize consumes the declared command count line. The count is not validated
// against the number of commands that follow.
func (p *Processor) Initialize() error {
	if p.phase != Uninitialized {
		return nil
	}
	line, err := p.input.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return p.finish(fmt.Errorf("failed to read command count: %w", err))
	}
	if errors.Is(err, io.EOF) && line == "" {
		logger.DebugTagf("session", "Processor: input ended before the command count")
		p.finish(nil)
		return nil
	}
	if _, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr != nil {
		logger.DebugTagf("session", "Processor: ignoring non-numeric command count %q", line)
	}

	p.phase = Running
	logger.DebugTagf("session", "Processor: declared count %q, running", strings.TrimSpace(line))
	p.dispatch(event.TypeSessionStarted, event.SessionStartedData{DeclaredCount: strings.TrimSpace(line)})
	return nil
}

// Next reads and executes one command. It returns false once the input is exhausted
// or a command failed; the error, if any, ends the session.
func (p *Processor) Next() (bool, error) {
	switch p.phase {
	case Uninitialized:
		return false, ErrNotInitialized
	case Finished:
		return false, nil
	}

	line, err := p.input.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return false, p.finish(fmt.Errorf("failed to read command: %w", err))
	}
	if strings.TrimSpace(line) == "" {
		p.finish(nil)
		return false, nil
	}

	cmd, err := editor.ParseCommand(line)
	if err != nil {
		return false, p.finish(fmt.Errorf("command %d: %w", p.commands+1, err))
	}
	if err := p.execute(cmd); err != nil {
		return false, p.finish(fmt.Errorf("command %d (%v): %w", p.commands+1, cmd.Op(), err))
	}
	p.commands++
	return true, nil
}

// Run initializes the processor and executes commands until the input ends.
func (p *Processor) Run() error {
	if err := p.Initialize(); err != nil {
		return err
	}
	for {
		more, err := p.Next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// execute dispatches one parsed command.
func (p *Processor) execute(cmd editor.Command) error {
	s := p.session
	switch c := cmd.(type) {
	case editor.AppendText:
		return p.applyEdit(s.Aggregate.Append(s.State, c))
	case editor.DeleteLastCharacters:
		evt, err := s.Aggregate.Delete(s.State, c)
		if err != nil {
			return err
		}
		return p.applyEdit(evt)
	case editor.PrintCharacter:
		ch, err := s.State.CharacterAt(s.Units, c.Position)
		if err != nil {
			return err
		}
		if err := p.output.WriteLine(ch); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		p.dispatch(event.TypeCharacterPrinted, event.CharacterPrintedData{Position: c.Position, Character: ch})
		return nil
	case editor.UndoLastEdit:
		return p.undo()
	default:
		return fmt.Errorf("%w: %T", editor.ErrUnsupportedOperation, cmd)
	}
}

// applyEdit records evt and replaces the state with its result.
func (p *Processor) applyEdit(evt editor.Event) error {
	s := p.session
	next, err := s.Applier.Apply(s.State, evt)
	if err != nil {
		return err
	}
	s.Log.Record(evt)
	s.State = next
	p.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: evt, Text: next.Text, UndoDepth: s.Log.Len()})
	return nil
}

// undo reverts the most recent edit. An empty log is a no-op.
// The event leaves the log only once its inverse has been applied.
func (p *Processor) undo() error {
	s := p.session
	evt, ok := s.Log.Peek()
	if !ok {
		logger.DebugTagf("session", "Processor: nothing to undo")
		return nil
	}
	prev, err := s.Applier.Undo(s.State, evt)
	if err != nil {
		return err
	}
	s.Log.Pop()
	s.State = prev
	p.dispatch(event.TypeEditUndone, event.EditUndoneData{Edit: evt, Text: prev.Text, UndoDepth: s.Log.Len()})
	return nil
}

// finish moves to Finished and announces how the session ended. It returns err unchanged.
func (p *Processor) finish(err error) error {
	if p.phase == Finished {
		return err
	}
	p.phase = Finished
	if err != nil {
		logger.Errorf("Processor: session aborted after %d command(s): %v", p.commands, err)
	} else {
		logger.DebugTagf("session", "Processor: input exhausted after %d command(s)", p.commands)
	}
	p.dispatch(event.TypeSessionFinished, event.SessionFinishedData{
		Text:     p.session.Text(),
		Commands: p.commands,
		Err:      err,
	})
	return err
}

func (p *Processor) dispatch(t event.Type, data interface{}) {
	if p.events != nil {
		p.events.Dispatch(t, data)
	}
}
