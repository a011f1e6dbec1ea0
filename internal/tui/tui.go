// Package tui provides an interactive terminal console that serves as a session's
// line source and sink.
package tui

import (
	"fmt"
	"io"

	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/logger"
	"github.com/bethropolis/tidebuf/internal/text"
	"github.com/gdamore/tcell/v2"
)

// MaxTranscript bounds the number of transcript lines kept for display.
const MaxTranscript = 500

// Console manages the terminal screen using tcell.
type Console struct {
	screen     tcell.Screen
	buffer     string
	undoDepth  int
	transcript []string
	input      string
	status     string
	styles     Styles
}

// New creates a console on the process terminal.
func New() (*Console, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen creates a console on an already initialized screen.
func NewWithScreen(s tcell.Screen) *Console {
	styles := DefaultStyles()
	s.SetStyle(styles.Default)
	c := &Console{
		screen: s,
		styles: styles,
		status: "Enter the number of commands",
	}
	c.draw()
	return c
}

// Close finalizes the tcell screen.
func (c *Console) Close() {
	if c.screen != nil {
		c.screen.Fini()
	}
}

// ReadLine edits a line at the prompt until Enter. Esc, Ctrl-D and Ctrl-C end the input.
func (c *Console) ReadLine() (string, error) {
	c.input = ""
	c.draw()
	for {
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return "", io.EOF // Screen finalized
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				line := c.input
				c.input = ""
				c.appendTranscript("> " + line)
				c.draw()
				return line, nil
			case tcell.KeyEscape, tcell.KeyCtrlD, tcell.KeyCtrlC:
				logger.DebugTagf("tui", "Console: input closed by %v", ev.Name())
				return "", io.EOF
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				c.input, _, _ = text.Graphemes{}.Tail(c.input, 1)
			case tcell.KeyTab:
				c.input += "\t"
			case tcell.KeyRune:
				c.input += string(ev.Rune())
			}
		}
		c.draw()
	}
}

// WriteLine adds an output line to the transcript.
func (c *Console) WriteLine(line string) error {
	c.appendTranscript(line)
	c.draw()
	return nil
}

// SetStatus shows a message in the status row.
func (c *Console) SetStatus(format string, args ...interface{}) {
	c.status = fmt.Sprintf(format, args...)
	c.draw()
}

// Subscribe keeps the buffer row and status row in step with the session.
func (c *Console) Subscribe(bus *event.Manager) {
	bus.Subscribe(event.TypeSessionStarted, func(e event.Event) bool {
		c.SetStatus("1 text | 2 n | 3 pos | 4 undo | Esc quits")
		return false
	})
	bus.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		if d, ok := e.Data.(event.BufferModifiedData); ok {
			c.setBuffer(d.Text, d.UndoDepth)
		}
		return false
	})
	bus.Subscribe(event.TypeEditUndone, func(e event.Event) bool {
		if d, ok := e.Data.(event.EditUndoneData); ok {
			c.setBuffer(d.Text, d.UndoDepth)
		}
		return false
	})
	bus.Subscribe(event.TypeSessionFinished, func(e event.Event) bool {
		if d, ok := e.Data.(event.SessionFinishedData); ok && d.Err != nil {
			c.SetStatus("Error: %v", d.Err)
		}
		return false
	})
}

// Buffer returns the buffer text currently displayed.
func (c *Console) Buffer() string { return c.buffer }

// Transcript returns the displayed command and output lines, oldest first.
func (c *Console) Transcript() []string {
	return append([]string(nil), c.transcript...)
}

func (c *Console) setBuffer(text string, undoDepth int) {
	c.buffer = text
	c.undoDepth = undoDepth
	c.draw()
}

func (c *Console) appendTranscript(line string) {
	c.transcript = append(c.transcript, line)
	if over := len(c.transcript) - MaxTranscript; over > 0 {
		c.transcript = c.transcript[over:]
	}
}
