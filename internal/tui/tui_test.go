package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/session"
	"github.com/bethropolis/tidebuf/internal/text"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func newSimConsole(t *testing.T, width, height int) (*Console, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(width, height)
	c := NewWithScreen(s)
	t.Cleanup(c.Close)
	return c, s
}

// typeLine queues the keystrokes for line followed by Enter.
func typeLine(s tcell.SimulationScreen, line string) {
	for _, r := range line {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
}

// rowText returns the visible text of row y with trailing blanks removed.
func rowText(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestReadLine(t *testing.T) {
	c, s := newSimConsole(t, 40, 8)

	typeLine(s, "1 a b")
	line, err := c.ReadLine()
	if err != nil || line != "1 a b" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}

	s.InjectKey(tcell.KeyRune, '3', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	line, err = c.ReadLine()
	if err != nil || line != "3 1" {
		t.Fatalf("ReadLine after backspace = %q, %v", line, err)
	}

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine after Esc = %v, want io.EOF", err)
	}

	if diff := cmp.Diff([]string{"> 1 a b", "> 3 1"}, c.Transcript()); diff != "" {
		t.Errorf("transcript (-want +got):\n%s", diff)
	}
}

func TestDrawLayout(t *testing.T) {
	c, s := newSimConsole(t, 30, 6)
	c.setBuffer("hello", 2)
	_ = c.WriteLine("h")
	c.SetStatus("ready")

	if got := rowText(s, 0); got != "buffer: hello" {
		t.Errorf("buffer row = %q", got)
	}
	if got := rowText(s, 1); got != "h" {
		t.Errorf("transcript row = %q", got)
	}
	status := rowText(s, 4)
	if !strings.HasPrefix(status, "ready") || !strings.HasSuffix(status, "undo: 2") {
		t.Errorf("status row = %q", status)
	}
	if got := rowText(s, 5); got != ">" {
		t.Errorf("prompt row = %q", got)
	}
}

func TestLongBufferShowsTail(t *testing.T) {
	c, s := newSimConsole(t, 16, 5)
	c.setBuffer("abcdefghijklmnopqrstuvwxyz", 1)
	if got := rowText(s, 0); got != "buffer: stuvwxyz" {
		t.Errorf("buffer row = %q", got)
	}
}

func TestTailToWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc"},
		{"abcdef", 3, "def"},
		{"a\u65e5\u672c", 4, "\u65e5\u672c"},
		{"a\u65e5\u672c", 3, "\u672c"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := tailToWidth(tt.in, tt.width); got != tt.want {
			t.Errorf("tailToWidth(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestConsoleDrivesSession(t *testing.T) {
	c, s := newSimConsole(t, 40, 10)
	bus := event.NewManager()
	c.Subscribe(bus)

	// The console is both source and sink; feed it one line per ReadLine.
	src := &scriptedConsole{Console: c, screen: s, lines: []string{"3", "1 abc", "2 1", "3 2", ""}}
	p := session.NewProcessor(src, c, session.New(text.Graphemes{}), bus)
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if c.Buffer() != "ab" {
		t.Errorf("displayed buffer = %q", c.Buffer())
	}
	want := []string{"> 3", "> 1 abc", "> 2 1", "> 3 2", "b", "> "}
	if diff := cmp.Diff(want, c.Transcript()); diff != "" {
		t.Errorf("transcript (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(rowText(s, 8), "undo: 2") {
		t.Errorf("status row = %q", rowText(s, 8))
	}
}

// scriptedConsole types the next scripted line just before each read so the
// simulation event queue never overflows.
type scriptedConsole struct {
	*Console
	screen tcell.SimulationScreen
	lines  []string
}

func (sc *scriptedConsole) ReadLine() (string, error) {
	if len(sc.lines) == 0 {
		return "", io.EOF
	}
	typeLine(sc.screen, sc.lines[0])
	sc.lines = sc.lines[1:]
	return sc.Console.ReadLine()
}

var _ session.LineSource = (*Console)(nil)
var _ session.LineSink = (*Console)(nil)
