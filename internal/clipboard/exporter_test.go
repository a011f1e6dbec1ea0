package clipboard

import (
	"errors"
	"testing"

	"github.com/bethropolis/tidebuf/internal/event"
)

func TestExportOnSessionFinished(t *testing.T) {
	var got []string
	x := NewExporterWith(func(text string) error {
		got = append(got, text)
		return nil
	})
	bus := event.NewManager()
	x.Subscribe(bus)

	bus.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Text: "ignored"})
	bus.Dispatch(event.TypeSessionFinished, event.SessionFinishedData{Text: "final text"})

	if len(got) != 1 || got[0] != "final text" {
		t.Errorf("clipboard writes = %q", got)
	}
	if !x.Exported() || x.Err() != nil {
		t.Errorf("Exported() = %v, Err() = %v", x.Exported(), x.Err())
	}
}

func TestExportFailureIsNotFatal(t *testing.T) {
	boom := errors.New("no clipboard utility")
	x := NewExporterWith(func(string) error { return boom })
	bus := event.NewManager()
	x.Subscribe(bus)

	bus.Dispatch(event.TypeSessionFinished, event.SessionFinishedData{Text: "abc"})

	if x.Exported() {
		t.Error("Exported() true after a failed write")
	}
	if !errors.Is(x.Err(), boom) {
		t.Errorf("Err() = %v, want wrapped %v", x.Err(), boom)
	}
}
