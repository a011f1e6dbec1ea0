package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/tidebuf/internal/config"
	"github.com/bethropolis/tidebuf/internal/editor"
	"github.com/bethropolis/tidebuf/internal/tui"
	"github.com/bethropolis/tidebuf/plugins/wordcount"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

const scenario = "8\n1 abc\n3 3\n2 3\n1 xy\n3 2\n4\n4\n3 1\n"

func streamConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Session.Interface = config.InterfaceStream
	return cfg
}

func TestStreamFromStdin(t *testing.T) {
	var out bytes.Buffer
	a, err := NewApp(Options{
		Config: streamConfig(),
		Stdin:  strings.NewReader(scenario),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if a.Mode() != config.InterfaceStream {
		t.Errorf("Mode() = %q, want stream", a.Mode())
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "c\ny\na\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if got := a.Session().Text(); got != "abc" {
		t.Errorf("final text = %q, want %q", got, "abc")
	}
}

func TestStreamFromFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "commands.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := NewApp(Options{
		Config:     streamConfig(),
		InputPath:  in,
		OutputPath: out,
		Stdin:      strings.NewReader("ignored\n"),
		Stdout:     &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("c\ny\na\n", string(got)); diff != "" {
		t.Errorf("output file mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingInputFile(t *testing.T) {
	_, err := NewApp(Options{
		Config:    streamConfig(),
		InputPath: filepath.Join(t.TempDir(), "missing.txt"),
		Stdout:    &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("NewApp succeeded with a missing input file")
	}
}

func TestRunReportsSessionError(t *testing.T) {
	var out bytes.Buffer
	a, err := NewApp(Options{
		Config: streamConfig(),
		Stdin:  strings.NewReader("3\n1 ab\n3 1\n2 5\n3 1\n"),
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	err = a.Run()
	if err == nil {
		t.Fatal("Run succeeded, want delete underflow")
	}
	if !errors.Is(err, editor.ErrDeleteUnderflow) {
		t.Errorf("Run error = %v, want %v", err, editor.ErrDeleteUnderflow)
	}
	if got := out.String(); got != "a\n" {
		t.Errorf("output before the error = %q, want %q", got, "a\n")
	}
}

func TestInvalidUnits(t *testing.T) {
	cfg := streamConfig()
	cfg.Session.Units = "word"
	if _, err := NewApp(Options{Config: cfg, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}}); err == nil {
		t.Fatal("NewApp accepted unknown units")
	}
}

func TestStatsPlugin(t *testing.T) {
	cfg := streamConfig()
	cfg.Session.ReportStats = true
	a, err := NewApp(Options{
		Config: cfg,
		Stdin:  strings.NewReader("2\n1 hello world\n1 \u00e9\n"),
		Stdout: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	p, ok := a.Plugins().GetPlugin("WordCount")
	if !ok {
		t.Fatal("WordCount plugin not registered")
	}
	want := wordcount.Stats{Lines: 1, Words: 2, Characters: 12, Bytes: 13}
	if diff := cmp.Diff(want, p.(*wordcount.WordCount).Last()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if a.StatusMessage() != want.String() {
		t.Errorf("StatusMessage() = %q, want %q", a.StatusMessage(), want.String())
	}
}

func TestChooseInterface(t *testing.T) {
	tests := []struct {
		mode string
		in   string
		want string
	}{
		{config.InterfaceStream, "", config.InterfaceStream},
		{config.InterfaceTUI, "file.txt", config.InterfaceTUI},
		{config.InterfaceAuto, "file.txt", config.InterfaceStream},
		{config.InterfaceAuto, "", config.InterfaceStream},
	}
	for _, tt := range tests {
		opts := Options{InputPath: tt.in, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}}
		if got := chooseInterface(tt.mode, opts); got != tt.want {
			t.Errorf("chooseInterface(%q, %q) = %q, want %q", tt.mode, tt.in, got, tt.want)
		}
	}
}

func TestTUIRejectsInputFile(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Session.Interface = config.InterfaceTUI
	opened := false
	newConsole := func() (*tui.Console, error) {
		opened = true
		return nil, errors.New("console should not be opened")
	}

	_, err := NewApp(Options{Config: cfg, InputPath: "commands.txt", NewConsole: newConsole})
	if err == nil {
		t.Fatal("NewApp accepted an input file with the tui interface")
	}
	if opened {
		t.Error("console was created before the input file was rejected")
	}
}

func TestTUIMode(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Session.Interface = config.InterfaceTUI

	var console *tui.Console
	newConsole := func() (*tui.Console, error) {
		s := tcell.NewSimulationScreen("UTF-8")
		if err := s.Init(); err != nil {
			return nil, err
		}
		s.SetSize(40, 8)
		console = tui.NewWithScreen(s)
		for _, r := range "1" {
			s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
		}
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		for _, r := range "1 a" {
			s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
		}
		s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
		return console, nil
	}

	a, err := NewApp(Options{Config: cfg, NewConsole: newConsole})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if a.Mode() != config.InterfaceTUI {
		t.Fatalf("Mode() = %q, want tui", a.Mode())
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := a.Session().Text(); got != "a" {
		t.Errorf("final text = %q, want %q", got, "a")
	}
	if got := console.Buffer(); got != "a" {
		t.Errorf("console buffer = %q, want %q", got, "a")
	}
}
