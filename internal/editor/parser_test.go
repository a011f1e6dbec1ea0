package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"1 abc", AppendText{Text: "abc"}},
		{"1 hello world", AppendText{Text: "hello world"}},
		{"1  leading", AppendText{Text: " leading"}},
		{"1 trailing ", AppendText{Text: "trailing "}},
		{"1\ttabbed text", AppendText{Text: "tabbed text"}},
		{"1 ", AppendText{Text: ""}},
		{"2 3", DeleteLastCharacters{Count: 3}},
		{"2  7 ", DeleteLastCharacters{Count: 7}},
		{"2 0", DeleteLastCharacters{Count: 0}},
		{"3 1", PrintCharacter{Position: 1}},
		{"4", UndoLastEdit{}},
		{"4 ignored", UndoLastEdit{}},
		{"append x y", AppendText{Text: "x y"}},
		{"DELETE 2", DeleteLastCharacters{Count: 2}},
		{"Print 5", PrintCharacter{Position: 5}},
		{"undo", UndoLastEdit{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if err != nil {
				t.Fatalf("ParseCommand(%q): %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCommand(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
		token   string
	}{
		{"5 x", ErrUnsupportedOperation, "5"},
		{"0", ErrUnsupportedOperation, "0"},
		{"redo", ErrUnsupportedOperation, "redo"},
		{"x1 abc", ErrUnsupportedOperation, "x1"},
		{"1", ErrMalformedArgument, "1"},
		{"2", ErrMalformedArgument, "2"},
		{"2 ", ErrMalformedArgument, "2"},
		{"2 abc", ErrMalformedArgument, "2"},
		{"2 -1", ErrMalformedArgument, "2"},
		{"3 1.5", ErrMalformedArgument, "3"},
		{"3 1 2", ErrMalformedArgument, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseCommand(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if perr.Token != tt.token || perr.Line != tt.line {
				t.Errorf("ParseError = {Line: %q, Token: %q}, want {%q, %q}", perr.Line, perr.Token, tt.line, tt.token)
			}
		})
	}
}

func TestOperationIDString(t *testing.T) {
	cmds := []Command{AppendText{}, DeleteLastCharacters{}, PrintCharacter{}, UndoLastEdit{}}
	want := []string{"append", "delete", "print", "undo"}
	for i, c := range cmds {
		if got := c.Op().String(); got != want[i] {
			t.Errorf("%T.Op() = %q, want %q", c, got, want[i])
		}
	}
	if got := OperationID(9).String(); got != "OperationID(9)" {
		t.Errorf("unknown op String() = %q", got)
	}
}
