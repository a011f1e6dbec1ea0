// Package text decides what a single "character" of the buffer is.
package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Units measures and slices strings in characters.
type Units interface {
	// Name returns the configuration name of the unit.
	Name() string
	// Count returns the number of characters in s.
	Count(s string) int
	// At returns the character at 0-based index i. ok is false when i is out of range.
	At(s string, i int) (ch string, ok bool)
	// Tail splits off the last n characters of s. ok is false when s has fewer than n.
	Tail(s string, n int) (head, tail string, ok bool)
}

// Unit names accepted by Parse.
const (
	GraphemeUnits = "grapheme"
	RuneUnits     = "rune"
	ByteUnits     = "byte"
)

// Parse returns the Units implementation for a configuration name.
func Parse(name string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case GraphemeUnits, "":
		return Graphemes{}, nil
	case RuneUnits:
		return Runes{}, nil
	case ByteUnits:
		return Bytes{}, nil
	}
	return nil, fmt.Errorf("unknown character unit %q (want %s, %s or %s)", name, GraphemeUnits, RuneUnits, ByteUnits)
}

// Graphemes counts user-perceived characters (extended grapheme clusters).
type Graphemes struct{}

func (Graphemes) Name() string { return GraphemeUnits }

func (Graphemes) Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func (Graphemes) At(s string, i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	gr := uniseg.NewGraphemes(s)
	for idx := 0; gr.Next(); idx++ {
		if idx == i {
			return gr.Str(), true
		}
	}
	return "", false
}

func (g Graphemes) Tail(s string, n int) (string, string, bool) {
	if n < 0 {
		return s, "", false
	}
	total := g.Count(s)
	if n > total {
		return s, "", false
	}
	keep := total - n
	cut := 0
	gr := uniseg.NewGraphemes(s)
	for idx := 0; idx < keep && gr.Next(); idx++ {
		_, cut = gr.Positions()
	}
	return s[:cut], s[cut:], true
}

// Runes counts Unicode code points.
type Runes struct{}

func (Runes) Name() string { return RuneUnits }

func (Runes) Count(s string) int {
	return utf8.RuneCountInString(s)
}

func (Runes) At(s string, i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	idx := 0
	for offset := range s {
		if idx == i {
			_, size := utf8.DecodeRuneInString(s[offset:])
			return s[offset : offset+size], true
		}
		idx++
	}
	return "", false
}

func (r Runes) Tail(s string, n int) (string, string, bool) {
	if n < 0 {
		return s, "", false
	}
	cut := len(s)
	for ; n > 0; n-- {
		if cut == 0 {
			return s, "", false
		}
		_, size := utf8.DecodeLastRuneInString(s[:cut])
		cut -= size
	}
	return s[:cut], s[cut:], true
}

// Bytes treats every byte as one character.
type Bytes struct{}

func (Bytes) Name() string { return ByteUnits }

func (Bytes) Count(s string) int { return len(s) }

func (Bytes) At(s string, i int) (string, bool) {
	if i < 0 || i >= len(s) {
		return "", false
	}
	return s[i : i+1], true
}

func (Bytes) Tail(s string, n int) (string, string, bool) {
	if n < 0 || n > len(s) {
		return s, "", false
	}
	return s[:len(s)-n], s[len(s)-n:], true
}
