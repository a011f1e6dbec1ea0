package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Styles used by the console.
type Styles struct {
	Default   tcell.Style
	Label     tcell.Style
	StatusBar tcell.Style
	Prompt    tcell.Style
}

// DefaultStyles returns the console colour scheme.
func DefaultStyles() Styles {
	return Styles{
		Default:   tcell.StyleDefault,
		Label:     tcell.StyleDefault.Bold(true),
		StatusBar: tcell.StyleDefault.Reverse(true),
		Prompt:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// drawText draws str at (x, y) clipped to maxWidth display columns and returns the
// column after the last cluster drawn.
func drawText(s tcell.Screen, x, y, maxWidth int, str string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(str)
	end := x + maxWidth
	for gr.Next() {
		width := gr.Width()
		runes := gr.Runes()
		if runes[0] == '\t' {
			runes, width = []rune{' '}, 1
		}
		if x+width > end {
			break // Stop if cluster doesn't fit
		}
		if width > 0 {
			s.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += width
	}
	return x
}

// tailToWidth drops leading clusters of str until it fits in width columns.
func tailToWidth(str string, width int) string {
	if uniseg.StringWidth(str) <= width {
		return str
	}
	gr := uniseg.NewGraphemes(str)
	total := uniseg.StringWidth(str)
	for gr.Next() {
		total -= gr.Width()
		if _, to := gr.Positions(); total <= width {
			return str[to:]
		}
	}
	return ""
}

// fillRow paints a whole row with style.
func fillRow(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// draw renders the buffer row, the transcript, the status row and the prompt.
func (c *Console) draw() {
	s := c.screen
	s.Clear()
	width, height := s.Size()
	if width <= 0 || height < 3 {
		s.Show()
		return
	}

	// Buffer row: the end of the buffer is the interesting part.
	label := "buffer: "
	x := drawText(s, 0, 0, width, label, c.styles.Label)
	drawText(s, x, 0, width-x, tailToWidth(c.buffer, width-x), c.styles.Default)

	// Transcript rows, newest at the bottom.
	rows := height - 3
	start := len(c.transcript) - rows
	if start < 0 {
		start = 0
	}
	for i, line := range c.transcript[start:] {
		drawText(s, 0, 1+i, width, line, c.styles.Default)
	}

	// Status row
	statusY := height - 2
	fillRow(s, statusY, width, c.styles.StatusBar)
	depth := fmt.Sprintf("undo: %d", c.undoDepth)
	depthX := width - uniseg.StringWidth(depth)
	drawText(s, 0, statusY, depthX-1, c.status, c.styles.StatusBar)
	if depthX > 0 {
		drawText(s, depthX, statusY, width-depthX, depth, c.styles.StatusBar)
	}

	// Prompt row
	promptY := height - 1
	x = drawText(s, 0, promptY, width, "> ", c.styles.Prompt)
	cursorX := drawText(s, x, promptY, width-x, tailToWidth(c.input, width-x-1), c.styles.Default)
	s.ShowCursor(cursorX, promptY)

	s.Show()
}
