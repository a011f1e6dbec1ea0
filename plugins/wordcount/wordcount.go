// Package wordcount reports line, word and character counts of the final buffer.
package wordcount

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/logger"
	"github.com/bethropolis/tidebuf/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// Stats are the counts computed for a buffer.
type Stats struct {
	Lines      int
	Words      int
	Characters int
	Bytes      int
}

func (s Stats) String() string {
	return fmt.Sprintf("Lines: %d, Words: %d, Chars: %d, Bytes: %d", s.Lines, s.Words, s.Characters, s.Bytes)
}

// WordCount computes Stats when the session finishes.
type WordCount struct {
	api  plugin.API
	last Stats
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize subscribes to session completion.
func (p *WordCount) Initialize(api plugin.API) error {
	if api == nil {
		return fmt.Errorf("wordcount plugin needs an API")
	}
	p.api = api
	api.SubscribeEvent(event.TypeSessionFinished, p.handleSessionFinished)
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Last returns the most recently computed stats.
func (p *WordCount) Last() Stats {
	return p.last
}

func (p *WordCount) handleSessionFinished(e event.Event) bool {
	data, ok := e.Data.(event.SessionFinishedData)
	if !ok {
		return false
	}
	p.last = Count(data.Text, p.api.Units().Count)
	logger.InfoTagf("wordcount", "WordCount: %s", p.last)
	p.api.SetStatusMessage("%s", p.last)
	return false
}

// Count computes stats for text, measuring characters with countChars.
func Count(text string, countChars func(string) int) Stats {
	s := Stats{
		Words:      countWords(text),
		Characters: countChars(text),
		Bytes:      len(text),
	}
	if text != "" {
		s.Lines = strings.Count(text, "\n") + 1
	}
	return s
}

// countWords counts sequences of non-space characters.
func countWords(data string) int {
	count := 0
	inWord := false
	for _, r := range data {
		if !strings.ContainsRune(" \t\n\r", r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}
