// Package plugin lets optional observers hook into a session.
package plugin

import (
	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/text"
)

// API defines the methods plugins can use to interact with a session.
// Plugins observe; they cannot edit the buffer.
type API interface {
	// --- Buffer Access (Read-Only) ---
	BufferText() string
	UndoDepth() int
	Units() text.Units

	// --- Event Bus Interaction ---
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Status ---
	SetStatusMessage(format string, args ...interface{})
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once before the session starts. Plugins subscribe to
	// events here.
	Initialize(api API) error

	// Shutdown is called once after the session has finished.
	Shutdown() error
}
