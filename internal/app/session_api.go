package app

import (
	"fmt"

	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/logger"
	"github.com/bethropolis/tidebuf/internal/plugin"
	"github.com/bethropolis/tidebuf/internal/text"
)

// Ensure appSessionAPI implements the plugin.API interface.
var _ plugin.API = (*appSessionAPI)(nil)

// appSessionAPI gives plugins read access to the session and the event bus.
type appSessionAPI struct {
	app *App
}

func newSessionAPI(app *App) *appSessionAPI {
	return &appSessionAPI{app: app}
}

func (api *appSessionAPI) BufferText() string { return api.app.session.Text() }
func (api *appSessionAPI) UndoDepth() int     { return api.app.session.UndoDepth() }
func (api *appSessionAPI) Units() text.Units  { return api.app.units }

func (api *appSessionAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// SetStatusMessage shows the message in the console, or logs it in stream mode
// where stdout carries only session output.
func (api *appSessionAPI) SetStatusMessage(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	api.app.statusMessage = msg
	if api.app.console != nil {
		api.app.console.SetStatus("%s", msg)
		return
	}
	logger.Infof("Status: %s", msg)
}
