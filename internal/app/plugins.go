package app

import (
	"fmt"

	"github.com/bethropolis/tidebuf/internal/logger"
	"github.com/bethropolis/tidebuf/internal/plugin"
	"github.com/bethropolis/tidebuf/plugins/wordcount"
)

// registerPlugins registers all known plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	// Adding a new plugin means adding its constructor here.
	pluginConstructors := []func() plugin.Plugin{
		func() plugin.Plugin { return wordcount.New() },
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}

// setupPlugins registers and initializes plugins against this app's session.
func (a *App) setupPlugins() error {
	a.pluginManager = plugin.NewManager()
	if err := registerPlugins(a.pluginManager); err != nil {
		return err
	}
	a.pluginManager.InitializePlugins(newSessionAPI(a))
	return nil
}
