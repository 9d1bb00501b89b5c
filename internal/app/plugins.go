package app

import (
	"fmt"

	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/plugins/runlog"
	"github.com/bethropolis/stepsort/plugins/stats"
)

// defaultPlugins lists the bundled plugins. Adding a plugin means adding
// its constructor here.
func defaultPlugins() []plugin.Plugin {
	return []plugin.Plugin{
		stats.New(),
		runlog.New(),
	}
}

// registerPlugins registers every plugin, returning the first failure.
func registerPlugins(pm *plugin.Manager, plugins []plugin.Plugin) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var finalErr error
	for _, p := range plugins {
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
