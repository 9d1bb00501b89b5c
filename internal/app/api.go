package app

import (
	"fmt"

	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/internal/theme"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.API = (*appAPI)(nil)

// appAPI is the plugin.API the app hands to commands and plugins.
type appAPI struct {
	app *App
}

// --- Engine ---

func (api *appAPI) Stats() plugin.Stats {
	e := api.app.engine
	return plugin.Stats{
		Algorithm:   e.Algorithm(),
		Count:       e.Len(),
		Comparisons: e.ComparisonCount(),
		Swaps:       e.SwapCount(),
		Depth:       e.HistoryDepth(),
		Complete:    e.IsComplete(),
	}
}

func (api *appAPI) Values() []int { return api.app.engine.Values() }

// Step waits, like the engine's swap gate, until every block is at rest,
// so the initial drop has to land before the first comparison.
func (api *appAPI) Step() bool {
	if api.app.blocks.Moving() {
		return true
	}
	return api.app.engine.Step()
}

func (api *appAPI) Undo() bool { return api.app.engine.Undo() }

// Reset drops fresh blocks in the order last loaded.
func (api *appAPI) Reset() { api.app.load(api.app.values) }

func (api *appAPI) SetAlgorithm(a types.Algorithm) {
	api.app.auto = false
	api.app.engine.SetAlgorithm(a)
}

func (api *appAPI) LoadValues(values []int) error {
	if len(values) == 0 {
		return config.ErrNoValues
	}
	if len(values) > config.MaxValues {
		return fmt.Errorf("%w: at most %d values", config.ErrInvalidValue, config.MaxValues)
	}
	api.app.load(values)
	return nil
}

func (api *appAPI) LoadRandom(count int) error {
	if count < 1 || count > config.MaxValues {
		return fmt.Errorf("%w: count must be 1-%d", config.ErrInvalidValue, config.MaxValues)
	}
	api.app.load(config.RandomValues(count, api.app.rng))
	return nil
}

func (api *appAPI) SetAuto(on bool) {
	if on && api.app.engine.IsComplete() {
		return
	}
	api.app.auto = on
}

func (api *appAPI) Auto() bool { return api.app.auto }

func (api *appAPI) Settle() { api.app.blocks.Snap() }

// --- Event Bus Interaction ---

func (api *appAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Commands, Status, Clipboard ---

func (api *appAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

func (api *appAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

func (api *appAPI) Copy(text string) bool { return api.app.clipboard.Copy(text) }

// --- Theme Access ---

func (api *appAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

func (api *appAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.DispatchEvent(event.TypeThemeChanged, event.ThemeChangedData{Name: api.app.themeManager.Current().Name})
	return nil
}

func (api *appAPI) GetTheme() *theme.Theme { return api.app.themeManager.Current() }

func (api *appAPI) ListThemes() []string { return api.app.themeManager.ListThemes() }

// --- Configuration ---

func (api *appAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}
