// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/theme"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
type CommandFunc func(args []string) error

// Stats is a read-only summary of the engine.
type Stats struct {
	Algorithm   types.Algorithm
	Count       int
	Comparisons int
	Swaps       int
	Depth       int
	Complete    bool
}

// API is what plugins and commands may do to the running visualizer. Every
// method must be called from the main loop (commands and event handlers
// already are).
type API interface {
	// --- Engine ---
	Stats() Stats
	Values() []int
	Step() bool
	Undo() bool
	Reset()
	SetAlgorithm(a types.Algorithm)
	LoadValues(values []int) error
	LoadRandom(count int) error
	SetAuto(on bool)
	Auto() bool
	Settle() // Finish running animations at once

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar & Clipboard ---
	SetStatusMessage(format string, args ...interface{})
	Copy(text string) bool

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Configuration ---
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins subscribe
	// to events and register commands here.
	Initialize(api API) error

	// Shutdown is called once when the app is closing.
	Shutdown() error
}
