// Package plugintest provides an in-memory plugin.API for tests. It drives a
// real engine over static items, so command and plugin tests see genuine
// engine behavior without a terminal.
package plugintest

import (
	"fmt"
	"strings"

	"github.com/bethropolis/stepsort/internal/core"
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/internal/theme"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.API = (*API)(nil)

// API is a fake plugin.API.
type API struct {
	Engine   *core.Engine
	Events   *event.Manager
	Themes   *theme.Manager
	Commands map[string]plugin.CommandFunc
	Config   map[string]map[string]interface{}

	Messages  []string
	Clipboard string
	auto      bool
}

// New creates a fake driving a bubble sort over values.
func New(values ...int) *API {
	a := &API{
		Engine:   core.NewEngine(core.Config{Algorithm: types.Bubble}),
		Events:   event.NewManager(),
		Themes:   theme.NewManager(""),
		Commands: make(map[string]plugin.CommandFunc),
		Config:   make(map[string]map[string]interface{}),
	}
	a.Engine.SetEventManager(a.Events)
	a.Engine.Configure(item.StaticSeq(values...))
	return a
}

// Run executes a registered command.
func (a *API) Run(name string, args ...string) error {
	fn, ok := a.Commands[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	return fn(args)
}

// LastMessage returns the most recent status message, or "".
func (a *API) LastMessage() string {
	if len(a.Messages) == 0 {
		return ""
	}
	return a.Messages[len(a.Messages)-1]
}

func (a *API) Stats() plugin.Stats {
	return plugin.Stats{
		Algorithm:   a.Engine.Algorithm(),
		Count:       a.Engine.Len(),
		Comparisons: a.Engine.ComparisonCount(),
		Swaps:       a.Engine.SwapCount(),
		Depth:       a.Engine.HistoryDepth(),
		Complete:    a.Engine.IsComplete(),
	}
}

func (a *API) Values() []int { return a.Engine.Values() }
func (a *API) Step() bool { return a.Engine.Step() }
func (a *API) Undo() bool { return a.Engine.Undo() }
func (a *API) Reset() { a.Engine.Reset() }
func (a *API) SetAlgorithm(al types.Algorithm) { a.Engine.SetAlgorithm(al) }
func (a *API) SetAuto(on bool) { a.auto = on }
func (a *API) Auto() bool { return a.auto }
func (a *API) Settle() {}

func (a *API) LoadValues(values []int) error {
	if len(values) == 0 {
		return fmt.Errorf("no values")
	}
	a.Engine.Configure(item.StaticSeq(values...))
	return nil
}

// LoadRandom loads count descending values, so tests stay deterministic.
func (a *API) LoadRandom(count int) error {
	values := make([]int, count)
	for i := range values {
		values[i] = count - i
	}
	return a.LoadValues(values)
}

func (a *API) DispatchEvent(t event.Type, data interface{}) { a.Events.Dispatch(t, data) }
func (a *API) SubscribeEvent(t event.Type, h event.Handler) { a.Events.Subscribe(t, h) }

func (a *API) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, exists := a.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.Commands[name] = fn
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.Messages = append(a.Messages, fmt.Sprintf(format, args...))
}

func (a *API) Copy(text string) bool {
	a.Clipboard = text
	return false
}

func (a *API) GetThemeStyle(name string) tcell.Style { return a.Themes.Current().GetStyle(name) }
func (a *API) SetTheme(name string) error { return a.Themes.SetTheme(name) }
func (a *API) GetTheme() *theme.Theme { return a.Themes.Current() }
func (a *API) ListThemes() []string { return a.Themes.ListThemes() }

func (a *API) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	v, ok := a.Config[strings.ToLower(pluginName)][key]
	return v, ok
}
