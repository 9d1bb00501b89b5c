package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, values ...int) *App {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Animation.Jitter = false
	if len(values) > 0 {
		cfg.Sort.Values = values
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(cfg, Options{Screen: screen, Plugins: []plugin.Plugin{}})
	require.NoError(t, err)
	screen.SetSize(60, 20)
	t.Cleanup(a.tuiManager.Close)
	return a
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// runFrames advances the frame loop one simulated second at a time.
func runFrames(a *App, start time.Time, n int) time.Time {
	now := start
	for i := 0; i < n; i++ {
		now = now.Add(time.Second)
		a.frame(now)
	}
	return now
}

func TestNewAppLoadsDefaultValues(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, config.DefaultValues, a.engine.Values())
	assert.Equal(t, types.Bubble, a.engine.Algorithm())
	assert.Equal(t, 5, a.blocks.Len())
	assert.False(t, a.engine.IsComplete())
}

func TestKeysStepAndUndo(t *testing.T) {
	a := newTestApp(t, 2, 1)

	assert.True(t, a.handleEvent(key(' ')))
	assert.Equal(t, 1, a.engine.ComparisonCount())

	assert.True(t, a.handleEvent(key('l')))
	assert.Equal(t, 1, a.engine.SwapCount())
	assert.Equal(t, []int{1, 2}, a.engine.Values())

	assert.True(t, a.handleEvent(key('u')))
	assert.Equal(t, 0, a.engine.SwapCount())
	assert.Equal(t, []int{2, 1}, a.engine.Values())
}

func TestManualStepWaitsForInitialDrop(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Sort.Seed = 7
	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(cfg, Options{Screen: screen, Plugins: []plugin.Plugin{}})
	require.NoError(t, err)
	t.Cleanup(a.tuiManager.Close)
	require.True(t, a.blocks.Moving())

	assert.True(t, a.handleEvent(key(' ')))
	assert.True(t, a.api.Step())
	assert.Zero(t, a.engine.ComparisonCount())
	assert.False(t, a.engine.HasHistory())

	a.api.Settle()
	assert.True(t, a.api.Step())
	assert.Equal(t, 1, a.engine.ComparisonCount())
}

func TestAlgorithmKeySwitches(t *testing.T) {
	a := newTestApp(t)
	a.handleEvent(key('3'))
	assert.Equal(t, types.Selection, a.engine.Algorithm())
	a.handleEvent(key('2'))
	assert.Equal(t, types.Insertion, a.engine.Algorithm())
}

func TestAutoModeRunsToCompletion(t *testing.T) {
	a := newTestApp(t)
	start := time.Now()
	a.lastFrame = start

	a.api.SetAuto(true)
	require.True(t, a.auto)

	runFrames(a, start, 200)

	assert.True(t, a.engine.IsComplete())
	assert.False(t, a.auto)
	assert.Equal(t, []int{1, 3, 4, 5, 8}, a.engine.Values())
	assert.Equal(t, 10, a.engine.ComparisonCount())
	assert.Equal(t, 6, a.engine.SwapCount())

	// Auto cannot be re-armed on a finished run
	a.api.SetAuto(true)
	assert.False(t, a.auto)
}

func TestFrameWaitsForMotion(t *testing.T) {
	a := newTestApp(t, 2, 1)
	start := time.Now()
	a.lastFrame = start
	a.api.SetAuto(true)

	// Highlight then swap
	now := start.Add(time.Second)
	a.frame(now)
	now = now.Add(time.Second)
	a.frame(now)
	require.Equal(t, 1, a.engine.SwapCount())
	require.True(t, a.engine.SwapPending())

	// A short tick leaves the blocks mid-flight, so no step runs
	now = now.Add(10 * time.Millisecond)
	assert.True(t, a.frame(now))
	assert.True(t, a.engine.SwapPending())

	runFrames(a, now, 5)
	assert.True(t, a.engine.IsComplete())
}

func TestResetRestoresLoadedOrder(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 6; i++ {
		a.api.Step()
		a.api.Settle()
	}
	require.NotZero(t, a.engine.ComparisonCount())

	a.api.Reset()
	assert.Equal(t, config.DefaultValues, a.engine.Values())
	assert.Zero(t, a.engine.ComparisonCount())
	assert.False(t, a.engine.HasHistory())
}

func TestLoadValuesValidation(t *testing.T) {
	a := newTestApp(t)

	assert.True(t, errors.Is(a.api.LoadValues(nil), config.ErrNoValues))

	tooMany := make([]int, config.MaxValues+1)
	assert.True(t, errors.Is(a.api.LoadValues(tooMany), config.ErrInvalidValue))

	require.NoError(t, a.api.LoadValues([]int{9, 2, 7}))
	assert.Equal(t, []int{9, 2, 7}, a.api.Values())

	assert.True(t, errors.Is(a.api.LoadRandom(0), config.ErrInvalidValue))
	require.NoError(t, a.api.LoadRandom(12))
	assert.Len(t, a.api.Values(), 12)
}

func TestCommandsThroughCommandMode(t *testing.T) {
	a := newTestApp(t)
	a.handleEvent(key(':'))
	for _, r := range "values 4,3" {
		a.handleEvent(key(r))
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, []int{4, 3}, a.engine.Values())
}

func TestThemeChangeUpdatesStyles(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.api.SetTheme("paper"))
	assert.Equal(t, "Paper", a.api.GetTheme().Name)
	assert.Error(t, a.api.SetTheme("does-not-exist"))
	assert.Equal(t, "Paper", a.api.GetTheme().Name)
}

func TestQuitKeyStopsRun(t *testing.T) {
	a := newTestApp(t)
	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	// Inject through the screen so the event loop sees it
	a.tuiManager.GetScreen().(tcell.SimulationScreen).InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not quit")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
