package commands

import (
	"testing"

	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/plugin/plugintest"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(values ...int) *plugintest.API {
	api := plugintest.New(values...)
	RegisterAppCommands(api)
	return api
}

func TestRegistersBuiltins(t *testing.T) {
	api := setup()
	for _, name := range []string{"theme", "themes", "algo", "values", "random", "reset", "auto", "step", "undo", "copy"} {
		assert.Contains(t, api.Commands, name)
	}
}

func TestAlgoCommand(t *testing.T) {
	api := setup(5, 3, 8, 1, 4)
	require.NoError(t, api.Run("algo", "sel"))
	assert.Equal(t, types.Selection, api.Engine.Algorithm())
	assert.Equal(t, "Algorithm set to selection", api.LastMessage())

	require.NoError(t, api.Run("algo"))
	assert.Equal(t, "Algorithm: selection", api.LastMessage())

	assert.ErrorIs(t, api.Run("algo", "quick"), types.ErrUnknownAlgorithm)
}

func TestValuesCommand(t *testing.T) {
	api := setup(1, 2)
	require.NoError(t, api.Run("values", "9,2", "7"))
	assert.Equal(t, []int{9, 2, 7}, api.Values())

	require.NoError(t, api.Run("values"))
	assert.Equal(t, "Values: 9,2,7", api.LastMessage())

	assert.ErrorIs(t, api.Run("values", "x"), config.ErrInvalidValue)
	assert.Equal(t, []int{9, 2, 7}, api.Values(), "failed load keeps the old values")
}

func TestRandomCommand(t *testing.T) {
	api := setup(1, 2, 3)
	require.NoError(t, api.Run("random"))
	assert.Len(t, api.Values(), 3)

	require.NoError(t, api.Run("random", "6"))
	assert.Len(t, api.Values(), 6)

	assert.ErrorIs(t, api.Run("random", "0"), config.ErrInvalidValue)
	assert.ErrorIs(t, api.Run("random", "lots"), config.ErrInvalidValue)
}

func TestStepAndUndoCommands(t *testing.T) {
	api := setup(5, 3, 8, 1, 4)
	require.NoError(t, api.Run("step", "4"))
	assert.Equal(t, 2, api.Engine.ComparisonCount())
	assert.Equal(t, 4, api.Engine.HistoryDepth())

	require.NoError(t, api.Run("undo", "3"))
	assert.Equal(t, 1, api.Engine.HistoryDepth())

	require.NoError(t, api.Run("step", "1000"))
	assert.True(t, api.Engine.IsComplete())
	assert.Equal(t, []int{1, 3, 4, 5, 8}, api.Values())
	assert.Equal(t, "step x20: comparisons 10, swaps 6", api.LastMessage())

	assert.Error(t, api.Run("step", "-2"))
}

func TestAutoCommand(t *testing.T) {
	api := setup(2, 1)
	require.NoError(t, api.Run("auto"))
	assert.True(t, api.Auto())
	require.NoError(t, api.Run("auto", "off"))
	assert.False(t, api.Auto())
	require.NoError(t, api.Run("auto", "on"))
	assert.True(t, api.Auto())
	assert.Error(t, api.Run("auto", "maybe"))
}

func TestCopyCommand(t *testing.T) {
	api := setup(2, 1)
	require.NoError(t, api.Run("step", "100"))
	require.NoError(t, api.Run("copy"))
	assert.Equal(t, "Bubble sort (sorted): 1,2 | comparisons 1, swaps 1", api.Clipboard)
	assert.Equal(t, "Copied to internal register", api.LastMessage())
}

func TestThemeCommands(t *testing.T) {
	api := setup()
	require.NoError(t, api.Run("theme", "paper"))
	assert.Equal(t, "Paper", api.GetTheme().Name)
	assert.Equal(t, "Theme set to: Paper", api.LastMessage())

	require.NoError(t, api.Run("theme", "next"))
	assert.Equal(t, "DevComfort Dark", api.GetTheme().Name)

	assert.ErrorContains(t, api.Run("theme", "neon"), "Available: DevComfort Dark, Paper")

	require.NoError(t, api.Run("themes"))
	assert.Equal(t, "Available themes: DevComfort Dark, Paper", api.LastMessage())
}
