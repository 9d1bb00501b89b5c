package stats

import (
	"testing"

	"github.com/bethropolis/stepsort/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInversions(t *testing.T) {
	assert.Equal(t, 0, Inversions(nil))
	assert.Equal(t, 0, Inversions([]int{1, 2, 3}))
	assert.Equal(t, 3, Inversions([]int{3, 2, 1}))
	assert.Equal(t, 6, Inversions([]int{5, 3, 8, 1, 4}))
	assert.Equal(t, 0, Inversions([]int{3, 3, 3}))
}

func TestStatsCommand(t *testing.T) {
	api := plugintest.New(5, 3, 8, 1, 4)
	p := New()
	require.NoError(t, p.Initialize(api))

	require.NoError(t, api.Run("stats"))
	assert.Equal(t, "bubble, n=5: comparisons 0/10, swaps 0/10, inversions left 6", api.LastMessage())

	for api.Step() {
	}
	require.NoError(t, api.Run("stats"))
	assert.Equal(t, "bubble, n=5: comparisons 10/10, swaps 6/10, inversions left 0", api.LastMessage())

	assert.Error(t, p.Initialize(api), "second registration collides")
	assert.NoError(t, p.Shutdown())
}
