package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/plugin/plugintest"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	line := Format(at, event.SortCompleteData{Algorithm: types.Bubble, Comparisons: 10, Swaps: 6}, []int{1, 3, 4, 5, 8})
	assert.Equal(t, "2024-05-01T12:00:00Z algorithm=bubble n=5 comparisons=10 swaps=6 result=1,3,4,5,8", line)
}

func TestDisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.log")

	api := plugintest.New(2, 1)
	api.Config["runlog"] = map[string]interface{}{"path": path}
	p := New()
	require.NoError(t, p.Initialize(api))

	for api.Step() {
	}
	require.NoError(t, p.Shutdown())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWritesOneLinePerSort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.log")

	api := plugintest.New(5, 3, 8, 1, 4)
	api.Config["runlog"] = map[string]interface{}{"enabled": true, "path": path}
	p := New()
	require.NoError(t, p.Initialize(api))

	for api.Step() {
	}
	// A completed engine does not report again
	api.Step()

	require.NoError(t, api.LoadValues([]int{2, 1}))
	for api.Step() {
	}
	require.NoError(t, p.Shutdown())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "algorithm=bubble n=5 comparisons=10 swaps=6 result=1,3,4,5,8")
	assert.Contains(t, lines[1], "n=2 comparisons=1 swaps=1 result=1,2")
}

func TestInvalidConfigFallsBack(t *testing.T) {
	api := plugintest.New(1)
	api.Config["runlog"] = map[string]interface{}{"enabled": "yes", "path": 3}
	p := New().(*RunLog)
	require.NoError(t, p.Initialize(api))
	assert.False(t, p.enabled)
	assert.Equal(t, defaultPath, p.path)
	assert.NoError(t, p.Shutdown())
}
