package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadlessStreamsNarration(t *testing.T) {
	cfg := config.NewDefaultConfig()
	var out bytes.Buffer

	require.NoError(t, RunHeadless(context.Background(), cfg, &out, HeadlessOptions{}))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Bubble sort of 5,3,8,1,4\n"))
	assert.Contains(t, text, "Bubble sort complete: 10 comparisons, 6 swaps")
	assert.Contains(t, text, "Result: 1,3,4,5,8\n")
	assert.Contains(t, text, "Comparisons: 10\nSwaps: 6\n")
}

func TestRunHeadlessTail(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Sort.Algorithm = types.Selection.String()
	var full, tail bytes.Buffer

	require.NoError(t, RunHeadless(context.Background(), cfg, &full, HeadlessOptions{}))
	require.NoError(t, RunHeadless(context.Background(), cfg, &tail, HeadlessOptions{Tail: 2}))

	lines := strings.Split(strings.TrimSpace(tail.String()), "\n")
	// Header, two narration lines, result and both counters
	require.Len(t, lines, 6)
	assert.Equal(t, "Selection sort of 5,3,8,1,4", lines[0])
	assert.Contains(t, lines[2], "Selection sort complete")
	assert.Less(t, len(tail.String()), len(full.String()))
}

func TestRunHeadlessCancelled(t *testing.T) {
	cfg := config.NewDefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	assert.ErrorIs(t, RunHeadless(ctx, cfg, &out, HeadlessOptions{}), context.Canceled)
}

func TestRunHeadlessNoValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Sort.Values = nil
	cfg.Sort.RandomCount = 0
	var out bytes.Buffer
	assert.ErrorIs(t, RunHeadless(context.Background(), cfg, &out, HeadlessOptions{}), config.ErrNoValues)
}
