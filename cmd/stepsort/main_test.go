package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "stepsort version dev\n", execute(t, "version"))
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "run",
		"--config", filepath.Join(dir, "missing.toml"),
		"--logfile", filepath.Join(dir, "test.log"),
		"--values", "2,1",
		"--algorithm", "insertion",
		"--tail", "1")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Insertion sort of 2,1", lines[0])
	assert.Contains(t, lines[1], "Insertion sort complete")
	assert.Equal(t, "Result: 1,2", lines[2])
	assert.Equal(t, "Comparisons: 1", lines[3])
	assert.Equal(t, "Swaps: 1", lines[4])
}
