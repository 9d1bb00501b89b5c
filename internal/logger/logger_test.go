package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	got, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.DisabledTags = []string{"Noisy"}
	Init(cfg, &buf)

	DebugTagf("noisy", "dropped %d", 1)
	DebugTagf("engine", "kept %d", 2)
	Infof("untagged kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped 1")
	assert.Contains(t, out, "kept 2")
	assert.Contains(t, out, "untagged kept")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.EnabledTags = []string{"engine"}
	Init(cfg, &buf)

	Infof("untagged")
	InfoTagf("engine", "tagged")

	out := buf.String()
	assert.NotContains(t, out, "msg=untagged")
	assert.Contains(t, out, "msg=tagged")
}

func TestPackageFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.DisabledPackages = []string{"logger"}
	Init(cfg, &buf)

	Debugf("from logger package")
	assert.NotContains(t, buf.String(), "from logger package")
}

func TestLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	Init(cfg, &buf)

	Infof("too quiet")
	Warnf("loud enough")

	out := buf.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, "loud enough")
}

func TestOpenStderr(t *testing.T) {
	w, closeFn, err := Open("-")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.NoError(t, closeFn())
}
