package plugin_test

import (
	"errors"
	"testing"

	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name    string
	initErr error
	log     *[]string
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Initialize(api plugin.API) error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Shutdown() error {
	*r.log = append(*r.log, "shutdown "+r.name)
	return nil
}

func TestManagerLifecycleOrder(t *testing.T) {
	var log []string
	m := plugin.NewManager()
	require.NoError(t, m.Register(&recorder{name: "b", log: &log}))
	require.NoError(t, m.Register(&recorder{name: "a", log: &log}))

	require.NoError(t, m.InitializePlugins(plugintest.New(1, 2)))
	m.ShutdownPlugins()

	assert.Equal(t, []string{"init b", "init a", "shutdown a", "shutdown b"}, log)
	assert.Equal(t, []string{"a", "b"}, m.Names())
}

func TestManagerRejectsDuplicatesAndEmptyNames(t *testing.T) {
	var log []string
	m := plugin.NewManager()
	require.NoError(t, m.Register(&recorder{name: "x", log: &log}))
	assert.Error(t, m.Register(&recorder{name: "x", log: &log}))
	assert.Error(t, m.Register(&recorder{name: "", log: &log}))

	p, ok := m.GetPlugin("x")
	require.True(t, ok)
	assert.Equal(t, "x", p.Name())
}

func TestManagerContinuesPastFailedInit(t *testing.T) {
	var log []string
	m := plugin.NewManager()
	require.NoError(t, m.Register(&recorder{name: "bad", initErr: errors.New("boom"), log: &log}))
	require.NoError(t, m.Register(&recorder{name: "good", log: &log}))

	err := m.InitializePlugins(plugintest.New())
	assert.ErrorContains(t, err, "bad")
	assert.Equal(t, []string{"init bad", "init good"}, log)
}
