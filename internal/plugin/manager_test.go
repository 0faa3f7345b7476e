package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(API) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *fakePlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestRegisterRejectsEmptyAndDuplicateNames(t *testing.T) {
	var log []string
	m := NewManager()

	require.NoError(t, m.Register(&fakePlugin{name: "a", log: &log}))
	assert.Error(t, m.Register(&fakePlugin{name: "a", log: &log}))
	assert.Error(t, m.Register(&fakePlugin{name: "", log: &log}))

	p, ok := m.GetPlugin("a")
	assert.True(t, ok)
	assert.Equal(t, "a", p.Name())
	_, ok = m.GetPlugin("b")
	assert.False(t, ok)
}

func TestLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	require.NoError(t, m.Register(&fakePlugin{name: "a", log: &log, initErr: errors.New("boom")}))
	require.NoError(t, m.Register(&fakePlugin{name: "b", log: &log}))

	m.InitializePlugins(nil)
	m.ShutdownPlugins()

	assert.Equal(t, []string{"init a", "init b", "shutdown b", "shutdown a"}, log)
}

func TestCommands(t *testing.T) {
	m := NewManager()
	var got []string
	require.NoError(t, m.RegisterCommand("echo", func(args []string) error {
		got = args
		return nil
	}))
	require.NoError(t, m.RegisterCommand("fail", func([]string) error { return errors.New("nope") }))
	assert.Error(t, m.RegisterCommand("echo", func([]string) error { return nil }))
	assert.Error(t, m.RegisterCommand("nil", nil))

	require.NoError(t, m.RunCommand("echo", []string{"x"}))
	assert.Equal(t, []string{"x"}, got)

	err := m.RunCommand("fail", nil)
	require.Error(t, err)
	assert.Equal(t, "command 'fail' failed: nope", err.Error())

	assert.EqualError(t, m.RunCommand("missing", nil), "unknown command: missing")
	assert.Equal(t, []string{"echo", "fail"}, m.Commands())
}
