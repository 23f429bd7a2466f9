package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherResolvesExactNameAndAlias(t *testing.T) {
	d := NewDispatcher()

	cmd, ok := d.Lookup("q")
	require.True(t, ok)
	assert.Equal(t, "q", cmd.Name)

	cmd, ok = d.Lookup("quit")
	require.True(t, ok)
	assert.Equal(t, "q", cmd.Name)
}

func TestDispatcherResolvesUnambiguousPrefix(t *testing.T) {
	d := NewDispatcher()
	cmd, ok := d.Lookup("spla")
	require.True(t, ok)
	assert.Equal(t, "splash", cmd.Name)
}

func TestDispatcherRejectsAmbiguousPrefix(t *testing.T) {
	d := NewDispatcher()
	_, ok := d.Lookup("s")
	assert.False(t, ok, "single-letter prefix matches multiple commands (sb, st, sel...)")
}

func TestDispatchUnknownCommandFallsThrough(t *testing.T) {
	d := NewDispatcher()
	rt := newTestRuntime(t, "/tmp")
	_, handled, err := d.Dispatch(rt, []string{"not-a-real-command"})
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestDispatchHelpShortcutBypassesArity(t *testing.T) {
	d := NewDispatcher()
	rt := newTestRuntime(t, "/tmp")
	res, handled, err := d.Dispatch(rt, []string{"cd", "--help"})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, ExitOK, res.Code)
	assert.NotEmpty(t, res.Output)
}

func TestDispatchWrongArityIsUsageError(t *testing.T) {
	d := NewDispatcher()
	rt := newTestRuntime(t, "/tmp")
	res, handled, err := d.Dispatch(rt, []string{"q", "extra", "args"})
	require.Error(t, err)
	assert.True(t, handled)
	assert.Equal(t, ExitMisuse, res.Code)
}

func TestNamesIsSortedAndIndependentCopy(t *testing.T) {
	d := NewDispatcher()
	names := d.Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", d.Names()[0])
}
