package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(EnvDebug, "")
	assert.False(t, DebugEnabled(), "empty QUICKTODO_DEBUG must not enable debug")

	t.Setenv(EnvDebug, "1")
	assert.True(t, DebugEnabled())
}

func TestSetup_DisabledDiscards(t *testing.T) {
	t.Setenv(EnvDebug, "")
	path := filepath.Join(t.TempDir(), "debug.log")

	c, err := Setup(path, false)
	require.NoError(t, err)
	defer c.Close()

	Debugf("should not appear: %s", "x")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no log file expected when debug is off")
}

func TestSetup_WritesToFile(t *testing.T) {
	t.Setenv(EnvDebug, "")
	path := filepath.Join(t.TempDir(), "debug.log")

	c, err := Setup(path, true)
	require.NoError(t, err)

	Debugf("added task %s", "abc")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "added task abc")

	_, err = Setup(path, false)
	require.NoError(t, err)
}

func TestSetup_EnvForcesDebug(t *testing.T) {
	t.Setenv(EnvDebug, "true")
	path := filepath.Join(t.TempDir(), "env.log")

	c, err := Setup(path, false)
	require.NoError(t, err)
	Debugf("forced by %s", EnvDebug)
	require.NoError(t, c.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "forced by QUICKTODO_DEBUG")

	t.Setenv(EnvDebug, "")
	_, err = Setup(path, false)
	require.NoError(t, err)
}

func TestSetup_EmptyPath(t *testing.T) {
	t.Setenv(EnvDebug, "")
	_, err := Setup("", true)
	assert.Error(t, err)
}
