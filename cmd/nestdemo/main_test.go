package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("prints one frame when not on a terminal", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "trace.log")
		var out bytes.Buffer
		require.NoError(t, run([]string{"-log", logPath}, &out))
		assert.Contains(t, out.String(), "Nested scrolling")

		trace, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(trace), "resized")
	})

	t.Run("a missing state file is not an error", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-state", filepath.Join(t.TempDir(), "none.yaml")}, &out))
		assert.NotEmpty(t, out.String())
	})

	t.Run("failures are returned", func(t *testing.T) {
		dir := t.TempDir()
		logPath := filepath.Join(dir, "trace.log")
		statePath := filepath.Join(dir, "state.yaml")
		require.NoError(t, os.WriteFile(statePath, []byte("offset: [\n"), 0o644))

		var out bytes.Buffer
		err := run([]string{"-log", logPath, "-state", statePath}, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode scroll info")
		assert.Empty(t, out.String())
		_, err = os.Stat(logPath)
		assert.NoError(t, err, "log file is opened before the state is read")

		err = run([]string{"-layout", filepath.Join(dir, "nope.yaml")}, &out)
		assert.ErrorContains(t, err, "failed to read layout")

		err = run([]string{"-bogus"}, &out)
		assert.Error(t, err)
	})
}
