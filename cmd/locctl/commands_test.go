package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workplace-geo/internal/types"
)

// runCmd executes locctl offline against a config that disables postal lookups
func runCmd(t *testing.T, args ...string) *bytes.Buffer {
	t.Helper()

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log:\n  level: error\nlocation:\n  enablepostalcodelookup: false\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	require.NoError(t, cmd.Execute())
	return &out
}

func TestCommands(t *testing.T) {
	t.Run("countries", func(t *testing.T) {
		var got []types.CountryOption
		require.NoError(t, json.Unmarshal(runCmd(t, "countries", "united").Bytes(), &got))
		assert.Len(t, got, 5)
	})

	t.Run("cities", func(t *testing.T) {
		var got []types.CityOption
		require.NoError(t, json.Unmarshal(runCmd(t, "cities", "IN", "--state", "KA", "--search", "bengal").Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Bengaluru", got[0].Value)
		assert.True(t, got[1].IsOther())
	})

	t.Run("postal lookups disabled", func(t *testing.T) {
		var got []types.PostalCodeOption
		require.NoError(t, json.Unmarshal(runCmd(t, "postal", "IN", "Bengaluru").Bytes(), &got))
		assert.Empty(t, got)
	})

	t.Run("validate", func(t *testing.T) {
		assert.Contains(t, runCmd(t, "validate", "IN", "ABCDE").String(), `"result": "INVALID"`)
	})
}

func TestCommands_Args(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"postal", "IN"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
