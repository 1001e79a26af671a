package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck

	configInitCmd.SetArgs(nil)
	require.NoError(t, configInitCmd.RunE(configInitCmd, nil))

	data, err := os.ReadFile("config.yaml")
	require.NoError(t, err)

	var tree map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &tree))
	assert.Equal(t, "sqlite", tree["store"]["driver"])
	assert.Equal(t, "gemini-pro", tree["gemini"]["model"])
	assert.Equal(t, 8080, tree["server"]["port"])

	// Second run without --force refuses to overwrite.
	err = configInitCmd.RunE(configInitCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
