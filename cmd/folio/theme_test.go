package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeCommands(t *testing.T) {
	env := setupHome(t, "")

	stdout, _, err := execute(t, env, "", "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "dark", strings.TrimSpace(stdout))

	stdout, _, err = execute(t, env, "", "theme", "set", "light")
	require.NoError(t, err)
	assert.Equal(t, "light", strings.TrimSpace(stdout))

	data, err := os.ReadFile(env.prefsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"portfolio-theme": "light"`)

	stdout, _, err = execute(t, env, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", strings.TrimSpace(stdout))

	stdout, _, err = execute(t, env, "", "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark", strings.TrimSpace(stdout))
}

func TestThemeSetRejectsUnknownValue(t *testing.T) {
	env := setupHome(t, "")

	_, _, err := execute(t, env, "", "theme", "set", "purple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")
	assert.NoFileExists(t, env.prefsPath)
}
