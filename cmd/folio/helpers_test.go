package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	home       string
	configPath string
	prefsPath  string
}

// setupHome isolates HOME and writes a config whose extra YAML is appended
// after the preferences location.
func setupHome(t *testing.T, extra string) testEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"FOLIO_RELAY", "FOLIO_CONTACT_TO", "SMTP_HOST", "SMTP_USER", "SMTP_PASS"} {
		t.Setenv(key, "")
	}

	env := testEnv{
		home:       home,
		configPath: filepath.Join(home, "config.yaml"),
		prefsPath:  filepath.Join(home, "prefs.json"),
	}

	body := fmt.Sprintf("theme:\n  default: dark\n  storage_key: portfolio-theme\n  prefs_file: %s\n%s", env.prefsPath, extra)
	require.NoError(t, os.WriteFile(env.configPath, []byte(body), 0o644))
	return env
}

func execute(t *testing.T, env testEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", env.configPath}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
