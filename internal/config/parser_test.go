package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides defaults",
			body: `
theme:
  default: light
  storage_key: my-theme
relay:
  kind: log
  timeout: 5s
decor:
  enabled: false
  fps: 30
  height: 4
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "light", cfg.Theme.Default)
				assert.Equal(t, "my-theme", cfg.Theme.StorageKey)
				assert.Equal(t, 5*time.Second, cfg.Relay.Timeout)
				assert.False(t, cfg.Decor.Enabled)
				assert.Equal(t, 30, cfg.Decor.FPS)
				assert.Equal(t, "127.0.0.1:8080", cfg.Serve.Addr)
			},
		},
		{
			name:      "rejects unknown theme",
			body:      "theme:\n  default: purple\n",
			wantErr:   true,
			wantField: "theme.default",
		},
		{
			name:      "rejects frame rate out of range",
			body:      "decor:\n  fps: 500\n",
			wantErr:   true,
			wantField: "decor.fps",
		},
		{
			name:      "emailjs requires identifiers",
			body:      "relay:\n  kind: emailjs\n",
			wantErr:   true,
			wantField: "relay.emailjs",
		},
		{
			name:      "smtp requires host",
			body:      "relay:\n  kind: smtp\n  to: me@example.com\n",
			wantErr:   true,
			wantField: "relay.smtp.host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig(writeConfig(t, tt.body), true)
			if tt.wantErr {
				require.Error(t, err)
				var ve *apperrors.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseConfigMalformedYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme:\n  default: dark\n bad: [\n")
	_, err := ParseConfig(path, true)
	require.Error(t, err)

	var pe *apperrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Path)
	assert.Positive(t, pe.Line)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := ParseConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = ParseConfig(path, true)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvRelayKind:         "emailjs",
		EnvContactTo:         "owner@example.com",
		EnvEmailJSServiceID:  "service_x",
		EnvEmailJSTemplateID: "template_y",
		EnvEmailJSPublicKey:  "pk",
		EnvEmailJSToken:      "secret",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, lookup))
	assert.Equal(t, "emailjs", cfg.Relay.Kind)
	assert.Equal(t, "owner@example.com", cfg.Relay.To)
	assert.Equal(t, "secret", cfg.Relay.EmailJS.AccessToken)

	bad := Default()
	err := ApplyEnv(bad, func(k string) (string, bool) {
		if k == EnvRelayKind {
			return "pigeon", true
		}
		return "", false
	})
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOLIO_TEST_DOTENV=loaded\n"), 0o600))

	t.Setenv("FOLIO_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("FOLIO_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), "", path))
	assert.Equal(t, "loaded", os.Getenv("FOLIO_TEST_DOTENV"))
}
