package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Dir returns the folio state directory under the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ParseConfig reads the file at path over the defaults and validates the
// result. A missing file is an error only when required is true.
func ParseConfig(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, apperrors.NewParseError(path, 0, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return apperrors.NewParseError(p, 0, err)
		}
	}
	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvContactTo         = "FOLIO_CONTACT_TO"
	EnvRelayKind         = "FOLIO_RELAY"
	EnvEmailJSServiceID  = "FOLIO_EMAILJS_SERVICE_ID"
	EnvEmailJSTemplateID = "FOLIO_EMAILJS_TEMPLATE_ID"
	EnvEmailJSPublicKey  = "FOLIO_EMAILJS_PUBLIC_KEY"
	EnvEmailJSToken      = "FOLIO_EMAILJS_ACCESS_TOKEN"
	EnvSMTPHost          = "SMTP_HOST"
	EnvSMTPPort          = "SMTP_PORT"
	EnvSMTPUser          = "SMTP_USER"
	EnvSMTPPass          = "SMTP_PASS"
	EnvLogLevel          = "FOLIO_LOG_LEVEL"
)

// ApplyEnv overlays environment values onto cfg and re-validates. lookup is
// usually os.LookupEnv.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(&cfg.Relay.To, EnvContactTo)
	set(&cfg.Relay.Kind, EnvRelayKind)
	set(&cfg.Relay.EmailJS.ServiceID, EnvEmailJSServiceID)
	set(&cfg.Relay.EmailJS.TemplateID, EnvEmailJSTemplateID)
	set(&cfg.Relay.EmailJS.PublicKey, EnvEmailJSPublicKey)
	set(&cfg.Relay.EmailJS.AccessToken, EnvEmailJSToken)
	set(&cfg.Relay.SMTP.Host, EnvSMTPHost)
	set(&cfg.Relay.SMTP.Port, EnvSMTPPort)
	set(&cfg.Relay.SMTP.Username, EnvSMTPUser)
	set(&cfg.Relay.SMTP.Password, EnvSMTPPass)
	set(&cfg.Log.Level, EnvLogLevel)

	return ValidateConfig(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
