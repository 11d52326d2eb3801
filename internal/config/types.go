package config

import (
	"time"
)

// Config is the folio configuration document.
type Config struct {
	Theme   ThemeConfig  `yaml:"theme"`
	Relay   RelayConfig  `yaml:"relay"`
	Decor   DecorConfig  `yaml:"decor"`
	Resume  ResumeConfig `yaml:"resume"`
	Serve   ServeConfig  `yaml:"serve"`
	Log     LogConfig    `yaml:"log"`
	Content string       `yaml:"content,omitempty"`
	EnvFile string       `yaml:"env_file,omitempty"`
}

// ThemeConfig controls the initial theme and where it is persisted.
type ThemeConfig struct {
	Default    string `yaml:"default" validate:"oneof=light dark system"`
	StorageKey string `yaml:"storage_key" validate:"required"`
	PrefsFile  string `yaml:"prefs_file,omitempty"`
}

// RelayConfig selects and configures the mail relay. Secrets are normally
// supplied through the environment rather than this file.
type RelayConfig struct {
	Kind    string        `yaml:"kind" validate:"oneof=emailjs smtp log"`
	To      string        `yaml:"to" validate:"omitempty,email"`
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`
	EmailJS EmailJSConfig `yaml:"emailjs"`
	SMTP    SMTPConfig    `yaml:"smtp"`
}

// EmailJSConfig holds the hosted relay identifiers.
type EmailJSConfig struct {
	Endpoint    string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	ServiceID   string `yaml:"service_id,omitempty"`
	TemplateID  string `yaml:"template_id,omitempty"`
	PublicKey   string `yaml:"public_key,omitempty"`
	AccessToken string `yaml:"-"`
}

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string `yaml:"host,omitempty" validate:"omitempty,hostname|ip"`
	Port     string `yaml:"port,omitempty" validate:"omitempty,numeric"`
	From     string `yaml:"from,omitempty" validate:"omitempty,email"`
	Username string `yaml:"-"`
	Password string `yaml:"-"`
}

// DecorConfig controls the animated background.
type DecorConfig struct {
	Enabled   bool `yaml:"enabled"`
	Particles bool `yaml:"particles"`
	Gradient  bool `yaml:"gradient"`
	FPS       int  `yaml:"fps" validate:"min=1,max=60"`
	Height    int  `yaml:"height" validate:"min=1,max=12"`
}

// ResumeConfig locates the resume asset.
type ResumeConfig struct {
	File        string `yaml:"file,omitempty"`
	DownloadDir string `yaml:"download_dir,omitempty"`
}

// ServeConfig configures the static asset server.
type ServeConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Default:    "dark",
			StorageKey: "portfolio-theme",
		},
		Relay: RelayConfig{
			Kind:    "log",
			Timeout: 15 * time.Second,
		},
		Decor: DecorConfig{
			Enabled:   true,
			Particles: true,
			Gradient:  true,
			FPS:       15,
			Height:    3,
		},
		Serve: ServeConfig{Addr: "127.0.0.1:8080"},
		Log:   LogConfig{Level: "info"},
	}
}
