package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/prefs"
	"github.com/alexisbeaulieu97/folio/internal/relay"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// appContext bundles the long-lived services created at startup.
type appContext struct {
	Config  *config.Config
	Log     *logger.Logger
	Content *content.Portfolio
	Prefs   prefs.Store
	Theme   *theme.Controller

	closers []io.Closer
}

// Close releases files opened at startup.
func (a *appContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// loadApp reads configuration and builds the shared services. When
// logToFile is set, logs go to the log file so they do not corrupt the
// terminal UI; otherwise they go to the command's stderr.
func loadApp(cmd *cobra.Command, flags *rootFlags, logToFile bool) (*appContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	app := &appContext{Config: cfg}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	var out io.Writer = cmd.ErrOrStderr()
	human := true
	if logToFile {
		path, err := logPath(cfg)
		if err != nil {
			return nil, err
		}
		f, err := logger.OpenFile(path)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, f)
		out = f
		human = false
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: out})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app.Log = log

	app.Content, err = loadContent(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	prefsPath := cfg.Theme.PrefsFile
	if prefsPath == "" {
		prefsPath, err = prefs.DefaultPath()
		if err != nil {
			app.Close()
			return nil, err
		}
	}
	app.Prefs = prefs.NewFile(prefsPath)

	fallback, err := theme.ResolveDefault(cfg.Theme.Default, nil)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Theme = theme.NewController(theme.Options{
		Store:      app.Prefs,
		StorageKey: cfg.Theme.StorageKey,
		Default:    fallback,
		Logger:     log,
	})

	log.WithFields(map[string]any{
		"relay": cfg.Relay.Kind,
		"prefs": prefsPath,
	}).Debug("application loaded")

	return app, nil
}

// loadConfig parses the config file, loads .env files and overlays the
// environment. An explicit --config path must exist.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := flags.configPath
	required := path != ""
	if !required {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.ParseConfig(path, required)
	if err != nil {
		return nil, err
	}

	envFiles := []string{".env"}
	if cfg.EnvFile != "" {
		envFiles = append([]string{cfg.EnvFile}, envFiles...)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func logPath(cfg *config.Config) (string, error) {
	if cfg.Log.File != "" {
		return cfg.Log.File, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio.log"), nil
}

func loadContent(cfg *config.Config) (*content.Portfolio, error) {
	if cfg.Content != "" {
		return content.Load(cfg.Content)
	}
	return content.Default()
}

// newRelay builds the configured mail relay.
func newRelay(cfg *config.Config, log *logger.Logger) (relay.Relay, error) {
	rc := cfg.Relay
	switch rc.Kind {
	case "emailjs":
		return relay.NewEmailJS(relay.EmailJSOptions{
			Endpoint:    rc.EmailJS.Endpoint,
			ServiceID:   rc.EmailJS.ServiceID,
			TemplateID:  rc.EmailJS.TemplateID,
			PublicKey:   rc.EmailJS.PublicKey,
			AccessToken: rc.EmailJS.AccessToken,
			To:          rc.To,
		})
	case "smtp":
		return relay.NewSMTP(relay.SMTPOptions{
			Host:     rc.SMTP.Host,
			Port:     rc.SMTP.Port,
			Username: rc.SMTP.Username,
			Password: rc.SMTP.Password,
			From:     rc.SMTP.From,
			To:       rc.To,
		})
	case "log", "":
		return relay.NewLog(log, rc.To), nil
	default:
		return nil, fmt.Errorf("unknown relay kind %q", rc.Kind)
	}
}
