package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/assets"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/decor"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

func runShell(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	rl, err := newRelay(app.Config, app.Log)
	if err != nil {
		return err
	}

	opts := shellOptions(app, contact.NewFlow(contact.Options{
		Relay:   rl,
		Timeout: app.Config.Relay.Timeout,
		Logger:  app.Log,
	}))
	opts.InitialPath = flags.path

	app.Log.Info("launching shell")

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())

	unlog := app.Theme.Subscribe(func(pref theme.Preference) {
		app.Log.WithFields(map[string]any{"theme": pref.String()}).Debug("theme changed")
	})
	defer unlog()
	unforward := tui.ForwardTheme(app.Theme, p.Send)
	defer unforward()

	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "shell execution failed")
		return fmt.Errorf("failed to run shell: %w", err)
	}

	app.Log.Info("shell closed")
	return nil
}

// shellOptions maps configuration onto the shell's collaborators.
func shellOptions(app *appContext, flow *contact.Flow) tui.Options {
	cfg := app.Config

	opts := tui.Options{
		Content: app.Content,
		Theme:   app.Theme,
		Flow:    flow,
		FPS:     cfg.Decor.FPS,
		Logger:  app.Log,
	}

	if layers := decorLayers(cfg.Decor); len(layers) > 0 {
		opts.Decor = decor.NewHost(app.Log)
		opts.Layers = layers
		opts.DecorHeight = cfg.Decor.Height
	}

	if cfg.Resume.File != "" {
		src, dir := cfg.Resume.File, cfg.Resume.DownloadDir
		opts.Resume = func(ctx context.Context) (string, error) {
			return assets.CopyResume(ctx, src, dir)
		}
	}

	return opts
}

func decorLayers(cfg config.DecorConfig) []decor.Layer {
	if !cfg.Enabled {
		return nil
	}

	seed := uint64(time.Now().UnixNano())
	var layers []decor.Layer
	if cfg.Gradient {
		layers = append(layers, decor.NewGradientBlobs(seed))
	}
	if cfg.Particles {
		layers = append(layers, decor.NewParticleField(seed+1))
	}
	return layers
}
