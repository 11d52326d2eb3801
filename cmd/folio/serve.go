package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/assets"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resume at /resume.pdf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := assets.CheckResume(app.Config.Resume.File); err != nil {
				if assets.IsMissing(err) {
					return fmt.Errorf("nothing to serve, set resume.file in the config: %w", err)
				}
				return err
			}
			if addr == "" {
				addr = app.Config.Serve.Addr
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := assets.NewHandler(app.Config.Resume.File, app.Log)
			return assets.Serve(ctx, addr, handler, app.Log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
