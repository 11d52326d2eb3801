package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, flags, func(c *theme.Controller) error {
				fmt.Fprintln(cmd.OutOrStdout(), c.Get())
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, flags, func(c *theme.Controller) error {
				fmt.Fprintln(cmd.OutOrStdout(), c.Get())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := theme.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q: expected light or dark", args[0])
			}
			return withTheme(cmd, flags, func(c *theme.Controller) error {
				c.Set(p)
				fmt.Fprintln(cmd.OutOrStdout(), c.Get())
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, flags, func(c *theme.Controller) error {
				c.Toggle()
				fmt.Fprintln(cmd.OutOrStdout(), c.Get())
				return nil
			})
		},
	})

	return cmd
}

func withTheme(cmd *cobra.Command, flags *rootFlags, fn func(*theme.Controller) error) error {
	app, err := loadApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app.Theme)
}
