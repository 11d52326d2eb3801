package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	verbose    bool
	path       string
}

// errNoTerminal is returned when the shell is launched without a TTY.
var errNoTerminal = errors.New("folio needs an interactive terminal; use 'folio send' to send a message from scripts")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio is a portfolio you browse from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNoTerminal
			}
			return runShell(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default ~/.folio/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&flags.path, "open", "/", "Page to open, e.g. /projects")

	cmd.AddCommand(newSendCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
