package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/contact"
)

type sendOptions struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func newSendCmd(flags *rootFlags) *cobra.Command {
	opts := sendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a contact message without opening the shell",
		Long: `Send a contact message through the configured mail relay.

Use --message - to read the message body from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Message == "-" {
				body, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read message from stdin: %w", err)
				}
				opts.Message = string(body)
			}
			return runSend(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Your email address")
	cmd.Flags().StringVar(&opts.Subject, "subject", "", "Message subject")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Message body, or - to read stdin")

	return cmd
}

func runSend(cmd *cobra.Command, flags *rootFlags, opts sendOptions) error {
	app, err := loadApp(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	rl, err := newRelay(app.Config, app.Log)
	if err != nil {
		return err
	}

	flow := contact.NewFlow(contact.Options{
		Relay:   rl,
		Timeout: app.Config.Relay.Timeout,
		Logger:  app.Log,
	})

	msg := contact.Message{
		Name:    opts.Name,
		Email:   opts.Email,
		Subject: opts.Subject,
		Body:    strings.TrimRight(opts.Message, "\n"),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	state, err := flow.Submit(ctx, msg)
	out := cmd.OutOrStdout()

	switch {
	case errors.Is(err, contact.ErrEmptyField), errors.Is(err, contact.ErrInvalidEmail):
		return fmt.Errorf("invalid message: %w", err)
	case state == contact.Failed:
		fmt.Fprintln(out, "Failed to send message")
		return fmt.Errorf("send failed: %w", err)
	case err != nil:
		return err
	}

	fmt.Fprintln(out, "Message sent successfully!")
	return nil
}
