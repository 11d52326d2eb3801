package relay

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPOptions configures a plain-auth SMTP relay.
type SMTPOptions struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

// SMTP sends envelopes through an authenticated SMTP server.
type SMTP struct {
	opts SMTPOptions
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP builds an SMTP relay.
func NewSMTP(opts SMTPOptions) (*SMTP, error) {
	if opts.Host == "" || opts.Username == "" || opts.Password == "" {
		return nil, fmt.Errorf("smtp relay requires host and credentials")
	}
	if opts.To == "" {
		return nil, fmt.Errorf("smtp relay requires a destination address")
	}
	if opts.Port == "" {
		opts.Port = "587"
	}
	if opts.From == "" {
		opts.From = opts.Username
	}
	return &SMTP{opts: opts, send: smtp.SendMail}, nil
}

// Send implements Relay. smtp.SendMail has no context support, so the call
// runs in its own goroutine and is abandoned when ctx ends.
func (r *SMTP) Send(ctx context.Context, env Envelope) error {
	msg := r.compose(env)
	auth := smtp.PlainAuth("", r.opts.Username, r.opts.Password, r.opts.Host)
	addr := net.JoinHostPort(r.opts.Host, r.opts.Port)

	done := make(chan error, 1)
	go func() {
		done <- r.send(addr, auth, r.opts.From, []string{r.opts.To}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &Error{Backend: "smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return &Error{Backend: "smtp", Err: ctx.Err()}
	}
}

func (r *SMTP) compose(env Envelope) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", oneLine(env.Subject))

	var b strings.Builder
	b.WriteString("To: " + r.opts.To + "\r\n")
	b.WriteString("From: " + r.opts.From + "\r\n")
	b.WriteString("Reply-To: " + oneLine(env.Email) + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission from your portfolio:\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n", oneLine(env.Name), oneLine(env.Email), env.Message)
	return []byte(b.String())
}

// oneLine strips CR/LF so user input cannot inject headers.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

var _ Relay = (*SMTP)(nil)
