package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEmailJSEndpoint is the public EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSOptions identifies the hosted service, template and account. The
// values are opaque configuration.
type EmailJSOptions struct {
	Endpoint    string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	AccessToken string
	To          string
	Client      *http.Client
}

// EmailJS sends envelopes through the EmailJS REST API.
type EmailJS struct {
	opts EmailJSOptions
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJS builds an EmailJS relay.
func NewEmailJS(opts EmailJSOptions) (*EmailJS, error) {
	if opts.ServiceID == "" || opts.TemplateID == "" || opts.PublicKey == "" {
		return nil, fmt.Errorf("emailjs relay requires service id, template id and public key")
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEmailJSEndpoint
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 30 * time.Second}
	}
	return &EmailJS{opts: opts}, nil
}

// Send implements Relay.
func (r *EmailJS) Send(ctx context.Context, env Envelope) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      r.opts.ServiceID,
		TemplateID:     r.opts.TemplateID,
		UserID:         r.opts.PublicKey,
		AccessToken:    r.opts.AccessToken,
		TemplateParams: TemplateParams(env, r.opts.To),
	})
	if err != nil {
		return &Error{Backend: "emailjs", Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return &Error{Backend: "emailjs", Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.opts.Client.Do(req)
	if err != nil {
		return &Error{Backend: "emailjs", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Backend: "emailjs", Status: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}
	return nil
}

var _ Relay = (*EmailJS)(nil)
