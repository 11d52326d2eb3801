// Package relay delivers contact messages through a third-party mail relay.
// Success means the relay accepted the message for delivery, not that it
// was delivered.
package relay

import (
	"context"
	"fmt"
)

// Envelope is one outbound contact message.
type Envelope struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Relay hands an Envelope to an external delivery service.
type Relay interface {
	Send(ctx context.Context, env Envelope) error
}

// Func adapts a function to Relay.
type Func func(ctx context.Context, env Envelope) error

// Send implements Relay.
func (f Func) Send(ctx context.Context, env Envelope) error {
	return f(ctx, env)
}

// TemplateParams maps an envelope into the variable bundle relay templates
// are written against.
func TemplateParams(env Envelope, to string) map[string]string {
	return map[string]string{
		"from_name":  env.Name,
		"from_email": env.Email,
		"subject":    env.Subject,
		"message":    env.Message,
		"to_email":   to,
	}
}

// Error wraps a failure reported by a relay backend. Detail is meant for
// logs; users only ever see a generic failure notice.
type Error struct {
	Backend string
	Status  int
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Status != 0 && e.Detail != "":
		return fmt.Sprintf("relay %s: status %d: %s", e.Backend, e.Status, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("relay %s: status %d", e.Backend, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("relay %s: %v", e.Backend, e.Err)
	default:
		return fmt.Sprintf("relay %s: %s", e.Backend, e.Detail)
	}
}

// Unwrap exposes the underlying transport error, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
