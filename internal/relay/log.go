package relay

import (
	"context"

	"github.com/alexisbeaulieu97/folio/internal/logger"
)

// Log acknowledges every envelope after writing it to the logger. It keeps
// the contact form usable when no hosted relay is configured.
type Log struct {
	log *logger.Logger
	to  string
}

// NewLog builds a log-only relay.
func NewLog(log *logger.Logger, to string) *Log {
	if log == nil {
		log = logger.Nop()
	}
	return &Log{log: log.Component("relay.log"), to: to}
}

// Send implements Relay.
func (r *Log) Send(ctx context.Context, env Envelope) error {
	if err := ctx.Err(); err != nil {
		return &Error{Backend: "log", Err: err}
	}
	fields := make(map[string]any, 5)
	for k, v := range TemplateParams(env, r.to) {
		fields[k] = v
	}
	r.log.WithFields(fields).Info("contact message accepted")
	return nil
}

var _ Relay = (*Log)(nil)
