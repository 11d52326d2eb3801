// Package contact implements the contact-form submission state machine:
// validation, a single in-flight relay call, and the resulting
// notification.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/relay"
)

// State is the submission state of one form.
type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultTimeout bounds one relay call.
const DefaultTimeout = 15 * time.Second

var (
	// ErrSubmissionPending is returned when a submit is attempted while
	// another is in flight.
	ErrSubmissionPending = errors.New("a submission is already pending")
	// ErrTimeout is returned when the relay does not answer in time.
	ErrTimeout = errors.New("mail relay timed out")
)

// NotificationKind distinguishes positive from negative notices.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// Notification is the transient notice shown after a submission settles.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

var (
	successNotice = Notification{
		Kind:        NotifySuccess,
		Title:       "Message sent successfully!",
		Description: "Thank you for your message. I'll get back to you soon.",
	}
	failureNotice = Notification{
		Kind:        NotifyError,
		Title:       "Failed to send message",
		Description: "Something went wrong. Please try again or contact me directly.",
	}
)

// Ticket identifies one accepted submission.
type Ticket struct {
	ID      int
	Message Message
}

// Options configures a Flow.
type Options struct {
	Relay   relay.Relay
	Timeout time.Duration
	Logger  *logger.Logger
}

// Flow owns the message and submission state of one form instance.
type Flow struct {
	relay   relay.Relay
	timeout time.Duration
	log     *logger.Logger

	mu      sync.Mutex
	state   State
	message Message
	seq     int
	history []State
	lastErr error
}

// NewFlow returns a Flow in the idle state with an empty message.
func NewFlow(opts Options) *Flow {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Flow{
		relay:   opts.Relay,
		timeout: timeout,
		log:     log.Component("contact"),
		state:   Idle,
		history: []State{Idle},
	}
}

// State returns the current state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the current field values.
func (f *Flow) Message() Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Transitions returns every state the flow has been in, oldest first.
func (f *Flow) Transitions() []State {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]State, len(f.history))
	copy(out, f.history)
	return out
}

// LastError returns the relay error behind the most recent failure.
func (f *Flow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *Flow) transitionLocked(next State) {
	if f.state == next {
		return
	}
	f.log.WithFields(map[string]any{"from": f.state.String(), "to": next.String()}).Debug("submission state changed")
	f.state = next
	f.history = append(f.history, next)
}

// Edit sets one field. Edits are refused while a submission is pending; a
// settled form returns to idle.
func (f *Flow) Edit(field Field, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Pending {
		return false
	}
	f.message = f.message.With(field, value)
	if f.state == Failed || f.state == Succeeded {
		f.transitionLocked(Idle)
	}
	return true
}

// Reset returns a settled form to idle without touching its fields.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Succeeded || f.state == Failed {
		f.transitionLocked(Idle)
	}
}

// Begin validates msg and, when valid and nothing is in flight, moves the
// form to pending. Validation failures leave the state untouched.
func (f *Flow) Begin(msg Message) (Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Pending {
		return Ticket{}, ErrSubmissionPending
	}
	f.message = msg
	if err := Validate(msg); err != nil {
		return Ticket{}, err
	}

	if f.state != Idle {
		f.transitionLocked(Idle)
	}
	f.transitionLocked(Pending)
	f.lastErr = nil
	f.seq++
	return Ticket{ID: f.seq, Message: msg}, nil
}

// Dispatch performs the relay call for t, bounded by the flow timeout. It
// does not change state; pass its result to Complete.
func (f *Flow) Dispatch(ctx context.Context, t Ticket) error {
	if f.relay == nil {
		return &relay.Error{Backend: "none", Detail: "no mail relay configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f.relay.Send(ctx, t.Message.Envelope())
	}()

	select {
	case err := <-done:
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, f.timeout)
		}
		return ctx.Err()
	}
}

// Complete settles the submission identified by t. Stale tickets are
// ignored and report ok=false.
func (f *Flow) Complete(t Ticket, err error) (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Pending || t.ID != f.seq {
		return Notification{}, false
	}

	if err != nil {
		f.lastErr = err
		f.transitionLocked(Failed)
		f.log.Error(err, "contact message not sent")
		return failureNotice, true
	}

	f.message = Message{}
	f.transitionLocked(Succeeded)
	f.log.Info("contact message sent")
	return successNotice, true
}

// Submit runs Begin, Dispatch and Complete in sequence and returns the
// resulting state. A validation failure or a pending submission returns the
// unchanged state with that error; a relay failure returns Failed with the
// relay error.
func (f *Flow) Submit(ctx context.Context, msg Message) (State, error) {
	t, err := f.Begin(msg)
	if err != nil {
		return f.State(), err
	}
	sendErr := f.Dispatch(ctx, t)
	f.Complete(t, sendErr)
	return f.State(), sendErr
}
