package contact

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/relay"
)

type fakeRelay struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
	started chan struct{}
	last    relay.Envelope
}

func (r *fakeRelay) Send(ctx context.Context, env relay.Envelope) error {
	r.calls.Add(1)
	r.last = env
	if r.started != nil {
		close(r.started)
	}
	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return r.err
}

func TestSubmitSuccessClearsMessage(t *testing.T) {
	rel := &fakeRelay{}
	flow := NewFlow(Options{Relay: rel})

	state, err := flow.Submit(context.Background(), validMessage())
	require.NoError(t, err)

	assert.Equal(t, Succeeded, state)
	assert.Equal(t, []State{Idle, Pending, Succeeded}, flow.Transitions())
	assert.True(t, flow.Message().IsZero())
	assert.EqualValues(t, 1, rel.calls.Load())
	assert.Equal(t, "Ada Lovelace", rel.last.Name)
}

func TestSubmitFailureKeepsMessage(t *testing.T) {
	rel := &fakeRelay{err: errors.New("service unavailable")}
	flow := NewFlow(Options{Relay: rel})
	msg := validMessage()

	state, err := flow.Submit(context.Background(), msg)
	require.Error(t, err)

	assert.Equal(t, Failed, state)
	assert.Equal(t, []State{Idle, Pending, Failed}, flow.Transitions())
	assert.Equal(t, msg, flow.Message())
	assert.EqualError(t, flow.LastError(), "service unavailable")
}

func TestSubmitInvalidNeverEntersPending(t *testing.T) {
	for _, field := range Fields {
		rel := &fakeRelay{}
		flow := NewFlow(Options{Relay: rel})

		state, err := flow.Submit(context.Background(), validMessage().With(field, ""))

		var emptyErr *EmptyFieldError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, field, emptyErr.Field)
		assert.Equal(t, Idle, state)
		assert.Equal(t, []State{Idle}, flow.Transitions())
		assert.Zero(t, rel.calls.Load())
	}
}

func TestSubmitWhilePendingIsRejected(t *testing.T) {
	rel := &fakeRelay{release: make(chan struct{}), started: make(chan struct{})}
	flow := NewFlow(Options{Relay: rel})

	done := make(chan State, 1)
	go func() {
		state, _ := flow.Submit(context.Background(), validMessage())
		done <- state
	}()
	<-rel.started

	state, err := flow.Submit(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrSubmissionPending)
	assert.Equal(t, Pending, state)

	close(rel.release)
	assert.Equal(t, Succeeded, <-done)
	assert.EqualValues(t, 1, rel.calls.Load())
}

func TestBeginTwiceMakesOneTicket(t *testing.T) {
	flow := NewFlow(Options{Relay: &fakeRelay{}})

	_, err := flow.Begin(validMessage())
	require.NoError(t, err)
	_, err = flow.Begin(validMessage())
	assert.ErrorIs(t, err, ErrSubmissionPending)
	assert.Equal(t, []State{Idle, Pending}, flow.Transitions())
}

func TestDispatchTimesOut(t *testing.T) {
	rel := relay.Func(func(ctx context.Context, env relay.Envelope) error {
		select {} // never answers, ignores ctx
	})
	flow := NewFlow(Options{Relay: rel, Timeout: 20 * time.Millisecond})

	state, err := flow.Submit(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, Failed, state)
	assert.Equal(t, validMessage(), flow.Message())
}

func TestDispatchWithoutRelayFails(t *testing.T) {
	flow := NewFlow(Options{})

	state, err := flow.Submit(context.Background(), validMessage())
	var relayErr *relay.Error
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, Failed, state)
}

func TestCompleteIgnoresStaleTicket(t *testing.T) {
	flow := NewFlow(Options{Relay: &fakeRelay{}})

	ticket, err := flow.Begin(validMessage())
	require.NoError(t, err)

	_, ok := flow.Complete(Ticket{ID: ticket.ID + 1}, nil)
	assert.False(t, ok)
	assert.Equal(t, Pending, flow.State())

	notice, ok := flow.Complete(ticket, nil)
	assert.True(t, ok)
	assert.Equal(t, NotifySuccess, notice.Kind)

	_, ok = flow.Complete(ticket, nil)
	assert.False(t, ok)
}

func TestNotificationsAreGeneric(t *testing.T) {
	flow := NewFlow(Options{})
	ticket, err := flow.Begin(validMessage())
	require.NoError(t, err)

	notice, ok := flow.Complete(ticket, errors.New("smtp 535 bad credentials for user x"))
	require.True(t, ok)
	assert.Equal(t, NotifyError, notice.Kind)
	assert.Equal(t, "Failed to send message", notice.Title)
	assert.NotContains(t, notice.Description, "535")
}

func TestEditAfterFailureReturnsToIdle(t *testing.T) {
	flow := NewFlow(Options{Relay: &fakeRelay{err: errors.New("down")}})
	_, _ = flow.Submit(context.Background(), validMessage())
	require.Equal(t, Failed, flow.State())

	assert.True(t, flow.Edit(FieldSubject, "Retry"))
	assert.Equal(t, Idle, flow.State())
	assert.Equal(t, "Retry", flow.Message().Subject)
	assert.Equal(t, "Ada Lovelace", flow.Message().Name)
}

func TestRetryAfterFailure(t *testing.T) {
	rel := &fakeRelay{err: errors.New("down")}
	flow := NewFlow(Options{Relay: rel})
	_, _ = flow.Submit(context.Background(), validMessage())

	rel.err = nil
	state, err := flow.Submit(context.Background(), flow.Message())
	require.NoError(t, err)
	assert.Equal(t, Succeeded, state)
	assert.Equal(t, []State{Idle, Pending, Failed, Idle, Pending, Succeeded}, flow.Transitions())
	assert.EqualValues(t, 2, rel.calls.Load())
}

func TestEditRefusedWhilePending(t *testing.T) {
	flow := NewFlow(Options{Relay: &fakeRelay{}})
	_, err := flow.Begin(validMessage())
	require.NoError(t, err)

	assert.False(t, flow.Edit(FieldName, "someone else"))
	assert.Equal(t, "Ada Lovelace", flow.Message().Name)
}

func TestResetAfterSuccess(t *testing.T) {
	flow := NewFlow(Options{Relay: &fakeRelay{}})
	_, err := flow.Submit(context.Background(), validMessage())
	require.NoError(t, err)

	flow.Reset()
	assert.Equal(t, Idle, flow.State())
	assert.Equal(t, []State{Idle, Pending, Succeeded, Idle}, flow.Transitions())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "state(9)", State(9).String())
}
