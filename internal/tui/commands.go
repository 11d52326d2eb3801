package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// toastDuration is how long a notice stays visible.
const toastDuration = 5 * time.Second

// ResumeFunc saves the resume somewhere the user can open it and returns
// the saved path.
type ResumeFunc func(ctx context.Context) (string, error)

// decorTickCmd schedules the next decorative frame.
func decorTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return decorTickMsg{At: t}
	})
}

// submitCmd dispatches an accepted submission to the relay.
func submitCmd(flow *contact.Flow, t contact.Ticket) tea.Cmd {
	return func() tea.Msg {
		err := flow.Dispatch(context.Background(), t)
		return submitResultMsg{Ticket: t, Err: err}
	}
}

// expireToastCmd dismisses toast id after d.
func expireToastCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// resumeCmd runs save in the background.
func resumeCmd(save ResumeFunc) tea.Cmd {
	return func() tea.Msg {
		path, err := save(context.Background())
		return resumeSavedMsg{Path: path, Err: err}
	}
}

// ForwardTheme delivers every value ctrl commits to the program through send.
// Each send runs on its own goroutine since key-press toggles happen inside
// the update loop.
func ForwardTheme(ctrl *theme.Controller, send func(tea.Msg)) (unsubscribe func()) {
	return ctrl.Subscribe(func(p theme.Preference) {
		go send(ThemeChangedMsg{Theme: p})
	})
}
