package tui

import (
	"time"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// NavigateMsg requests an in-app navigation to Path.
type NavigateMsg struct {
	Path string
}

// ThemeChangedMsg tells the shell the theme controller committed a new value.
type ThemeChangedMsg struct {
	Theme theme.Preference
}

// decorTickMsg advances the decorative layers by one frame.
type decorTickMsg struct {
	At time.Time
}

// submitResultMsg carries the relay outcome for one accepted submission.
type submitResultMsg struct {
	Ticket contact.Ticket
	Err    error
}

// toastExpiredMsg dismisses the toast with the given id if still shown.
type toastExpiredMsg struct {
	ID int
}

// resumeSavedMsg reports the outcome of the resume download.
type resumeSavedMsg struct {
	Path string
	Err  error
}

// toast is a transient notice under the nav bar.
type toast struct {
	ID          int
	Success     bool
	Title       string
	Description string
}
