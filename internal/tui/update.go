package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/router"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.viewport.SetContent(next.renderPage())
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case NavigateMsg:
		return m, m.navigate(msg.Path)

	// Styles follow the controller, whatever changed it
	case ThemeChangedMsg:
		m.applyTheme()
		return m, nil

	// Decorative frames run regardless of the page shown
	case decorTickMsg:
		if m.decor != nil {
			m.decor.Step(m.frame)
		}
		return m, decorTickCmd(m.frame)

	// Spinner only spins while a submission is pending
	case spinner.TickMsg:
		if m.flow.State() != contact.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		var cmds []tea.Cmd
		for i := range m.bars {
			updated, cmd := m.bars[i].Bar.Update(msg)
			if bar, ok := updated.(progress.Model); ok {
				m.bars[i].Bar = bar
			}
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// Contact submission
	case submitResultMsg:
		note, ok := m.flow.Complete(msg.Ticket, msg.Err)
		if !ok {
			return m, nil
		}
		success := note.Kind == contact.NotifySuccess
		if success {
			m.resetForm()
		}
		return m, m.showToast(success, note.Title, note.Description)

	case resumeSavedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "resume download failed")
			return m, m.showToast(false, "Download failed", "The resume could not be saved.")
		}
		return m, m.showToast(true, "Resume downloaded", msg.Path)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.ID == msg.ID {
			m.toast = nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	if !m.mobile() {
		m.menu.Close()
	}

	if m.decorEnabled() {
		if m.decor.Mounted() {
			m.decor.Resize(m.width, m.decorRows())
		} else {
			m.decor.Mount(m.width, m.decorRows(), m.layers...)
		}
	}

	if m.ready {
		return m, nil
	}
	m.ready = true

	// The first size message is when the initial page becomes visible.
	return m, m.pageShown()
}

// handleKeyPress routes keys to the path prompt, the menu, the focused form field or the
// global bindings, in that order.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.addressing {
		return m.handleAddressKeys(msg)
	}

	if m.menu.Open() {
		return m.handleMenuKeys(msg)
	}

	if m.typing() {
		return m.handleFormKeys(msg)
	}

	return m.handleGlobalKeys(msg)
}

func (m Model) handleMenuKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case "down", "j":
		if m.menuCursor < len(router.Routes)-1 {
			m.menuCursor++
		}
		return m, nil

	case "enter":
		return m, m.navigate(router.Routes[m.menuCursor].Path)

	case "esc", "m":
		m.menu.Close()
		return m, nil

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// handleAddressKeys edits the ":" prompt. Enter replaces the current history
// entry with the typed path.
func (m Model) handleAddressKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := m.address.Value()
		m.closeAddress()
		m.router.Replace(path)
		return m, m.routeChanged()

	case "esc":
		m.closeAddress()
		return m, nil
	}

	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return m, cmd
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Blur):
		m.blurInputs()
		m.focus = -1
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	}

	t, _ := m.focusedTarget()

	// Inputs are read-only while the message is in flight.
	if m.flow.State() == contact.Pending {
		return m, nil
	}

	if msg.String() == "enter" && t.Field != contact.FieldMessage {
		return m, m.moveFocus(1)
	}

	var cmd tea.Cmd
	var value string
	if t.Field == contact.FieldMessage {
		m.body, cmd = m.body.Update(msg)
		value = m.body.Value()
	} else {
		i := inputIndex(t.Field)
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		value = m.inputs[i].Value()
	}

	m.flow.Edit(t.Field, value)
	if m.validated {
		m.fieldErrs = contact.ValidateAll(m.formMessage())
	}

	return m, cmd
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Goto):
		m.addressing = true
		m.address.SetValue("/")
		m.address.CursorEnd()
		return m, m.address.Focus()

	case key.Matches(msg, m.keys.Theme):
		m.theme.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		if m.mobile() {
			m.menu.Toggle()
			m.menuCursor = m.currentRouteIndex()
		}
		return m, nil

	case key.Matches(msg, m.keys.Resume):
		return m, m.downloadResume()

	case key.Matches(msg, m.keys.Back):
		if m.router.Back() {
			return m, m.routeChanged()
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if m.router.Forward() {
			return m, m.routeChanged()
		}
		return m, nil

	case key.Matches(msg, m.keys.Page):
		index := int(msg.String()[0] - '1')
		return m, m.navigate(router.Routes[index].Path)

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.Select):
		return m.activate()

	case key.Matches(msg, m.keys.Submit):
		if m.router.Current().Page == router.PageContact {
			return m, m.submit()
		}
		return m, nil

	case key.Matches(msg, m.keys.Blur):
		m.focus = -1
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// activate runs the focused target.
func (m Model) activate() (Model, tea.Cmd) {
	t, ok := m.focusedTarget()
	if !ok {
		return m, nil
	}

	switch t.Kind {
	case actNavigate:
		return m, m.navigate(t.Path)
	case actFilter:
		m.category = t.Category
		m.viewport.GotoTop()
		return m, nil
	case actField:
		return m, m.setFocus(m.focus)
	case actSubmit:
		return m, m.submit()
	case actResume:
		return m, m.downloadResume()
	}

	return m, nil
}

// navigate performs an in-app navigation. The menu closes even when the
// target is the current page.
func (m *Model) navigate(path string) tea.Cmd {
	m.menu.Close()
	if !m.router.Navigate(path) {
		return nil
	}
	return m.routeChanged()
}

// routeChanged resets page state after any location change.
func (m *Model) routeChanged() tea.Cmd {
	m.blurInputs()
	m.focus = -1
	m.viewport.GotoTop()
	return m.pageShown()
}

// pageShown starts the skill bars the first time the skills page is visible.
func (m *Model) pageShown() tea.Cmd {
	if m.router.Current().Page != router.PageSkills || m.skillsShown {
		return nil
	}
	m.skillsShown = true

	cmds := make([]tea.Cmd, 0, len(m.bars))
	for i := range m.bars {
		cmds = append(cmds, m.bars[i].Bar.SetPercent(float64(m.bars[i].Level)/100))
	}
	return tea.Batch(cmds...)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.targets())
	if n == 0 {
		return nil
	}

	next := m.focus + delta
	if m.focus < 0 && delta < 0 {
		next = n - 1
	}
	next = ((next % n) + n) % n
	return m.setFocus(next)
}

// setFocus moves focus to targets()[i], focusing its input if it has one.
func (m *Model) setFocus(i int) tea.Cmd {
	m.blurInputs()
	m.focus = i

	t, ok := m.focusedTarget()
	if !ok || t.Kind != actField {
		return nil
	}
	if t.Field == contact.FieldMessage {
		return m.body.Focus()
	}
	return m.inputs[inputIndex(t.Field)].Focus()
}

func (m *Model) closeAddress() {
	m.addressing = false
	m.address.Blur()
	m.address.Reset()
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.body.Blur()
}

// submit starts a submission of the current form. Invalid input is shown
// inline; a submission already in flight makes this a no-op.
func (m *Model) submit() tea.Cmd {
	msg := m.formMessage()

	t, err := m.flow.Begin(msg)
	if err != nil {
		if errors.Is(err, contact.ErrSubmissionPending) {
			return nil
		}
		m.validated = true
		m.fieldErrs = contact.ValidateAll(msg)
		return nil
	}

	m.fieldErrs = nil
	return tea.Batch(m.spinner.Tick, submitCmd(m.flow, t))
}

// resetForm clears the inputs after a successful send and returns the flow
// to idle.
func (m *Model) resetForm() {
	m.flow.Reset()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.body.Reset()
	m.fieldErrs = nil
	m.validated = false
}

func (m *Model) downloadResume() tea.Cmd {
	if m.resume == nil {
		return m.showToast(false, "Resume unavailable", "No resume file is configured.")
	}
	return resumeCmd(m.resume)
}

func (m *Model) showToast(success bool, title, description string) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{
		ID:          m.toastSeq,
		Success:     success,
		Title:       title,
		Description: description,
	}
	return expireToastCmd(m.toastSeq, toastDuration)
}

func (m Model) currentRouteIndex() int {
	current := m.router.CurrentPath()
	for i, r := range router.Routes {
		if r.Path == current {
			return i
		}
	}
	return 0
}
