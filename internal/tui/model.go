// Package tui is the interactive portfolio shell: navigation, pages, the
// contact form and the decorative band, as one Bubble Tea model.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/decor"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/router"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

const (
	// mobileBreakpoint is the width below which the nav collapses into
	// the menu.
	mobileBreakpoint = 72
	// compactOffset is the scroll offset past which the nav compacts.
	compactOffset = 3
	// maxContentWidth caps the page column.
	maxContentWidth = 96

	navRows    = 2
	statusRows = 1

	defaultFrame = time.Second / 15
)

// Options wires the shell to its collaborators.
type Options struct {
	Content     *content.Portfolio
	Theme       *theme.Controller
	Flow        *contact.Flow
	Decor       *decor.Host
	Layers      []decor.Layer
	DecorHeight int
	FPS         int
	InitialPath string
	Resume      ResumeFunc
	Logger      *logger.Logger
}

type actionKind int

const (
	actNavigate actionKind = iota
	actFilter
	actField
	actSubmit
	actResume
)

// target is one focusable element of the current page.
type target struct {
	Label    string
	Kind     actionKind
	Path     string
	Category string
	Field    contact.Field
}

// skillBar is one animated skill level.
type skillBar struct {
	Group string
	Name  string
	Level int
	Bar   progress.Model
}

// Model is the shell state.
type Model struct {
	// Collaborators
	content *content.Portfolio
	router  *router.Router
	menu    *router.Menu
	theme   *theme.Controller
	flow    *contact.Flow
	decor   *decor.Host
	layers  []decor.Layer
	resume  ResumeFunc
	log     *logger.Logger

	// Components
	styles   Styles
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	address  textinput.Model
	inputs   []textinput.Model
	body     textarea.Model
	bars     []skillBar

	// Page state
	focus       int
	menuCursor  int
	addressing  bool
	category    string
	skillsShown bool

	// Form state
	fieldErrs map[contact.Field]error
	validated bool

	// Notices
	toast    *toast
	toastSeq int

	// Decor
	frame       time.Duration
	decorHeight int

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewModel builds the shell at opts.InitialPath.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	portfolio := opts.Content
	if portfolio == nil {
		portfolio = &content.Portfolio{}
	}

	ctrl := opts.Theme
	if ctrl == nil {
		ctrl = theme.NewController(theme.Options{})
	}

	flow := opts.Flow
	if flow == nil {
		flow = contact.NewFlow(contact.Options{Logger: log})
	}

	initial := opts.InitialPath
	if initial == "" {
		initial = "/"
	}

	r := router.New(initial)
	menu := &router.Menu{}
	menu.Attach(r)

	frame := defaultFrame
	if opts.FPS > 0 {
		frame = time.Second / time.Duration(opts.FPS)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		content:     portfolio,
		router:      r,
		menu:        menu,
		theme:       ctrl,
		flow:        flow,
		decor:       opts.Decor,
		layers:      opts.Layers,
		resume:      opts.Resume,
		log:         log.Component("tui"),
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     s,
		viewport:    viewport.New(80, 20),
		focus:       -1,
		category:    "all",
		frame:       frame,
		decorHeight: opts.DecorHeight,
		width:       80,
		height:      24,
	}

	m.address = newAddressInput()
	m.inputs = newInputs()
	m.body = newBody()
	m.bars = newSkillBars(portfolio.Skills)
	m.applyTheme()
	m.layout()
	m.viewport.SetContent(m.renderPage())

	return m
}

// newAddressInput is the ":" prompt for typing a path directly.
func newAddressInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ": "
	in.Placeholder = "/projects"
	in.CharLimit = 64
	return in
}

func newInputs() []textinput.Model {
	placeholders := map[contact.Field]string{
		contact.FieldName:    "Your name",
		contact.FieldEmail:   "your.email@example.com",
		contact.FieldSubject: "Project inquiry",
	}

	inputs := make([]textinput.Model, 0, 3)
	for _, f := range contact.Fields[:3] {
		ti := textinput.New()
		ti.Placeholder = placeholders[f]
		ti.CharLimit = 200
		ti.Prompt = "› "
		inputs = append(inputs, ti)
	}
	return inputs
}

func newBody() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Tell me about your project..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetHeight(5)
	return ta
}

func newSkillBars(skills content.Skills) []skillBar {
	var bars []skillBar
	for _, g := range skills.Groups {
		for _, s := range g.Skills {
			bars = append(bars, skillBar{
				Group: g.Title,
				Name:  s.Name,
				Level: s.Level,
				Bar: progress.New(
					progress.WithSolidFill(string(darkPalette.Primary)),
					progress.WithoutPercentage(),
					progress.WithWidth(24),
				),
			})
		}
	}
	return bars
}

// Init starts the decorative frame loop.
func (m Model) Init() tea.Cmd {
	if m.decorEnabled() {
		return decorTickCmd(m.frame)
	}
	return nil
}

// Helper Methods

// CurrentPath returns the shell's current location.
func (m Model) CurrentPath() string {
	return m.router.CurrentPath()
}

// MenuOpen reports whether the mobile menu is expanded.
func (m Model) MenuOpen() bool {
	return m.menu.Open()
}

// Theme returns the active theme preference.
func (m Model) Theme() theme.Preference {
	return m.theme.Get()
}

// FieldError returns the inline error shown under f, if any.
func (m Model) FieldError(f contact.Field) error {
	return m.fieldErrs[f]
}

// SkillPercent returns the fill the i-th skill bar is animating towards.
func (m Model) SkillPercent(i int) float64 {
	if i < 0 || i >= len(m.bars) {
		return 0
	}
	return m.bars[i].Bar.Percent()
}

func (m Model) decorEnabled() bool {
	return m.decor != nil && m.decorHeight > 0 && len(m.layers) > 0
}

func (m Model) decorRows() int {
	if !m.decorEnabled() {
		return 0
	}
	return m.decorHeight
}

func (m Model) mobile() bool {
	return m.width < mobileBreakpoint
}

func (m Model) compact() bool {
	return m.viewport.YOffset > compactOffset
}

func (m Model) contentWidth() int {
	w := m.width
	if w > maxContentWidth {
		w = maxContentWidth
	}
	w -= 2
	if w < 20 {
		w = 20
	}
	return w
}

// typing reports whether a contact field owns the keyboard.
func (m Model) typing() bool {
	t, ok := m.focusedTarget()
	return ok && t.Kind == actField
}

func (m Model) focusedTarget() (target, bool) {
	targets := m.targets()
	if m.focus < 0 || m.focus >= len(targets) {
		return target{}, false
	}
	return targets[m.focus], true
}

// targets lists the focusable elements of the current page in tab order.
func (m Model) targets() []target {
	var out []target

	switch m.router.Current().Page {
	case router.PageHome:
		for _, s := range m.content.Stats {
			if s.Link != "" {
				out = append(out, target{Label: s.Label, Kind: actNavigate, Path: s.Link})
			}
		}
		out = append(out, target{Label: "View My Work", Kind: actNavigate, Path: "/projects"})
		if m.resume != nil {
			out = append(out, target{Label: "Download Resume", Kind: actResume})
		}
	case router.PageAbout:
		out = append(out, target{Label: "Get In Touch", Kind: actNavigate, Path: "/contact"})
	case router.PageProjects:
		for _, c := range content.Categories {
			out = append(out, target{Label: c.Name, Kind: actFilter, Category: c.ID})
		}
	case router.PageContact:
		for _, f := range contact.Fields {
			out = append(out, target{Label: f.Label(), Kind: actField, Field: f})
		}
		out = append(out, target{Label: "Send Message", Kind: actSubmit})
	case router.PageNotFound:
		out = append(out, target{Label: "Return Home", Kind: actNavigate, Path: "/"})
	}

	return out
}

// formMessage reads the current form inputs.
func (m Model) formMessage() contact.Message {
	return contact.Message{
		Name:    m.inputs[0].Value(),
		Email:   m.inputs[1].Value(),
		Subject: m.inputs[2].Value(),
		Body:    m.body.Value(),
	}
}

func inputIndex(f contact.Field) int {
	for i, candidate := range contact.Fields {
		if candidate == f {
			return i
		}
	}
	return -1
}

// applyTheme rebuilds every themed component for the controller's current
// preference.
func (m *Model) applyTheme() {
	m.styles = NewStyles(m.theme.Get())
	pal := m.styles.Palette

	m.spinner.Style = m.styles.Accent
	m.address.PromptStyle = m.styles.Accent
	m.address.TextStyle = m.styles.Body
	m.address.PlaceholderStyle = m.styles.Muted
	for i := range m.inputs {
		m.inputs[i].PromptStyle = m.styles.Accent
		m.inputs[i].TextStyle = m.styles.Body
		m.inputs[i].PlaceholderStyle = m.styles.Muted
	}
	m.body.FocusedStyle.Text = m.styles.Body
	m.body.BlurredStyle.Text = m.styles.Body
	m.body.FocusedStyle.Placeholder = m.styles.Muted
	m.body.BlurredStyle.Placeholder = m.styles.Muted

	for i := range m.bars {
		m.bars[i].Bar.FullColor = string(pal.Primary)
		m.bars[i].Bar.EmptyColor = string(pal.Subtle)
	}
}

// layout sizes the viewport to the space left by the fixed rows.
func (m *Model) layout() {
	m.help.Width = m.width

	h := m.height - m.decorRows() - navRows - statusRows - lipgloss.Height(m.renderFooter())
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h

	w := m.contentWidth() - 4
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
	m.body.SetWidth(w)
}
