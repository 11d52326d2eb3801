package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/router"
)

// tagLimit is how many technologies a project card lists before "+N".
const tagLimit = 3

// renderPage renders the body of the current route into the viewport.
func (m Model) renderPage() string {
	var page string

	switch m.router.Current().Page {
	case router.PageHome:
		page = m.renderHome()
	case router.PageAbout:
		page = m.renderAbout()
	case router.PageProjects:
		page = m.renderProjects()
	case router.PageSkills:
		page = m.renderSkills()
	case router.PageContact:
		page = m.renderContact()
	default:
		page = m.renderNotFound()
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(page)
}

func (m Model) renderHome() string {
	p := m.content.Profile
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Hi, I'm " + p.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(p.Role))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Body.Width(w).Render(p.Tagline))
	b.WriteString("\n\n")
	b.WriteString(m.renderTags(p.Tags, w))
	b.WriteString("\n\n")

	// Stats double as links.
	var stats []string
	for _, s := range m.content.Stats {
		tile := m.styles.Accent.Bold(true).Render(strings.TrimSpace(s.Icon+" "+s.Value)) + "\n" +
			m.styles.Muted.Render(s.Label)
		style := m.styles.Card
		if s.Link != "" {
			if cur, ok := m.focusedTarget(); ok && cur.Kind == actNavigate && cur.Label == s.Label {
				style = style.BorderForeground(m.styles.Palette.Secondary)
			}
		}
		stats = append(stats, style.MarginRight(1).Render(tile))
	}
	if len(stats) > 0 {
		b.WriteString(wrapBlocks(stats, w))
		b.WriteString("\n")
	}

	actions := []string{m.renderTarget(target{Label: "View My Work", Kind: actNavigate, Path: "/projects"})}
	if m.resume != nil {
		actions = append(actions, " ", m.renderTarget(target{Label: "Download Resume", Kind: actResume}))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, actions...))
	b.WriteString("\n\n")

	if p.IntroTitle != "" {
		b.WriteString(m.styles.Heading.Render(p.IntroTitle))
		b.WriteString("\n")
	}
	for _, para := range p.Intro {
		b.WriteString(m.styles.Body.Width(w).Render(para))
		b.WriteString("\n\n")
	}

	if len(m.content.Social) > 0 {
		b.WriteString(m.styles.Heading.Render("Connect"))
		b.WriteString("\n")
		b.WriteString(m.renderLinks(m.content.Social))
	}

	return b.String()
}

func (m Model) renderAbout() string {
	a := m.content.About
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("About Me"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Width(w).Render(a.Headline))
	b.WriteString("\n\n")

	if a.BioTitle != "" {
		b.WriteString(m.styles.Subtitle.Render(a.BioTitle))
		b.WriteString("\n")
	}
	for _, para := range a.Bio {
		b.WriteString(m.styles.Body.Width(w).Render(para))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderTags(a.Tags, w))
	b.WriteString("\n\n")

	if len(a.Services) > 0 {
		b.WriteString(m.styles.Heading.Render("What I Do Best"))
		b.WriteString("\n")
		for _, s := range a.Services {
			card := m.styles.Subtitle.Render(s.Title) + "\n" +
				m.styles.Body.Width(w-4).Render(s.Description) + "\n" +
				m.renderTags(s.Technologies, w-4)
			b.WriteString(m.styles.Card.Width(w).Render(card))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderTarget(target{Label: "Get In Touch", Kind: actNavigate, Path: "/contact"}))
	return b.String()
}

func (m Model) renderProjects() string {
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Featured Projects"))
	b.WriteString("\n")

	chips := make([]string, 0, len(content.Categories))
	for _, c := range content.Categories {
		t := target{Label: c.Name, Kind: actFilter, Category: c.ID}
		chip := m.renderTarget(t)
		if c.ID == m.category {
			chip = m.styles.Focused.Underline(true).Render(c.Name)
		}
		chips = append(chips, chip)
	}
	b.WriteString(wrapBlocks(chips, w))
	b.WriteString("\n\n")

	projects := m.content.FilterProjects(m.category)
	if len(projects) == 0 {
		b.WriteString(m.styles.Muted.Render("No projects in this category yet."))
		return b.String()
	}

	for _, p := range projects {
		b.WriteString(m.renderProject(p, w))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderProject(p content.Project, w int) string {
	title := m.styles.Subtitle.Render(p.Title)
	if p.Featured {
		title += m.styles.Accent.Render("  ★ Featured")
	}

	tags, more := p.TagSummary(tagLimit)
	tagLine := m.renderTags(tags, w-4)
	if more > 0 {
		tagLine = lipgloss.JoinHorizontal(lipgloss.Top, tagLine, m.styles.Muted.Render(fmt.Sprintf("+%d", more)))
	}

	lines := []string{
		title,
		m.styles.Muted.Render(categoryName(p.Category)),
		m.styles.Body.Width(w - 4).Render(p.Description),
		tagLine,
	}
	if p.LiveURL != "" {
		lines = append(lines, m.styles.Label.Render("Live   ")+m.styles.Accent.Render(p.LiveURL))
	}
	if p.SourceURL != "" {
		lines = append(lines, m.styles.Label.Render("Source ")+m.styles.Accent.Render(p.SourceURL))
	}

	return m.styles.Card.Width(w).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSkills() string {
	s := m.content.Skills
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Skills & Expertise"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Width(w).Render(s.Headline))
	b.WriteString("\n\n")

	group := ""
	for _, bar := range m.bars {
		if bar.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = bar.Group
			b.WriteString(m.styles.Heading.Render(group))
			b.WriteString("\n")
		}
		name := m.styles.Body.Width(22).Render(bar.Name)
		level := m.styles.Muted.Render(fmt.Sprintf(" %3d%%", bar.Level))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, name, bar.Bar.View(), level))
		b.WriteString("\n")
	}

	if len(s.Certifications) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Heading.Render("Certifications"))
		b.WriteString("\n")
		for _, c := range s.Certifications {
			card := m.styles.Subtitle.Render(c.Title) + "\n" + m.styles.Muted.Width(w-4).Render(c.Description)
			b.WriteString(m.styles.Card.Width(w).Render(card))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderContact() string {
	c := m.content.Contact
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Get In Touch"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Width(w).Render(c.Headline))
	b.WriteString("\n\n")

	for _, f := range contact.Fields {
		t := target{Label: f.Label(), Kind: actField, Field: f}
		label := m.styles.Label
		if cur, ok := m.focusedTarget(); ok && cur == t {
			label = m.styles.Subtitle
		}
		b.WriteString(label.Render(f.Label()))
		b.WriteString("\n")

		if f == contact.FieldMessage {
			b.WriteString(m.body.View())
		} else {
			b.WriteString(m.inputs[inputIndex(f)].View())
		}
		b.WriteString("\n")

		if err := m.fieldErrs[f]; err != nil {
			b.WriteString(m.styles.FieldError.Render(fieldErrorText(err)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	send := target{Label: "Send Message", Kind: actSubmit}
	if m.flow.State() == contact.Pending {
		b.WriteString(m.styles.Target.Render(m.spinner.View() + " Sending..."))
	} else {
		b.WriteString(m.renderTarget(send))
	}
	b.WriteString("\n\n")

	if len(c.Info) > 0 {
		b.WriteString(m.styles.Heading.Render("Contact Information"))
		b.WriteString("\n")
		for _, line := range c.Info {
			b.WriteString(m.styles.Label.Width(12).Render(line.Label))
			b.WriteString(m.styles.Body.Render(line.Value))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(m.content.Social) > 0 {
		b.WriteString(m.styles.Heading.Render("Follow Me"))
		b.WriteString("\n")
		b.WriteString(m.renderLinks(m.content.Social))
		b.WriteString("\n")
	}

	if c.Availability != "" {
		b.WriteString(m.styles.ToastSuccess.Render("● "))
		b.WriteString(m.styles.Muted.Width(w - 2).Render(c.Availability))
	}

	return b.String()
}

func (m Model) renderNotFound() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("404"))
	b.WriteString("\n")
	b.WriteString(m.styles.Heading.Render("Page not found"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Nothing lives at " + m.router.CurrentPath()))
	b.WriteString("\n\n")
	b.WriteString(m.renderTarget(target{Label: "Return Home", Kind: actNavigate, Path: "/"}))
	return b.String()
}

func (m Model) renderTags(tags []string, width int) string {
	if len(tags) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(tags))
	for _, t := range tags {
		blocks = append(blocks, m.styles.Tag.Render(t))
	}
	return wrapBlocks(blocks, width)
}

func (m Model) renderLinks(links []content.Link) string {
	var b strings.Builder
	for _, l := range links {
		b.WriteString(m.styles.Label.Width(12).Render(l.Name))
		b.WriteString(m.styles.Accent.Render(l.URL))
		b.WriteString("\n")
	}
	return b.String()
}

func categoryName(id string) string {
	for _, c := range content.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// fieldErrorText is the inline message under a field.
func fieldErrorText(err error) string {
	if errors.Is(err, contact.ErrInvalidEmail) {
		return "Please enter a valid email address"
	}
	return err.Error()
}
