package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/contact"
	"github.com/alexisbeaulieu97/folio/internal/router"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// View renders the current model state
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sections []string

	if m.decorEnabled() {
		if band := m.decor.Render(m.styles.Decor); band != "" {
			sections = append(sections, band)
		}
	}

	sections = append(sections, m.renderNav(), m.renderStatus())

	if m.menu.Open() {
		sections = append(sections, lipgloss.NewStyle().
			Height(m.viewport.Height).
			Render(m.renderMenu()))
	} else {
		sections = append(sections, m.viewport.View())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderNav renders the top bar: full links on wide terminals, a menu
// toggle on narrow ones, and a condensed bar once the page is scrolled.
func (m Model) renderNav() string {
	name := m.content.Profile.Name
	if name == "" {
		name = "Portfolio"
	}

	mode := "☾"
	if m.styles.Theme == theme.Light {
		mode = "☀"
	}

	if m.mobile() {
		toggle := "≡ Menu (m)"
		if m.menu.Open() {
			toggle = "✕ Close (m)"
		}
		bar := m.styles.Brand.Render(name) + "  " +
			m.styles.Muted.Render(mode+"  "+toggle)
		return m.styles.Nav.Width(m.width).Render(bar)
	}

	items := router.Items(m.router.CurrentPath())
	links := make([]string, 0, len(items))
	for i, item := range items {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		if item.Active {
			links = append(links, m.styles.NavActive.Render(label))
		} else {
			links = append(links, m.styles.NavItem.Render(label))
		}
	}

	style := m.styles.Nav
	brand := m.styles.Brand.Render(name)
	if m.compact() {
		style = style.Inherit(m.styles.NavCompact)
		brand = m.styles.Brand.Render(initials(name))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		brand, "  ",
		lipgloss.JoinHorizontal(lipgloss.Top, links...),
		"  ", m.styles.Muted.Render(mode),
	)
	return style.Width(m.width).Render(bar)
}

func (m Model) renderMenu() string {
	items := router.Items(m.router.CurrentPath())
	lines := make([]string, 0, len(items))
	for i, item := range items {
		cursor := "  "
		if i == m.menuCursor {
			cursor = "› "
		}
		style := m.styles.NavItem
		if item.Active {
			style = m.styles.NavActive
		}
		lines = append(lines, cursor+style.Render(item.Label))
	}
	return m.styles.MenuBox.Render(strings.Join(lines, "\n"))
}

// renderStatus renders the single status row: the pending spinner, the
// current toast, or nothing.
func (m Model) renderStatus() string {
	switch {
	case m.addressing:
		return " " + m.address.View()
	case m.flow.State() == contact.Pending:
		return " " + m.spinner.View() + m.styles.Muted.Render(" Sending...")
	case m.toast != nil:
		style := m.styles.ToastError
		icon := "✗"
		if m.toast.Success {
			style = m.styles.ToastSuccess
			icon = "✓"
		}
		line := style.Render(icon+" "+m.toast.Title) + "  " + m.styles.Muted.Render(m.toast.Description)
		return lipgloss.NewStyle().MaxWidth(m.width).Render(" " + line)
	default:
		return ""
	}
}

func (m Model) renderFooter() string {
	view := m.help.View(m.keys)
	if m.typing() {
		view = m.help.View(formKeys{m.keys})
	}
	return m.styles.Footer.Width(m.width).Render(view)
}

// renderTarget renders t as a button, highlighted when focused.
func (m Model) renderTarget(t target) string {
	if cur, ok := m.focusedTarget(); ok && cur == t {
		return m.styles.Focused.Render(t.Label)
	}
	return m.styles.Target.Render(t.Label)
}

// wrapBlocks lays blocks out left to right, starting a new row when the
// next block would exceed width.
func wrapBlocks(blocks []string, width int) string {
	var rows []string
	var row []string
	used := 0

	for _, b := range blocks {
		w := lipgloss.Width(b)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			used = 0
		}
		row = append(row, b)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteRune([]rune(part)[0])
	}
	return b.String()
}
