package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/content"
)

func TestView_NavMarksEveryRoute(t *testing.T) {
	m := newTestModel(t, "/", nil)

	nav := m.renderNav()
	for _, label := range []string{"1 Home", "2 About", "3 Projects", "4 Skills", "5 Contact"} {
		assert.Contains(t, nav, label)
	}
	assert.Contains(t, nav, m.content.Profile.Name)
}

func TestView_MobileNavShowsMenuToggle(t *testing.T) {
	m := newTestModel(t, "/", nil)
	m = sized(t, m, 50, 30)

	nav := m.renderNav()
	assert.Contains(t, nav, "Menu")
	assert.NotContains(t, nav, "3 Projects")
}

func TestView_NavCompactsWhenScrolled(t *testing.T) {
	m := newTestModel(t, "/about", nil)
	m = sized(t, m, 100, 16)

	full := m.renderNav()
	for i := 0; i < 10; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.True(t, m.compact())

	compact := m.renderNav()
	assert.NotEqual(t, full, compact)
	assert.Contains(t, compact, initials(m.content.Profile.Name))
}

func TestView_ProjectCardsSummariseTags(t *testing.T) {
	m := newTestModel(t, "/projects", nil)

	p := content.Project{
		Title:        "Sample",
		Category:     "web",
		Description:  "A sample project.",
		Technologies: []string{"Go", "gRPC", "Postgres", "Redis", "NATS"},
	}
	card := m.renderProject(p, 80)

	assert.Contains(t, card, "Go")
	assert.Contains(t, card, "Postgres")
	assert.NotContains(t, card, "Redis")
	assert.Contains(t, card, "+2")
	assert.Contains(t, card, "Web Apps")
}

func TestView_ContactShowsSendingWhilePending(t *testing.T) {
	m := newTestModel(t, "/contact", &countingRelay{})
	m = fillForm(t, m, validMessage)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.renderStatus(), "Sending...")
	assert.Contains(t, m.renderPage(), "Sending...")
}

func TestView_FooterSwitchesToFormHelp(t *testing.T) {
	m := newTestModel(t, "/contact", nil)
	assert.Contains(t, m.renderFooter(), "toggle theme")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	footer := m.renderFooter()
	assert.Contains(t, footer, "send message")
	assert.NotContains(t, footer, "toggle theme")
}

func TestView_FitsTerminalHeight(t *testing.T) {
	for _, size := range [][2]int{{100, 40}, {60, 24}, {140, 30}} {
		t.Run(fmt.Sprintf("%dx%d", size[0], size[1]), func(t *testing.T) {
			m := newTestModel(t, "/", nil)
			m = sized(t, m, size[0], size[1])
			assert.LessOrEqual(t, lipgloss.Height(m.View()), size[1])
		})
	}
}

func TestWrapBlocks(t *testing.T) {
	out := wrapBlocks([]string{"aaaa", "bbbb", "cccc"}, 9)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "aaaabbbb", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "cccc", strings.TrimRight(lines[1], " "))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AM", initials("Alex Morgan"))
	assert.Equal(t, "", initials(""))
}
