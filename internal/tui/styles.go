package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/decor"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Palette is the colour set of one theme.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Surface    lipgloss.Color
}

var (
	darkPalette = Palette{
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("245"),
		Subtle:     lipgloss.Color("238"),
		Primary:    lipgloss.Color("99"),  // Purple
		Secondary:  lipgloss.Color("212"), // Pink
		Success:    lipgloss.Color("42"),
		Danger:     lipgloss.Color("196"),
		Surface:    lipgloss.Color("235"),
	}

	lightPalette = Palette{
		Foreground: lipgloss.Color("236"),
		Muted:      lipgloss.Color("243"),
		Subtle:     lipgloss.Color("252"),
		Primary:    lipgloss.Color("55"),
		Secondary:  lipgloss.Color("162"),
		Success:    lipgloss.Color("28"),
		Danger:     lipgloss.Color("124"),
		Surface:    lipgloss.Color("255"),
	}
)

// PaletteFor returns the palette of p.
func PaletteFor(p theme.Preference) Palette {
	if p == theme.Light {
		return lightPalette
	}
	return darkPalette
}

// Styles are the rendered styles of one theme.
type Styles struct {
	Theme   theme.Preference
	Palette Palette

	Brand      lipgloss.Style
	Nav        lipgloss.Style
	NavCompact lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	MenuBox    lipgloss.Style

	Title    lipgloss.Style
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Tag      lipgloss.Style
	Card     lipgloss.Style

	Target  lipgloss.Style
	Focused lipgloss.Style

	Label      lipgloss.Style
	FieldError lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	Footer       lipgloss.Style

	Decor map[decor.Tone]lipgloss.Style
}

// NewStyles builds the styles for p.
func NewStyles(p theme.Preference) Styles {
	c := PaletteFor(p)

	target := lipgloss.NewStyle().
		Foreground(c.Primary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c.Subtle).
		Padding(0, 1)

	return Styles{
		Theme:   p,
		Palette: c,

		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary),
		Nav: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(c.Subtle).
			PaddingLeft(1).
			PaddingRight(1),
		NavCompact: lipgloss.NewStyle().
			Background(c.Surface).
			PaddingLeft(1).
			PaddingRight(1),
		NavItem: lipgloss.NewStyle().
			Foreground(c.Muted).
			PaddingLeft(1).
			PaddingRight(1),
		NavActive: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true).
			Underline(true).
			PaddingLeft(1).
			PaddingRight(1),
		MenuBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Foreground),
		Subtitle: lipgloss.NewStyle().
			Foreground(c.Secondary).
			Bold(true),
		Body: lipgloss.NewStyle().
			Foreground(c.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Accent: lipgloss.NewStyle().
			Foreground(c.Secondary),
		Tag: lipgloss.NewStyle().
			Foreground(c.Primary).
			Background(c.Surface).
			Padding(0, 1).
			MarginRight(1),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Subtle).
			Padding(0, 1).
			MarginBottom(1),

		Target: target,
		Focused: target.
			Bold(true).
			Foreground(c.Secondary).
			BorderForeground(c.Secondary),

		Label: lipgloss.NewStyle().
			Foreground(c.Muted).
			Bold(true),
		FieldError: lipgloss.NewStyle().
			Foreground(c.Danger),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(c.Success).
			Bold(true),
		ToastError: lipgloss.NewStyle().
			Foreground(c.Danger).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(c.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(c.Subtle),

		Decor: map[decor.Tone]lipgloss.Style{
			decor.ToneDim:       lipgloss.NewStyle().Foreground(c.Subtle),
			decor.ToneAccent:    lipgloss.NewStyle().Foreground(c.Primary),
			decor.ToneSecondary: lipgloss.NewStyle().Foreground(c.Secondary),
		},
	}
}
