package decor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone is a palette slot a cell is painted with.
type Tone int

const (
	ToneNone Tone = iota
	ToneDim
	ToneAccent
	ToneSecondary
)

// Cell is one character position.
type Cell struct {
	Rune rune
	Tone Tone
}

// Canvas is a fixed-size character grid layers draw into.
type Canvas struct {
	Width  int
	Height int
	cells  []Cell
}

// NewCanvas allocates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{Width: width, Height: height, cells: make([]Cell, width*height)}
	c.Clear()
	return c
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// Set paints one cell; out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, tone Tone) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = Cell{Rune: r, Tone: tone}
}

// At returns the cell at x, y.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.Width+x]
}

// Render joins the canvas into lines, styling runs of equal tone.
func (c *Canvas) Render(styles map[Tone]lipgloss.Style) string {
	lines := make([]string, c.Height)
	for y := 0; y < c.Height; y++ {
		var line strings.Builder
		var run strings.Builder
		runTone := ToneNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style, ok := styles[runTone]; ok && runTone != ToneNone {
				line.WriteString(style.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.Width; x++ {
			cell := c.cells[y*c.Width+x]
			if cell.Tone != runTone {
				flush()
				runTone = cell.Tone
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
