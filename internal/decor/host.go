// Package decor hosts the animated background layers. Layers are opaque:
// the host only guarantees they are mounted once and that a failing layer
// is switched off without affecting anything else.
package decor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/logger"
)

// Layer is one decorative animation.
type Layer interface {
	Name() string
	Init(width, height int) error
	Step(dt time.Duration)
	Draw(c *Canvas)
}

type slot struct {
	layer   Layer
	enabled bool
}

// Host owns the mounted layers.
type Host struct {
	log     *logger.Logger
	mounted bool
	slots   []*slot
	canvas  *Canvas
}

// NewHost returns an empty host.
func NewHost(log *logger.Logger) *Host {
	if log == nil {
		log = logger.Nop()
	}
	return &Host{log: log.Component("decor")}
}

// Mount initialises layers once. Later calls are ignored so navigation never
// restarts an animation. Layers that fail to initialise are disabled.
func (h *Host) Mount(width, height int, layers ...Layer) {
	if h.mounted {
		return
	}
	h.mounted = true
	h.canvas = NewCanvas(width, height)

	for _, l := range layers {
		if l == nil {
			continue
		}
		s := &slot{layer: l}
		if err := h.guard(l, "init", func() error { return l.Init(width, height) }); err == nil {
			s.enabled = true
		}
		h.slots = append(h.slots, s)
	}
}

// Mounted reports whether Mount has run.
func (h *Host) Mounted() bool { return h.mounted }

// Active returns the names of layers still running.
func (h *Host) Active() []string {
	var names []string
	for _, s := range h.slots {
		if s.enabled {
			names = append(names, s.layer.Name())
		}
	}
	return names
}

// Resize changes the canvas size without remounting layers.
func (h *Host) Resize(width, height int) {
	if !h.mounted {
		return
	}
	if h.canvas != nil && h.canvas.Width == width && h.canvas.Height == height {
		return
	}
	h.canvas = NewCanvas(width, height)
}

// Step advances every enabled layer.
func (h *Host) Step(dt time.Duration) {
	for _, s := range h.slots {
		if !s.enabled {
			continue
		}
		l := s.layer
		if err := h.guard(l, "step", func() error { l.Step(dt); return nil }); err != nil {
			s.enabled = false
		}
	}
}

// Render composes the enabled layers, later layers on top.
func (h *Host) Render(styles map[Tone]lipgloss.Style) string {
	if h.canvas == nil || h.canvas.Width == 0 || h.canvas.Height == 0 {
		return ""
	}
	h.canvas.Clear()
	for _, s := range h.slots {
		if !s.enabled {
			continue
		}
		l := s.layer
		if err := h.guard(l, "draw", func() error { l.Draw(h.canvas); return nil }); err != nil {
			s.enabled = false
		}
	}
	return h.canvas.Render(styles)
}

// guard runs fn, converting a panic into an error, and logs any failure.
func (h *Host) guard(l Layer, phase string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			h.log.WithFields(map[string]any{"layer": l.Name(), "phase": phase}).WarnErr(err, "decorative layer disabled")
		}
	}()
	return fn()
}
