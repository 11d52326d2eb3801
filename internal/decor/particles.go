package decor

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// ParticleField drifts points across the canvas and marks the midpoint
// between any two that are close, a terminal rendition of a linked
// particle graph.
type ParticleField struct {
	Count    int
	LinkDist float64
	Seed     uint64

	rng       *rand.Rand
	particles []particle
	width     float64
	height    float64
}

type particle struct {
	x, y   float64
	vx, vy float64
}

// NewParticleField returns a field with sensible defaults.
func NewParticleField(seed uint64) *ParticleField {
	return &ParticleField{Count: 24, LinkDist: 6, Seed: seed}
}

// Name implements Layer.
func (p *ParticleField) Name() string { return "particles" }

// Init implements Layer.
func (p *ParticleField) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("particle field needs a non-empty canvas")
	}
	p.rng = rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))
	p.width, p.height = float64(width), float64(height)
	p.particles = make([]particle, p.Count)
	for i := range p.particles {
		p.particles[i] = particle{
			x:  p.rng.Float64() * p.width,
			y:  p.rng.Float64() * p.height,
			vx: (p.rng.Float64() - 0.5) * 8,
			vy: (p.rng.Float64() - 0.5) * 2,
		}
	}
	return nil
}

// Step implements Layer. Particles wrap at the edges.
func (p *ParticleField) Step(dt time.Duration) {
	secs := dt.Seconds()
	for i := range p.particles {
		pt := &p.particles[i]
		pt.x = wrap(pt.x+pt.vx*secs, p.width)
		pt.y = wrap(pt.y+pt.vy*secs, p.height)
	}
}

// Draw implements Layer.
func (p *ParticleField) Draw(c *Canvas) {
	sx := float64(c.Width) / p.width
	sy := float64(c.Height) / p.height

	for i := range p.particles {
		for j := i + 1; j < len(p.particles); j++ {
			a, b := p.particles[i], p.particles[j]
			// Cells are roughly twice as tall as wide.
			d := math.Hypot(a.x-b.x, (a.y-b.y)*2)
			if d > 0 && d < p.LinkDist {
				mx, my := (a.x+b.x)/2, (a.y+b.y)/2
				c.Set(int(mx*sx), int(my*sy), '·', ToneDim)
			}
		}
	}
	for _, pt := range p.particles {
		c.Set(int(pt.x*sx), int(pt.y*sy), '•', ToneAccent)
	}
}

func wrap(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	return v
}
