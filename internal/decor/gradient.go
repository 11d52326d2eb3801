package decor

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/harmonica"
)

var shades = []rune{'░', '▒', '▓'}

// GradientBlobs moves a few soft colour blobs toward randomly chosen
// targets using critically damped springs.
type GradientBlobs struct {
	Count    int
	Seed     uint64
	Retarget time.Duration

	rng     *rand.Rand
	spring  harmonica.Spring
	blobs   []blob
	width   float64
	elapsed time.Duration
}

type blob struct {
	x, vx  float64
	target float64
	radius float64
	tone   Tone
}

// NewGradientBlobs returns two blobs that pick new targets every few seconds.
func NewGradientBlobs(seed uint64) *GradientBlobs {
	return &GradientBlobs{Count: 2, Seed: seed, Retarget: 4 * time.Second}
}

// Name implements Layer.
func (g *GradientBlobs) Name() string { return "gradient" }

// Init implements Layer.
func (g *GradientBlobs) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("gradient needs a non-empty canvas")
	}
	g.rng = rand.New(rand.NewPCG(g.Seed, g.Seed+1))
	g.width = float64(width)
	g.spring = harmonica.NewSpring(harmonica.FPS(30), 1.5, 1.0)
	g.blobs = make([]blob, g.Count)
	for i := range g.blobs {
		tone := ToneAccent
		if i%2 == 1 {
			tone = ToneSecondary
		}
		x := g.rng.Float64() * g.width
		g.blobs[i] = blob{
			x:      x,
			target: g.rng.Float64() * g.width,
			radius: g.width / 6,
			tone:   tone,
		}
	}
	return nil
}

// Step implements Layer. The spring is tuned for 30 FPS, so longer frames
// are applied as several spring steps.
func (g *GradientBlobs) Step(dt time.Duration) {
	g.elapsed += dt
	if g.Retarget > 0 && g.elapsed >= g.Retarget {
		g.elapsed = 0
		for i := range g.blobs {
			g.blobs[i].target = g.rng.Float64() * g.width
		}
	}

	steps := int(math.Max(1, math.Round(dt.Seconds()*30)))
	for i := range g.blobs {
		b := &g.blobs[i]
		for s := 0; s < steps; s++ {
			b.x, b.vx = g.spring.Update(b.x, b.vx, b.target)
		}
	}
}

// Draw implements Layer.
func (g *GradientBlobs) Draw(c *Canvas) {
	scale := float64(c.Width) / g.width
	for _, b := range g.blobs {
		center := b.x * scale
		radius := b.radius * scale
		if radius <= 0 {
			continue
		}
		for x := 0; x < c.Width; x++ {
			d := math.Abs(float64(x) - center)
			if d > radius {
				continue
			}
			level := int((1 - d/radius) * float64(len(shades)))
			if level >= len(shades) {
				level = len(shades) - 1
			}
			for y := 0; y < c.Height; y++ {
				if c.At(x, y).Tone != ToneNone {
					continue
				}
				c.Set(x, y, shades[level], b.tone)
			}
		}
	}
}

// Position returns blob i's current x, for tests.
func (g *GradientBlobs) Position(i int) (x, target float64) {
	return g.blobs[i].x, g.blobs[i].target
}
