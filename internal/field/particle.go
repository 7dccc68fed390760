package field

import "math/rand"

// Particle is a single drifting point. Velocity, radius and opacity are fixed
// at creation; only the position changes.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

const (
	minRadius   = 1.0
	radiusSpan  = 3.0
	minOpacity  = 0.2
	opacitySpan = 0.5
)

func newParticle(rng *rand.Rand, width, height float64) Particle {
	return Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		VX:      rng.Float64()*2 - 1,
		VY:      rng.Float64()*2 - 1,
		Radius:  rng.Float64()*radiusSpan + minRadius,
		Opacity: rng.Float64()*opacitySpan + minOpacity,
	}
}

func (p *Particle) advance() {
	p.X += p.VX
	p.Y += p.VY
}
