// Package field simulates a fixed population of drifting particles on a
// toroidal surface and renders them, together with proximity connections,
// onto an abstract drawing Surface.
package field

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultCount is the population size used when none is configured.
	DefaultCount = 50
	// DefaultConnectDistance is the distance below which two particles are
	// joined by a line.
	DefaultConnectDistance = 150.0
)

// WrapMode selects how a coordinate that left the surface re-enters it.
type WrapMode int

const (
	// WrapReset snaps to the opposite edge: x > w becomes 0, x < 0 becomes w.
	// A coordinate exactly on an edge is left alone.
	WrapReset WrapMode = iota
	// WrapModulo keeps the overflow distance: 10.5 on a 10 wide surface
	// becomes 0.5. Coordinates always end up in [0, dim).
	WrapModulo
)

func (m WrapMode) String() string {
	switch m {
	case WrapModulo:
		return "modulo"
	case WrapReset:
		return "reset"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// ParseWrapMode maps a config value onto a WrapMode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "reset":
		return WrapReset, nil
	case "modulo":
		return WrapModulo, nil
	default:
		return WrapReset, fmt.Errorf("invalid wrap mode %q: must be reset or modulo", s)
	}
}

// Field owns the particle population and the logical surface size.
// It is not safe for concurrent use; the host drives it from one loop.
type Field struct {
	particles       []Particle
	width, height   float64
	wrap            WrapMode
	connectDistance float64
	rng             *rand.Rand
}

// Option configures a Field at construction.
type Option func(*Field)

// WithRand injects the random source used for initialization.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// WithSeed seeds the random source, making initialization reproducible.
func WithSeed(seed int64) Option {
	return func(f *Field) { f.rng = rand.New(rand.NewSource(seed)) }
}

// WithWrap sets the wrap-around rule.
func WithWrap(mode WrapMode) Option {
	return func(f *Field) { f.wrap = mode }
}

// WithConnectDistance overrides the connection threshold. Non-positive
// values are ignored.
func WithConnectDistance(d float64) Option {
	return func(f *Field) {
		if d > 0 {
			f.connectDistance = d
		}
	}
}

func newField(width, height float64, opts []Option) *Field {
	f := &Field{
		width:           width,
		height:          height,
		connectDistance: DefaultConnectDistance,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return f
}

// New creates count particles placed uniformly over a width x height surface.
func New(width, height float64, count int, opts ...Option) *Field {
	f := newField(width, height, opts)
	if count < 0 {
		count = 0
	}
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, width, height)
	}
	return f
}

// FromParticles builds a Field around an explicit population. The slice is
// copied.
func FromParticles(width, height float64, particles []Particle, opts ...Option) *Field {
	f := newField(width, height, opts)
	f.particles = append([]Particle(nil), particles...)
	return f
}

// Resize updates the surface bounds. Particle positions are not touched;
// the next Advance wraps against the new bounds.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Bounds returns the current logical surface size.
func (f *Field) Bounds() (width, height float64) {
	return f.width, f.height
}

// Len returns the population size.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a copy of the current population.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Wrap returns the configured wrap rule.
func (f *Field) Wrap() WrapMode {
	return f.wrap
}

// ConnectDistance returns the connection threshold.
func (f *Field) ConnectDistance() float64 {
	return f.connectDistance
}

// Advance moves every particle by its velocity and wraps it back onto the
// surface.
func (f *Field) Advance() {
	for i := range f.particles {
		p := &f.particles[i]
		p.advance()
		p.X = f.wrapCoord(p.X, f.width)
		p.Y = f.wrapCoord(p.Y, f.height)
	}
}

func (f *Field) wrapCoord(v, dim float64) float64 {
	if dim <= 0 {
		return v
	}
	switch f.wrap {
	case WrapModulo:
		v = math.Mod(v, dim)
		if v < 0 {
			v += dim
		}
		// -tiny + dim can round up to dim
		if v >= dim {
			v = 0
		}
		return v
	default:
		if v > dim {
			return 0
		}
		if v < 0 {
			return dim
		}
		return v
	}
}

// Connection is a pair of particles closer than the connect distance.
// A < B always holds.
type Connection struct {
	A, B     int
	Distance float64
	Opacity  float64
}

// Connections calls fn once for every unordered pair closer than the
// connect distance.
func (f *Field) Connections(fn func(Connection)) {
	n := len(f.particles)
	for i := 0; i < n; i++ {
		a := f.particles[i]
		for j := i + 1; j < n; j++ {
			b := f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < f.connectDistance {
				fn(Connection{A: i, B: j, Distance: d, Opacity: ConnectionOpacity(d, f.connectDistance)})
			}
		}
	}
}

// ConnectionOpacity fades linearly from 0.2 at distance 0 to 0 at threshold.
func ConnectionOpacity(distance, threshold float64) float64 {
	if threshold <= 0 || distance >= threshold {
		return 0
	}
	return maxLineOpacity * (1 - distance/threshold)
}
