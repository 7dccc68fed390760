package game

import (
	"math/rand"
	"time"
)

const (
	loaderInterval = 100 * time.Millisecond
	loaderHold     = 500 * time.Millisecond
	loaderMaxStep  = 15.0
)

// Loader simulates a loading screen: progress grows by a random amount every
// interval until it reaches 100, then holds briefly before reporting done.
type Loader struct {
	rng      *rand.Rand
	progress float64
	elapsed  time.Duration
	held     time.Duration
	done     bool
}

func NewLoader(rng *rand.Rand) *Loader {
	return &Loader{rng: rng}
}

// Step advances the loader by dt of wall time.
func (l *Loader) Step(dt time.Duration) {
	if l.done {
		return
	}
	if l.progress >= 100 {
		l.held += dt
		if l.held >= loaderHold {
			l.done = true
		}
		return
	}
	l.elapsed += dt
	for l.elapsed >= loaderInterval && l.progress < 100 {
		l.elapsed -= loaderInterval
		l.progress += l.rng.Float64() * loaderMaxStep
		if l.progress >= 100 {
			l.progress = 100
		}
	}
}

// Progress returns the completion percentage in [0, 100].
func (l *Loader) Progress() float64 { return l.progress }

// Done reports whether the loader has finished and the hold has elapsed.
func (l *Loader) Done() bool { return l.done }
