package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring with unit mass.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	// RestDelta is the distance (and speed) below which the spring snaps to
	// its target and stops.
	RestDelta float64
}

// DefaultSpring matches the progress bar feel of the web version of the page.
var DefaultSpring = SpringConfig{Stiffness: 120, Damping: 20, RestDelta: 0.001}

// CriticalSpring returns a critically damped spring with the given stiffness.
func CriticalSpring(stiffness float64) SpringConfig {
	return SpringConfig{
		Stiffness: stiffness,
		Damping:   2 * math.Sqrt(stiffness),
		RestDelta: DefaultSpring.RestDelta,
	}
}

// AngularFrequency is sqrt(k/m) for unit mass.
func (c SpringConfig) AngularFrequency() float64 {
	if c.Stiffness <= 0 {
		return 0
	}
	return math.Sqrt(c.Stiffness)
}

// DampingRatio is c / (2*sqrt(k*m)) for unit mass.
func (c SpringConfig) DampingRatio() float64 {
	if c.Stiffness <= 0 {
		return 1
	}
	return c.Damping / (2 * math.Sqrt(c.Stiffness))
}

// Step advances pos/vel toward target by elapsed. It has no state of its
// own: the same inputs always give the same outputs.
func (c SpringConfig) Step(pos, vel, target float64, elapsed time.Duration) (float64, float64) {
	if elapsed <= 0 {
		return pos, vel
	}
	if c.Stiffness <= 0 {
		return target, 0
	}

	s := harmonica.NewSpring(elapsed.Seconds(), c.AngularFrequency(), c.DampingRatio())
	pos, vel = s.Update(pos, vel, target)

	if math.Abs(target-pos) < c.RestDelta && math.Abs(vel) < c.RestDelta {
		return target, 0
	}
	return pos, vel
}

// Smooth steps the default spring.
func Smooth(prev, vel, target float64, elapsed time.Duration) (float64, float64) {
	return DefaultSpring.Step(prev, vel, target, elapsed)
}
