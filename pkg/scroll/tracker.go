// Package scroll tracks the page scroll position.
//
// A Tracker listens to a signal of ScrollEvents and derives a State: how far
// through the scrollable extent the viewport is, and whether it has moved past
// the back-to-top threshold. It also keeps a spring-smoothed copy of the
// progress for the progress bar so fast scrolling doesn't make it jump.
package scroll

import (
	"math"
	"time"

	"github.com/vanderheijden86/folio/pkg/debug"
	"github.com/vanderheijden86/folio/pkg/signal"
)

// DefaultThreshold is the offset, in pixels, past which the back-to-top
// affordance shows. The comparison is strict.
const DefaultThreshold = 600

// Event is one scroll notification. All values share the same unit
// (pixels in the UI).
type Event struct {
	Offset         int // Current vertical offset from the top
	Extent         int // Total document height
	ViewportHeight int // Visible height
}

// Scrollable returns how far the document can scroll, never negative.
func (e Event) Scrollable() int {
	if e.Extent <= e.ViewportHeight {
		return 0
	}
	return e.Extent - e.ViewportHeight
}

// State is the derived scroll state.
type State struct {
	Progress      float64 // offset / scrollable, clamped to [0,1]
	PastThreshold bool    // offset > threshold
}

// Compute derives the State for ev. A document that doesn't scroll has
// progress 0.
func Compute(ev Event, threshold int) State {
	st := State{PastThreshold: ev.Offset > threshold}

	scrollable := ev.Scrollable()
	if scrollable <= 0 {
		return st
	}
	st.Progress = clamp(float64(ev.Offset)/float64(scrollable), 0, 1)
	return st
}

// Tracker holds the latest State and notifies subscribers when it changes.
type Tracker struct {
	threshold int
	spring    SpringConfig

	state    State
	last     Event
	changed  *signal.Signal[State]
	smoothed float64
	velocity float64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(px int) Option {
	return func(t *Tracker) {
		t.threshold = px
	}
}

// WithSpring overrides DefaultSpring.
func WithSpring(cfg SpringConfig) Option {
	return func(t *Tracker) {
		t.spring = cfg
	}
}

// NewTracker returns a tracker at offset 0.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		threshold: DefaultThreshold,
		spring:    DefaultSpring,
		changed:   signal.New[State](),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Mount subscribes the tracker to scroll notifications. The caller owns the
// returned subscription and must close it when the view goes away.
func (t *Tracker) Mount(events *signal.Signal[Event]) *signal.Subscription {
	return events.Subscribe(t.Observe)
}

// Observe recomputes the state from ev and notifies OnChange subscribers if
// it differs from the previous state.
func (t *Tracker) Observe(ev Event) {
	prev := t.state
	t.last = ev
	t.state = Compute(ev, t.threshold)
	if t.state == prev {
		return
	}
	debug.Log("scroll: offset=%d extent=%d progress=%.3f past=%v",
		ev.Offset, ev.Extent, t.state.Progress, t.state.PastThreshold)
	t.changed.Emit(t.state)
}

// OnChange registers fn to receive every new State.
func (t *Tracker) OnChange(fn func(State)) *signal.Subscription {
	return t.changed.Subscribe(fn)
}

// State returns the latest state.
func (t *Tracker) State() State {
	return t.state
}

// Last returns the last observed event.
func (t *Tracker) Last() Event {
	return t.last
}

// Threshold returns the back-to-top threshold in pixels.
func (t *Tracker) Threshold() int {
	return t.threshold
}

// Smoothed returns the spring-smoothed progress used for drawing.
func (t *Tracker) Smoothed() float64 {
	return t.smoothed
}

// Settled reports whether the smoothed progress has caught up.
func (t *Tracker) Settled() bool {
	return t.smoothed == t.state.Progress && t.velocity == 0
}

// Advance moves the smoothed progress toward the current progress by
// elapsed time and reports whether it is still moving.
func (t *Tracker) Advance(elapsed time.Duration) bool {
	if t.Settled() {
		return false
	}
	t.smoothed, t.velocity = t.spring.Step(t.smoothed, t.velocity, t.state.Progress, elapsed)
	return !t.Settled()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
