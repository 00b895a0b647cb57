// Package nav executes navigation intents against a scrollable viewport.
//
// Two effects are supported: an animated scroll back to the top and an
// immediate jump to a named anchor, which also records the anchor as the
// page's current fragment. Both are fire-and-forget: a missing anchor or
// an already-at-top viewport simply does nothing.
package nav

import (
	"math"
	"time"

	"github.com/vanderheijden86/folio/pkg/debug"
	"github.com/vanderheijden86/folio/pkg/keys"
	"github.com/vanderheijden86/folio/pkg/scroll"
)

// Viewport is the control surface the actions drive.
type Viewport interface {
	Offset() int
	SetOffset(int)
}

// Anchors resolves anchor ids to viewport offsets.
type Anchors interface {
	AnchorOffset(id string) (int, bool)
}

// AnchorMap is a static Anchors implementation.
type AnchorMap map[string]int

// AnchorOffset implements Anchors.
func (m AnchorMap) AnchorOffset(id string) (int, bool) {
	off, ok := m[id]
	return off, ok
}

// DefaultScrollSpring drives the smooth scroll-to-top.
var DefaultScrollSpring = scroll.CriticalSpring(180)

// Actions carries out navigation intents. At most one animation is in
// flight; a new intent replaces it.
type Actions struct {
	vp       Viewport
	anchors  Anchors
	spring   scroll.SpringConfig
	fragment string

	animating bool
	target    float64
	pos       float64
	vel       float64
	lastSet   int
}

// Option configures Actions.
type Option func(*Actions)

// WithSpring overrides DefaultScrollSpring.
func WithSpring(cfg scroll.SpringConfig) Option {
	return func(a *Actions) {
		a.spring = cfg
	}
}

// New returns Actions bound to vp and anchors.
func New(vp Viewport, anchors Anchors, opts ...Option) *Actions {
	a := &Actions{vp: vp, anchors: anchors, spring: DefaultScrollSpring}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetAnchors replaces the anchor index, e.g. after the page is re-laid out.
func (a *Actions) SetAnchors(anchors Anchors) {
	a.anchors = anchors
}

// Dispatch implements keys.Dispatcher.
func (a *Actions) Dispatch(intent keys.Intent) {
	switch intent.Kind {
	case keys.ScrollToTop:
		a.ScrollToTop()
	case keys.JumpToAnchor:
		a.JumpToAnchor(intent.Anchor)
	}
}

// ScrollToTop starts an animated scroll to offset 0 and reports whether
// anything will move. At the top with nothing in flight it does nothing.
func (a *Actions) ScrollToTop() bool {
	if a.vp == nil {
		return false
	}
	offset := a.vp.Offset()
	if offset == 0 && !a.animating {
		return false
	}
	if !a.animating {
		a.pos = float64(offset)
		a.vel = 0
	}
	a.animating = true
	a.target = 0
	a.lastSet = offset
	debug.Log("nav: scroll to top from %d", offset)
	return true
}

// JumpToAnchor moves the viewport to the anchor and makes it the current
// fragment. Unknown anchors are ignored and report false.
func (a *Actions) JumpToAnchor(id string) bool {
	if a.vp == nil || a.anchors == nil {
		return false
	}
	off, ok := a.anchors.AnchorOffset(id)
	if !ok {
		debug.Log("nav: no anchor %q", id)
		return false
	}
	a.Cancel()
	a.fragment = id
	a.vp.SetOffset(off)
	debug.Log("nav: jump to #%s at %d", id, off)
	return true
}

// Step advances the animation by elapsed and reports whether it is still
// running. If something else moved the viewport since the last frame the
// animation yields to it.
func (a *Actions) Step(elapsed time.Duration) bool {
	if !a.animating || a.vp == nil {
		return false
	}
	if a.vp.Offset() != a.lastSet {
		a.Cancel()
		return false
	}

	a.pos, a.vel = a.spring.Step(a.pos, a.vel, a.target, elapsed)
	next := int(math.Round(a.pos))
	if a.pos == a.target && a.vel == 0 {
		next = int(a.target)
		a.animating = false
	}
	a.vp.SetOffset(next)
	a.lastSet = a.vp.Offset()
	if a.lastSet == int(a.target) {
		a.animating = false
		a.vel = 0
	}
	return a.animating
}

// Cancel stops any in-flight animation where it is.
func (a *Actions) Cancel() {
	a.animating = false
	a.vel = 0
}

// Animating reports whether a scroll animation is in flight.
func (a *Actions) Animating() bool {
	return a.animating
}

// Fragment returns the current fragment, empty until the first jump.
func (a *Actions) Fragment() string {
	return a.fragment
}

// ClearFragment forgets the current fragment.
func (a *Actions) ClearFragment() {
	a.fragment = ""
}
