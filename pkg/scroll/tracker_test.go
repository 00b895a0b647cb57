package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/vanderheijden86/folio/pkg/signal"
	"pgregory.net/rapid"
)

const frame = time.Second / 60

func TestComputeBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		ev       Event
		progress float64
		past     bool
	}{
		{"top", Event{Offset: 0, Extent: 3000, ViewportHeight: 1000}, 0, false},
		{"bottom", Event{Offset: 2000, Extent: 3000, ViewportHeight: 1000}, 1, true},
		{"halfway", Event{Offset: 1000, Extent: 3000, ViewportHeight: 1000}, 0.5, true},
		{"threshold exact", Event{Offset: 600, Extent: 3000, ViewportHeight: 1000}, 0.3, false},
		{"threshold plus one", Event{Offset: 601, Extent: 3000, ViewportHeight: 1000}, 0.3005, true},
		{"nothing to scroll", Event{Offset: 0, Extent: 800, ViewportHeight: 800}, 0, false},
		{"document shorter than viewport", Event{Offset: 0, Extent: 300, ViewportHeight: 800}, 0, false},
		{"overscroll clamps", Event{Offset: 2500, Extent: 3000, ViewportHeight: 1000}, 1, true},
		{"negative offset clamps", Event{Offset: -40, Extent: 3000, ViewportHeight: 1000}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Compute(tt.ev, DefaultThreshold)
			if math.Abs(st.Progress-tt.progress) > 1e-9 {
				t.Errorf("progress = %v, want %v", st.Progress, tt.progress)
			}
			if st.PastThreshold != tt.past {
				t.Errorf("pastThreshold = %v, want %v", st.PastThreshold, tt.past)
			}
		})
	}
}

func TestComputeProgressProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		viewport := rapid.IntRange(1, 5000).Draw(t, "viewport")
		scrollable := rapid.IntRange(1, 50000).Draw(t, "scrollable")
		offset := rapid.IntRange(0, scrollable).Draw(t, "offset")

		st := Compute(Event{Offset: offset, Extent: viewport + scrollable, ViewportHeight: viewport}, DefaultThreshold)

		want := float64(offset) / float64(scrollable)
		if math.Abs(st.Progress-want) > 1e-12 {
			t.Fatalf("progress = %v, want %v", st.Progress, want)
		}
		if st.Progress < 0 || st.Progress > 1 {
			t.Fatalf("progress %v outside [0,1]", st.Progress)
		}
		if st.PastThreshold != (offset > DefaultThreshold) {
			t.Fatalf("pastThreshold = %v for offset %d", st.PastThreshold, offset)
		}
	})
}

func TestComputeMonotonicInOffset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scrollable := rapid.IntRange(1, 10000).Draw(t, "scrollable")
		a := rapid.IntRange(0, scrollable).Draw(t, "a")
		b := rapid.IntRange(a, scrollable).Draw(t, "b")

		sa := Compute(Event{Offset: a, Extent: scrollable + 500, ViewportHeight: 500}, DefaultThreshold)
		sb := Compute(Event{Offset: b, Extent: scrollable + 500, ViewportHeight: 500}, DefaultThreshold)
		if sa.Progress > sb.Progress {
			t.Fatalf("progress decreased: %v at %d > %v at %d", sa.Progress, a, sb.Progress, b)
		}
	})
}

func TestTrackerFollowsSignal(t *testing.T) {
	events := signal.New[Event]()
	tr := NewTracker()
	sub := tr.Mount(events)
	defer sub.Close()

	var seen []State
	tr.OnChange(func(st State) { seen = append(seen, st) })

	events.Emit(Event{Offset: 700, Extent: 2400, ViewportHeight: 1000})
	if got := tr.State(); !got.PastThreshold || math.Abs(got.Progress-0.5) > 1e-9 {
		t.Fatalf("unexpected state %+v", got)
	}

	// Same state again: no extra notification.
	events.Emit(Event{Offset: 700, Extent: 2400, ViewportHeight: 1000})
	if len(seen) != 1 {
		t.Fatalf("expected 1 change notification, got %d", len(seen))
	}
	if tr.Last().Offset != 700 {
		t.Fatalf("expected last offset 700, got %d", tr.Last().Offset)
	}
}

func TestTrackerStopsAfterUnmount(t *testing.T) {
	events := signal.New[Event]()
	tr := NewTracker()
	sub := tr.Mount(events)

	changes := 0
	tr.OnChange(func(State) { changes++ })

	events.Emit(Event{Offset: 100, Extent: 2000, ViewportHeight: 1000})
	sub.Close()
	events.Emit(Event{Offset: 900, Extent: 2000, ViewportHeight: 1000})

	if changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes)
	}
	if tr.State().PastThreshold {
		t.Fatal("state changed after unmount")
	}
}

func TestTrackerCustomThreshold(t *testing.T) {
	tr := NewTracker(WithThreshold(40))
	tr.Observe(Event{Offset: 41, Extent: 1000, ViewportHeight: 100})
	if !tr.State().PastThreshold {
		t.Fatal("expected past custom threshold")
	}
	if tr.Threshold() != 40 {
		t.Fatalf("expected threshold 40, got %d", tr.Threshold())
	}
}

func TestAdvanceConvergesToProgress(t *testing.T) {
	tr := NewTracker()
	tr.Observe(Event{Offset: 1000, Extent: 2000, ViewportHeight: 1000})

	if tr.Settled() {
		t.Fatal("expected smoothing to lag the raw progress")
	}

	frames := 0
	for tr.Advance(frame) {
		frames++
		if frames > 600 {
			t.Fatalf("smoothing did not settle, at %v", tr.Smoothed())
		}
	}
	if tr.Smoothed() != 1 {
		t.Fatalf("expected smoothed progress 1, got %v", tr.Smoothed())
	}
	if tr.Advance(frame) {
		t.Fatal("settled tracker should not keep advancing")
	}
}

func TestSpringStepIsPure(t *testing.T) {
	p1, v1 := Smooth(0.2, 0.1, 0.8, frame)
	p2, v2 := Smooth(0.2, 0.1, 0.8, frame)
	if p1 != p2 || v1 != v2 {
		t.Fatalf("same inputs gave different outputs: (%v,%v) vs (%v,%v)", p1, v1, p2, v2)
	}

	p, v := Smooth(0.3, 0.5, 1, 0)
	if p != 0.3 || v != 0.5 {
		t.Fatalf("zero elapsed should not move the spring, got (%v,%v)", p, v)
	}
}

func TestCriticalSpringDoesNotOvershoot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stiffness := rapid.Float64Range(10, 400).Draw(t, "stiffness")
		target := rapid.Float64Range(0.01, 1).Draw(t, "target")
		cfg := CriticalSpring(stiffness)

		pos, vel := 0.0, 0.0
		for i := 0; i < 2000; i++ {
			pos, vel = cfg.Step(pos, vel, target, frame)
			if pos > target+cfg.RestDelta {
				t.Fatalf("overshoot: %v > %v at frame %d", pos, target, i)
			}
			if pos == target && vel == 0 {
				return
			}
		}
		t.Fatalf("did not settle: pos=%v vel=%v target=%v", pos, vel, target)
	})
}

func TestSpringWithoutStiffnessSnaps(t *testing.T) {
	cfg := SpringConfig{}
	pos, vel := cfg.Step(0, 0, 0.7, frame)
	if pos != 0.7 || vel != 0 {
		t.Fatalf("expected snap to target, got (%v,%v)", pos, vel)
	}
}
