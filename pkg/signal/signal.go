// Package signal provides a small synchronous notification stream with
// explicit subscription handles.
//
// A Signal delivers every emitted value to its live subscribers, in
// subscription order, on the caller's goroutine. Subscribe returns a
// *Subscription; closing it detaches the callback. A Scope groups the
// handles owned by one view so they can all be released on teardown:
//
//	var scope signal.Scope
//	defer scope.Close()
//	scope.Add(scrollSig.Subscribe(onScroll))
//	scope.Add(keySig.Subscribe(onKey))
package signal

// Signal is a notification stream of values of type T.
//
// Signals are not safe for concurrent use; like the rest of the UI they are
// driven from the single Bubble Tea update loop.
type Signal[T any] struct {
	subs []*subscriber[T]
}

type subscriber[T any] struct {
	fn     func(T)
	handle *Subscription
}

// New returns an empty signal.
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Subscribe registers fn and returns the handle that releases it.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	entry := &subscriber[T]{fn: fn}
	entry.handle = &Subscription{release: func() {
		for i, other := range s.subs {
			if other == entry {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}}
	s.subs = append(s.subs, entry)
	return entry.handle
}

// Emit delivers v to every live subscriber. With no subscribers it does nothing.
func (s *Signal[T]) Emit(v T) {
	if len(s.subs) == 0 {
		return
	}
	// Snapshot so a callback may close its own (or another) subscription.
	subs := make([]*subscriber[T], len(s.subs))
	copy(subs, s.subs)
	for _, entry := range subs {
		if entry.handle.closed {
			continue
		}
		entry.fn(v)
	}
}

// Len returns the number of live subscribers.
func (s *Signal[T]) Len() int {
	return len(s.subs)
}

// Subscription is the handle returned by Signal.Subscribe.
type Subscription struct {
	closed  bool
	release func()
}

// Close detaches the subscriber. Calling Close more than once is a no-op,
// as is calling it on a nil handle.
func (sub *Subscription) Close() {
	if sub == nil || sub.closed {
		return
	}
	sub.closed = true
	if sub.release != nil {
		sub.release()
		sub.release = nil
	}
}

// Closed reports whether the subscription has been released.
func (sub *Subscription) Closed() bool {
	return sub == nil || sub.closed
}

// Scope owns a set of subscriptions and releases them together.
// The zero value is ready to use.
type Scope struct {
	subs   []*Subscription
	closed bool
}

// Add takes ownership of sub. Adding to a closed scope releases sub immediately.
func (sc *Scope) Add(sub *Subscription) {
	if sub == nil {
		return
	}
	if sc.closed {
		sub.Close()
		return
	}
	sc.subs = append(sc.subs, sub)
}

// Close releases every owned subscription, newest first. It is idempotent.
func (sc *Scope) Close() {
	for i := len(sc.subs) - 1; i >= 0; i-- {
		sc.subs[i].Close()
	}
	sc.subs = nil
	sc.closed = true
}

// Closed reports whether Close has been called.
func (sc *Scope) Closed() bool {
	return sc.closed
}
