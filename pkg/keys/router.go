// Package keys maps global key presses to navigation intents.
package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vanderheijden86/folio/pkg/debug"
	"github.com/vanderheijden86/folio/pkg/signal"
)

// Kind identifies what an Intent asks for.
type Kind int

const (
	ScrollToTop Kind = iota
	JumpToAnchor
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case ScrollToTop:
		return "scroll-to-top"
	case JumpToAnchor:
		return "jump-to-anchor"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Intent is a navigation command, independent of what triggered it.
type Intent struct {
	Kind   Kind
	Anchor string // Set for JumpToAnchor
}

// Top returns the ScrollToTop intent.
func Top() Intent { return Intent{Kind: ScrollToTop} }

// Anchor returns a JumpToAnchor intent for id.
func Anchor(id string) Intent { return Intent{Kind: JumpToAnchor, Anchor: id} }

// String renders the intent the way it is written in config files.
func (i Intent) String() string {
	if i.Kind == JumpToAnchor {
		return "#" + i.Anchor
	}
	return "top"
}

// ParseIntent parses "top" or "#anchor".
func ParseIntent(s string) (Intent, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "top"):
		return Top(), nil
	case strings.HasPrefix(s, "#") && len(s) > 1:
		return Anchor(s[1:]), nil
	default:
		return Intent{}, fmt.Errorf("invalid intent %q (want \"top\" or \"#anchor\")", s)
	}
}

// Binding maps one key to one intent.
type Binding struct {
	Key    string
	Intent Intent
}

// DefaultBindings is the built-in table: g goes to the top, c to the contact section.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "g", Intent: Top()},
		{Key: "c", Intent: Anchor("contact")},
	}
}

// Table is an immutable key → intent lookup. Keys are stored lowercased.
type Table struct {
	byKey map[string]Intent
	order []string
}

// NewTable builds a table from bindings. Later bindings for the same key win.
func NewTable(bindings []Binding) Table {
	t := Table{byKey: make(map[string]Intent, len(bindings))}
	for _, b := range bindings {
		k := normalize(b.Key)
		if k == "" {
			continue
		}
		if _, exists := t.byKey[k]; !exists {
			t.order = append(t.order, k)
		}
		t.byKey[k] = b.Intent
	}
	return t
}

// TableFromConfig merges the defaults with a key → "top"/"#anchor" map.
func TableFromConfig(extra map[string]string) (Table, error) {
	bindings := DefaultBindings()

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		intent, err := ParseIntent(extra[k])
		if err != nil {
			return Table{}, fmt.Errorf("key %q: %w", k, err)
		}
		bindings = append(bindings, Binding{Key: k, Intent: intent})
	}
	return NewTable(bindings), nil
}

// Lookup returns the intent bound to key, matching case-insensitively.
func (t Table) Lookup(k string) (Intent, bool) {
	intent, ok := t.byKey[normalize(k)]
	return intent, ok
}

// Bindings returns the table in insertion order.
func (t Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Binding{Key: k, Intent: t.byKey[k]})
	}
	return out
}

// Len returns the number of bound keys.
func (t Table) Len() int {
	return len(t.order)
}

// Event is one key press. Key uses Bubble Tea's key naming ("g", "G", "ctrl+c").
type Event struct {
	Key string
}

// Dispatcher executes intents.
type Dispatcher interface {
	Dispatch(Intent)
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(Intent)

// Dispatch calls f(i).
func (f DispatchFunc) Dispatch(i Intent) { f(i) }

// Router looks up key presses in a Table and hands matching intents to a
// Dispatcher.
type Router struct {
	table    Table
	target   Dispatcher
	suppress func() bool
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithSuppress installs a focus gate. While fn returns true (for example
// while a text input has focus) key presses never produce intents.
func WithSuppress(fn func() bool) RouterOption {
	return func(r *Router) {
		r.suppress = fn
	}
}

// NewRouter returns a router for table that dispatches to target.
func NewRouter(table Table, target Dispatcher, opts ...RouterOption) *Router {
	r := &Router{table: table, target: target}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount subscribes the router to key presses. The caller owns the returned
// subscription.
func (r *Router) Mount(events *signal.Signal[Event]) *signal.Subscription {
	return events.Subscribe(func(ev Event) {
		r.Handle(ev)
	})
}

// Handle dispatches the intent bound to ev.Key, if any, and reports whether
// it did. Unbound keys are ignored.
func (r *Router) Handle(ev Event) bool {
	if r.suppress != nil && r.suppress() {
		return false
	}
	intent, ok := r.table.Lookup(ev.Key)
	if !ok {
		return false
	}
	debug.Log("keys: %q -> %s", ev.Key, intent)
	if r.target != nil {
		r.target.Dispatch(intent)
	}
	return true
}

// Matches reports whether key is bound and routing is not suppressed.
func (r *Router) Matches(k string) bool {
	if r.suppress != nil && r.suppress() {
		return false
	}
	_, ok := r.table.Lookup(k)
	return ok
}

// Table returns the router's binding table.
func (r *Router) Table() Table {
	return r.table
}

// HelpBindings exposes the table as bubbles key bindings for the help bar.
func (r *Router) HelpBindings() []key.Binding {
	bindings := r.table.Bindings()
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, key.NewBinding(
			key.WithKeys(b.Key),
			key.WithHelp(b.Key, describe(b.Intent)),
		))
	}
	return out
}

func describe(i Intent) string {
	if i.Kind == JumpToAnchor {
		return i.Anchor
	}
	return "top"
}

// normalize lowercases single-rune keys. Named keys ("ctrl+c", "home")
// are already lowercase in Bubble Tea and pass through unchanged.
func normalize(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
