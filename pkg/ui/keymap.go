package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// appKeys are the bindings the view handles itself. Navigation bindings
// come from the key router.
type appKeys struct {
	Scroll key.Binding
	Page   key.Binding
	Goto   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "scroll")),
		Page:   key.NewBinding(key.WithKeys("pgup", "pgdown", "b", "f", " "), key.WithHelp("pgup/pgdn", "page")),
		Goto:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to section")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy email")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys adapts the app and router bindings to help.KeyMap.
type helpKeys struct {
	app    appKeys
	routed []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, h.routed...)
	return append(out, h.app.Goto, h.app.Help, h.app.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.routed,
		{h.app.Scroll, h.app.Page},
		{h.app.Goto, h.app.Copy},
		{h.app.Help, h.app.Quit},
	}
}
