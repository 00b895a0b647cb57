package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/pkg/config"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Theme bundles colors and pre-built styles for the page.
type Theme struct {
	Renderer *lipgloss.Renderer
	Name     string

	// Colors
	Primary lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor

	// Progress bar gradient, left to right (cyan → fuchsia → emerald)
	Gradient []lipgloss.TerminalColor

	// Styles
	Base      lipgloss.Style
	Brand     lipgloss.Style // Name in the header
	NavLink   lipgloss.Style
	NavActive lipgloss.Style
	Heading   lipgloss.Style // Section titles
	Subtitle  lipgloss.Style
	Hero      lipgloss.Style // Hero title
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Pill      lipgloss.Style
	Link      lipgloss.Style
	MutedText lipgloss.Style
	Metric    lipgloss.Style
	Badge     lipgloss.Style // Back-to-top badge
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Separator lipgloss.Style

	// GlamourStyle is the glamour standard style matching this theme.
	GlamourStyle string
}

// DefaultTheme returns the dark theme used by the web version of the page.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,
		Name:     config.ThemeDark,

		Primary: lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}, // Cyan
		Text:    lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F5F5F5"},
		Subtext: lipgloss.AdaptiveColor{Light: "#404040", Dark: "#D4D4D4"},
		Muted:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A3A3A3"},
		Border:  lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#3F3F46"},
		Danger:  lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},

		Gradient: []lipgloss.TerminalColor{
			ThemeFg("#22D3EE"),
			ThemeFg("#E879F9"),
			ThemeFg("#34D399"),
		},

		GlamourStyle: "dark",
	}
	t.build()
	return t
}

// LightTheme is DefaultTheme forced to its light palette.
func LightTheme(r *lipgloss.Renderer) Theme {
	r.SetHasDarkBackground(false)
	t := DefaultTheme(r)
	t.Name = config.ThemeLight
	t.GlamourStyle = "light"
	return t
}

// PlainTheme renders without colors or text attributes, for non-terminal
// output and tests.
func PlainTheme() Theme {
	t := DefaultTheme(lipgloss.NewRenderer(io.Discard))
	t.Name = config.ThemeNoTTY
	t.GlamourStyle = "notty"
	return t
}

// ThemeByName maps a config theme name to a Theme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	switch name {
	case config.ThemeLight:
		return LightTheme(r)
	case config.ThemeNoTTY:
		return PlainTheme()
	default:
		return DefaultTheme(r)
	}
}

func (t *Theme) build() {
	r := t.Renderer

	t.Base = r.NewStyle().Foreground(t.Text)
	t.Brand = r.NewStyle().Foreground(t.Text).Bold(true)
	t.NavLink = r.NewStyle().Foreground(t.Subtext)
	t.NavActive = r.NewStyle().Foreground(t.Primary).Bold(true).Underline(true)
	t.Heading = r.NewStyle().Foreground(t.Text).Bold(true)
	t.Subtitle = r.NewStyle().Foreground(t.Muted).Italic(true)
	t.Hero = r.NewStyle().Foreground(t.Text).Bold(true)
	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.CardTitle = r.NewStyle().Foreground(t.Text).Bold(true)
	t.Pill = r.NewStyle().
		Foreground(t.Subtext).
		Border(lipgloss.RoundedBorder(), false, true, false, true).
		BorderForeground(t.Border)
	t.Link = r.NewStyle().Foreground(t.Primary).Underline(true)
	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.Metric = r.NewStyle().Foreground(t.Text).Bold(true)
	t.Badge = r.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0A0A0A"}).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
	t.Status = r.NewStyle().Foreground(t.Muted)
	t.StatusErr = r.NewStyle().Foreground(t.Danger).Bold(true)
	t.Separator = r.NewStyle().Foreground(t.Border)
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return PlainTheme()
}
