package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// RenderPill renders a small rounded tag such as a tech label.
func (t Theme) RenderPill(text string) string {
	return t.Pill.Render(text)
}

// RenderPills joins pills on one line, wrapping to extra lines when they
// would exceed width.
func (t Theme) RenderPills(items []string, width int) string {
	if len(items) == 0 {
		return ""
	}
	var lines []string
	var row []string
	rowWidth := 0
	for _, item := range items {
		pill := t.RenderPill(item)
		w := lipgloss.Width(pill)
		if rowWidth > 0 && rowWidth+1+w > width {
			lines = append(lines, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if rowWidth > 0 {
			rowWidth++
		}
		row = append(row, pill)
		rowWidth += w
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}
	return strings.Join(lines, "\n")
}

// RenderCard boxes body under a bold title, sized to width including borders.
func (t Theme) RenderCard(title, body string, width int) string {
	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}
	var b strings.Builder
	if title != "" {
		b.WriteString(t.CardTitle.Render(title))
		if body != "" {
			b.WriteString("\n")
		}
	}
	b.WriteString(body)
	return t.Card.Width(inner + 2).Render(b.String())
}

// RenderHeading renders a section title with its subtitle beneath, both
// wrapped to width.
func (t Theme) RenderHeading(title, subtitle string, width int) string {
	rule := t.Separator.Render(strings.Repeat("─", max(0, width)))
	out := t.Heading.Render(fit(title, width))
	if subtitle != "" {
		out += "\n" + t.Subtitle.Render(fit(subtitle, width))
	}
	return rule + "\n" + out
}

// RenderProgressBar draws a one-row bar filled to progress (0..1) across
// width cells, coloured along the theme gradient.
func (t Theme) RenderProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	progress = math.Max(0, math.Min(1, progress))
	filled := int(math.Round(progress * float64(width)))

	var b strings.Builder
	for i := 0; i < filled; i++ {
		c := t.gradientAt(float64(i) / float64(max(1, width-1)))
		b.WriteString(t.Renderer.NewStyle().Foreground(c).Render("▀"))
	}
	if filled < width {
		b.WriteString(t.Separator.Render(strings.Repeat(" ", width-filled)))
	}
	return b.String()
}

// gradientAt picks the gradient stop nearest to pos in [0,1].
func (t Theme) gradientAt(pos float64) lipgloss.TerminalColor {
	if len(t.Gradient) == 0 {
		return t.Primary
	}
	idx := int(math.Round(pos * float64(len(t.Gradient)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(t.Gradient) {
		idx = len(t.Gradient) - 1
	}
	return t.Gradient[idx]
}

// RenderBadge renders the back-to-top badge.
func (t Theme) RenderBadge(label string) string {
	return t.Badge.Render(label)
}

// truncate cuts s to width display cells, adding an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// fit wraps plain text to width cells, breaking long words.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
