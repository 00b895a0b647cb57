package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// MarkdownRenderer renders short markdown snippets (taglines, bullets) at a
// fixed wrap width. It falls back to the raw text when glamour fails.
type MarkdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer builds a renderer for the given glamour standard style
// ("dark", "light" or "notty").
func NewMarkdownRenderer(style string, width int) *MarkdownRenderer {
	r := &MarkdownRenderer{style: style}
	r.SetWidth(width)
	return r
}

// SetWidth rebuilds the underlying renderer when the wrap width changes.
func (r *MarkdownRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if r.renderer != nil && r.width == width {
		return
	}
	r.width = width
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.renderer = nil
		return
	}
	r.renderer = tr
}

// Width returns the current wrap width.
func (r *MarkdownRenderer) Width() int {
	return r.width
}

// Render renders md, trimming the blank margin glamour puts around blocks.
func (r *MarkdownRenderer) Render(md string) string {
	if r == nil || r.renderer == nil {
		return md
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	return trimBlankLines(out)
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	for i := start; i < end; i++ {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines[start:end], "\n")
}
