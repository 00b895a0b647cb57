package ui

import (
	"strings"

	"github.com/vanderheijden86/folio/pkg/content"
)

// RenderStatic lays the whole page out once, without the interactive
// chrome, for printing to a pipe or file.
func RenderStatic(c content.Content, theme Theme, width, maxWidth, year int) string {
	md := NewMarkdownRenderer(theme.GlamourStyle, min(width, maxWidth))
	page := BuildPage(c, theme, md, width, maxWidth, year)

	lines := make([]string, 0, page.Height())
	for _, line := range page.Lines {
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
