package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vanderheijden86/folio/pkg/content"
	"github.com/vanderheijden86/folio/pkg/testutil"
)

func TestBuildPageAnchorsPointAtHeadings(t *testing.T) {
	page := BuildPage(content.Default(), TestTheme(), nil, 100, 100, 2025)

	for id, title := range sectionTitles {
		row, ok := page.Anchors[id]
		if !ok {
			t.Fatalf("missing anchor %q", id)
		}
		// blank, rule, title
		if row+2 >= page.Height() || !strings.Contains(page.Lines[row+2], title[0]) {
			t.Errorf("anchor %q at row %d does not lead to heading %q", id, row, title[0])
		}
	}
}

func TestBuildPageCentersColumn(t *testing.T) {
	page := BuildPage(content.Default(), TestTheme(), nil, 120, 80, 2025)
	for i, line := range page.Lines {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, strings.Repeat(" ", 20)) {
			t.Fatalf("line %d not indented by the centering margin: %q", i, line)
		}
		if w := lipgloss.Width(line); w > 120 {
			t.Fatalf("line %d is %d cells wide, exceeds terminal", i, w)
		}
	}
}

func TestBuildPageNarrowTerminal(t *testing.T) {
	page := BuildPage(content.Default(), TestTheme(), nil, 40, 100, 2025)
	testutil.AssertLinesFit(t, page.Lines, 40)
}

func TestRenderHeadingWrapsToWidth(t *testing.T) {
	theme := TestTheme()
	title, subtitle := sectionTitles[AnchorSkills][0], sectionTitles[AnchorSkills][1]
	for _, width := range []int{12, 20, 30} {
		out := theme.RenderHeading(title, subtitle, width)
		testutil.AssertLinesFit(t, strings.Split(out, "\n"), width)
		if !strings.Contains(strings.Join(strings.Fields(ansi.Strip(out)), " "), "Breadth where") {
			t.Errorf("width %d: subtitle text lost: %q", width, out)
		}
	}
}

func TestBuildPageHeadingsFitVeryNarrowTerminal(t *testing.T) {
	const width = 16
	page := BuildPage(content.Default(), TestTheme(), nil, width, 100, 2025)
	for _, id := range Sections {
		if id == AnchorHome {
			continue
		}
		row := page.Anchors[id]
		// rule, title, then the wrapped subtitle up to the next blank line
		for i := row + 1; i < len(page.Lines) && page.Lines[i] != ""; i++ {
			if w := lipgloss.Width(page.Lines[i]); w > width {
				t.Fatalf("#%s heading line %d is %d cells wide, limit %d: %q", id, i, w, width, page.Lines[i])
			}
		}
	}
}

func TestBuildPageGeneratedContent(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		page := BuildPage(testutil.Long(9), TestTheme(), nil, width, 100, 2025)
		testutil.AssertLinesFit(t, page.Lines, width)
		if len(page.Anchors) != len(Sections) {
			t.Errorf("width %d: expected %d anchors, got %d", width, len(Sections), len(page.Anchors))
		}
	}

	page := BuildPage(testutil.Minimal(), TestTheme(), nil, 80, 100, 2025)
	if !strings.Contains(page.Content(), "Minimal") {
		t.Error("minimal content should still render the title")
	}
}

func TestAnchorMapUsesPixels(t *testing.T) {
	page := Page{Anchors: map[string]int{"home": 0, "contact": 12}}
	m := page.AnchorMap(20)
	if off, ok := m.AnchorOffset("contact"); !ok || off != 240 {
		t.Fatalf("expected contact at 240px, got %d (%v)", off, ok)
	}
	if _, ok := m.AnchorOffset("blog"); ok {
		t.Fatal("unexpected anchor")
	}
}

func TestFooterCarriesYearAndName(t *testing.T) {
	page := BuildPage(content.Default(), TestTheme(), nil, 100, 100, 2031)
	if !strings.Contains(page.Content(), "© 2031 Rohan") {
		t.Fatal("footer missing year and name")
	}
}

func TestHeroShowsFeaturedSkills(t *testing.T) {
	c := content.Default()
	page := BuildPage(c, TestTheme(), nil, 100, 100, 2025)
	hero := strings.Join(page.Lines[:page.Anchors[AnchorProjects]], "\n")
	for _, skill := range c.FeaturedSkills(4) {
		if !strings.Contains(hero, skill) {
			t.Errorf("hero missing featured skill %q", skill)
		}
	}
	if !strings.Contains(hero, c.Profile.Availability) {
		t.Error("hero missing availability pill")
	}
}

func TestRenderStaticPlain(t *testing.T) {
	out := RenderStatic(content.Default(), TestTheme(), 100, 100, 2025)
	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain theme should not emit escape sequences")
	}
	for _, want := range []string{"Projects", "Skills", "Experience", "Contact", "Certifications", "Impact"} {
		if !strings.Contains(out, want) {
			t.Errorf("static render missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestProgressBarWidth(t *testing.T) {
	theme := TestTheme()
	for _, p := range []float64{-1, 0, 0.25, 0.5, 1, 2} {
		bar := theme.RenderProgressBar(p, 40)
		if w := lipgloss.Width(bar); w != 40 {
			t.Errorf("progress %v: width %d, want 40", p, w)
		}
	}
	if theme.RenderProgressBar(0.5, 0) != "" {
		t.Error("zero width should render nothing")
	}
	full := theme.RenderProgressBar(1, 10)
	if strings.Count(full, "▀") != 10 {
		t.Errorf("expected a full bar, got %q", full)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 5); got != "hell…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("hi", 5); got != "hi" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncate("hi", 0); got != "" {
		t.Errorf("zero width should be empty, got %q", got)
	}
}

func TestMarkdownRendererFallsBackOnNil(t *testing.T) {
	var r *MarkdownRenderer
	if got := r.Render("**bold**"); got != "**bold**" {
		t.Fatalf("nil renderer should return input, got %q", got)
	}
	md := NewMarkdownRenderer("notty", 10)
	if md.Width() != 20 {
		t.Errorf("expected minimum width 20, got %d", md.Width())
	}
	if out := md.Render("- one\n- two"); !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("unexpected markdown output %q", out)
	}
}

func TestThemeByName(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	if th := ThemeByName("notty", r); th.GlamourStyle != "notty" {
		t.Errorf("expected notty glamour style, got %q", th.GlamourStyle)
	}
	if th := ThemeByName("light", lipgloss.NewRenderer(io.Discard)); th.GlamourStyle != "light" {
		t.Errorf("expected light glamour style, got %q", th.GlamourStyle)
	}
	if th := ThemeByName("", lipgloss.NewRenderer(io.Discard)); th.Name != "dark" {
		t.Errorf("expected dark default, got %q", th.Name)
	}
}
