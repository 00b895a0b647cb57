package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/pkg/content"
	"github.com/vanderheijden86/folio/pkg/nav"
)

// Section anchors in page order.
const (
	AnchorHome       = "home"
	AnchorProjects   = "projects"
	AnchorSkills     = "skills"
	AnchorExperience = "experience"
	AnchorContact    = "contact"
	AnchorCerts      = "certs"
	AnchorImpact     = "impact"
)

// Sections lists every anchor in the order it appears on the page.
var Sections = []string{
	AnchorHome, AnchorProjects, AnchorSkills, AnchorExperience,
	AnchorContact, AnchorCerts, AnchorImpact,
}

// headerLinks are the sections linked from the sticky header.
var headerLinks = []struct{ anchor, label string }{
	{AnchorProjects, "Projects"},
	{AnchorSkills, "Skills"},
	{AnchorExperience, "Experience"},
	{AnchorContact, "Contact"},
}

var sectionTitles = map[string][2]string{
	AnchorProjects:   {"Projects", "Selected work with measurable impact"},
	AnchorSkills:     {"Skills", "Breadth where useful, depth where it matters"},
	AnchorExperience: {"Experience", "Highlights and outcomes, not task lists"},
	AnchorContact:    {"Contact", "Zero-fluff conversations welcome"},
	AnchorCerts:      {"Certifications", "Selected credentials"},
	AnchorImpact:     {"Impact", "Numbers that matter"},
}

// Page is the laid-out document: one string per terminal row and the row at
// which each section starts.
type Page struct {
	Lines   []string
	Anchors map[string]int
	Width   int
}

// Content returns the page as a single string for the viewport.
func (p Page) Content() string {
	return strings.Join(p.Lines, "\n")
}

// Height returns the page height in rows.
func (p Page) Height() int {
	return len(p.Lines)
}

// AnchorMap converts section rows to pixel offsets.
func (p Page) AnchorMap(rowHeight int) nav.AnchorMap {
	m := make(nav.AnchorMap, len(p.Anchors))
	for id, row := range p.Anchors {
		m[id] = row * rowHeight
	}
	return m
}

// pageBuilder accumulates rows and anchor positions.
type pageBuilder struct {
	theme  Theme
	md     *MarkdownRenderer
	width  int // content column
	indent string
	lines  []string
	anch   map[string]int
}

func (b *pageBuilder) anchor(id string) {
	b.anch[id] = len(b.lines)
}

func (b *pageBuilder) add(block string) {
	for _, line := range strings.Split(block, "\n") {
		b.lines = append(b.lines, b.indent+line)
	}
}

func (b *pageBuilder) blank() {
	b.lines = append(b.lines, "")
}

// BuildPage lays out c at the given terminal width. The content column is
// capped at maxWidth and centered.
func BuildPage(c content.Content, theme Theme, md *MarkdownRenderer, width, maxWidth, year int) Page {
	col := width
	if maxWidth > 0 && col > maxWidth {
		col = maxWidth
	}
	if col < 20 {
		col = 20
	}
	if width > 0 && col > width {
		col = width
	}
	margin := 0
	if width > col {
		margin = (width - col) / 2
	}
	if md != nil {
		md.SetWidth(col)
	}

	b := &pageBuilder{
		theme:  theme,
		md:     md,
		width:  col,
		indent: strings.Repeat(" ", margin),
		anch:   make(map[string]int, len(Sections)),
	}

	b.hero(c)
	b.projects(c.Projects)
	b.skills(c.Skills)
	b.experience(c.Experience)
	b.contact(c.Profile)
	b.certs(c.Certifications)
	b.impact(c.Impact)
	b.footer(c.Profile, year)

	return Page{Lines: b.lines, Anchors: b.anch, Width: width}
}

func (b *pageBuilder) heading(id string) {
	b.anchor(id)
	t := sectionTitles[id]
	b.blank()
	b.add(b.theme.RenderHeading(t[0], t[1], b.width))
	b.blank()
}

func (b *pageBuilder) hero(c content.Content) {
	t := b.theme
	p := c.Profile

	b.anchor(AnchorHome)
	b.blank()
	if p.Availability != "" {
		b.add(t.RenderPill("✦ " + p.Availability))
		b.blank()
	}
	b.add(t.Hero.Render(fit(p.Title, b.width)))
	if p.Tagline != "" {
		b.blank()
		b.add(b.markdown(p.Tagline))
	}

	var meta []string
	if p.Location != "" {
		meta = append(meta, "📍 "+p.Location)
	}
	if p.Email != "" {
		meta = append(meta, "📧 "+p.Email)
	}
	if len(meta) > 0 {
		b.blank()
		b.add(t.MutedText.Render(fit(strings.Join(meta, "   "), b.width)))
	}

	if len(p.Highlights) > 0 {
		b.blank()
		cards := make([]string, 0, len(p.Highlights))
		cols := columns(b.width, 4, 2)
		for _, h := range p.Highlights {
			cards = append(cards, t.RenderCard("", "✧ "+h, cellWidth(b.width, cols)))
		}
		b.add(grid(cards, cols))
	}

	if p.Building.Headline != "" || p.Building.Detail != "" {
		b.blank()
		var body []string
		if p.Building.Detail != "" {
			body = append(body, t.MutedText.Render(p.Building.Detail))
		}
		inner := b.width - 4
		if pills := t.RenderPills(c.FeaturedSkills(4), inner); pills != "" {
			body = append(body, pills)
		}
		if p.Location != "" {
			body = append(body, t.MutedText.Render("Available remotely · "+p.Location))
		}
		b.add(t.RenderCard(p.Building.Headline, strings.Join(body, "\n"), b.width))
	}
}

func (b *pageBuilder) projects(projects []content.Project) {
	t := b.theme
	b.heading(AnchorProjects)

	cols := columns(b.width, 3, 2)
	w := cellWidth(b.width, cols)
	cards := make([]string, 0, len(projects))
	for _, p := range projects {
		var body []string
		body = append(body, wrap(p.Description, w-4))
		if pills := t.RenderPills(p.Tech, w-4); pills != "" {
			body = append(body, pills)
		}
		var links []string
		if p.Link != "" {
			links = append(links, t.Link.Render(p.Link))
		}
		if p.Repo != "" {
			links = append(links, t.Link.Render(p.Repo))
		}
		if len(links) > 0 {
			body = append(body, strings.Join(links, "\n"))
		}
		cards = append(cards, t.RenderCard(p.Name, strings.Join(body, "\n"), w))
	}
	b.add(grid(cards, cols))
}

func (b *pageBuilder) skills(groups []content.SkillGroup) {
	t := b.theme
	b.heading(AnchorSkills)

	cols := columns(b.width, 3, 2)
	w := cellWidth(b.width, cols)
	cards := make([]string, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, t.RenderCard(g.Group, t.RenderPills(g.Items, w-4), w))
	}
	b.add(grid(cards, cols))
}

func (b *pageBuilder) experience(entries []content.ExperienceEntry) {
	t := b.theme
	b.heading(AnchorExperience)

	for i, e := range entries {
		if i > 0 {
			b.blank()
		}
		title := e.Role
		if e.Company != "" {
			title += " · " + e.Company
		}
		var body []string
		if e.Period != "" {
			body = append(body, t.MutedText.Render(e.Period))
		}
		if len(e.Bullets) > 0 {
			var md strings.Builder
			for _, bullet := range e.Bullets {
				fmt.Fprintf(&md, "- %s\n", bullet)
			}
			body = append(body, b.markdown(md.String()))
		}
		b.add(t.RenderCard(title, strings.Join(body, "\n"), b.width))
	}
}

func (b *pageBuilder) contact(p content.Profile) {
	t := b.theme
	b.heading(AnchorContact)

	body := []string{
		wrap("Want to collaborate or discuss an idea? I'm open to consulting, freelance, and full-time roles.", b.width-4),
	}
	if p.Email != "" {
		body = append(body, "", "› Email me: "+t.Link.Render(p.Email)+t.MutedText.Render("  (y copies)"))
	}
	if p.ResumeURL != "" {
		body = append(body, "› Resume: "+t.Link.Render(p.ResumeURL))
	}
	b.add(t.RenderCard("", strings.Join(body, "\n"), b.width))
}

func (b *pageBuilder) certs(certs []string) {
	t := b.theme
	b.heading(AnchorCerts)

	cols := columns(b.width, 3, 2)
	w := cellWidth(b.width, cols)
	cards := make([]string, 0, len(certs))
	for _, c := range certs {
		cards = append(cards, t.RenderCard("", wrap(c, w-4), w))
	}
	b.add(grid(cards, cols))
}

func (b *pageBuilder) impact(metrics []content.ImpactMetric) {
	t := b.theme
	b.heading(AnchorImpact)

	cols := columns(b.width, 4, 2)
	w := cellWidth(b.width, cols)
	cards := make([]string, 0, len(metrics))
	for _, m := range metrics {
		body := t.MutedText.Render(m.Label) + "\n" + t.Metric.Render(m.Value)
		cards = append(cards, t.RenderCard("", body, w))
	}
	b.add(grid(cards, cols))
}

func (b *pageBuilder) footer(p content.Profile, year int) {
	t := b.theme
	b.blank()
	b.add(t.Separator.Render(strings.Repeat("─", b.width)))

	left := t.MutedText.Render(fmt.Sprintf("© %d %s. All rights reserved.", year, p.Name))
	var links []string
	if p.Social.GitHub != "" {
		links = append(links, "GitHub")
	}
	if p.Social.LinkedIn != "" {
		links = append(links, "LinkedIn")
	}
	links = append(links, "Back to top (g)")
	right := t.MutedText.Render(strings.Join(links, " · "))

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap >= 2 {
		b.add(left + strings.Repeat(" ", gap) + right)
	} else {
		b.add(left)
		b.add(right)
	}
	b.blank()
}

func (b *pageBuilder) markdown(md string) string {
	if b.md == nil {
		return wrap(md, b.width)
	}
	return b.md.Render(md)
}

// columns picks how many cards fit side by side: wide for broad terminals,
// narrow for medium ones, one otherwise.
func columns(width, wide, narrow int) int {
	switch {
	case width >= 90:
		return wide
	case width >= 60:
		return narrow
	default:
		return 1
	}
}

// cellWidth is the card width for cols cards separated by one space.
func cellWidth(width, cols int) int {
	if cols <= 1 {
		return width
	}
	return (width - (cols - 1)) / cols
}

// grid lays cards out in rows of cols, each row aligned to its tallest card.
func grid(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		var cells []string
		for j, card := range cards[i:end] {
			if j > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// wrap word-wraps plain text to width cells.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
