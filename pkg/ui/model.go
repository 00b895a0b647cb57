package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vanderheijden86/folio/pkg/config"
	"github.com/vanderheijden86/folio/pkg/content"
	"github.com/vanderheijden86/folio/pkg/debug"
	"github.com/vanderheijden86/folio/pkg/keys"
	"github.com/vanderheijden86/folio/pkg/metrics"
	"github.com/vanderheijden86/folio/pkg/nav"
	"github.com/vanderheijden86/folio/pkg/scroll"
	"github.com/vanderheijden86/folio/pkg/signal"
	"github.com/vanderheijden86/folio/pkg/watcher"
)

const (
	// frameInterval paces animation ticks at 60 fps.
	frameInterval = time.Second / 60
	// maxFrameElapsed caps one step so a stalled terminal doesn't teleport
	// the animation.
	maxFrameElapsed = 50 * time.Millisecond

	headerRows = 2 // header line + progress bar
	statusRows = 1
	badgeLabel = "↑ Top"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// FrameMsg drives scroll and progress animations.
type FrameMsg time.Time

// ContentReloadedMsg is sent after the watched content file changes.
type ContentReloadedMsg struct {
	Content content.Content
	Err     error
}

// ReadyTimeoutMsg makes the view usable when the terminal is slow to report
// its size.
type ReadyTimeoutMsg struct{}

// ReadyTimeoutCmd fires ReadyTimeoutMsg after 100ms.
func ReadyTimeoutCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return ReadyTimeoutMsg{}
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// WatchFileCmd waits for the next change to path and reloads it.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		c, err := content.LoadFrom(w.Path())
		return ContentReloadedMsg{Content: c, Err: err}
	}
}

// pageView adapts the bubbles viewport to nav.Viewport, converting rows to
// pixels.
type pageView struct {
	vp        viewport.Model
	rowHeight int
}

// Offset implements nav.Viewport.
func (v *pageView) Offset() int {
	return v.vp.YOffset * v.rowHeight
}

// SetOffset implements nav.Viewport. The viewport clamps to its bounds.
func (v *pageView) SetOffset(px int) {
	v.vp.SetYOffset((px + v.rowHeight/2) / v.rowHeight)
}

func (v *pageView) event() scroll.Event {
	return scroll.Event{
		Offset:         v.vp.YOffset * v.rowHeight,
		Extent:         v.vp.TotalLineCount() * v.rowHeight,
		ViewportHeight: v.vp.Height * v.rowHeight,
	}
}

// chrome is the part of the screen driven by scroll state.
type chrome struct {
	state scroll.State
}

// focusGate reports whether a text input owns the keyboard.
type focusGate struct {
	prompt bool
}

// Option configures a Model.
type Option func(*Model)

// WithWatcher reloads content from w's file when it changes.
func WithWatcher(w *watcher.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithYear overrides the footer year.
func WithYear(year int) Option {
	return func(m *Model) {
		m.year = year
	}
}

// WithTheme overrides the theme picked from config.
func WithTheme(t Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

// Model is the Bubble Tea model for the portfolio page.
type Model struct {
	content content.Content
	cfg     config.Config
	theme   Theme
	md      *MarkdownRenderer
	year    int

	width  int
	height int
	ready  bool

	view *pageView
	page Page

	// Notification plumbing. The scope owns every subscription.
	scrollEvents *signal.Signal[scroll.Event]
	keyEvents    *signal.Signal[keys.Event]
	scope        *signal.Scope
	tracker      *scroll.Tracker
	router       *keys.Router
	actions      *nav.Actions
	chrome       *chrome
	gate         *focusGate

	keys     appKeys
	help     help.Model
	showHelp bool
	prompt   textinput.Model

	ticking   bool
	lastFrame time.Time

	watcher *watcher.Watcher

	statusMsg   string
	statusIsErr bool
}

// NewModel wires the scroll tracker, key router and navigation actions for
// c. It returns an error only when the configured key bindings are invalid.
func NewModel(c content.Content, cfg config.Config, opts ...Option) (Model, error) {
	table, err := cfg.KeyTable()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		content:      c,
		cfg:          cfg,
		theme:        ThemeByName(cfg.UI.Theme, lipgloss.DefaultRenderer()),
		year:         time.Now().Year(),
		view:         &pageView{vp: viewport.New(0, 0), rowHeight: max(1, cfg.UI.RowHeightPx)},
		scrollEvents: signal.New[scroll.Event](),
		keyEvents:    signal.New[keys.Event](),
		scope:        &signal.Scope{},
		chrome:       &chrome{},
		gate:         &focusGate{},
		keys:         defaultAppKeys(),
		help:         help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.md = NewMarkdownRenderer(m.theme.GlamourStyle, cfg.UI.MaxWidth)

	m.tracker = scroll.NewTracker(scroll.WithThreshold(cfg.UI.BackToTopPx))
	m.actions = nav.New(m.view, nav.AnchorMap{})
	m.router = keys.NewRouter(table, m.actions, keys.WithSuppress(func() bool {
		return m.gate.prompt
	}))

	m.scope.Add(m.tracker.Mount(m.scrollEvents))
	m.scope.Add(m.router.Mount(m.keyEvents))
	ch := m.chrome
	m.scope.Add(m.tracker.OnChange(func(st scroll.State) {
		ch.state = st
	}))

	ti := textinput.New()
	ti.Prompt = "go to #"
	ti.Placeholder = strings.Join(Sections, ", ")
	ti.CharLimit = 32
	m.prompt = ti

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ReadyTimeoutCmd()}
	if m.watcher != nil {
		cmds = append(cmds, WatchFileCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Stop releases the subscriptions and the file watcher. Safe to call more
// than once.
func (m Model) Stop() {
	m.scope.Close()
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.relayout()

	case ReadyTimeoutMsg:
		if !m.ready {
			m.width, m.height = 80, 24
			m.ready = true
			m.relayout()
		}

	case FrameMsg:
		cmds = append(cmds, m.frame(time.Time(msg)))

	case ContentReloadedMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("reload failed: %v", msg.Err), true)
		} else {
			m.content = msg.Content
			m.relayout()
			m.setStatus("content reloaded", false)
		}
		if m.watcher != nil {
			cmds = append(cmds, WatchFileCmd(m.watcher))
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		} else {
			var cmd tea.Cmd
			m.view.vp, cmd = m.view.vp.Update(msg)
			cmds = append(cmds, cmd)
			m.emitScroll()
		}

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.ensureTicking())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := msg.String()
	if k == "ctrl+c" {
		return tea.Quit, true
	}

	// Decide before emitting: the router acts synchronously on emit.
	routed := m.router.Matches(k)
	m.keyEvents.Emit(keys.Event{Key: k})

	if m.gate.prompt {
		return m.handlePromptKey(msg), true
	}
	if routed {
		m.emitScroll()
		return nil, true
	}

	switch k {
	case "q":
		return tea.Quit, true
	case "esc":
		if m.showHelp {
			m.toggleHelp()
		}
		return nil, true
	case "?":
		m.toggleHelp()
		return nil, true
	case "/":
		m.gate.prompt = true
		m.prompt.SetValue("")
		m.relayout()
		return m.prompt.Focus(), true
	case "y":
		m.copyEmail()
		return nil, true
	}

	var cmd tea.Cmd
	before := m.view.vp.YOffset
	m.view.vp, cmd = m.view.vp.Update(msg)
	if m.view.vp.YOffset != before {
		m.emitScroll()
	}
	return cmd, true
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return nil
	case "enter":
		id := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(m.prompt.Value()), "#"))
		m.closePrompt()
		if id == "" {
			return nil
		}
		if m.actions.JumpToAnchor(id) {
			m.emitScroll()
			m.setStatus("", false)
		} else {
			m.setStatus(fmt.Sprintf("no section #%s", id), true)
		}
		return nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) closePrompt() {
	m.gate.prompt = false
	m.prompt.Blur()
	m.relayout()
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	m.help.ShowAll = m.showHelp
	m.relayout()
}

func (m *Model) copyEmail() {
	email := m.content.Profile.Email
	if email == "" {
		m.setStatus("no email to copy", true)
		return
	}
	if err := copyToClipboard(email); err != nil {
		m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		return
	}
	m.setStatus("copied "+email, false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

// click handles a left click at screen cell (x, y).
func (m *Model) click(x, y int) {
	if y == 0 {
		for _, seg := range m.headerSegments() {
			if seg.anchor != "" && x >= seg.x && x < seg.x+seg.width {
				if m.actions.JumpToAnchor(seg.anchor) {
					m.emitScroll()
				}
				return
			}
		}
		return
	}
	if bx, by, ok := m.badgePosition(); ok && y == by && x >= bx {
		m.actions.ScrollToTop()
	}
}

// emitScroll publishes the current viewport position.
func (m *Model) emitScroll() {
	if !m.ready {
		return
	}
	m.scrollEvents.Emit(m.view.event())
}

// ensureTicking starts the frame loop if something needs animating.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Time{}
	return frameCmd()
}

func (m *Model) animating() bool {
	return m.actions.Animating() || !m.tracker.Settled()
}

func (m *Model) frame(now time.Time) tea.Cmd {
	defer metrics.Timer(metrics.FrameStep)()

	elapsed := frameInterval
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	if elapsed > maxFrameElapsed {
		elapsed = maxFrameElapsed
	}
	m.lastFrame = now

	if m.actions.Animating() {
		before := m.view.vp.YOffset
		m.actions.Step(elapsed)
		if m.view.vp.YOffset != before {
			m.emitScroll()
		}
	}
	m.tracker.Advance(elapsed)

	if !m.animating() {
		m.ticking = false
		return nil
	}
	return frameCmd()
}

// bodyHeight is the number of rows left for the viewport.
func (m *Model) bodyHeight() int {
	footer := statusRows
	if m.showHelp {
		footer = lipgloss.Height(m.help.View(m.helpKeys()))
	}
	return max(1, m.height-headerRows-footer)
}

// relayout rebuilds the page for the current size and content, keeping the
// scroll position where possible.
func (m *Model) relayout() {
	if !m.ready {
		return
	}
	defer metrics.Timer(metrics.PageLayout)()

	m.help.Width = m.width
	m.prompt.Width = max(10, m.width-len(m.prompt.Prompt)-2)

	m.page = BuildPage(m.content, m.theme, m.md, m.width, m.cfg.UI.MaxWidth, m.year)
	offset := m.view.vp.YOffset
	m.view.vp.Width = m.width
	m.view.vp.Height = m.bodyHeight()
	m.view.vp.SetContent(m.page.Content())
	m.view.vp.SetYOffset(offset)
	m.actions.SetAnchors(m.page.AnchorMap(m.view.rowHeight))
	debug.Log("ui: layout %dx%d, %d rows", m.width, m.height, m.page.Height())
	m.emitScroll()
}

func (m Model) helpKeys() helpKeys {
	return helpKeys{app: m.keys, routed: m.router.HelpBindings()}
}

// currentSection is the last section whose anchor is at or above the top
// of the viewport.
func (m Model) currentSection() string {
	current := AnchorHome
	top := m.view.vp.YOffset
	for _, id := range Sections {
		if row, ok := m.page.Anchors[id]; ok && row <= top {
			current = id
		}
	}
	return current
}

// Fragment returns the anchor of the last jump, empty before any jump.
func (m Model) Fragment() string {
	return m.actions.Fragment()
}

// ScrollState returns the latest scroll state seen by the chrome.
func (m Model) ScrollState() scroll.State {
	return m.chrome.state
}

// BackToTopVisible reports whether the back-to-top badge is shown.
func (m Model) BackToTopVisible() bool {
	return m.chrome.state.PastThreshold
}

// YOffset returns the viewport's top row.
func (m Model) YOffset() int {
	return m.view.vp.YOffset
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading portfolio..."
	}
	defer metrics.Timer(metrics.ViewRender)()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.theme.RenderProgressBar(m.tracker.Smoothed(), m.width))
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// headerSegment is a clickable piece of the header line.
type headerSegment struct {
	text   string
	style  lipgloss.Style
	anchor string
	x      int
	width  int
}

// headerSegments lays out the header: name on the left, section links in
// the middle, social links on the right. Links that don't fit are dropped
// from the right.
func (m Model) headerSegments() []headerSegment {
	t := m.theme
	active := m.currentSection()

	var segs []headerSegment
	x := 1
	push := func(text string, style lipgloss.Style, anchor string) bool {
		w := lipgloss.Width(text)
		if x+w > m.width {
			return false
		}
		segs = append(segs, headerSegment{text: text, style: style, anchor: anchor, x: x, width: w})
		x += w + 3
		return true
	}

	name := truncate(m.content.Profile.Name, max(1, m.width-2))
	push(name, t.Brand, AnchorHome)
	for _, l := range headerLinks {
		style := t.NavLink
		if l.anchor == active {
			style = t.NavActive
		}
		if !push(l.label, style, l.anchor) {
			return segs
		}
	}

	var social []string
	if m.content.Profile.Social.GitHub != "" {
		social = append(social, "GitHub")
	}
	if m.content.Profile.Social.LinkedIn != "" {
		social = append(social, "LinkedIn")
	}
	if m.content.Profile.ResumeURL != "" {
		social = append(social, "Resume")
	}
	if len(social) > 0 {
		text := strings.Join(social, " · ")
		w := lipgloss.Width(text)
		if rx := m.width - w - 1; rx >= x {
			segs = append(segs, headerSegment{text: text, style: t.MutedText, x: rx, width: w})
		}
	}
	return segs
}

func (m Model) renderHeader() string {
	var b strings.Builder
	col := 0
	for _, seg := range m.headerSegments() {
		if seg.x > col {
			b.WriteString(strings.Repeat(" ", seg.x-col))
		}
		b.WriteString(seg.style.Render(seg.text))
		col = seg.x + seg.width
	}
	return padRight(b.String(), m.width)
}

// badgePosition returns the screen cell where the back-to-top badge starts,
// if it is visible.
func (m Model) badgePosition() (x, y int, ok bool) {
	if !m.ready || !m.chrome.state.PastThreshold {
		return 0, 0, false
	}
	w := lipgloss.Width(m.theme.RenderBadge(badgeLabel))
	x = m.width - w - 1
	y = headerRows + m.view.vp.Height - 1
	if x < 0 {
		return 0, 0, false
	}
	return x, y, true
}

func (m Model) renderBody() string {
	body := m.view.vp.View()
	x, _, ok := m.badgePosition()
	if !ok {
		return body
	}
	lines := strings.Split(body, "\n")
	last := len(lines) - 1
	if last < 0 {
		return body
	}
	left := padRight(ansi.Truncate(lines[last], x, ""), x)
	lines[last] = left + m.theme.RenderBadge(badgeLabel)
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.gate.prompt {
		return m.prompt.View()
	}
	if m.showHelp {
		return m.help.View(m.helpKeys())
	}

	if m.statusMsg != "" {
		style := m.theme.Status
		if m.statusIsErr {
			style = m.theme.StatusErr
		}
		return style.Render(truncate(m.statusMsg, m.width))
	}

	var parts []string
	if frag := m.actions.Fragment(); frag != "" {
		parts = append(parts, "#"+frag)
	}
	parts = append(parts, fmt.Sprintf("%3.0f%%", m.tracker.State().Progress*100))
	left := strings.Join(parts, "  ")
	hint := m.help.ShortHelpView(m.helpKeys().ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 2 {
		return m.theme.Status.Render(truncate(left, m.width))
	}
	return m.theme.Status.Render(left) + strings.Repeat(" ", gap) + hint
}
