package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/state"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack and a one-line notice area.
type appModel struct {
	state     *SharedState
	viewStack []View
	notice    *state.Notice
	quitting  bool
}

func newAppModel(ctx context.Context, app *App) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	st := &SharedState{App: app, Ctx: ctx}
	return appModel{
		state:     st,
		viewStack: []View{newSchoolListView(st)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view sizes its viewport, not only the visible one.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		cmd := m.popTop()
		return m, cmd

	case refreshViewMsg:
		// Broadcast so views below the active one reload too.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case noticeMsg:
		m.notice = msg.notice
		return m, nil
	}

	// Async results and ticks go to every view: a result may arrive after
	// its view was covered by another one.
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

var (
	keyQuit      = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyBack      = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	keyDashboard = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard"))
	keyCompare   = key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "compare"))
	keyAdvisor   = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ask AI"))
)

// closer is implemented by views that hold work to finish when they leave
// the stack. The returned Cmd may carry a notice.
type closer interface {
	Close() tea.Cmd
}

// popTop removes the active view, closing it. The root view stays.
func (m *appModel) popTop() tea.Cmd {
	if len(m.viewStack) <= 1 {
		return nil
	}
	top := m.activeView()
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
	if c, ok := top.(closer); ok {
		return c.Close()
	}
	return nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.notice = nil
	active := m.activeView()

	// Views with an open editor receive every key, including 'q' and esc.
	if active != nil && viewCapturesInput(active) {
		updated, cmd := active.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case key.Matches(msg, keyQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keyBack):
		cmd := m.popTop()
		return m, cmd

	case key.Matches(msg, keyDashboard) && active.ID() != ViewDashboard:
		return m, pushView(newDashboardView(m.state))

	case key.Matches(msg, keyCompare) && active.ID() != ViewCompare:
		return m, pushView(newCompareView(m.state))

	case key.Matches(msg, keyAdvisor) && active.ID() != ViewAdvisor:
		return m, pushView(newAdvisorView(m.state))
	}

	if active != nil {
		updated, cmd := active.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if m.notice != nil {
		sections = append(sections, strings.TrimRight(formatter.FormatNotice(m.notice), "\n"))
	} else {
		sections = append(sections, "")
	}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("hknav")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	st := m.state.nav().State()
	header += "  " + formatter.Dim("[") + formatter.StyleYellow.Render("★ "+strconv.Itoa(len(st.Followed))) +
		formatter.Dim(" · ") + formatter.StyleBlue.Render("⇄ "+strconv.Itoa(len(st.Compared))+"/"+strconv.Itoa(state.MaxCompared)) +
		formatter.Dim("]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	active := m.activeView()
	if active != nil {
		for _, b := range active.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if active == nil || !viewCapturesInput(active) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim("q: quit"))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
