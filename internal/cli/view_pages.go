package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/filter"
)

// pageView is a read-only scrollable view rendered from the navigator.
// The dashboard, comparison and district explorer are pages that differ
// only in what they render and which extra keys they accept.
type pageView struct {
	state  *SharedState
	id     ViewID
	title  string
	vp     viewport.Model
	render func(*SharedState) string
	keys   []pageKey
}

// pageKey is an extra binding of one page.
type pageKey struct {
	binding key.Binding
	run     func(*SharedState) tea.Cmd
}

var (
	keyRunMonitor   = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "AI news digest"))
	keyClearCompare = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear"))
)

func newPageView(state *SharedState, id ViewID, title string, render func(*SharedState) string, keys ...pageKey) *pageView {
	v := &pageView{
		state:  state,
		id:     id,
		title:  title,
		vp:     viewport.New(0, 0),
		render: render,
		keys:   keys,
	}
	v.resize()
	v.reload()
	return v
}

func newDashboardView(state *SharedState) *pageView {
	return newPageView(state, ViewDashboard, "Dashboard",
		func(s *SharedState) string { return formatter.FormatDashboard(s.nav().Dashboard()) },
		pageKey{binding: keyRunMonitor, run: func(s *SharedState) tea.Cmd {
			return pushView(newMonitorView(s))
		}},
	)
}

func newCompareView(state *SharedState) *pageView {
	return newPageView(state, ViewCompare, "Compare",
		func(s *SharedState) string { return formatter.FormatCompare(s.nav().Compared()) },
		pageKey{binding: keyClearCompare, run: func(s *SharedState) tea.Cmd {
			s.nav().ClearCompare(s.Ctx)
			return refreshViews()
		}},
	)
}

func newDistrictsView(state *SharedState) *pageView {
	return newPageView(state, ViewDistricts, "Districts",
		func(s *SharedState) string {
			return formatter.FormatDistricts(s.nav().Districts(filter.DistrictPreviewLimit))
		},
	)
}

func (v *pageView) resize() {
	v.vp.Width = max(v.state.Width, 40)
	v.vp.Height = v.state.ContentHeight()
}

func (v *pageView) reload() {
	v.vp.SetContent(v.render(v.state))
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *pageView) Init() tea.Cmd { return nil }

func (v *pageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		v.reload()
		return v, nil
	case refreshViewMsg:
		v.reload()
		return v, nil
	case tea.KeyMsg:
		for _, k := range v.keys {
			if key.Matches(msg, k.binding) {
				return v, k.run(v.state)
			}
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *pageView) View() string { return v.vp.View() }

// ── View interface ───────────────────────────────────────────────────────────

func (v *pageView) ID() ViewID    { return v.id }
func (v *pageView) Title() string { return v.title }

func (v *pageView) ShortHelp() []key.Binding {
	hints := make([]key.Binding, 0, len(v.keys))
	for _, k := range v.keys {
		hints = append(hints, k.binding)
	}
	return hints
}
