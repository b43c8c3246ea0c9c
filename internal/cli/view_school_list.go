package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/dashboard"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/filter"
)

// schoolListView is the home view: the filtered directory with a cursor.
type schoolListView struct {
	state   *SharedState
	schools []domain.School
	cursor  int
	offset  int

	search    textinput.Model
	searching bool
}

func newSchoolListView(state *SharedState) *schoolListView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "搜索学校名称、地区…"
	ti.CharLimit = 80

	v := &schoolListView{state: state, search: ti}
	v.reload()
	return v
}

var (
	keyUp       = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown     = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyOpen     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details"))
	keyFollow   = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow"))
	keyMonitor  = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "monitor"))
	keyToggleCm = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare"))
	keyProgress = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "stage"))
	keySearch   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keyTab      = key.NewBinding(key.WithKeys("t", "tab"), key.WithHelp("t", "curriculum"))
	keyType     = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "type"))
	keySort     = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort"))
	keyClear    = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear"))
	keyGroup    = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "districts"))
)

func (v *schoolListView) reload() {
	v.schools = v.state.nav().Visible()
	v.cursor = min(v.cursor, max(len(v.schools)-1, 0))
	v.clampOffset()
}

func (v *schoolListView) selected() (domain.School, bool) {
	if v.cursor < 0 || v.cursor >= len(v.schools) {
		return domain.School{}, false
	}
	return v.schools[v.cursor], true
}

// rows is the number of list rows that fit under the tab and summary lines.
func (v *schoolListView) rows() int {
	return max(v.state.ContentHeight()-4, 1)
}

func (v *schoolListView) clampOffset() {
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+v.rows() {
		v.offset = v.cursor - v.rows() + 1
	}
	v.offset = max(v.offset, 0)
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *schoolListView) Init() tea.Cmd { return nil }

func (v *schoolListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg, tea.WindowSizeMsg:
		v.reload()
		return v, nil
	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *schoolListView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.setFilter(func(s *filter.Spec) { s.Search = strings.TrimSpace(v.search.Value()) })
	return v, cmd
}

func (v *schoolListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := v.state.nav()
	ctx := v.state.Ctx

	switch {
	case key.Matches(msg, keyUp):
		if v.cursor > 0 {
			v.cursor--
			v.clampOffset()
		}
	case key.Matches(msg, keyDown):
		if v.cursor < len(v.schools)-1 {
			v.cursor++
			v.clampOffset()
		}
	case key.Matches(msg, keySearch):
		v.searching = true
		return v, v.search.Focus()
	case key.Matches(msg, keyTab):
		v.setFilter(func(s *filter.Spec) { s.Curriculum = nextCurriculum(s.Curriculum) })
	case key.Matches(msg, keyType):
		v.setFilter(func(s *filter.Spec) { s.Type = nextSchoolType(s.Type) })
	case key.Matches(msg, keySort):
		v.setFilter(func(s *filter.Spec) {
			if s.Sort == filter.SortDeadline {
				s.Sort = filter.SortRank
			} else {
				s.Sort = filter.SortDeadline
			}
		})
	case key.Matches(msg, keyClear):
		nav.ClearFilter()
		v.search.SetValue("")
		v.cursor, v.offset = 0, 0
		v.reload()
	case key.Matches(msg, keyGroup):
		return v, pushView(newDistrictsView(v.state))
	}

	school, ok := v.selected()
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(msg, keyOpen):
		return v, pushView(newSchoolDetailView(v.state, school.ID))
	case key.Matches(msg, keyFollow):
		notice, err := nav.ToggleFollow(ctx, school.ID)
		return v, mutationResult(notice, err)
	case key.Matches(msg, keyMonitor):
		notice, err := nav.ToggleMonitor(ctx, school.ID)
		return v, mutationResult(notice, err)
	case key.Matches(msg, keyToggleCm):
		notice, err := nav.ToggleCompare(ctx, school.ID)
		return v, mutationResult(notice, err)
	case key.Matches(msg, keyProgress):
		notice, err := nav.SetProgress(ctx, school.ID, v.state.nextProgress(school.ID))
		return v, mutationResult(notice, err)
	}
	return v, nil
}

func (v *schoolListView) setFilter(edit func(*filter.Spec)) {
	spec := v.state.nav().State().Filter
	edit(&spec)
	v.state.nav().SetFilter(spec)
	v.cursor, v.offset = 0, 0
	v.reload()
}

func (v *schoolListView) View() string {
	nav := v.state.nav()
	st := nav.State()
	now := nav.Now()

	var b strings.Builder
	b.WriteString(renderTabs(st.Filter.Curriculum) + "\n")

	if v.searching || v.search.Value() != "" {
		b.WriteString(v.search.View() + "\n")
	} else {
		b.WriteString("\n")
	}

	sortLabel := "按排名"
	if st.Filter.Sort == filter.SortDeadline {
		sortLabel = "按截止日期"
	}
	b.WriteString(fmt.Sprintf("共找到 %s 所匹配学校 %s\n",
		formatter.Bold(fmt.Sprint(len(v.schools))),
		formatter.Dim("· "+st.Filter.Describe()+" · "+sortLabel)))

	if len(v.schools) == 0 {
		b.WriteString("\n" + formatter.Dim("没有符合条件的学校。按 x 清除筛选。") + "\n")
		return b.String()
	}

	nameWidth := max(v.state.Width-52, 24)
	end := min(v.offset+v.rows(), len(v.schools))
	for i := v.offset; i < end; i++ {
		s := v.schools[i]
		marker := "  "
		name := formatter.Truncate(s.DisplayName(), nameWidth)
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			name = formatter.Bold(name)
		}
		deadline := formatter.Dim("--")
		if !s.ApplicationEnd.IsZero() {
			deadline = formatter.DaysBadge(dashboard.DaysRemaining(s.ApplicationEnd, now))
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s %s\n",
			marker,
			formatter.StyleHeader.Render(fmt.Sprintf("%-6s", formatter.RankLabel(s, st.Filter))),
			name,
			formatter.Dim(formatter.Truncate(s.District, 18)),
			deadline,
			formatter.Flags(st, s.ID)))
	}
	return b.String()
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *schoolListView) ID() ViewID    { return ViewSchoolList }
func (v *schoolListView) Title() string { return "Schools" }
func (v *schoolListView) CapturesInput() bool {
	return v.searching
}

func (v *schoolListView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		}
	}
	return []key.Binding{keyOpen, keyFollow, keyMonitor, keyToggleCm, keyProgress,
		keySearch, keyTab, keySort, keyClear, keyDashboard, keyCompare, keyAdvisor}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func renderTabs(active domain.Curriculum) string {
	tabs := []string{tabLabel("全部 All", active == "")}
	for _, c := range domain.Curricula {
		tabs = append(tabs, tabLabel(c.Short(), active == c))
	}
	return strings.Join(tabs, " ")
}

func tabLabel(label string, on bool) string {
	if on {
		return formatter.StyleHeader.Render("[" + label + "]")
	}
	return formatter.Dim(" " + label + " ")
}

// nextCurriculum cycles All → DSE → IB → AP → British → All.
func nextCurriculum(c domain.Curriculum) domain.Curriculum {
	i := slices.Index(domain.Curricula, c)
	if i == len(domain.Curricula)-1 {
		return ""
	}
	return domain.Curricula[i+1]
}

// nextSchoolType cycles All → each school type → All.
func nextSchoolType(t domain.SchoolType) domain.SchoolType {
	i := slices.Index(domain.SchoolTypes, t)
	if i == len(domain.SchoolTypes)-1 {
		return ""
	}
	return domain.SchoolTypes[i+1]
}
