package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hknav/internal/llm"
	"github.com/alexanderramin/hknav/internal/repository"
	"github.com/alexanderramin/hknav/internal/service"
	"github.com/alexanderramin/hknav/internal/state"
	"github.com/alexanderramin/hknav/internal/teatest"
	"github.com/alexanderramin/hknav/internal/testutil"
)

func newTUI(t *testing.T, env *testEnv) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(context.Background(), env.app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func activeView(t *testing.T, d *teatest.Driver) View {
	t.Helper()
	m, ok := d.Model.(appModel)
	require.True(t, ok)
	return m.activeView()
}

// blockingLLM never answers until its context is cancelled.
type blockingLLM struct{}

func (blockingLLM) Generate(ctx context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingLLM) Available(context.Context) bool { return true }

func TestTUI_ListTracksSchools(t *testing.T) {
	env := testApp(t, nil)
	d := newTUI(t, env)

	d.RequireViewContains("hknav", "Schools", "共找到 4 所匹配学校", "★ 0", "⇄ 0/3")

	d.PressDown()
	d.PressKey('f')
	assert.True(t, env.app.Nav.State().IsFollowed("beta"))
	d.RequireViewContains("★ 1")

	d.PressKey('p')
	status, _ := env.app.Nav.State().ProgressOf("beta")
	assert.Equal(t, "applied", string(status))

	d.PressKey('m')
	assert.True(t, env.app.Nav.State().IsMonitored("beta"))

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"beta"}, env.store.LoadAll(context.Background()).Followed)
}

func TestTUI_SearchTabsAndClear(t *testing.T) {
	env := testApp(t, nil)
	d := newTUI(t, env)

	d.PressKey('/')
	d.Type("丙")
	d.RequireViewContains("共找到 1 所匹配学校")
	d.PressKey('q')
	assert.False(t, d.Quitting, "q is typed into the search box")
	d.PressBackspace()
	d.PressEnter()
	d.RequireViewContains("共找到 1 所匹配学校")

	d.PressKey('x')
	d.RequireViewContains("共找到 4 所匹配学校")

	d.PressKey('t')
	d.RequireViewContains("[DSE]", "共找到 2 所匹配学校")
	d.PressKey('y')
	d.PressKey('s')
	assert.Equal(t, "deadline", string(env.app.Nav.State().Filter.Sort))

	d.PressKey('x')
	assert.Empty(t, env.app.Nav.State().Filter.Curriculum)
	assert.Empty(t, env.app.Nav.State().Filter.Type)
	d.RequireViewContains("[全部 All]")
}

func TestTUI_CompareCapAndClear(t *testing.T) {
	env := testApp(t, nil)
	d := newTUI(t, env)

	for i := range 4 {
		if i > 0 {
			d.PressDown()
		}
		d.PressKey('c')
	}
	assert.Len(t, env.app.Nav.State().Compared, 3)
	d.RequireViewContains("compare up to 3 schools", "⇄ 3/3")

	d.PressKey('v')
	assert.Equal(t, ViewCompare, activeView(t, d).ID())
	d.RequireViewContains("已选择对比 3/3")

	d.PressKey('x')
	d.RequireViewContains("还没有选择对比的学校", "⇄ 0/3")

	d.PressEsc()
	assert.Equal(t, ViewSchoolList, activeView(t, d).ID())
}

func TestTUI_DetailNoteSavedOnBlur(t *testing.T) {
	env := testApp(t, nil)
	d := newTUI(t, env)

	d.PressEnter()
	require.Equal(t, ViewSchoolDetail, activeView(t, d).ID())
	d.RequireViewContains("Alpha Primary", "press n to add a note")

	d.PressKey('n')
	d.Type("open day q")
	assert.False(t, d.Quitting)
	d.PressEsc()

	assert.Equal(t, "open day q", env.app.Nav.State().NoteOf("alpha"))
	assert.Equal(t, ViewSchoolDetail, activeView(t, d).ID(), "the first esc only leaves the editor")
	d.RequireViewContains("open day q")

	d.PressKey('f')
	d.RequireViewContains("★ 已追踪")

	d.PressEsc()
	assert.Equal(t, ViewSchoolList, activeView(t, d).ID())
}

func TestTUI_DetailPopReportsFailedNoteSave(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := state.NewStore(repository.NewSQLiteSliceRepo(database), nil)
	nav := service.Open(context.Background(), store,
		service.WithBaseCatalog(testSchools()),
		service.WithClock(fixedNow),
	)
	d := newTUI(t, &testEnv{app: &App{Nav: nav, IsInteractive: func() bool { return false }}, store: store})

	d.PressEnter()
	d.PressKey('n')
	d.Type("birth cert")
	require.NoError(t, database.Close())

	d.Send(popViewMsg{})
	assert.Equal(t, ViewSchoolList, activeView(t, d).ID())
	assert.Equal(t, "birth cert", nav.State().NoteOf("alpha"), "the edit stays in memory")
	d.RequireViewContains("could not save " + state.KeyNotes)
}

func TestTUI_DashboardAndDistricts(t *testing.T) {
	env := testApp(t, nil)
	d := newTUI(t, env)

	d.PressKey('d')
	d.RequireViewContains("申请日程提醒中心", "尚未追踪任何学校")
	d.PressKey('d')
	assert.Len(t, d.Model.(appModel).viewStack, 2, "d does not stack a second dashboard")
	d.PressEsc()

	d.PressKey('g')
	assert.Equal(t, ViewDistricts, activeView(t, d).ID())
	d.RequireViewContains("Southern (南區)", "2 所")
}

func TestTUI_AdvisorAnswers(t *testing.T) {
	client := &stubLLM{text: "**Try** the DSS route."}
	env := testApp(t, client)
	d := newTUI(t, env)

	d.PressKey('a')
	require.Equal(t, ViewAdvisor, activeView(t, d).ID())
	d.RequireViewContains("Try asking")

	d.PressTab()
	d.PressEnter()
	assert.Equal(t, 1, client.calls)
	d.RequireViewContains("AI 升学顾问", "Try the DSS route.")

	d.PressEsc()
	assert.Equal(t, ViewSchoolList, activeView(t, d).ID())
}

func TestTUI_AdvisorDropsAbandonedResult(t *testing.T) {
	env := testApp(t, blockingLLM{})
	shared := &SharedState{App: env.app, Ctx: context.Background(), Width: 100, Height: 30}
	v := newAdvisorView(shared)
	d := teatest.New(t, v)
	d.DrainInit()

	d.Type("first")
	d.PressEnter()
	assert.True(t, v.tracker.Busy())
	d.RequireViewContains("正在思考")

	d.Type("second")
	d.PressEnter()
	d.RequireViewContains("上一个请求仍在处理中")

	d.PressEsc()
	assert.False(t, v.tracker.Busy())

	d.Send(advisoryResultMsg{owner: v.serial, gen: 1, text: "late answer"})
	d.AssertViewLacks("late answer", "正在思考")
}

func TestTUI_AdvisorIgnoresOtherViewsResults(t *testing.T) {
	client := &stubLLM{text: "hello"}
	env := testApp(t, client)
	shared := &SharedState{App: env.app, Ctx: context.Background()}
	v := newAdvisorView(shared)
	d := teatest.New(t, v)
	d.DrainInit()

	gen, ok := v.tracker.Begin()
	require.True(t, ok)
	d.Send(advisoryResultMsg{owner: v.serial + 1, gen: gen, text: "not mine"})
	assert.True(t, v.tracker.Busy())
	d.AssertViewLacks("not mine")
}

func TestTUI_MonitorView(t *testing.T) {
	client := &stubLLM{text: "## 甲小學\n面試日期已公布"}
	env := testApp(t, client)
	d := newTUI(t, env)

	d.PressKey('d')
	d.PressKey('m')
	require.Equal(t, ViewAdvisor, activeView(t, d).ID())
	d.RequireViewContains("flag schools with `monitor` first")
	assert.Zero(t, client.calls)
	d.PressEsc()
	d.PressEsc()

	d.PressKey('m')
	d.PressKey('d')
	d.PressKey('m')
	assert.Equal(t, 1, client.calls)
	d.RequireViewContains("AI 招生动态", "面試日期已公布")
}

func TestTUI_MonitorViewWithoutAssistant(t *testing.T) {
	env := testApp(t, nil)
	d := newTUI(t, env)

	d.PressKey('d')
	d.PressKey('m')
	d.RequireViewContains("⚠", "not configured")
}
