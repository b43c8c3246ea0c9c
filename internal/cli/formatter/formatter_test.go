package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/hknav/internal/dashboard"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/filter"
	"github.com/alexanderramin/hknav/internal/state"
	"github.com/alexanderramin/hknav/internal/testutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var hkt = time.FixedZone("HKT", 8*3600)

func TestRenderTable_AlignsWideText(t *testing.T) {
	out := stripANSI(RenderTable([]string{"NAME", "RANK"}, [][]string{
		{"拔萃男書院", "1"},
		{"DBS", "2"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "RANK"), strings.Index(lines[3], "2"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "拔萃…", Truncate("拔萃男書院", 6))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestDaysBadge(t *testing.T) {
	assert.Equal(t, "剩余 12 天", stripANSI(DaysBadge(12)))
	assert.Equal(t, "剩余 1 天", stripANSI(DaysBadge(1)))
	assert.Equal(t, "已截止", stripANSI(DaysBadge(0)))
	assert.Equal(t, "已截止", stripANSI(DaysBadge(-3)))
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", stripANSI(RenderBar(0.5, 10, StyleGreen)))
	assert.Equal(t, "██████████ 100%", stripANSI(RenderBar(1.7, 10, StyleGreen)))
	assert.Equal(t, "░░   0%", stripANSI(RenderBar(-1, 1, StyleGreen)))
}

func TestFormatSchoolList(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, hkt)
	cat := 3
	a := testutil.NewTestSchool("Alpha", testutil.WithID("a"), testutil.WithRanking(5), testutil.WithDeadline("2024-10-11"))
	a.CategoryRanking = &cat
	st := state.New(state.NewOverlays())
	st.Followed = []string{"a"}
	st.Filter = filter.Spec{Curriculum: domain.CurriculumDSE}

	out := stripANSI(FormatSchoolList([]domain.School{a}, st, now))

	assert.Contains(t, out, "共找到 1 所匹配学校")
	assert.Contains(t, out, "#5 (DSE #3)")
	assert.Contains(t, out, "剩余 10 天")
	assert.Contains(t, out, "★")

	empty := stripANSI(FormatSchoolList(nil, st, now))
	assert.Contains(t, empty, "共找到 0 所匹配学校")
	assert.Contains(t, empty, "DSE")
}

func TestFormatSchoolCard(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, hkt)
	s := testutil.NewTestSchool("Beta", testutil.WithID("b"), testutil.WithNameZh("乙校"), testutil.WithDeadline("2024-09-30"))
	s.InterviewTips = "Be calm"
	st := state.New(state.NewOverlays())
	st.Followed = []string{"b"}
	st.Progress["b"] = domain.ProgressInterviewing
	st.Notes["b"] = "ask about bus"

	out := stripANSI(FormatSchoolCard(s, st, now))

	assert.Contains(t, out, "已截止")
	assert.Contains(t, out, "乙校")
	assert.Contains(t, out, "历年面试心得")
	assert.Contains(t, out, "https://www.google.com/maps/search/?api=1&query=")
	assert.Contains(t, out, "Interviewing")
	assert.Contains(t, out, "ask about bus")
}

func TestFormatCompare(t *testing.T) {
	a := testutil.NewTestSchool("Alpha", testutil.WithRanking(1), testutil.WithCurriculum(domain.CurriculumIB, domain.CurriculumBritish))
	b := testutil.NewTestSchool("Beta", testutil.WithRanking(2))

	out := stripANSI(FormatCompare([]domain.School{a, b}))

	for _, label := range CompareRows {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "IB, British")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, stripANSI(FormatCompare(nil)), "还没有选择")
}

func TestFormatDashboard(t *testing.T) {
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, hkt)
	assert.Contains(t, stripANSI(FormatDashboard(dashboard.Summary{})), "尚未追踪任何学校")

	var followed []domain.School
	progress := map[string]domain.ProgressStatus{}
	for i := 0; i < 7; i++ {
		s := testutil.NewTestSchool("S", testutil.WithDeadline("2024-10-20"))
		followed = append(followed, s)
		progress[s.ID] = domain.ProgressInterviewing
	}

	out := stripANSI(FormatDashboard(dashboard.Build(followed, progress, now)))

	assert.Contains(t, out, "7 已追踪学校")
	assert.Contains(t, out, "19 天后截止")
	assert.Contains(t, out, "还有 2 个待处理申请")
	assert.Contains(t, out, "还有 5 所")
	assert.Contains(t, out, "100%")
}

func TestFormatDistricts(t *testing.T) {
	var schools []domain.School
	for i := 0; i < 3; i++ {
		schools = append(schools, testutil.NewTestSchool("S", testutil.WithDistrict("Southern")))
	}
	out := stripANSI(FormatDistricts(filter.GroupByDistrict(schools, 2)))
	assert.Contains(t, out, "Southern")
	assert.Contains(t, out, "3 所")
	assert.Contains(t, out, "还有 1 所")
}

func TestFormatNotice(t *testing.T) {
	assert.Empty(t, FormatNotice(nil))
	assert.Contains(t, FormatNotice(state.CompareFull()), "3")
	assert.Contains(t, stripANSI(FormatNotice(state.LookupFailed())), "⚠")
}
