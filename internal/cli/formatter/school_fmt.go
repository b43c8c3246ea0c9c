package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hknav/internal/dashboard"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/filter"
	"github.com/alexanderramin/hknav/internal/state"
)

const listNameWidth = 44

// RankLabel renders "#N", adding the curriculum rank while a curriculum
// filter is active.
func RankLabel(s domain.School, spec filter.Spec) string {
	label := "#" + strconv.Itoa(s.Ranking)
	if spec.Curriculum != "" && s.CategoryRanking != nil {
		label += fmt.Sprintf(" (%s #%d)", spec.Curriculum.Short(), *s.CategoryRanking)
	}
	return label
}

// Flags renders the overlay markers of one school: followed, monitored,
// compared.
func Flags(st state.State, id string) string {
	var b strings.Builder
	if st.IsFollowed(id) {
		b.WriteString(StyleYellow.Render("★"))
	}
	if st.IsMonitored(id) {
		b.WriteString(StylePurple.Render("◉"))
	}
	if st.IsCompared(id) {
		b.WriteString(StyleBlue.Render("⇄"))
	}
	return b.String()
}

// FormatSchoolList renders the filtered list as a table.
func FormatSchoolList(schools []domain.School, st state.State, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("共找到 %s 所匹配学校 %s\n\n",
		Bold(strconv.Itoa(len(schools))), Dim("· "+st.Filter.Describe())))

	if len(schools) == 0 {
		b.WriteString(Dim("没有符合条件的学校，请放宽筛选条件。") + "\n")
		return b.String()
	}

	headers := []string{"RANK", "ID", "SCHOOL", "DISTRICT", "TYPE", "CURRICULUM", "DEADLINE", ""}
	rows := make([][]string, 0, len(schools))
	for _, s := range schools {
		deadline := Dim("--")
		if !s.ApplicationEnd.IsZero() {
			deadline = s.ApplicationEnd.String() + " " + DaysBadge(dashboard.DaysRemaining(s.ApplicationEnd, now))
		}
		rows = append(rows, []string{
			StyleHeader.Render(RankLabel(s, st.Filter)),
			Dim(s.ID),
			Bold(Truncate(s.DisplayName(), listNameWidth)),
			s.District,
			string(s.Type),
			Curricula(s.Curriculum),
			deadline,
			Flags(st, s.ID),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatSchoolCard renders the expanded detail of one school together with
// the user's overlays for it.
func FormatSchoolCard(s domain.School, st state.State, now time.Time) string {
	var b strings.Builder

	badge := ""
	if !s.ApplicationEnd.IsZero() {
		badge = "  " + DaysBadge(dashboard.DaysRemaining(s.ApplicationEnd, now))
	}
	b.WriteString(StyleHeader.Render("RANK "+RankLabel(s, st.Filter)) + badge + "\n")
	b.WriteString(Bold(s.Name) + "\n")
	if s.NameZh != "" && s.NameZh != s.Name {
		b.WriteString(s.NameZh + "\n")
	}
	b.WriteString(Dim(string(s.Type)+" · "+Curricula(s.Curriculum)) + "\n\n")

	fields := [][2]string{
		{"District 区域", OrDash(s.District)},
		{"Location 地址", OrDash(s.Location)},
		{"Tuition 学费", OrDash(s.TuitionFee)},
		{"Language 语言", OrDash(strings.Join(s.Language, ", "))},
		{"Applications 申请", OrDash(applicationWindow(s))},
		{"Deadline 截止", OrDash(s.ApplicationEnd.String())},
		{"面试安排", OrDash(s.InterviewDate)},
	}
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(padLabel(f[0])), f[1]))
	}

	if s.Description != "" {
		b.WriteString("\n" + s.Description + "\n")
	}
	if s.InterviewRequirements != "" {
		b.WriteString("\n" + StyleBlue.Render("核心能力要求") + "\n" + s.InterviewRequirements + "\n")
	}
	if s.InterviewTips != "" {
		b.WriteString("\n" + StylePurple.Render("历年面试心得") + "\n" + s.InterviewTips + "\n")
	}

	b.WriteString("\n")
	if s.Website != "" {
		b.WriteString(Dim("Website  ") + s.Website + "\n")
	}
	b.WriteString(Dim("Map      ") + s.MapURL() + "\n")

	b.WriteString("\n" + Header("Tracking") + "\n")
	if st.IsFollowed(s.ID) {
		status, _ := st.ProgressOf(s.ID)
		if status == "" {
			status = domain.ProgressPlanning
		}
		b.WriteString(StyleYellow.Render("★ 已追踪") + "  " + ProgressPill(status) + "\n")
	} else {
		b.WriteString(Dim("☆ 未追踪 (hknav follow "+s.ID+")") + "\n")
	}
	if st.IsMonitored(s.ID) {
		b.WriteString(StylePurple.Render("◉ AI 监测中") + "\n")
	}
	if note := st.NoteOf(s.ID); note != "" {
		b.WriteString(Dim("Note: ") + note + "\n")
	}
	return b.String()
}

func applicationWindow(s domain.School) string {
	if s.ApplicationStart.IsZero() && s.ApplicationEnd.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s → %s", orQuestion(s.ApplicationStart.String()), orQuestion(s.ApplicationEnd.String()))
}

func orQuestion(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

const cardLabelWidth = 18

func padLabel(label string) string {
	return label + strings.Repeat(" ", max(cardLabelWidth-lipgloss.Width(label), 0))
}

// CompareRows are the attribute labels of the comparison matrix, in order.
var CompareRows = []string{"综合排名", "所属区域", "学校类型", "每年学费", "课程体系", "面试窗口"}

// FormatCompare renders schools side by side.
func FormatCompare(schools []domain.School) string {
	if len(schools) == 0 {
		return Dim("还没有选择对比的学校。") + "\n"
	}
	subjects := make([]string, len(schools))
	cells := make([][]string, len(CompareRows))
	for i := range cells {
		cells[i] = make([]string, len(schools))
	}
	for j, s := range schools {
		subjects[j] = Truncate(s.DisplayName(), 24)
		cells[0][j] = StyleHeader.Render("#" + strconv.Itoa(s.Ranking))
		cells[1][j] = OrDash(s.District)
		cells[2][j] = string(s.Type)
		cells[3][j] = OrDash(s.TuitionFee)
		cells[4][j] = Curricula(s.Curriculum)
		cells[5][j] = OrDash(s.InterviewDate)
	}
	title := fmt.Sprintf("学校横向对比 School Comparison Matrix %s", Dim(fmt.Sprintf("(已选择对比 %d/%d)", len(schools), state.MaxCompared)))
	return title + "\n\n" + RenderMatrix("属性特征", subjects, CompareRows, cells)
}

// FormatDistricts renders the district explorer.
func FormatDistricts(groups []filter.DistrictGroup) string {
	if len(groups) == 0 {
		return Dim("没有符合条件的学校。") + "\n"
	}
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleHeader.Render(OrDash(g.District)) + Dim(fmt.Sprintf("  %d 所", g.Total)) + "\n")
		for _, s := range g.Schools {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleDim.Render(fmt.Sprintf("#%-3d", s.Ranking)), s.DisplayName(), Dim(s.ID)))
		}
		if more := g.Total - len(g.Schools); more > 0 {
			b.WriteString(Dim(fmt.Sprintf("  … 还有 %d 所", more)) + "\n")
		}
	}
	return b.String()
}
