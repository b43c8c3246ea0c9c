package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/hknav/internal/dashboard"
)

const funnelBarWidth = 16

// FormatDashboard renders the tracking summary.
func FormatDashboard(sum dashboard.Summary) string {
	var b strings.Builder

	if sum.Empty() {
		b.WriteString(Bold("尚未追踪任何学校") + "\n")
		b.WriteString(Dim("使用 `hknav follow <id>` 追踪学校，即可在此处查看倒计时提醒。") + "\n")
		return RenderBox("申请日程提醒中心", b.String())
	}

	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold(fmt.Sprintf("%d", sum.FollowedCount)), Dim("已追踪学校")))

	b.WriteString(Header("Deadlines 截止") + "\n")
	if len(sum.Upcoming.Items) == 0 {
		b.WriteString(Dim("所有追踪的学校申请已截止。") + "\n")
	}
	for _, d := range sum.Upcoming.Items {
		interview := ""
		if d.School.InterviewDate != "" {
			interview = Dim("  面试 " + d.School.InterviewDate)
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s%s\n",
			Countdown(d), Bold(d.School.DisplayName()), Dim(d.School.ApplicationEnd.String()), interview))
	}
	if sum.Upcoming.Overflow > 0 {
		b.WriteString(Dim(fmt.Sprintf("  还有 %d 个待处理申请", sum.Upcoming.Overflow)) + "\n")
	}

	b.WriteString("\n" + Header("Funnel 申请进度") + "\n")
	for _, st := range sum.Funnel.Stages {
		label := st.Status.Label()
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			ProgressColor(st.Status).Render(label+strings.Repeat(" ", max(12-len(label), 0))),
			RenderBar(st.Share, funnelBarWidth, ProgressColor(st.Status)),
			Dim(fmt.Sprintf("(%d)", st.Count))))
	}

	b.WriteString("\n" + Header("面试窗口 Interviews") + "\n")
	if len(sum.Interviews.Items) == 0 {
		b.WriteString(Dim("  暂无面试中的学校") + "\n")
	}
	for _, s := range sum.Interviews.Items {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StylePurple.Render(s.DisplayName()), Dim(OrDash(s.InterviewDate))))
	}
	if more := sum.Interviews.Total - len(sum.Interviews.Items); more > 0 {
		b.WriteString(Dim(fmt.Sprintf("  还有 %d 所", more)) + "\n")
	}

	return RenderBox("申请日程提醒中心", b.String())
}
