package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hknav/internal/dashboard"
	"github.com/alexanderramin/hknav/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ProgressColor returns the style for a funnel stage.
func ProgressColor(status domain.ProgressStatus) lipgloss.Style {
	switch status {
	case domain.ProgressAccepted:
		return StyleGreen
	case domain.ProgressInterviewing:
		return StylePurple
	case domain.ProgressApplied:
		return StyleBlue
	case domain.ProgressWaitlisted:
		return StyleYellow
	case domain.ProgressRejected:
		return StyleRed
	default:
		return StyleDim
	}
}

// ProgressPill renders a colored funnel stage such as "● Interviewing".
func ProgressPill(status domain.ProgressStatus) string {
	return ProgressColor(status).Render("● " + status.Label())
}

// DaysBadge renders the card countdown: "剩余 N 天" while open, "已截止"
// once the deadline has passed or is today.
func DaysBadge(days int) string {
	if days <= 0 {
		return StyleDim.Render("已截止")
	}
	text := fmt.Sprintf("剩余 %d 天", days)
	if dashboard.Urgent(days) {
		return StyleRed.Render(text)
	}
	return StyleYellow.Render(text)
}

// Countdown renders the dashboard countdown "N 天后截止".
func Countdown(d dashboard.Deadline) string {
	text := fmt.Sprintf("%d 天后截止", d.DaysRemaining)
	if d.Urgent() {
		return StyleRed.Render(text)
	}
	return StyleGreen.Render(text)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
