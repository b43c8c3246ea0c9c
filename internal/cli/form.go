package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/domain"
)

// hknavHuhTheme returns a huh theme that matches the gruvbox palette.
func hknavHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[•] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateOptionalDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// nameForm asks for the school name and whether to prefill from the web.
func nameForm(draft *domain.SchoolDraft, lookup *bool, canLookup bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("学校名称 School Name").
			Placeholder("e.g. Diocesan Boys' School Primary Division").
			Value(&draft.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("a name is required")
				}
				return nil
			}),
	}
	if canLookup {
		fields = append(fields, huh.NewConfirm().
			Title("AI 自动补全 Look up details online?").
			Affirmative("Yes").
			Negative("No").
			Value(lookup))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(hknavHuhTheme()).WithShowHelp(false)
}

// intakeForm edits every draft field. languages is the comma-separated
// language list; the caller splits it back into the draft.
func intakeForm(draft *domain.SchoolDraft, languages *string) *huh.Form {
	typeOpts := make([]huh.Option[domain.SchoolType], len(domain.SchoolTypes))
	for i, t := range domain.SchoolTypes {
		typeOpts[i] = huh.NewOption(string(t), t)
	}
	currOpts := make([]huh.Option[domain.Curriculum], len(domain.Curricula))
	for i, c := range domain.Curricula {
		currOpts[i] = huh.NewOption(string(c), c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("学校名称 School Name").Value(&draft.Name),
			huh.NewInput().Title("中文名称 Chinese Name").Value(&draft.NameZh),
			huh.NewInput().Title("地址 Location").Value(&draft.Location),
			huh.NewInput().Title("区域 District").Placeholder("Wan Chai (灣仔區)").Value(&draft.District),
			huh.NewInput().Title("学费 Tuition").Placeholder("HK$120,000 / yr").Value(&draft.TuitionFee),
		).Title("基本信息"),
		huh.NewGroup(
			huh.NewSelect[domain.SchoolType]().Title("学校类型 Type").Options(typeOpts...).Value(&draft.Type),
			huh.NewMultiSelect[domain.Curriculum]().Title("课程体系 Curriculum").Options(currOpts...).Value(&draft.Curriculum),
			huh.NewInput().Title("教学语言 Languages").Description("comma separated").Value(languages),
		).Title("课程"),
		huh.NewGroup(
			huh.NewInput().Title("申请开始 Application Start").Placeholder("2024-09-01").Value(&draft.ApplicationStart).Validate(validateOptionalDate),
			huh.NewInput().Title("申请截止 Application Deadline").Placeholder("2024-11-30").Value(&draft.ApplicationEnd).Validate(validateOptionalDate),
			huh.NewInput().Title("面试安排 Interview").Placeholder("October - November").Value(&draft.InterviewDate),
			huh.NewInput().Title("官网 Website").Value(&draft.Website),
			huh.NewText().Title("简介 Description").Value(&draft.Description),
		).Title("申请"),
	).WithTheme(hknavHuhTheme()).WithShowHelp(false)
}

func splitLanguages(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
