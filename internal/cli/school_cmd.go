package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/state"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <school>",
		Short: "Show the full card of one school",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSchoolID(app, args[0])
			if err != nil {
				return err
			}
			school, err := app.Nav.School(id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchoolCard(school, app.Nav.State(), app.Nav.Now()))
			return nil
		},
	}
}

func newFollowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <school>",
		Short: "Follow or unfollow a school (toggle)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSchoolID(app, args[0])
			if err != nil {
				return err
			}
			notice, err := app.Nav.ToggleFollow(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			school, _ := app.Nav.School(id)
			if app.Nav.State().IsFollowed(id) {
				status, _ := app.Nav.State().ProgressOf(id)
				fmt.Fprintf(out, "%s %s  %s\n", formatter.StyleYellow.Render("★ 已追踪"), school.DisplayName(), formatter.ProgressPill(status))
			} else {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("☆ 已取消追踪"), school.DisplayName())
			}
			fmt.Fprint(out, formatter.FormatNotice(notice))
			return nil
		},
	}
}

func newMonitorCmd(app *App) *cobra.Command {
	var run bool

	cmd := &cobra.Command{
		Use:   "monitor [school]",
		Short: "Toggle AI news monitoring for a school, list monitored schools, or fetch a digest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				id, err := resolveSchoolID(app, args[0])
				if err != nil {
					return err
				}
				notice, err := app.Nav.ToggleMonitor(cmd.Context(), id)
				if err != nil {
					return err
				}
				school, _ := app.Nav.School(id)
				if app.Nav.State().IsMonitored(id) {
					fmt.Fprintf(out, "%s %s\n", formatter.StylePurple.Render("◉ AI 监测中"), school.DisplayName())
				} else {
					fmt.Fprintf(out, "%s %s\n", formatter.Dim("○ 已停止监测"), school.DisplayName())
				}
				fmt.Fprint(out, formatter.FormatNotice(notice))
				if !run {
					return nil
				}
			}

			if !run {
				monitored := app.Nav.Monitored()
				if len(monitored) == 0 {
					fmt.Fprint(out, formatter.FormatNotice(state.NothingMonitored()))
					return nil
				}
				fmt.Fprintln(out, formatter.Header(fmt.Sprintf("AI 监测 (%d)", len(monitored))))
				for _, s := range monitored {
					fmt.Fprintf(out, "  %s %s %s\n", formatter.StylePurple.Render("◉"), s.DisplayName(), formatter.Dim(s.ID))
				}
				return nil
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "正在检索最新招生动态…")
			}
			digest, notice, err := app.Nav.Monitor(cmd.Context())
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}
			if notice != nil {
				fmt.Fprint(out, formatter.FormatNotice(notice))
				return nil
			}
			if strings.TrimSpace(digest) == "" {
				fmt.Fprintln(out, formatter.Dim("暂时没有获取到最新动态，请稍后再试。"))
				return nil
			}
			fmt.Fprintln(out, formatter.RenderBox("AI 招生动态", strings.TrimSpace(digest)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&run, "run", false, "Fetch a news digest for every monitored school")

	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	statuses := make([]string, len(domain.ProgressStatuses))
	for i, s := range domain.ProgressStatuses {
		statuses[i] = string(s)
	}

	return &cobra.Command{
		Use:       "progress <school> <status>",
		Short:     "Set the application stage of a school (" + strings.Join(statuses, "|") + ")",
		Args:      cobra.ExactArgs(2),
		ValidArgs: statuses,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSchoolID(app, args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseProgressStatus(args[1])
			if err != nil {
				return err
			}
			notice, err := app.Nav.SetProgress(cmd.Context(), id, status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			school, _ := app.Nav.School(id)
			fmt.Fprintf(out, "%s  %s\n", school.DisplayName(), formatter.ProgressPill(status))
			if !app.Nav.State().IsFollowed(id) {
				fmt.Fprintln(out, formatter.Dim("This school is not followed, so the dashboard will not count it."))
			}
			fmt.Fprint(out, formatter.FormatNotice(notice))
			return nil
		},
	}
}

func newNoteCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "note <school> [text...]",
		Short: "Set or clear the private note of a school",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSchoolID(app, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !clear && len(args) == 1 {
				if note := app.Nav.State().NoteOf(id); note != "" {
					fmt.Fprintln(out, note)
				} else {
					fmt.Fprintln(out, formatter.Dim("(no note)"))
				}
				return nil
			}

			text := ""
			if !clear {
				text = strings.Join(args[1:], " ")
			}
			notice, err := app.Nav.SetNote(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			if saved := app.Nav.State().NoteOf(id); saved != "" {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("Note saved:"), saved)
				if saved != text {
					fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("(trimmed to %d characters)", state.MaxNoteRunes)))
				}
			} else {
				fmt.Fprintln(out, formatter.Dim("Note cleared."))
			}
			fmt.Fprint(out, formatter.FormatNotice(notice))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the note")

	return cmd
}
