package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hknav/internal/advisor"
	"github.com/alexanderramin/hknav/internal/cli/formatter"
)

func newCompareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <school> [school...]",
		Short: "Compare up to three schools side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				id, err := resolveSchoolID(app, arg)
				if err != nil {
					return err
				}
				if app.Nav.State().IsCompared(id) {
					continue
				}
				notice, err := app.Nav.ToggleCompare(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatNotice(notice))
			}
			fmt.Fprint(out, formatter.FormatCompare(app.Nav.Compared()))
			return nil
		},
	}
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show deadlines, the application funnel and upcoming interviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(app.Nav.Dashboard()))
			return nil
		},
	}
}

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask the AI admissions consultant",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				fmt.Fprint(out, formatter.FormatSuggestions(advisor.Suggestions))
				return nil
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "正在思考…")
			}
			answer, err := app.Nav.Ask(cmd.Context(), question)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatAnswer(answer))
			return nil
		},
	}
}
