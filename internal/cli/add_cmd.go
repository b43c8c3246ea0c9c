package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/service"
)

// intakeFlags mirror the intake form for non-interactive use.
type intakeFlags struct {
	name        string
	nameZh      string
	location    string
	district    string
	tuition     string
	schoolType  string
	curriculum  []string
	languages   []string
	start       string
	end         string
	interview   string
	website     string
	description string
	lookup      bool
}

func (f *intakeFlags) draft() (domain.SchoolDraft, error) {
	d := domain.NewSchoolDraft()
	d.Name = f.name
	d.NameZh = f.nameZh
	d.Location = f.location
	d.District = f.district
	d.TuitionFee = f.tuition
	d.ApplicationStart = f.start
	d.ApplicationEnd = f.end
	d.InterviewDate = f.interview
	d.Website = f.website
	d.Description = f.description
	d.Language = f.languages

	if f.schoolType != "" {
		t, err := domain.ParseSchoolType(f.schoolType)
		if err != nil {
			return d, err
		}
		d.Type = t
	}
	for _, raw := range f.curriculum {
		c, err := domain.ParseCurriculum(raw)
		if err != nil {
			return d, err
		}
		d.Curriculum = append(d.Curriculum, c)
	}
	return d, nil
}

func newAddCmd(app *App) *cobra.Command {
	var flags intakeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a school that is not in the directory",
		Long: `Add a school that is not in the directory.

In a terminal an intake form opens. With --lookup the assistant searches the
web for the school named by --name and prefills the form; values it returns
that do not validate are dropped and listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			draft, err := flags.draft()
			if err != nil {
				return err
			}
			interactive := app.interactive()
			lookup := flags.lookup

			if interactive && strings.TrimSpace(draft.Name) == "" && strings.TrimSpace(draft.NameZh) == "" {
				if err := app.runForm(nameForm(&draft, &lookup, true)); err != nil {
					return formAborted(out, err)
				}
			}

			if lookup {
				name := domain.CoalesceStr(strings.TrimSpace(draft.Name), strings.TrimSpace(draft.NameZh))
				if name == "" {
					return fmt.Errorf("--lookup needs --name")
				}
				if err := lookupInto(cmd, app, name, &draft); err != nil {
					return err
				}
			}

			if interactive {
				languages := strings.Join(draft.Language, ", ")
				if err := app.runForm(intakeForm(&draft, &languages)); err != nil {
					return formAborted(out, err)
				}
				draft.Language = splitLanguages(languages)
			}

			school, notice, err := app.Nav.AddSchool(ctx, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s %s\n", formatter.StyleGreen.Render("Added"),
				formatter.Bold(school.DisplayName()),
				formatter.Dim(fmt.Sprintf("(%s, rank #%d)", school.ID, school.Ranking)))
			fmt.Fprint(out, formatter.FormatNotice(notice))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "English name")
	f.StringVar(&flags.nameZh, "name-zh", "", "Chinese name")
	f.StringVar(&flags.location, "location", "", "Street address")
	f.StringVar(&flags.district, "district", "", "District")
	f.StringVar(&flags.tuition, "tuition", "", "Tuition fee text")
	f.StringVar(&flags.schoolType, "type", "", "School type: international, dss, private or aided")
	f.StringSliceVar(&flags.curriculum, "curriculum", nil, "Curricula (repeatable or comma separated)")
	f.StringSliceVar(&flags.languages, "language", nil, "Teaching languages (repeatable or comma separated)")
	f.StringVar(&flags.start, "start", "", "Application start (YYYY-MM-DD)")
	f.StringVar(&flags.end, "deadline", "", "Application deadline (YYYY-MM-DD)")
	f.StringVar(&flags.interview, "interview", "", "Interview period")
	f.StringVar(&flags.website, "website", "", "Official website")
	f.StringVar(&flags.description, "description", "", "Short description")
	f.BoolVar(&flags.lookup, "lookup", false, "Prefill the remaining fields from a web lookup")

	return cmd
}

// lookupInto runs the web lookup and reports what happened. A missing
// assistant is reported, not fatal: the user can still fill the form.
func lookupInto(cmd *cobra.Command, app *App, name string, draft *domain.SchoolDraft) error {
	out := cmd.OutOrStdout()

	var stop func()
	if app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "正在搜索学校信息…")
	}
	notice, err := app.Nav.Lookup(cmd.Context(), name, draft)
	if stop != nil {
		stop()
	}
	if errors.Is(err, service.ErrNoAdvisor) {
		fmt.Fprintln(out, formatter.StyleYellow.Render("⚠ AI lookup unavailable: "+err.Error()))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatNotice(notice))
	return nil
}

func formAborted(out io.Writer, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(out, formatter.Dim("Cancelled."))
		return nil
	}
	return err
}
