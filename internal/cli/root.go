package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/hknav/internal/service"
)

// App holds what the commands need: the session navigator and a few
// terminal hooks that tests replace.
type App struct {
	Nav *service.Navigator

	// IsInteractive reports whether stdin is a terminal. Forms and spinners
	// are only used when it returns true.
	IsInteractive func() bool

	// RunForm runs a huh form to completion. Defaults to form.Run.
	RunForm func(*huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

// NewRootCmd creates the top-level "hknav" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "hknav",
		Short:         "Hong Kong primary school directory and application tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCmd(app),
		newShowCmd(app),
		newFollowCmd(app),
		newMonitorCmd(app),
		newProgressCmd(app),
		newNoteCmd(app),
		newCompareCmd(app),
		newDashboardCmd(app),
		newDistrictsCmd(app),
		newAskCmd(app),
		newAddCmd(app),
		newExportCmd(app),
		newDataCmd(app),
		newBrowseCmd(app),
	)

	return root
}
