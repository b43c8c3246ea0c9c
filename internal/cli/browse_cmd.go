package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and track schools in a full-screen terminal UI",
		Long: `Browse and track schools in a full-screen terminal UI.

Keys: ↑/↓ move, enter details, f follow, m monitor, c compare, p stage,
/ search, t curriculum tab, y school type, s sort, x clear filters,
g districts, d dashboard, v comparison, a ask the assistant, q quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal; try `hknav list`")
			}
			p := tea.NewProgram(newAppModel(cmd.Context(), app),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := p.Run()
			return err
		},
	}
}
