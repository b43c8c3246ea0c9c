package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
)

func newDataCmd(app *App) *cobra.Command {
	var reset, yes bool

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Show or reset the saved tracking data",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if reset {
				if !yes {
					if !app.interactive() {
						return errors.New("refusing to reset without confirmation; pass --yes")
					}
					confirmed := false
					form := huh.NewForm(huh.NewGroup(
						huh.NewConfirm().
							Title("Delete all followed schools, notes and custom schools?").
							Affirmative("Delete").
							Negative("Keep").
							Value(&confirmed),
					)).WithTheme(hknavHuhTheme())
					if err := app.runForm(form); err != nil {
						return formAborted(out, err)
					}
					if !confirmed {
						fmt.Fprintln(out, "Cancelled.")
						return nil
					}
				}
				if err := app.Nav.Reset(ctx); err != nil {
					return fmt.Errorf("resetting data: %w", err)
				}
				fmt.Fprintln(out, "All saved tracking data deleted.")
				return nil
			}

			slices, err := app.Nav.Storage(ctx)
			if err != nil {
				return fmt.Errorf("listing saved data: %w", err)
			}
			if len(slices) == 0 {
				fmt.Fprintln(out, formatter.Dim("Nothing saved yet."))
				return nil
			}
			rows := make([][]string, len(slices))
			for i, s := range slices {
				rows[i] = []string{
					s.Key,
					strconv.Itoa(s.Size) + " B",
					s.UpdatedAt.Local().Format("2006-01-02 15:04"),
				}
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"KEY", "SIZE", "UPDATED"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete every saved slice")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
