package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var flags filterFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the matching schools to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app); err != nil {
				return err
			}
			schools := app.Nav.Visible()

			path := outPath
			if path == "" {
				path = export.FileName(app.Nav.Now())
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := export.Write(f, schools); err != nil {
				f.Close()
				return fmt.Errorf("writing workbook: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d schools → %s\n",
				formatter.StyleGreen.Render("Exported"), len(schools), path)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default HK_Primary_Rankings_<date>.xlsx)")

	return cmd
}
