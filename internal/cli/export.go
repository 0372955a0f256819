package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sklad-cli/internal/api"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download server-generated search exports",
	}
	cmd.AddCommand(newExportFormatCmd(app, api.ExportPDF, "pdf", "sklad-export.pdf"))
	cmd.AddCommand(newExportFormatCmd(app, api.ExportExcel, "excel", "sklad-export.xlsx"))
	return cmd
}

func newExportFormatCmd(app *App, format api.ExportFormat, use, defaultOut string) *cobra.Command {
	var (
		f   api.ExportFilter
		out string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Export filtered search results as %s", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client().ExportSearch(cmd.Context(), format, f, out); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"file": out}})
		},
	}
	cmd.Flags().StringVar(&f.Query, "text", "", "Search text")
	cmd.Flags().IntVar(&f.LocationID, "location", 0, "Location id")
	cmd.Flags().StringVar(&f.Project, "project", "", "Project")
	cmd.Flags().StringVar(&f.Person, "person", "", "Responsible person")
	cmd.Flags().StringVar(&f.Status, "status", "", "Status")
	cmd.Flags().StringVar(&out, "out", defaultOut, "Output file path")
	return cmd
}
