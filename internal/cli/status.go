package cli

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show backend health and warehouse statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.client()
			ctx := cmd.Context()

			if err := c.Health(ctx); err != nil {
				return writeErr(cmd, err)
			}
			stats, err := c.Statistics(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			storage, err := c.StorageConfig(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"api":        c.BaseURL(),
					"healthy":    true,
					"statistics": stats,
					"storage":    storage,
				},
			})
		},
	}
	return cmd
}
