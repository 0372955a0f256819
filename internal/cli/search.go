package cli

import (
	"github.com/spf13/cobra"

	"sklad-cli/internal/model"
	"sklad-cli/internal/search"
)

func newSearchCmd(app *App) *cobra.Command {
	var q search.Query
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search Gitterboxes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.client()
			boxes, err := c.Boxes(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			// The project filter needs per-box item lists; only fetch
			// them when that filter is actually set.
			var lookup search.ItemLookup
			if q.Project != "" {
				items := map[int][]model.Item{}
				for _, b := range boxes {
					detail, err := c.BoxWithItems(cmd.Context(), b.ID)
					if err != nil {
						return writeErr(cmd, err)
					}
					items[b.ID] = detail.Items
				}
				lookup = func(boxID int) ([]model.Item, bool) {
					v, ok := items[boxID]
					return v, ok
				}
			}

			results := search.Filter(boxes, q, lookup)
			return writeOut(cmd, app, map[string]any{"data": results})
		},
	}
	cmd.Flags().StringVar(&q.Text, "text", "", "Substring over number, person, note, location, shelf")
	cmd.Flags().StringVar(&q.Location, "location", "", "Exact location name")
	cmd.Flags().StringVar(&q.Status, "status", "", "Status (aktivni|plny|kriticka)")
	cmd.Flags().StringVar(&q.Person, "person", "", "Responsible person substring")
	cmd.Flags().StringVar(&q.Project, "project", "", "Project (loads item lists)")
	return cmd
}
