package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sklad-cli/internal/api"
)

func newShelvesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelves",
		Short: "Shelf administration",
	}
	cmd.AddCommand(newShelvesListCmd(app))
	cmd.AddCommand(newShelvesCreateCmd(app))
	cmd.AddCommand(newShelvesEditCmd(app))
	cmd.AddCommand(newShelvesDeleteCmd(app))
	return cmd
}

func newShelvesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locations and their shelves",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := app.client().Locations(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": locations})
		},
	}
}

func newShelvesCreateCmd(app *App) *cobra.Command {
	var in api.ShelfCreate
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shelf (positions are generated server-side)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.LocationID < 1 || in.Name == "" || in.Rows < 1 || in.Cols < 1 {
				return writeErr(cmd, fmt.Errorf("--location, --name, --rows and --cols are required"))
			}
			if in.Rows > 20 || in.Cols > 20 {
				return writeErr(cmd, fmt.Errorf("rows and columns are limited to 20"))
			}
			shelf, err := app.client().CreateShelf(cmd.Context(), in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": shelf})
		},
	}
	cmd.Flags().IntVar(&in.LocationID, "location", 0, "Location id")
	cmd.Flags().StringVar(&in.Name, "name", "", "Shelf name")
	cmd.Flags().IntVar(&in.Rows, "rows", 0, "Row count (1-20)")
	cmd.Flags().IntVar(&in.Cols, "cols", 0, "Column count (1-20)")
	cmd.Flags().StringVar(&in.Type, "type", "standardni", "Shelf type (standardni|velky|maly|specialni)")
	return cmd
}

func newShelvesEditCmd(app *App) *cobra.Command {
	var (
		name  string
		rows  int
		cols  int
		sType string
	)
	cmd := &cobra.Command{
		Use:   "edit <shelf-id>",
		Short: "Edit a shelf (shrinking past occupied positions is rejected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid shelf id %q", args[0]))
			}

			var in api.ShelfUpdate
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("rows") {
				in.Rows = &rows
			}
			if cmd.Flags().Changed("cols") {
				in.Cols = &cols
			}
			if cmd.Flags().Changed("type") {
				in.Type = &sType
			}

			shelf, err := app.client().UpdateShelf(cmd.Context(), id, in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": shelf})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Shelf name")
	cmd.Flags().IntVar(&rows, "rows", 0, "Row count (1-20)")
	cmd.Flags().IntVar(&cols, "cols", 0, "Column count (1-20)")
	cmd.Flags().StringVar(&sType, "type", "", "Shelf type")
	return cmd
}

func newShelvesDeleteCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete <shelf-id>",
		Short: "Delete an empty shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid shelf id %q", args[0]))
			}
			if !force {
				return writeErr(cmd, fmt.Errorf("refusing to delete shelf %d without --yes", id))
			}
			if err := app.client().DeleteShelf(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": id}})
		},
	}
	cmd.Flags().BoolVar(&force, "yes", false, "Confirm deletion")
	return cmd
}
