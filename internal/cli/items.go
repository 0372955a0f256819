package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sklad-cli/internal/api"
	"sklad-cli/internal/model"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item operations inside a Gitterbox",
	}
	cmd.AddCommand(newItemsAddCmd(app))
	cmd.AddCommand(newItemsEditCmd(app))
	cmd.AddCommand(newItemsArchiveCmd(app))
	cmd.AddCommand(newItemsExpiringCmd(app))
	return cmd
}

func newItemsAddCmd(app *App) *cobra.Command {
	var (
		boxNumber int
		tmaMiddle string
		in        api.ItemCreate
		noExpiry  bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a Gitterbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			if boxNumber < 1 || in.PartName == "" {
				return writeErr(cmd, fmt.Errorf("--box and --name are required"))
			}
			tma, ok := model.ComposeTMANumber(tmaMiddle)
			if !ok {
				return writeErr(cmd, fmt.Errorf("--tma must be exactly six digits"))
			}
			in.TMANumber = tma
			in.TrackExpiry = !noExpiry

			c := app.client()
			box, err := c.BoxByNumber(cmd.Context(), boxNumber)
			if err != nil {
				return writeErr(cmd, err)
			}
			in.BoxID = box.ID

			item, err := c.CreateItem(cmd.Context(), in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": item})
		},
	}
	cmd.Flags().IntVar(&boxNumber, "box", 0, "GB number of the target box")
	cmd.Flags().StringVar(&in.PartName, "name", "", "Part name")
	cmd.Flags().StringVar(&tmaMiddle, "tma", "", "Middle six digits of the TMA serial")
	cmd.Flags().StringVar(&in.Project, "project", "", "Project")
	cmd.Flags().IntVar(&in.Quantity, "qty", 1, "Quantity")
	cmd.Flags().StringVar(&in.Unit, "unit", "ks", "Unit")
	cmd.Flags().StringVar(&in.ExpiryDate, "expiry", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&noExpiry, "no-expiry", false, "Do not track expiry")
	cmd.Flags().StringVar(&in.Note, "note", "", "Note")
	return cmd
}

func newItemsEditCmd(app *App) *cobra.Command {
	var (
		tmaMiddle string
		name      string
		project   string
		qty       int
		unit      string
		expiry    string
		track     bool
		note      string
	)
	cmd := &cobra.Command{
		Use:   "edit <item-id>",
		Short: "Edit an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid item id %q", args[0]))
			}

			var in api.ItemUpdate
			if cmd.Flags().Changed("tma") {
				tma, ok := model.ComposeTMANumber(tmaMiddle)
				if !ok {
					return writeErr(cmd, fmt.Errorf("--tma must be exactly six digits"))
				}
				in.TMANumber = &tma
			}
			if cmd.Flags().Changed("name") {
				in.PartName = &name
			}
			if cmd.Flags().Changed("project") {
				in.Project = &project
			}
			if cmd.Flags().Changed("qty") {
				in.Quantity = &qty
			}
			if cmd.Flags().Changed("unit") {
				in.Unit = &unit
			}
			if cmd.Flags().Changed("expiry") {
				in.ExpiryDate = &expiry
			}
			if cmd.Flags().Changed("track-expiry") {
				in.TrackExpiry = &track
			}
			if cmd.Flags().Changed("note") {
				in.Note = &note
			}

			item, err := app.client().UpdateItem(cmd.Context(), id, in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": item})
		},
	}
	cmd.Flags().StringVar(&tmaMiddle, "tma", "", "Middle six digits of the TMA serial")
	cmd.Flags().StringVar(&name, "name", "", "Part name")
	cmd.Flags().StringVar(&project, "project", "", "Project")
	cmd.Flags().IntVar(&qty, "qty", 0, "Quantity")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&track, "track-expiry", true, "Track expiry")
	cmd.Flags().StringVar(&note, "note", "", "Note")
	return cmd
}

func newItemsArchiveCmd(app *App) *cobra.Command {
	var (
		reason string
		note   string
	)
	cmd := &cobra.Command{
		Use:   "archive <item-id>",
		Short: "Unshelve a single item (the box stays, even when empty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid item id %q", args[0]))
			}
			if !model.KnownArchiveReason(reason) {
				return writeErr(cmd, fmt.Errorf("unknown reason %q (expirace|rozbito|chyba|jine)", reason))
			}
			req := api.ArchiveRequest{Reason: model.ArchiveReason(reason), Note: note}
			if err := app.client().ArchiveItem(cmd.Context(), id, req); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"archived": id}})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason code (expirace|rozbito|chyba|jine)")
	cmd.Flags().StringVar(&note, "note", "", "Free-text note")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newItemsExpiringCmd(app *App) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "expiring",
		Short: "List items expiring soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.client().ExpiringSoon(cmd.Context(), days)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Look-ahead window in days")
	return cmd
}
