package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sklad-cli/internal/api"
	"sklad-cli/internal/model"
)

func newBoxesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boxes",
		Aliases: []string{"gb"},
		Short:   "Gitterbox operations",
	}
	cmd.AddCommand(newBoxesListCmd(app))
	cmd.AddCommand(newBoxesShowCmd(app))
	cmd.AddCommand(newBoxesCreateCmd(app))
	cmd.AddCommand(newBoxesEditCmd(app))
	cmd.AddCommand(newBoxesArchiveCmd(app))
	cmd.AddCommand(newBoxesNumbersCmd(app))
	return cmd
}

func newBoxesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every active Gitterbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			boxes, err := app.client().Boxes(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": boxes})
		},
	}
}

func newBoxesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show one Gitterbox with its items, by GB number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number < 1 {
				return writeErr(cmd, fmt.Errorf("invalid box number %q", args[0]))
			}

			c := app.client()
			box, err := c.BoxByNumber(cmd.Context(), number)
			if err != nil {
				return writeErr(cmd, err)
			}
			detail, err := c.BoxWithItems(cmd.Context(), box.ID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": detail})
		},
	}
}

func newBoxesCreateCmd(app *App) *cobra.Command {
	var in api.BoxCreate
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a Gitterbox on a free position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Person == "" || in.PositionID < 1 || in.Number < 1 {
				return writeErr(cmd, fmt.Errorf("--number, --person and --position are required"))
			}
			box, err := app.client().CreateBox(cmd.Context(), in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": box})
		},
	}
	cmd.Flags().IntVar(&in.Number, "number", 0, "GB number (pick from `sklad boxes numbers`)")
	cmd.Flags().StringVar(&in.Person, "person", "", "Responsible person")
	cmd.Flags().IntVar(&in.PositionID, "position", 0, "Free position id")
	cmd.Flags().IntVar(&in.FillPercent, "fill", 100, "Fill percentage")
	cmd.Flags().StringVar(&in.Note, "note", "", "Note")
	return cmd
}

func newBoxesEditCmd(app *App) *cobra.Command {
	var (
		person string
		pos    int
		fill   int
		status string
		note   string
	)
	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Edit a Gitterbox (the GB number itself never changes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid box number %q", args[0]))
			}
			c := app.client()
			box, err := c.BoxByNumber(cmd.Context(), number)
			if err != nil {
				return writeErr(cmd, err)
			}

			in := api.BoxUpdate{Person: person, PositionID: pos}
			if cmd.Flags().Changed("fill") {
				in.FillPercent = &fill
			}
			if cmd.Flags().Changed("status") {
				s := model.BoxStatus(status)
				if s != model.BoxActive && s != model.BoxFull {
					return writeErr(cmd, fmt.Errorf("status must be %q or %q", model.BoxActive, model.BoxFull))
				}
				in.Status = &s
			}
			if cmd.Flags().Changed("note") {
				in.Note = &note
			}

			updated, err := c.UpdateBox(cmd.Context(), box.ID, in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": updated})
		},
	}
	cmd.Flags().StringVar(&person, "person", "", "Responsible person")
	cmd.Flags().IntVar(&pos, "position", 0, "Move to position id")
	cmd.Flags().IntVar(&fill, "fill", 0, "Fill percentage")
	cmd.Flags().StringVar(&status, "status", "", "State (aktivni|plny)")
	cmd.Flags().StringVar(&note, "note", "", "Note")
	return cmd
}

func newBoxesArchiveCmd(app *App) *cobra.Command {
	var (
		reason string
		note   string
	)
	cmd := &cobra.Command{
		Use:   "archive <number>",
		Short: "Unshelve a whole Gitterbox (irreversible)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid box number %q", args[0]))
			}
			if !model.KnownArchiveReason(reason) {
				return writeErr(cmd, fmt.Errorf("unknown reason %q (expirace|rozbito|chyba|jine)", reason))
			}

			c := app.client()
			box, err := c.BoxByNumber(cmd.Context(), number)
			if err != nil {
				return writeErr(cmd, err)
			}
			req := api.ArchiveRequest{Reason: model.ArchiveReason(reason), Note: note}
			if err := c.ArchiveBox(cmd.Context(), box.ID, req); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"archived": box.Number}})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason code (expirace|rozbito|chyba|jine)")
	cmd.Flags().StringVar(&note, "note", "", "Free-text note")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newBoxesNumbersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "numbers",
		Short: "Show the free GB number pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := app.client().AvailableNumbers(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": nums})
		},
	}
}
