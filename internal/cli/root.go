package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sklad-cli/internal/api"
	"sklad-cli/internal/config"
	"sklad-cli/internal/logging"
	"sklad-cli/internal/tui"
)

type App struct {
	APIURL     string
	Timeout    time.Duration
	PrettyJSON bool
	LogFile    string
}

func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	app := &App{}

	cmd := &cobra.Command{
		Use:          "sklad",
		Short:        "Gitterbox warehouse CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  sklad

  # Scriptable commands
  sklad boxes list
  sklad search --person Novák

  # Direct box lookup (shortcut for: sklad boxes show <number>)
  sklad 42
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", cfg.APIURL, "Warehouse API base URL")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log", cfg.LogFile, "Log file path (empty disables logging)")

	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newBoxesCmd(app))
	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newShelvesCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

func runTUI(app *App) error {
	logger, err := logging.New(app.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return tui.Run(api.New(app.APIURL, app.Timeout, logger), logger)
}

func (app *App) client() *api.Client {
	logger, err := logging.New(app.LogFile)
	if err != nil {
		logger, _ = logging.New("")
	}
	return api.New(app.APIURL, app.Timeout, logger)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
