package tui

import (
	"go.uber.org/zap"

	"sklad-cli/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(client *api.Client, logger *zap.Logger) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(client, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
