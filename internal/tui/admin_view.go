package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewAdminTab lists every shelf with its occupancy; the cursor picks
// the target for edit and delete.
func (m appModel) viewAdminTab() string {
	title := lipgloss.NewStyle().Bold(true).Render("Správa regálů")

	var rows []string
	i := 0
	for _, loc := range m.locations {
		for _, s := range loc.Shelves {
			line := fmt.Sprintf("%s / %s  %s  %s", loc.Name, s.Name, s.Dimensions, s.Type)
			if s.Statistics != nil {
				line += fmt.Sprintf("  (%d/%d obsazeno, %.0f %%)",
					s.Statistics.OccupiedPositions, s.Statistics.TotalPositions,
					s.Statistics.OccupancyPercentage)
			}
			st := lipgloss.NewStyle()
			if i == m.adminCursor {
				st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
			}
			rows = append(rows, st.Render(line))
			i++
		}
	}
	if len(rows) == 0 {
		rows = append(rows, styleMuted().Render("Žádné regály"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(rows, "\n"))
}
