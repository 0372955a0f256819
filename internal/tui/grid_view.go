package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"sklad-cli/internal/grid"
)

const gridCellWidth = 9

// viewGridTab renders the Regály tab: pickers, the shelf grid (or the
// all-shelves overview) and the side panel.
func (m appModel) viewGridTab() string {
	selector := m.viewGridSelector()

	var body string
	if m.gridOverviewActive() {
		body = m.viewGridOverview()
	} else {
		body = m.viewShelfGrid()
	}

	left := lipgloss.JoinVertical(lipgloss.Left, selector, "", body)
	side := m.viewSidePanel()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", side)
}

func (m appModel) viewGridSelector() string {
	loc := "—"
	if m.gridLocIdx < len(m.locations) {
		loc = m.locations[m.gridLocIdx].Name
	}
	shelf := "všechny regály"
	shelves := m.currentShelves()
	if !m.gridOverviewActive() && m.gridShelfIdx < len(shelves) {
		s := shelves[m.gridShelfIdx]
		shelf = s.Name
		if s.Dimensions != "" {
			shelf += " (" + s.Dimensions + ")"
		}
	}
	label := lipgloss.NewStyle().Bold(true)
	return fmt.Sprintf("%s %s   %s %s",
		label.Render("Lokace:"), loc,
		label.Render("Regál:"), shelf)
}

// viewShelfGrid draws one shelf, bottom row last so position 1-1 lands
// bottom-left.
func (m appModel) viewShelfGrid() string {
	if len(m.gridCells) == 0 {
		return styleMuted().Render("Načítám pozice…")
	}
	_, cols := m.gridShelf.Size()
	rows := grid.RowSlices(m.gridCells, cols)

	var lines []string
	for _, row := range rows {
		var cells []string
		for _, c := range row {
			idx := cellIndex(m.gridCells, c)
			cells = append(cells, m.renderCell(c, idx == m.gridCursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	info := ""
	if m.gridCursor < len(m.gridCells) {
		info = grid.Tooltip(m.gridCells[m.gridCursor])
	}
	gridBlock := strings.Join(lines, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, gridBlock, "", info)
}

func cellIndex(cells []grid.Cell, c grid.Cell) int {
	for i := range cells {
		if cells[i].Row == c.Row && cells[i].Col == c.Col {
			return i
		}
	}
	return -1
}

func (m appModel) renderCell(c grid.Cell, cursor bool) string {
	label := c.Label()
	if c.Kind == grid.CellOccupied && c.Box != nil {
		label = fmt.Sprintf("#%d %d%%", c.Box.Number, c.Box.FillPercent)
	}
	label = padCell(label, gridCellWidth-2)

	st := lipgloss.NewStyle().Padding(0, 0).Margin(0, 1, 0, 0)
	switch c.Kind {
	case grid.CellFree:
		st = st.Foreground(colorCellFree)
	case grid.CellHole:
		st = st.Foreground(colorMuted).Faint(true)
	case grid.CellOccupied:
		switch {
		case c.Box != nil && c.Box.Critical:
			st = st.Foreground(colorCellCritical).Bold(true)
		case c.Underfilled():
			// Underfilled boxes get the hatched look: dimmer color
			// plus the fill percentage already in the label.
			st = st.Foreground(colorCellUnderfill)
		default:
			st = st.Foreground(colorCellOccupied)
		}
	}
	if cursor {
		st = st.Foreground(colorCellCursorFg).Background(colorCellCursorBg).Bold(true)
	}
	return st.Render("[" + label + "]")
}

func padCell(s string, w int) string {
	lw := xansi.StringWidth(s)
	if lw > w {
		return xansi.Cut(s, 0, w)
	}
	return s + strings.Repeat(" ", w-lw)
}

// viewGridOverview stacks a compact grid for every shelf of every
// location, driven by the shared position cache.
func (m appModel) viewGridOverview() string {
	var blocks []string
	for _, loc := range m.locations {
		for _, s := range loc.Shelves {
			title := lipgloss.NewStyle().Bold(true).Render(loc.Name + " / " + s.Name)
			sp, ok := m.positionCache.Get(s.ID)
			if !ok {
				blocks = append(blocks, title+"\n"+styleMuted().Render("…"))
				continue
			}
			cells := grid.Compute(sp.Shelf, sp.Positions)
			_, cols := sp.Shelf.Size()
			var lines []string
			for _, row := range grid.RowSlices(cells, cols) {
				var cs []string
				for _, c := range row {
					cs = append(cs, m.renderCell(c, false))
				}
				lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cs...))
			}
			occupied := grid.Occupied(cells)
			sum := styleMuted().Render(fmt.Sprintf("%d/%d obsazeno", occupied, len(cells)))
			blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), sum))
		}
	}
	if len(blocks) == 0 {
		return styleMuted().Render("Žádné regály")
	}
	return strings.Join(blocks, "\n\n")
}

// viewSidePanel lists critical-expiry boxes and recently viewed ones.
func (m appModel) viewSidePanel() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorCellCritical)
	var parts []string

	crit := m.criticalBoxes()
	parts = append(parts, title.Render("⚠ Kritické expirace"))
	if len(crit) == 0 {
		parts = append(parts, styleMuted().Render("žádné"))
	}
	for _, b := range crit {
		parts = append(parts, fmt.Sprintf("%s  %s", b.Label(), b.Person))
	}

	parts = append(parts, "", lipgloss.NewStyle().Bold(true).Render("Naposledy zobrazené"))
	recent := m.recent.Items()
	if len(recent) == 0 {
		parts = append(parts, styleMuted().Render("žádné"))
	}
	for _, b := range recent {
		parts = append(parts, b.Label())
	}

	return strings.Join(parts, "\n")
}
