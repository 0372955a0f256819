package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewBoxDetail renders the box detail modal: metadata, markdown note,
// item list with cursor, action help.
func (m appModel) viewBoxDetail(width int) string {
	b := m.detailBox
	bodyW := modalBodyWidth(width)

	meta := []string{
		fmt.Sprintf("Osoba: %s", b.Person),
		fmt.Sprintf("Umístění: %s / %s / %d-%d", b.Location, b.ShelfName, b.Row, b.Col),
		fmt.Sprintf("Naplněnost: %d %%   Stav: %s", b.FillPercent, b.DisplayStatus()),
	}
	if b.Critical {
		meta = append(meta, lipgloss.NewStyle().Foreground(colorCellCritical).Bold(true).
			Render("⚠ Kritická expirace"))
	}

	var note string
	if b.Note != "" {
		note = renderMarkdown(b.Note, bodyW-2)
	}

	itemsTitle := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Položky (%d)", len(m.detailItems)))
	var itemLines []string
	switch {
	case m.detailLoading:
		itemLines = append(itemLines, styleMuted().Render("načítám…"))
	case len(m.detailItems) == 0:
		itemLines = append(itemLines, styleMuted().Render("žádné položky"))
	default:
		for i, it := range m.detailItems {
			line := fmt.Sprintf("%s  %d %s", it.PartName, it.Quantity, it.Unit)
			if it.TMANumber != "" {
				line += "  " + it.TMANumber
			}
			if it.TrackExpiry && it.ExpiryDate != "" {
				line += "  exp. " + it.ExpiryDate
			}
			st := lipgloss.NewStyle()
			if it.DaysToExpiry != nil && *it.DaysToExpiry <= 30 {
				st = st.Foreground(colorCellCritical)
			}
			if i == m.detailItemIdx {
				st = st.Foreground(colorSelectedFg).Background(colorSelectedBg)
			}
			itemLines = append(itemLines, st.Render(line))
		}
	}

	help := styleMuted().Width(bodyW).Render(
		"e: upravit GB  a: přidat položku  i: upravit položku  x: vyskladnit položku  X: vyskladnit GB  c: kopírovat  esc: zavřít")

	parts := []string{strings.Join(meta, "\n")}
	if note != "" {
		parts = append(parts, note)
	}
	parts = append(parts, itemsTitle+"\n"+strings.Join(itemLines, "\n"), help)

	return renderModalBox(width, b.Label(), strings.Join(parts, "\n\n"))
}
