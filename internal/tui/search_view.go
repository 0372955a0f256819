package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewSearchTab() string {
	input := m.searchInput.View()

	filters := styleMuted().Render(fmt.Sprintf("Stav: %s   Lokace: %s   Osoba: %s   Projekt: %s",
		orDash(m.searchStatus), orDash(m.searchLocation),
		orDash(m.searchPerson), orDash(m.searchProject)))

	count := styleMuted().Render(fmt.Sprintf("%d výsledků", len(m.searchResults)))

	var rows []string
	for i, b := range m.searchResults {
		rows = append(rows, m.renderSearchRow(b.ID, i))
	}
	if len(rows) == 0 {
		rows = append(rows, styleMuted().Render("Nic nenalezeno"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		input, filters, count, "",
		strings.Join(rows, "\n"),
	)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (m appModel) renderSearchRow(boxID, idx int) string {
	b := m.searchResults[idx]
	selected := idx == m.searchCursor

	marker := "▸"
	if m.searchExpanded[boxID] {
		marker = "▾"
	}
	line := fmt.Sprintf("%s %s  %s  %s/%s %d-%d  %d%%  %s",
		marker, b.Label(), b.Person, b.Location, b.ShelfName, b.Row, b.Col,
		b.FillPercent, b.DisplayStatus())

	st := lipgloss.NewStyle()
	if b.Critical {
		st = st.Foreground(colorCellCritical)
	}
	if selected {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	out := st.Render(line)

	if !m.searchExpanded[boxID] {
		return out
	}

	// Expanded row: per-box item list from the cache. A cache miss
	// means the fetch is still in flight.
	items, ok := m.itemCache.Get(boxID)
	if !ok {
		return out + "\n" + styleMuted().Render("    načítám položky…")
	}
	if len(items) == 0 {
		return out + "\n" + styleMuted().Render("    žádné položky")
	}
	var lines []string
	for _, it := range items {
		l := fmt.Sprintf("    %s  %d %s", it.PartName, it.Quantity, it.Unit)
		if it.TMANumber != "" {
			l += "  " + it.TMANumber
		}
		if it.Project != "" {
			l += "  [" + it.Project + "]"
		}
		if it.DaysToExpiry != nil {
			l += fmt.Sprintf("  expirace za %d dní", *it.DaysToExpiry)
		}
		lines = append(lines, l)
	}
	return out + "\n" + strings.Join(lines, "\n")
}
