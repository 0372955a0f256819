package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.healthErr != "" {
		return m.viewErrorScreen()
	}
	if m.loading || !m.booted {
		return styleMuted().Render("Načítám sklad…")
	}

	header := m.viewHeader()

	var body string
	switch m.tab {
	case tabGrid:
		body = m.viewGridTab()
	case tabSearch:
		body = m.viewSearchTab()
	case tabAdmin:
		body = m.viewAdminTab()
	}

	footer := m.viewFooter()
	base := strings.Join([]string{header, body, footer}, "\n\n")

	if m.modal != modalNone {
		return m.overlayModal()
	}

	if t := renderToasts(&m.toasts, m.width); t != "" {
		return base + "\n" + t
	}
	return base
}

func (m appModel) viewErrorScreen() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorError).Render("Server nedostupný")
	body := m.healthErr
	help := styleMuted().Render("r: zkusit znovu   q: konec")
	return strings.Join([]string{"", title, "", body, "", help}, "\n")
}

func (m appModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render("Sklad Gitterboxů")
	items, critical := 0, 0
	for _, b := range m.boxes {
		items += b.ItemCount
		if b.Critical {
			critical++
		}
	}
	stats := styleMuted().Render(fmt.Sprintf("GB: %d  Položky: %d  Volné pozice: %d/%d  Kritické: %d",
		len(m.boxes), items, m.stats.FreePositions, m.stats.TotalPositions, critical))

	tabActive := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Padding(0, 1)
	tabInactive := lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)

	var tabs []string
	for i := tabGrid; i <= tabAdmin; i++ {
		label := fmt.Sprintf("%d %s", int(i)+1, tabTitle(i))
		if i == m.tab {
			tabs = append(tabs, tabActive.Render(label))
		} else {
			tabs = append(tabs, tabInactive.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", stats),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m appModel) viewFooter() string {
	var help string
	switch m.tab {
	case tabGrid:
		help = "l: lokace  s: regál  šipky: výběr  enter: otevřít  n: nový GB  r: obnovit  tab: záložka  q: konec"
	case tabSearch:
		help = "enter: rozbalit  ctrl+f: stav  ctrl+l: lokace  ctrl+p: osoba  ctrl+o: projekt  ctrl+e/x: export  ctrl+r: obnovit  esc: vyčistit"
	case tabAdmin:
		help = "šipky: výběr  n: nový regál  e: upravit  d: smazat  r: obnovit  tab: záložka  q: konec"
	}
	return styleMuted().Render(help)
}

func (m appModel) overlayModal() string {
	w := modalWidth(m.width)
	var modal string
	switch m.modal {
	case modalBoxDetail:
		modal = m.viewBoxDetail(w)
	case modalBoxForm:
		modal = m.viewBoxForm(w)
	case modalItemForm:
		modal = m.viewItemForm(w)
	case modalArchive:
		modal = m.viewArchiveForm(w)
	case modalShelfForm:
		modal = m.viewShelfForm(w)
	case modalConfirmDeleteShelf:
		modal = renderConfirmModal(w,
			"Smazat regál",
			fmt.Sprintf("Opravdu smazat regál %s? Tato akce je nevratná.", m.adminShelf.Name),
			"Smazat", "Zrušit", m.confirmFoc)
	}

	out := placeCentered(modal, m.width, m.height)
	if t := renderToasts(&m.toasts, m.width); t != "" {
		out += "\n" + t
	}
	return out
}
