package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func fieldLabel(label string, focused bool) string {
	st := lipgloss.NewStyle().Width(16)
	if focused {
		st = st.Bold(true).Foreground(colorAccent)
	}
	return st.Render(label)
}

func renderPicker(p *picker, focused bool) string {
	sel, ok := p.selected()
	text := "‹ vyberte ›"
	if ok {
		text = sel.label
	} else if len(p.options) == 0 {
		text = "—"
	}
	st := lipgloss.NewStyle().Padding(0, 1).Background(colorControlBg).Foreground(colorSurfaceFg)
	if focused {
		st = st.Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
		text = "↕ " + text
	}
	return st.Render(text)
}

func renderToggle(on bool, focused bool) string {
	text := "[ ] ne"
	if on {
		text = "[x] ano"
	}
	st := lipgloss.NewStyle()
	if focused {
		st = st.Bold(true).Foreground(colorAccent)
		text += "  (mezerník přepne)"
	}
	return st.Render(text)
}

func renderSubmit(label string, focused, submitting bool, spin string) string {
	if submitting {
		return styleMuted().Render(spin + " Ukládám…")
	}
	st := lipgloss.NewStyle().Padding(0, 2).Background(colorControlBg).Foreground(colorSurfaceFg)
	if focused {
		st = st.Background(colorAccent).Foreground(colorAccentFg).Bold(true)
	}
	return st.Render(label)
}

func renderFormError(errText string, width int) string {
	if errText == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(colorError).Width(width).Render(errText)
}

func (m appModel) viewBoxForm(width int) string {
	f := m.boxForm
	if f == nil {
		return ""
	}
	bodyW := modalBodyWidth(width)

	title := "Naskladnit Gitterbox"
	var rows []string

	if f.mode == formCreate {
		rows = append(rows, fieldLabel("Číslo GB", f.focus == boxFocusNumber)+
			renderPicker(&f.numberPick, f.focus == boxFocusNumber))
	} else {
		title = fmt.Sprintf("Upravit GB #%d", f.number)
		rows = append(rows, fieldLabel("Číslo GB", false)+
			styleMuted().Render(fmt.Sprintf("#%d (nelze měnit)", f.number)))
	}

	rows = append(rows,
		fieldLabel("Osoba", f.focus == boxFocusPerson)+f.person.View(),
		fieldLabel("Lokace", f.focus == boxFocusLocation)+renderPicker(&f.locationPick, f.focus == boxFocusLocation),
		fieldLabel("Regál", f.focus == boxFocusShelf)+renderPicker(&f.shelfPick, f.focus == boxFocusShelf),
		fieldLabel("Pozice", f.focus == boxFocusPosition)+renderPicker(&f.positionPick, f.focus == boxFocusPosition),
		fieldLabel("Naplněnost %", f.focus == boxFocusFill)+f.fill.View(),
		fieldLabel("Poznámka", f.focus == boxFocusNote),
		f.note.View(),
		"",
		renderSubmit("Uložit", f.focus == boxFocusSubmit, f.submitting, m.spin.View()),
	)

	if e := renderFormError(f.errText, bodyW); e != "" {
		rows = append(rows, "", e)
	}
	rows = append(rows, "", styleMuted().Width(bodyW).Render("tab: další pole  ↑/↓: výběr  enter: potvrdit  esc: zavřít"))

	return renderModalBox(width, title, strings.Join(rows, "\n"))
}

func (m appModel) viewItemForm(width int) string {
	f := m.itemForm
	if f == nil {
		return ""
	}
	bodyW := modalBodyWidth(width)

	title := "Přidat položku"
	if f.mode == formEdit {
		title = "Upravit položku"
	}

	tmaRow := fieldLabel("TMA číslo", f.focus == itemFocusTMA) +
		"EU-SVA-" + f.tma.View() + "-25"

	rows := []string{
		tmaRow,
		fieldLabel("Název dílu", f.focus == itemFocusName) + f.name.View(),
		fieldLabel("Projekt", f.focus == itemFocusProject) + f.project.View(),
		fieldLabel("Počet kusů", f.focus == itemFocusQty) + f.qty.View(),
		fieldLabel("Jednotka", f.focus == itemFocusUnit) + f.unit.View(),
		fieldLabel("Sledovat exp.", f.focus == itemFocusTrack) + renderToggle(f.track, f.focus == itemFocusTrack),
		fieldLabel("Expirace", f.focus == itemFocusExpiry) + f.expiry.View(),
		fieldLabel("Poznámka", f.focus == itemFocusNote),
		f.note.View(),
		"",
		renderSubmit("Uložit", f.focus == itemFocusSubmit, f.submitting, m.spin.View()),
	}

	if e := renderFormError(f.errText, bodyW); e != "" {
		rows = append(rows, "", e)
	}
	rows = append(rows, "", styleMuted().Width(bodyW).Render("tab: další pole  enter: potvrdit  esc: zavřít"))

	return renderModalBox(width, title, strings.Join(rows, "\n"))
}

func (m appModel) viewArchiveForm(width int) string {
	f := m.archForm
	if f == nil {
		return ""
	}
	bodyW := modalBodyWidth(width)

	title := "Vyskladnit položku"
	warn := "Položka bude trvale vyskladněna."
	if f.wholeBox() {
		title = "Vyskladnit " + f.boxLabel
		warn = "Celý Gitterbox včetně všech položek bude trvale vyskladněn a pozice uvolněna."
	}

	rows := []string{
		lipgloss.NewStyle().Foreground(colorError).Bold(true).Width(bodyW).Render("⚠ " + warn + " Akce je nevratná."),
		"",
		fieldLabel("Důvod", f.focus == archiveFocusReason) + renderPicker(&f.reasonPick, f.focus == archiveFocusReason),
		fieldLabel("Poznámka", f.focus == archiveFocusNote),
		f.note.View(),
		"",
		renderSubmit("Vyskladnit", f.focus == archiveFocusSubmit, f.submitting, m.spin.View()),
	}

	if e := renderFormError(f.errText, bodyW); e != "" {
		rows = append(rows, "", e)
	}
	rows = append(rows, "", styleMuted().Width(bodyW).Render("tab: další pole  ↑/↓: důvod  enter: potvrdit  esc: zavřít"))

	return renderModalBox(width, title, strings.Join(rows, "\n"))
}

func (m appModel) viewShelfForm(width int) string {
	f := m.shForm
	if f == nil {
		return ""
	}
	bodyW := modalBodyWidth(width)

	title := "Nový regál"
	var rows []string
	if f.mode == formCreate {
		rows = append(rows, fieldLabel("Lokace", f.focus == shelfFocusLocation)+
			renderPicker(&f.locationPick, f.focus == shelfFocusLocation))
	} else {
		title = "Upravit regál " + m.adminShelf.Name
	}

	rows = append(rows,
		fieldLabel("Název", f.focus == shelfFocusName)+f.name.View(),
		fieldLabel("Řádky", f.focus == shelfFocusRows)+f.rows.View(),
		fieldLabel("Sloupce", f.focus == shelfFocusCols)+f.cols.View(),
		fieldLabel("Typ", f.focus == shelfFocusType)+renderPicker(&f.typePick, f.focus == shelfFocusType),
		"",
		renderSubmit("Uložit", f.focus == shelfFocusSubmit, f.submitting, m.spin.View()),
	)

	if e := renderFormError(f.errText, bodyW); e != "" {
		rows = append(rows, "", e)
	}
	rows = append(rows, "", styleMuted().Width(bodyW).Render("tab: další pole  ↑/↓: výběr  enter: potvrdit  esc: zavřít"))

	return renderModalBox(width, title, strings.Join(rows, "\n"))
}
