package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// modalWidth clamps the modal to the terminal, leaving a margin.
func modalWidth(termWidth int) int {
	w := termWidth - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

func modalBodyWidth(width int) int {
	return width - 4
}

// renderModalBox draws the standard modal frame: header line, body,
// solid surface background.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW).
		Padding(0, 1).
		Render(content)

	return lipgloss.NewStyle().
		Background(colorSurfaceBg).
		Padding(1, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body))
}

// placeCentered centers the modal on a blank full-screen canvas. The
// base view is not drawn underneath: terminals without proper overlay
// support smear mixed backgrounds.
func placeCentered(modal string, width, height int) string {
	if width < 1 || height < 1 {
		return modal
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func renderConfirmModal(width int, title, body, confirmLabel, cancelLabel string, focus confirmFocus) string {
	// No borders here: some terminals show background artifacts when
	// nesting bordered components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	} else {
		cancel = btnActive.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: přepnout   enter: potvrdit   esc: zrušit")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}
