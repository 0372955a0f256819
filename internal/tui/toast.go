package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	toastSuccessTTL = 3 * time.Second
	toastErrorTTL   = 5 * time.Second
)

type toast struct {
	seq   int
	text  string
	isErr bool
}

// toastQueue keeps the currently visible toasts. Each toast gets its
// own sequence number, so an expiry timer started for an old toast can
// never dismiss a newer one.
type toastQueue struct {
	toasts  []toast
	nextSeq int
}

func (q *toastQueue) push(text string, isErr bool) (seq int, ttl time.Duration) {
	q.nextSeq++
	q.toasts = append(q.toasts, toast{seq: q.nextSeq, text: text, isErr: isErr})
	if isErr {
		return q.nextSeq, toastErrorTTL
	}
	return q.nextSeq, toastSuccessTTL
}

func (q *toastQueue) expire(seq int) {
	for i, t := range q.toasts {
		if t.seq == seq {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

func (q *toastQueue) visible() []toast { return q.toasts }

func expireToastAfter(seq int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg { return toastExpireMsg{seq: seq} })
}

func renderToasts(q *toastQueue, width int) string {
	if len(q.toasts) == 0 {
		return ""
	}
	success := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorSuccess).
		Padding(0, 1)
	failure := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(colorError).
		Padding(0, 1)

	lines := make([]string, 0, len(q.toasts))
	for _, t := range q.toasts {
		st := success
		if t.isErr {
			st = failure
		}
		lines = append(lines, st.MaxWidth(width).Render(t.text))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}
