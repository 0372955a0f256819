package tui

import (
	"sklad-cli/internal/api"
	"sklad-cli/internal/model"
	"sklad-cli/internal/refresh"
)

type tab int

const (
	tabGrid tab = iota
	tabSearch
	tabAdmin
)

func tabTitle(t tab) string {
	switch t {
	case tabGrid:
		return "Regály"
	case tabSearch:
		return "Vyhledávání"
	case tabAdmin:
		return "Správa"
	default:
		return "?"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalBoxDetail
	modalBoxForm
	modalItemForm
	modalArchive
	modalShelfForm
	modalConfirmDeleteShelf
)

// Async fetch results. Every message carries the sequence number the
// request was issued with; stale responses are discarded in Update so a
// slow reply never overwrites fresher state.

type healthMsg struct {
	seq int
	err error
}

type bootstrapMsg struct {
	seq       int
	locations []model.Location
	boxes     []model.Box
	stats     model.Statistics
	err       error
}

type boxesMsg struct {
	seq   int
	boxes []model.Box
	stats model.Statistics
	err   error
}

type positionsMsg struct {
	seq     int
	shelfID int
	data    api.ShelfPositions
	err     error
}

type boxItemsMsg struct {
	seq   int
	boxID int
	data  api.BoxItems
	err   error
}

type numbersMsg struct {
	seq  int
	data model.AvailableNumbers
	err  error
}

type reasonsMsg struct {
	seq  int
	data map[string]string
	err  error
}

type locationsMsg struct {
	seq       int
	locations []model.Location
	err       error
}

// actionDoneMsg reports a mutation (create/edit/archive/delete).
type actionDoneMsg struct {
	seq     int
	label   string
	topic   refresh.Topic
	openBox int // when > 0, reopen this box's detail after refresh
	err     error
}

type toastExpireMsg struct{ seq int }

type exportDoneMsg struct {
	path string
	err  error
}

type searchDebounceMsg struct{ seq int }

type clipboardDoneMsg struct{ err error }

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)
