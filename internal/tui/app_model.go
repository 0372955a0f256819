package tui

import (
	"go.uber.org/zap"

	"sklad-cli/internal/api"
	"sklad-cli/internal/cache"
	"sklad-cli/internal/grid"
	"sklad-cli/internal/model"
	"sklad-cli/internal/refresh"
	"sklad-cli/internal/search"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

const recentBoxLimit = 10

type appModel struct {
	client *api.Client
	log    *zap.Logger
	hub    *refresh.Hub

	width  int
	height int

	// Startup: the health check gates everything else. healthErr set
	// means the error screen with a retry key is showing.
	booted    bool
	healthErr string
	loading   bool

	tab tab

	stats     model.Statistics
	locations []model.Location
	boxes     []model.Box

	// Grid tab.
	gridLocIdx   int
	gridShelfIdx int // -1 = "all shelves" overview
	gridCursor   int // index into gridCells
	gridCells    []grid.Cell
	gridShelf    model.Shelf

	positionCache *cache.Cache[int, api.ShelfPositions]
	itemCache     *cache.Cache[int, []model.Item]
	recent        *cache.Recent[model.Box]

	// Search tab.
	searchInput    textinput.Model
	searchQuery    search.Query
	searchResults  []model.Box
	searchCursor   int
	searchExpanded map[int]bool // box id -> expanded
	searchStatus   string
	searchPerson   string
	searchLocation string
	searchProject  string

	// Admin tab.
	adminCursor int
	adminShelf  model.Shelf // target of edit/delete

	// Modal state: one active modal, Esc closes it before anything else.
	modal       modalKind
	detailBox   model.Box
	detailItems []model.Item
	detailLoading bool
	detailItemIdx int
	boxForm     *boxForm
	itemForm    *itemForm
	archForm    *archiveForm
	shForm      *shelfForm
	confirmFoc  confirmFocus
	numbers     model.AvailableNumbers
	reasons     map[string]string
	spin        spinner.Model

	toasts toastQueue

	// Monotonic per-concern sequence numbers for discarding stale
	// async responses.
	seq          int
	bootSeq      int
	boxesSeq     int
	gridSeq      int
	detailSeq    int
	searchSeq    int
	debounceSeq  int
	actionSeq    int
	numbersSeq   int
	reasonsSeq   int
	locationsSeq int
}

func newAppModel(client *api.Client, logger *zap.Logger) appModel {
	m := appModel{
		client:        client,
		log:           logger,
		hub:           refresh.NewHub(),
		tab:           tabGrid,
		gridShelfIdx:  -1,
		positionCache: cache.New[int, api.ShelfPositions](),
		itemCache:     cache.New[int, []model.Item](),
		recent:        cache.NewRecent[model.Box](recentBoxLimit, func(b model.Box) int { return b.ID }),
		searchExpanded: map[int]bool{},
		loading:       true,
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Hledat číslo, osobu, poznámku…"
	m.searchInput.CharLimit = 100
	m.searchInput.Focus()

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	return m
}

// anySubmitting reports whether a form submit is in flight. The
// spinner only ticks while one is.
func (m *appModel) anySubmitting() bool {
	return (m.boxForm != nil && m.boxForm.submitting) ||
		(m.itemForm != nil && m.itemForm.submitting) ||
		(m.archForm != nil && m.archForm.submitting) ||
		(m.shForm != nil && m.shForm.submitting)
}

func (m *appModel) nextSeq() int {
	m.seq++
	return m.seq
}

// currentShelves returns the shelves of the selected location.
func (m *appModel) currentShelves() []model.Shelf {
	if m.gridLocIdx < 0 || m.gridLocIdx >= len(m.locations) {
		return nil
	}
	return m.locations[m.gridLocIdx].Shelves
}

func (m *appModel) allShelves() []model.Shelf {
	var out []model.Shelf
	for _, loc := range m.locations {
		out = append(out, loc.Shelves...)
	}
	return out
}

// criticalBoxes feeds the side panel.
func (m *appModel) criticalBoxes() []model.Box {
	var out []model.Box
	for _, b := range m.boxes {
		if b.Critical {
			out = append(out, b)
		}
	}
	return out
}

// cachedProjects lists project names across every box whose items are
// loaded. The project filter can only offer what the item cache has
// seen; expanding rows or opening details grows the option list.
func (m *appModel) cachedProjects() []string {
	var all []model.Item
	for _, id := range m.itemCache.Keys() {
		if items, ok := m.itemCache.Get(id); ok {
			all = append(all, items...)
		}
	}
	return search.DistinctProjects(all)
}

func (m *appModel) boxByID(id int) (model.Box, bool) {
	for _, b := range m.boxes {
		if b.ID == id {
			return b, true
		}
	}
	return model.Box{}, false
}

// pushRecent records a viewed box for the side panel list.
func (m *appModel) pushRecent(b model.Box) {
	m.recent.Add(b)
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.boxForm = nil
	m.itemForm = nil
	m.archForm = nil
	m.shForm = nil
	m.detailItems = nil
	m.detailLoading = false
	m.detailItemIdx = 0
	m.confirmFoc = confirmFocusConfirm
}

// runSearch re-filters the cached box set with the current query. The
// project filter consults the item cache; boxes whose items are not
// loaded are excluded until expanded.
func (m *appModel) runSearch() {
	q := m.searchQuery
	q.Text = m.searchInput.Value()
	q.Status = m.searchStatus
	q.Person = m.searchPerson
	q.Location = m.searchLocation
	q.Project = m.searchProject
	m.searchQuery = q

	lookup := func(boxID int) ([]model.Item, bool) {
		return m.itemCache.Get(boxID)
	}
	m.searchResults = search.Filter(m.boxes, q, lookup)
	if m.searchCursor >= len(m.searchResults) {
		m.searchCursor = 0
	}
}
