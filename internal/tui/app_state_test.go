package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sklad-cli/internal/api"
	"sklad-cli/internal/model"
	"sklad-cli/internal/refresh"
)

func testModel() appModel {
	m := newAppModel(api.New("http://127.0.0.1:1", time.Second, nil), zap.NewNop())
	m.booted = true
	m.loading = false
	m.boxes = []model.Box{
		{ID: 1, Number: 5, Person: "Novák", Location: "Hala A", ShelfName: "A1", FillPercent: 90},
		{ID: 2, Number: 9, Person: "Svoboda", Location: "Hala A", ShelfName: "A1", Critical: true},
	}
	m.locations = []model.Location{
		{ID: 1, Name: "Hala A", Shelves: []model.Shelf{{ID: 4, Name: "A1", Dimensions: "3x4"}}},
	}
	return m
}

func testModelWithServer(t *testing.T, handler http.Handler) appModel {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := testModel()
	m.client = api.New(srv.URL, time.Second, nil)
	return m
}

// runCmds executes a command tree the way the runtime would, feeding
// every message back into Update. Timer-backed commands (toast expiry,
// debounce) don't resolve within the timeout and are skipped.
func runCmds(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		out := make(chan tea.Msg, 1)
		go func() { out <- c() }()
		var msg tea.Msg
		select {
		case msg = <-out:
		case <-time.After(500 * time.Millisecond):
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		next, more := m.Update(msg)
		m = next.(appModel)
		queue = append(queue, more)
	}
	return m
}

func warehouseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/gitterboxes/":
			_, _ = w.Write([]byte(`{"status":"success","data":[
				{"id":7,"cislo_gb":42,"zodpovedna_osoba":"Dvořák","pocet_polozek":3}]}`))
		case "/api/statistics":
			_, _ = w.Write([]byte(`{"status":"success","data":{
				"lokace_celkem":1,"regaly_celkem":1,"pozice_celkem":12,
				"pozice_volne":5,"pozice_obsazene":7,"gitterboxes_aktivni":1,
				"obsazenost_procenta":58.3}}`))
		default:
			_, _ = w.Write([]byte(`{"status":"success","data":{
				"regal":{"id":4,"nazev":"A1","rozmer":"3x4"},"pozice":[]}}`))
		}
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTabSwitching(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("2"))
	m = next.(appModel)
	if m.tab != tabSearch {
		t.Fatalf("tab = %v after '2', want search", m.tab)
	}

	// On the search tab digits type into the input; tab key cycles.
	next, _ = m.Update(keyMsg("tab"))
	m = next.(appModel)
	if m.tab != tabAdmin {
		t.Fatalf("tab = %v after tab key, want admin", m.tab)
	}

	next, _ = m.Update(keyMsg("1"))
	m = next.(appModel)
	if m.tab != tabGrid {
		t.Fatalf("tab = %v after '1', want grid", m.tab)
	}
}

func TestEscClosesModalFirst(t *testing.T) {
	m := testModel()
	m.modal = modalBoxDetail
	m.detailBox = m.boxes[0]

	next, _ := m.Update(keyMsg("esc"))
	m = next.(appModel)
	if m.modal != modalNone {
		t.Fatal("esc did not close the modal")
	}
}

func TestStaleBoxResponseDiscarded(t *testing.T) {
	m := testModel()
	m.boxesSeq = 10

	stale := boxesMsg{seq: 9, boxes: []model.Box{{ID: 99, Number: 99}}}
	next, _ := m.Update(stale)
	m = next.(appModel)
	if len(m.boxes) != 2 || m.boxes[0].ID != 1 {
		t.Fatal("stale response overwrote fresher state")
	}

	fresh := boxesMsg{seq: 10, boxes: []model.Box{{ID: 99, Number: 99}}, stats: model.Statistics{FreePositions: 1}}
	next, _ = m.Update(fresh)
	m = next.(appModel)
	if len(m.boxes) != 1 || m.boxes[0].ID != 99 {
		t.Fatal("current response was not applied")
	}
}

func TestDebounceOnlyLatestRuns(t *testing.T) {
	m := testModel()
	m.tab = tabSearch
	m.searchInput.SetValue("nov")
	m.debounceSeq = 7

	// An earlier timer fires after more typing bumped the sequence.
	next, _ := m.Update(searchDebounceMsg{seq: 6})
	m = next.(appModel)
	if len(m.searchResults) != 0 {
		t.Fatal("stale debounce timer ran the search")
	}

	next, _ = m.Update(searchDebounceMsg{seq: 7})
	m = next.(appModel)
	if len(m.searchResults) != 1 || m.searchResults[0].Person != "Novák" {
		t.Fatalf("search results = %+v", m.searchResults)
	}
}

func TestExpandCollapseDoesNotRefetch(t *testing.T) {
	m := testModel()
	m.tab = tabSearch
	m.runSearch()
	m.searchCursor = 0
	boxID := m.searchResults[0].ID
	m.itemCache.Put(boxID, []model.Item{{ID: 1, PartName: "Díl"}})

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(appModel)
	if !m.searchExpanded[boxID] {
		t.Fatal("row did not expand")
	}
	if cmd != nil {
		t.Fatal("expanding a cached row issued a fetch")
	}

	next, cmd = m.Update(keyMsg("enter"))
	m = next.(appModel)
	if m.searchExpanded[boxID] {
		t.Fatal("row did not collapse")
	}
	if cmd != nil {
		t.Fatal("collapsing issued a fetch")
	}
}

func TestToastExpiryBySeq(t *testing.T) {
	m := testModel()
	cmd := m.pushToast("uloženo", false)
	if cmd == nil {
		t.Fatal("no expiry command scheduled")
	}
	seq := m.toasts.visible()[0].seq

	next, _ := m.Update(toastExpireMsg{seq: seq})
	m = next.(appModel)
	if len(m.toasts.visible()) != 0 {
		t.Fatal("toast not dismissed by its own timer")
	}
}

func TestArchivingLastItemKeepsDetailOpen(t *testing.T) {
	m := testModel()
	m.actionSeq = 3

	next, _ := m.Update(actionDoneMsg{seq: 3, label: "Položka vyskladněna", openBox: 1})
	m = next.(appModel)
	if m.modal != modalBoxDetail {
		t.Fatal("detail modal not reopened after item archive")
	}
	if m.detailBox.ID != 1 {
		t.Fatalf("detail box id = %d, want 1", m.detailBox.ID)
	}
}

func TestGridCursorMovement(t *testing.T) {
	m := testModel()
	m.gridShelfIdx = 0
	m.gridShelf = model.Shelf{ID: 4, Dimensions: "3x4"}
	positions := make([]model.Position, 0, 12)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 4; c++ {
			positions = append(positions, model.Position{ID: r*10 + c, Row: r, Col: c})
		}
	}
	m.applyGrid(api.ShelfPositions{Shelf: m.gridShelf, Positions: positions})

	if len(m.gridCells) != 12 {
		t.Fatalf("cells = %d, want 12", len(m.gridCells))
	}

	m.gridCursor = 0
	m.moveGridCursor("right")
	if m.gridCursor != 1 {
		t.Errorf("cursor after right = %d, want 1", m.gridCursor)
	}
	m.moveGridCursor("down")
	if m.gridCursor != 5 {
		t.Errorf("cursor after down = %d, want 5", m.gridCursor)
	}
	m.moveGridCursor("up")
	if m.gridCursor != 1 {
		t.Errorf("cursor after up = %d, want 1", m.gridCursor)
	}
	// Moving past the edge stays put.
	m.gridCursor = 0
	m.moveGridCursor("up")
	if m.gridCursor != 0 {
		t.Errorf("cursor escaped the grid: %d", m.gridCursor)
	}
}

func TestRecentListFromDetailView(t *testing.T) {
	m := testModel()

	next, _ := m.openBoxDetail(1)
	m = next.(appModel)
	next, _ = m.Update(keyMsg("esc"))
	m = next.(appModel)
	next, _ = m.openBoxDetail(2)
	m = next.(appModel)

	recent := m.recent.Items()
	if len(recent) != 2 || recent[0].ID != 2 || recent[1].ID != 1 {
		t.Fatalf("recent = %+v", recent)
	}
}

func TestRefreshReloadsBoxes(t *testing.T) {
	m := testModelWithServer(t, warehouseHandler())

	next, cmd := m.Update(keyMsg("r"))
	m = runCmds(t, next.(appModel), cmd)

	if len(m.boxes) != 1 || m.boxes[0].Number != 42 {
		t.Fatalf("boxes not reloaded: %+v", m.boxes)
	}
	if m.stats.FreePositions != 5 || m.stats.TotalPositions != 12 {
		t.Fatalf("statistics not reloaded: %+v", m.stats)
	}
}

func TestActionSuccessReloadsBoxes(t *testing.T) {
	m := testModelWithServer(t, warehouseHandler())
	m.actionSeq = 3

	next, cmd := m.Update(actionDoneMsg{seq: 3, label: "GB #5 uložen", topic: refresh.Boxes})
	m = runCmds(t, next.(appModel), cmd)

	if len(m.boxes) != 1 || m.boxes[0].Number != 42 {
		t.Fatalf("boxes not reloaded after action: %+v", m.boxes)
	}
	if m.stats.FreePositions != 5 {
		t.Fatalf("statistics not reloaded after action: %+v", m.stats)
	}
}

func TestPersonFilterCycle(t *testing.T) {
	m := testModel()
	m.tab = tabSearch

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = next.(appModel)
	if m.searchPerson != "Novák" {
		t.Fatalf("searchPerson = %q, want Novák", m.searchPerson)
	}
	if len(m.searchResults) != 1 || m.searchResults[0].ID != 1 {
		t.Fatalf("results = %+v", m.searchResults)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = next.(appModel)
	if m.searchPerson != "Svoboda" {
		t.Fatalf("searchPerson = %q, want Svoboda", m.searchPerson)
	}

	// Cycling past the last option clears the filter.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = next.(appModel)
	if m.searchPerson != "" || len(m.searchResults) != 2 {
		t.Fatalf("filter not cleared: %q, %d results", m.searchPerson, len(m.searchResults))
	}
}

func TestProjectFilterFromCachedItems(t *testing.T) {
	m := testModel()
	m.tab = tabSearch
	m.itemCache.Put(1, []model.Item{{ID: 10, PartName: "Čidlo", Project: "Alfa"}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = next.(appModel)
	if m.searchProject != "Alfa" {
		t.Fatalf("searchProject = %q, want Alfa", m.searchProject)
	}
	if len(m.searchResults) != 1 || m.searchResults[0].ID != 1 {
		t.Fatalf("results = %+v", m.searchResults)
	}

	next, _ = m.Update(keyMsg("esc"))
	m = next.(appModel)
	if m.searchProject != "" || len(m.searchResults) != 2 {
		t.Fatalf("esc did not clear the project filter")
	}
}

func TestSpinnerTicksOnlyWhileSubmitting(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(m.spin.Tick())
	if cmd != nil {
		t.Fatal("spinner kept ticking with no submit in flight")
	}

	m.boxForm = &boxForm{submitting: true}
	_, cmd = m.Update(m.spin.Tick())
	if cmd == nil {
		t.Fatal("spinner did not tick during submit")
	}
}
