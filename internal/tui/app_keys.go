package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sklad-cli/internal/api"
	"sklad-cli/internal/grid"
	"sklad-cli/internal/model"
	"sklad-cli/internal/refresh"
	"sklad-cli/internal/search"
)

func (m appModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Error screen: only retry and quit work.
	if m.healthErr != "" {
		switch key {
		case "r":
			m.healthErr = ""
			m.loading = true
			m.bootSeq = m.nextSeq()
			return m, m.checkHealthCmd(m.bootSeq)
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if !m.booted {
		return m, nil
	}

	// An open modal takes every key; Esc closes it before anything else.
	if m.modal != modalNone {
		return m.onModalKey(msg)
	}

	switch key {
	case "tab":
		m.tab = (m.tab + 1) % 3
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + 2) % 3
		return m, nil
	}

	// The search tab owns plain characters for its input.
	if m.tab == tabSearch {
		return m.onSearchKey(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "1":
		m.tab = tabGrid
		return m, nil
	case "2":
		m.tab = tabSearch
		return m, nil
	case "3":
		m.tab = tabAdmin
		return m, nil
	case "r":
		return m.refreshActiveTab()
	}

	switch m.tab {
	case tabGrid:
		return m.onGridKey(msg)
	case tabAdmin:
		return m.onAdminKey(msg)
	}
	return m, nil
}

// refreshActiveTab reloads the active tab's data, clearing its caches
// but preserving the current selection.
func (m appModel) refreshActiveTab() (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabGrid:
		m.positionCache.InvalidateAll()
		m.boxesSeq = m.nextSeq()
		return m, tea.Batch(m.fetchBoxesCmd(m.boxesSeq), m.loadGridCmd())
	case tabSearch:
		m.itemCache.InvalidateAll()
		m.boxesSeq = m.nextSeq()
		cmds := []tea.Cmd{m.fetchBoxesCmd(m.boxesSeq)}
		// Re-fetch items for expanded rows so they stay expanded with
		// fresh data.
		m.searchSeq = m.nextSeq()
		for id, open := range m.searchExpanded {
			if open {
				cmds = append(cmds, m.fetchBoxItemsCmd(m.searchSeq, id))
			}
		}
		return m, tea.Batch(cmds...)
	case tabAdmin:
		m.locationsSeq = m.nextSeq()
		return m, m.fetchLocationsCmd(m.locationsSeq)
	}
	return m, nil
}

func (m appModel) onGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		if len(m.locations) > 0 {
			m.gridLocIdx = (m.gridLocIdx + 1) % len(m.locations)
			m.gridShelfIdx = -1
			m.gridCursor = 0
			return m, m.loadGridCmd()
		}
	case "s":
		shelves := m.currentShelves()
		if len(shelves) == 0 {
			return m, nil
		}
		m.gridShelfIdx++
		if m.gridShelfIdx >= len(shelves) {
			m.gridShelfIdx = -1
		}
		m.gridCursor = 0
		return m, m.loadGridCmd()
	case "up", "down", "left", "right":
		m.moveGridCursor(msg.String())
		return m, nil
	case "enter":
		return m.openGridCell()
	case "n":
		return m.openBoxCreate(0)
	}
	return m, nil
}

func (m *appModel) moveGridCursor(key string) {
	if m.gridOverviewActive() || len(m.gridCells) == 0 {
		return
	}
	_, cols := m.gridShelf.Size()
	if cols < 1 {
		return
	}
	c := m.gridCursor
	switch key {
	case "left":
		c--
	case "right":
		c++
	case "up":
		c -= cols
	case "down":
		c += cols
	}
	if c >= 0 && c < len(m.gridCells) {
		m.gridCursor = c
	}
}

func (m appModel) openGridCell() (tea.Model, tea.Cmd) {
	if m.gridOverviewActive() || m.gridCursor >= len(m.gridCells) {
		return m, nil
	}
	cell := m.gridCells[m.gridCursor]
	switch cell.Kind {
	case grid.CellOccupied:
		return m.openBoxDetail(cell.Box.ID)
	case grid.CellFree:
		return m.openBoxCreate(cell.Position.ID)
	}
	return m, nil
}

func (m appModel) openBoxDetail(boxID int) (tea.Model, tea.Cmd) {
	m.modal = modalBoxDetail
	m.detailItemIdx = 0
	if b, ok := m.boxByID(boxID); ok {
		m.detailBox = b
		m.pushRecent(b)
	} else {
		m.detailBox = model.Box{ID: boxID}
	}
	if items, ok := m.itemCache.Get(boxID); ok {
		m.detailItems = items
		m.detailLoading = false
		return m, nil
	}
	m.detailLoading = true
	m.detailSeq = m.nextSeq()
	return m, m.fetchBoxItemsCmd(m.detailSeq, boxID)
}

// openBoxCreate opens the create form, optionally pre-targeted at a
// free position the user picked in the grid.
func (m appModel) openBoxCreate(positionID int) (tea.Model, tea.Cmd) {
	f := newBoxForm(formCreate)
	f.locationPick.set(m.locationOptions())
	m.boxForm = f
	m.modal = modalBoxForm

	var cmds []tea.Cmd
	m.numbersSeq = m.nextSeq()
	cmds = append(cmds, m.fetchNumbersCmd(m.numbersSeq))

	if positionID > 0 && !m.gridOverviewActive() {
		shelves := m.currentShelves()
		if m.gridShelfIdx < len(shelves) {
			shelf := shelves[m.gridShelfIdx]
			f.locationPick.selectID(m.locations[m.gridLocIdx].ID)
			f.shelfPick.set(shelfOptions(shelves))
			f.shelfPick.selectID(shelf.ID)
			if sp, ok := m.positionCache.Get(shelf.ID); ok {
				m.fillFormPositions(sp)
				f.positionPick.selectID(positionID)
			}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) openBoxEdit(b model.Box) (tea.Model, tea.Cmd) {
	f := newBoxForm(formEdit)
	f.prefill(b)
	f.locationPick.set(m.locationOptions())

	var cmd tea.Cmd
	// Preselect the box's current placement so the position picker can
	// offer the current position alongside the free ones.
	for li, loc := range m.locations {
		for _, s := range loc.Shelves {
			if s.Name == b.ShelfName && loc.Name == b.Location {
				f.locationPick.selectID(loc.ID)
				f.shelfPick.set(shelfOptions(m.locations[li].Shelves))
				f.shelfPick.selectID(s.ID)
				f.posSeq = m.nextSeq()
				cmd = m.fetchPositionsCmd(f.posSeq, s.ID)
			}
		}
	}
	m.boxForm = f
	m.modal = modalBoxForm
	return m, cmd
}

func (m *appModel) locationOptions() []pickerOption {
	opts := make([]pickerOption, 0, len(m.locations))
	for _, loc := range m.locations {
		opts = append(opts, pickerOption{id: loc.ID, label: loc.Name})
	}
	return opts
}

func shelfOptions(shelves []model.Shelf) []pickerOption {
	opts := make([]pickerOption, 0, len(shelves))
	for _, s := range shelves {
		opts = append(opts, pickerOption{id: s.ID, label: s.Name + " (" + s.Dimensions + ")"})
	}
	return opts
}

func (m appModel) onSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case "down":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil
	case "enter":
		return m.toggleSearchRow()
	case "esc":
		m.searchInput.SetValue("")
		m.searchStatus = ""
		m.searchPerson = ""
		m.searchLocation = ""
		m.searchProject = ""
		m.runSearch()
		return m, nil
	case "ctrl+f":
		m.searchStatus = cycleValue(m.searchStatus, []string{
			string(model.BoxActive), string(model.BoxFull), model.StatusCritical,
		})
		m.runSearch()
		return m, nil
	case "ctrl+l":
		names := search.DistinctLocations(m.boxes)
		m.searchLocation = cycleValue(m.searchLocation, names)
		m.runSearch()
		return m, nil
	case "ctrl+p":
		names := search.DistinctPersons(m.boxes)
		m.searchPerson = cycleValue(m.searchPerson, names)
		m.runSearch()
		return m, nil
	case "ctrl+o":
		names := m.cachedProjects()
		m.searchProject = cycleValue(m.searchProject, names)
		m.runSearch()
		return m, nil
	case "ctrl+r":
		return m.refreshActiveTab()
	case "ctrl+e":
		return m, m.exportCmd(api.ExportPDF, "sklad-export.pdf")
	case "ctrl+x":
		return m, m.exportCmd(api.ExportExcel, "sklad-export.xlsx")
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.debounceSeq = m.nextSeq()
		return m, tea.Batch(cmd, debounceCmd(m.debounceSeq))
	}
	return m, cmd
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func cycleValue(cur string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	for i, o := range options {
		if o == cur {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return options[0]
}

// toggleSearchRow expands or collapses the selected result. Collapsed
// rows keep their cached items, so re-expanding never re-fetches.
func (m appModel) toggleSearchRow() (tea.Model, tea.Cmd) {
	if m.searchCursor >= len(m.searchResults) {
		return m, nil
	}
	b := m.searchResults[m.searchCursor]
	if m.searchExpanded[b.ID] {
		m.searchExpanded[b.ID] = false
		return m, nil
	}
	m.searchExpanded[b.ID] = true
	if _, ok := m.itemCache.Get(b.ID); ok {
		return m, nil
	}
	m.searchSeq = m.nextSeq()
	return m, m.fetchBoxItemsCmd(m.searchSeq, b.ID)
}

func (m *appModel) exportCmd(format api.ExportFormat, path string) tea.Cmd {
	c := m.client
	f := api.ExportFilter{
		Query:  m.searchQuery.Text,
		Person: m.searchQuery.Person,
		Status: m.searchQuery.Status,
	}
	return func() tea.Msg {
		err := c.ExportSearch(context.Background(), format, f, path)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m appModel) onAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shelves := m.allShelves()
	switch msg.String() {
	case "up":
		if m.adminCursor > 0 {
			m.adminCursor--
		}
	case "down":
		if m.adminCursor < len(shelves)-1 {
			m.adminCursor++
		}
	case "n":
		f := newShelfForm(formCreate)
		f.locationPick.set(m.locationOptions())
		m.shForm = f
		m.modal = modalShelfForm
	case "enter", "e":
		if m.adminCursor < len(shelves) {
			f := newShelfForm(formEdit)
			f.prefill(shelves[m.adminCursor])
			m.shForm = f
			m.adminShelf = shelves[m.adminCursor]
			m.modal = modalShelfForm
		}
	case "d":
		if m.adminCursor < len(shelves) {
			m.adminShelf = shelves[m.adminCursor]
			m.confirmFoc = confirmFocusCancel
			m.modal = modalConfirmDeleteShelf
		}
	}
	return m, nil
}

func (m appModel) onModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalBoxDetail:
		return m.onDetailKey(msg)
	case modalBoxForm:
		return m.onBoxFormKey(msg)
	case modalItemForm:
		return m.onItemFormKey(msg)
	case modalArchive:
		return m.onArchiveKey(msg)
	case modalShelfForm:
		return m.onShelfFormKey(msg)
	case modalConfirmDeleteShelf:
		return m.onConfirmDeleteKey(msg)
	}
	return m, nil
}

func (m appModel) onDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.closeModal()
		return m, nil
	case "up":
		if m.detailItemIdx > 0 {
			m.detailItemIdx--
		}
	case "down":
		if m.detailItemIdx < len(m.detailItems)-1 {
			m.detailItemIdx++
		}
	case "e":
		b := m.detailBox
		m.closeModal()
		return m.openBoxEdit(b)
	case "a":
		boxID := m.detailBox.ID
		m.closeModal()
		m.itemForm = newItemForm(formCreate, boxID)
		m.modal = modalItemForm
		return m, nil
	case "i":
		if m.detailItemIdx < len(m.detailItems) {
			it := m.detailItems[m.detailItemIdx]
			m.closeModal()
			f := newItemForm(formEdit, it.BoxID)
			f.prefill(it)
			m.itemForm = f
			m.modal = modalItemForm
		}
		return m, nil
	case "x":
		if m.detailItemIdx < len(m.detailItems) {
			it := m.detailItems[m.detailItemIdx]
			label := m.detailBox.Label()
			m.closeModal()
			m.archForm = newArchiveForm(it.ID, it.BoxID, label)
			m.modal = modalArchive
			return m.loadReasons()
		}
		return m, nil
	case "X":
		b := m.detailBox
		m.closeModal()
		m.archForm = newArchiveForm(0, b.ID, b.Label())
		m.modal = modalArchive
		return m.loadReasons()
	case "c":
		return m, copyInfoCmd(boxInfoText(m.detailBox, m.detailItems))
	}
	return m, nil
}

func (m appModel) loadReasons() (tea.Model, tea.Cmd) {
	if m.reasons != nil {
		m.archForm.reasonPick.set(reasonOptions(m.reasons))
		return m, nil
	}
	m.reasonsSeq = m.nextSeq()
	return m, m.fetchReasonsCmd(m.reasonsSeq)
}

func (m appModel) onBoxFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.boxForm
	if f == nil {
		m.closeModal()
		return m, nil
	}
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		f.nextFocus()
		return m, nil
	case "shift+tab":
		f.prevFocus()
		return m, nil
	case "up", "down":
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		switch f.focus {
		case boxFocusNumber:
			f.numberPick.move(delta)
			return m, nil
		case boxFocusLocation:
			f.locationPick.move(delta)
			return m.onFormLocationChange()
		case boxFocusShelf:
			f.shelfPick.move(delta)
			return m.onFormShelfChange()
		case boxFocusPosition:
			f.positionPick.move(delta)
			return m, nil
		}
	case "enter":
		if f.focus == boxFocusSubmit {
			return m.submitBoxForm()
		}
		f.nextFocus()
		return m, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case boxFocusPerson:
		f.person, cmd = f.person.Update(msg)
	case boxFocusFill:
		f.fill, cmd = f.fill.Update(msg)
	case boxFocusNote:
		f.note, cmd = f.note.Update(msg)
	}
	return m, cmd
}

// onFormLocationChange refreshes the cascading shelf picker after the
// location selection moved.
func (m appModel) onFormLocationChange() (tea.Model, tea.Cmd) {
	f := m.boxForm
	loc, ok := f.locationPick.selected()
	if !ok {
		return m, nil
	}
	for _, l := range m.locations {
		if l.ID == loc.id {
			f.shelfPick.set(shelfOptions(l.Shelves))
			f.positionPick.set(nil)
		}
	}
	return m, nil
}

func (m appModel) onFormShelfChange() (tea.Model, tea.Cmd) {
	f := m.boxForm
	shelf, ok := f.shelfPick.selected()
	if !ok {
		return m, nil
	}
	if sp, cached := m.positionCache.Get(shelf.id); cached {
		m.fillFormPositions(sp)
		return m, nil
	}
	f.posSeq = m.nextSeq()
	return m, m.fetchPositionsCmd(f.posSeq, shelf.id)
}

func (m appModel) submitBoxForm() (tea.Model, tea.Cmd) {
	f := m.boxForm
	if problem := f.validate(); problem != "" {
		f.errText = problem
		return m, nil
	}
	f.errText = ""
	f.submitting = true
	m.actionSeq = m.nextSeq()
	seq := m.actionSeq
	c := m.client

	if f.mode == formCreate {
		in := f.createPayload()
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			box, err := c.CreateBox(context.Background(), in)
			if err != nil {
				return actionDoneMsg{seq: seq, err: err}
			}
			return actionDoneMsg{
				seq:   seq,
				label: fmt.Sprintf("GB #%d naskladněn", box.Number),
				topic: refresh.Boxes,
			}
		})
	}

	boxID := f.boxID
	number := f.number
	in := f.updatePayload()
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		_, err := c.UpdateBox(context.Background(), boxID, in)
		if err != nil {
			return actionDoneMsg{seq: seq, err: err}
		}
		return actionDoneMsg{
			seq:     seq,
			label:   fmt.Sprintf("GB #%d uložen", number),
			topic:   refresh.Boxes,
			openBox: boxID,
		}
	})
}

func (m appModel) onItemFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.itemForm
	if f == nil {
		m.closeModal()
		return m, nil
	}
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		f.nextFocus()
		return m, nil
	case "shift+tab":
		f.prevFocus()
		return m, nil
	case " ":
		if f.focus == itemFocusTrack {
			f.track = !f.track
			return m, nil
		}
	case "enter":
		if f.focus == itemFocusSubmit {
			return m.submitItemForm()
		}
		f.nextFocus()
		return m, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case itemFocusTMA:
		f.tma, cmd = f.tma.Update(msg)
	case itemFocusName:
		f.name, cmd = f.name.Update(msg)
	case itemFocusProject:
		f.project, cmd = f.project.Update(msg)
	case itemFocusQty:
		f.qty, cmd = f.qty.Update(msg)
	case itemFocusUnit:
		f.unit, cmd = f.unit.Update(msg)
	case itemFocusExpiry:
		f.expiry, cmd = f.expiry.Update(msg)
	case itemFocusNote:
		f.note, cmd = f.note.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitItemForm() (tea.Model, tea.Cmd) {
	f := m.itemForm
	if problem := f.validate(); problem != "" {
		f.errText = problem
		return m, nil
	}
	f.errText = ""
	f.submitting = true
	m.actionSeq = m.nextSeq()
	seq := m.actionSeq
	c := m.client
	boxID := f.boxID

	if f.mode == formCreate {
		in := f.createPayload()
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			_, err := c.CreateItem(context.Background(), in)
			if err != nil {
				return actionDoneMsg{seq: seq, err: err}
			}
			return actionDoneMsg{seq: seq, label: "Položka přidána", topic: refresh.Items, openBox: boxID}
		})
	}

	itemID := f.itemID
	in := f.updatePayload()
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		_, err := c.UpdateItem(context.Background(), itemID, in)
		if err != nil {
			return actionDoneMsg{seq: seq, err: err}
		}
		return actionDoneMsg{seq: seq, label: "Položka uložena", topic: refresh.Items, openBox: boxID}
	})
}

func (m appModel) onArchiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.archForm
	if f == nil {
		m.closeModal()
		return m, nil
	}
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		f.nextFocus()
		return m, nil
	case "up", "down":
		if f.focus == archiveFocusReason {
			delta := 1
			if msg.String() == "up" {
				delta = -1
			}
			f.reasonPick.move(delta)
		}
		return m, nil
	case "enter":
		if f.focus == archiveFocusSubmit {
			return m.submitArchive()
		}
		f.nextFocus()
		return m, nil
	}

	if f.focus == archiveFocusNote {
		var cmd tea.Cmd
		f.note, cmd = f.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) submitArchive() (tea.Model, tea.Cmd) {
	f := m.archForm
	if problem := f.validate(); problem != "" {
		f.errText = problem
		return m, nil
	}
	f.errText = ""
	f.submitting = true
	m.actionSeq = m.nextSeq()
	seq := m.actionSeq
	c := m.client
	req := f.payload()

	if f.wholeBox() {
		boxID := f.boxID
		label := f.boxLabel
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			if err := c.ArchiveBox(context.Background(), boxID, req); err != nil {
				return actionDoneMsg{seq: seq, err: err}
			}
			return actionDoneMsg{seq: seq, label: label + " vyskladněn", topic: refresh.Archive}
		})
	}

	itemID := f.itemID
	boxID := f.boxID
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		if err := c.ArchiveItem(context.Background(), itemID, req); err != nil {
			return actionDoneMsg{seq: seq, err: err}
		}
		// Archiving the last item never archives the box itself.
		return actionDoneMsg{seq: seq, label: "Položka vyskladněna", topic: refresh.Archive, openBox: boxID}
	})
}

func (m appModel) onShelfFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.shForm
	if f == nil {
		m.closeModal()
		return m, nil
	}
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab":
		f.nextFocus()
		return m, nil
	case "up", "down":
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		switch f.focus {
		case shelfFocusLocation:
			f.locationPick.move(delta)
		case shelfFocusType:
			f.typePick.move(delta)
		}
		return m, nil
	case "enter":
		if f.focus == shelfFocusSubmit {
			return m.submitShelfForm()
		}
		f.nextFocus()
		return m, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case shelfFocusName:
		f.name, cmd = f.name.Update(msg)
	case shelfFocusRows:
		f.rows, cmd = f.rows.Update(msg)
	case shelfFocusCols:
		f.cols, cmd = f.cols.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitShelfForm() (tea.Model, tea.Cmd) {
	f := m.shForm
	if problem := f.validate(); problem != "" {
		f.errText = problem
		return m, nil
	}
	f.errText = ""
	f.submitting = true
	m.actionSeq = m.nextSeq()
	seq := m.actionSeq
	c := m.client

	if f.mode == formCreate {
		in := f.createPayload()
		return m, tea.Batch(m.spin.Tick, func() tea.Msg {
			shelf, err := c.CreateShelf(context.Background(), in)
			if err != nil {
				return actionDoneMsg{seq: seq, err: err}
			}
			return actionDoneMsg{seq: seq, label: "Regál " + shelf.Name + " vytvořen", topic: refresh.Shelves}
		})
	}

	shelfID := f.shelfID
	in := f.updatePayload()
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		shelf, err := c.UpdateShelf(context.Background(), shelfID, in)
		if err != nil {
			return actionDoneMsg{seq: seq, err: err}
		}
		return actionDoneMsg{seq: seq, label: "Regál " + shelf.Name + " uložen", topic: refresh.Shelves}
	})
}

func (m appModel) onConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab", "left", "right":
		if m.confirmFoc == confirmFocusConfirm {
			m.confirmFoc = confirmFocusCancel
		} else {
			m.confirmFoc = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFoc == confirmFocusCancel {
			m.closeModal()
			return m, nil
		}
		m.actionSeq = m.nextSeq()
		seq := m.actionSeq
		c := m.client
		shelf := m.adminShelf
		return m, func() tea.Msg {
			if err := c.DeleteShelf(context.Background(), shelf.ID); err != nil {
				// The occupied-shelf conflict surfaces verbatim.
				return actionDoneMsg{seq: seq, err: err}
			}
			return actionDoneMsg{seq: seq, label: "Regál " + shelf.Name + " smazán", topic: refresh.Shelves}
		}
	}
	return m, nil
}

// boxInfoText is the plain-text summary for the clipboard action.
func boxInfoText(b model.Box, items []model.Item) string {
	s := fmt.Sprintf("%s\nOsoba: %s\nUmístění: %s / %s / %d-%d\nNaplněnost: %d %%\nStav: %s\n",
		b.Label(), b.Person, b.Location, b.ShelfName, b.Row, b.Col, b.FillPercent, b.DisplayStatus())
	if b.Note != "" {
		s += "Poznámka: " + b.Note + "\n"
	}
	if len(items) > 0 {
		s += "Položky:\n"
		for _, it := range items {
			s += fmt.Sprintf("  - %s (%d %s)", it.PartName, it.Quantity, it.Unit)
			if it.TMANumber != "" {
				s += " " + it.TMANumber
			}
			s += "\n"
		}
	}
	return s
}
