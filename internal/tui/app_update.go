package tui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sklad-cli/internal/api"
	"sklad-cli/internal/grid"
	"sklad-cli/internal/model"
	"sklad-cli/internal/refresh"
)

const searchDebounce = 500 * time.Millisecond

func (m appModel) Init() tea.Cmd {
	return m.checkHealthCmd(m.bootSeq)
}

func (m *appModel) checkHealthCmd(seq int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		err := c.Health(context.Background())
		return healthMsg{seq: seq, err: err}
	}
}

func (m *appModel) bootstrapCmd(seq int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx := context.Background()
		locations, err := c.Locations(ctx)
		if err != nil {
			return bootstrapMsg{seq: seq, err: err}
		}
		boxes, err := c.Boxes(ctx)
		if err != nil {
			return bootstrapMsg{seq: seq, err: err}
		}
		stats, err := c.Statistics(ctx)
		if err != nil {
			return bootstrapMsg{seq: seq, err: err}
		}
		return bootstrapMsg{seq: seq, locations: locations, boxes: boxes, stats: stats}
	}
}

func (m *appModel) fetchBoxesCmd(seq int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx := context.Background()
		boxes, err := c.Boxes(ctx)
		if err != nil {
			return boxesMsg{seq: seq, err: err}
		}
		stats, err := c.Statistics(ctx)
		if err != nil {
			return boxesMsg{seq: seq, err: err}
		}
		return boxesMsg{seq: seq, boxes: boxes, stats: stats}
	}
}

func (m *appModel) fetchLocationsCmd(seq int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		locations, err := c.Locations(context.Background())
		return locationsMsg{seq: seq, locations: locations, err: err}
	}
}

func (m *appModel) fetchPositionsCmd(seq, shelfID int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		data, err := c.Positions(context.Background(), shelfID)
		return positionsMsg{seq: seq, shelfID: shelfID, data: data, err: err}
	}
}

func (m *appModel) fetchBoxItemsCmd(seq, boxID int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		data, err := c.BoxWithItems(context.Background(), boxID)
		return boxItemsMsg{seq: seq, boxID: boxID, data: data, err: err}
	}
}

func (m *appModel) fetchNumbersCmd(seq int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		data, err := c.AvailableNumbers(context.Background())
		return numbersMsg{seq: seq, data: data, err: err}
	}
}

func (m *appModel) fetchReasonsCmd(seq int) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		data, err := c.ArchiveReasons(context.Background())
		return reasonsMsg{seq: seq, data: data, err: err}
	}
}

func copyInfoCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardDoneMsg{err: clipboard.WriteAll(text)}
	}
}

func (m *appModel) pushToast(text string, isErr bool) tea.Cmd {
	seq, ttl := m.toasts.push(text, isErr)
	return expireToastAfter(seq, ttl)
}

func errText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case healthMsg:
		if msg.seq != m.bootSeq {
			return m, nil
		}
		if msg.err != nil {
			m.healthErr = errText(msg.err)
			m.loading = false
			return m, nil
		}
		m.healthErr = ""
		m.loading = true
		m.bootSeq = m.nextSeq()
		return m, m.bootstrapCmd(m.bootSeq)

	case bootstrapMsg:
		if msg.seq != m.bootSeq {
			return m, nil
		}
		if msg.err != nil {
			m.healthErr = errText(msg.err)
			m.loading = false
			return m, nil
		}
		m.locations = msg.locations
		m.boxes = msg.boxes
		m.stats = msg.stats
		m.booted = true
		m.loading = false
		m.runSearch()
		return m, m.loadGridCmd()

	case boxesMsg:
		if msg.seq != m.boxesSeq {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("box reload failed", zap.Error(msg.err))
			return m, m.pushToast(errText(msg.err), true)
		}
		m.boxes = msg.boxes
		m.stats = msg.stats
		m.runSearch()
		return m, nil

	case locationsMsg:
		if msg.seq != m.locationsSeq {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("location reload failed", zap.Error(msg.err))
			return m, m.pushToast(errText(msg.err), true)
		}
		m.locations = msg.locations
		if m.gridLocIdx >= len(m.locations) {
			m.gridLocIdx = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.anySubmitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case positionsMsg:
		return m.onPositions(msg)

	case boxItemsMsg:
		return m.onBoxItems(msg)

	case numbersMsg:
		if msg.seq != m.numbersSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.pushToast(errText(msg.err), true)
		}
		m.numbers = msg.data
		if m.boxForm != nil {
			opts := make([]pickerOption, 0, len(msg.data.Free))
			for _, n := range msg.data.Free {
				opts = append(opts, pickerOption{id: n, label: "GB #" + strconv.Itoa(n)})
			}
			m.boxForm.numberPick.set(opts)
		}
		return m, nil

	case reasonsMsg:
		if msg.seq != m.reasonsSeq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.pushToast(errText(msg.err), true)
		}
		m.reasons = msg.data
		if m.archForm != nil {
			m.archForm.reasonPick.set(reasonOptions(msg.data))
		}
		return m, nil

	case actionDoneMsg:
		return m.onActionDone(msg)

	case toastExpireMsg:
		m.toasts.expire(msg.seq)
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		m.runSearch()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.pushToast(errText(msg.err), true)
		}
		return m, m.pushToast("Export uložen: "+msg.path, false)

	case clipboardDoneMsg:
		if msg.err != nil {
			return m, m.pushToast("Kopírování selhalo: "+msg.err.Error(), true)
		}
		return m, m.pushToast("Informace zkopírovány", false)

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

// reasonOptions keeps a stable, known order for the archive picker.
func reasonOptions(reasons map[string]string) []pickerOption {
	order := []model.ArchiveReason{
		model.ReasonExpired, model.ReasonBroken, model.ReasonMistake, model.ReasonOther,
	}
	var opts []pickerOption
	for _, r := range order {
		label, ok := reasons[string(r)]
		if !ok {
			label = string(r)
		}
		opts = append(opts, pickerOption{key: string(r), label: label})
	}
	return opts
}

// loadGridCmd loads the active grid selection: one shelf's positions,
// or every shelf's for the overview.
func (m *appModel) loadGridCmd() tea.Cmd {
	m.gridSeq = m.nextSeq()
	if m.gridOverviewActive() {
		shelves := m.allShelves()
		cmds := make([]tea.Cmd, 0, len(shelves))
		for _, s := range shelves {
			cmds = append(cmds, m.fetchPositionsCmd(m.gridSeq, s.ID))
		}
		return tea.Batch(cmds...)
	}
	shelves := m.currentShelves()
	if m.gridShelfIdx < 0 || m.gridShelfIdx >= len(shelves) {
		return nil
	}
	shelf := shelves[m.gridShelfIdx]
	if sp, ok := m.positionCache.Get(shelf.ID); ok {
		m.applyGrid(sp)
		return nil
	}
	return m.fetchPositionsCmd(m.gridSeq, shelf.ID)
}

func (m *appModel) gridOverviewActive() bool { return m.gridShelfIdx < 0 }

func (m *appModel) applyGrid(sp api.ShelfPositions) {
	m.gridShelf = sp.Shelf
	m.gridCells = grid.Compute(sp.Shelf, sp.Positions)
	if m.gridCursor >= len(m.gridCells) {
		m.gridCursor = 0
	}
}

func (m appModel) onPositions(msg positionsMsg) (tea.Model, tea.Cmd) {
	// Accept grid loads and box-form picker loads; both stamp their
	// own sequence. Anything older is a stale response.
	formLoad := m.boxForm != nil && msg.seq == m.boxForm.posSeq
	if msg.seq != m.gridSeq && !formLoad {
		return m, nil
	}
	if msg.err != nil {
		m.log.Warn("position load failed", zap.Int("shelf", msg.shelfID), zap.Error(msg.err))
		return m, m.pushToast(errText(msg.err), true)
	}

	m.positionCache.Put(msg.shelfID, msg.data)

	if formLoad {
		m.fillFormPositions(msg.data)
		return m, nil
	}

	if !m.gridOverviewActive() {
		shelves := m.currentShelves()
		if m.gridShelfIdx < len(shelves) && shelves[m.gridShelfIdx].ID == msg.shelfID {
			m.applyGrid(msg.data)
		}
	}
	return m, nil
}

// fillFormPositions populates the box form's position picker with free
// positions, plus the box's current one in edit mode.
func (m *appModel) fillFormPositions(sp api.ShelfPositions) {
	f := m.boxForm
	if f == nil {
		return
	}
	var opts []pickerOption
	for _, p := range sp.Positions {
		free := !p.Occupied()
		current := f.mode == formEdit && p.Box != nil && p.Box.ID == f.boxID
		if !free && !current {
			continue
		}
		label := p.Name
		if label == "" {
			label = strconv.Itoa(p.Row) + "-" + strconv.Itoa(p.Col)
		}
		if current {
			label += " (současná)"
		}
		opts = append(opts, pickerOption{id: p.ID, label: label})
	}
	f.positionPick.set(opts)
	if f.mode == formEdit {
		for _, p := range sp.Positions {
			if p.Box != nil && p.Box.ID == f.boxID {
				f.positionPick.selectID(p.ID)
			}
		}
	}
}

func (m appModel) onBoxItems(msg boxItemsMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.detailSeq && msg.seq != m.searchSeq {
		return m, nil
	}
	if msg.err != nil {
		m.detailLoading = false
		return m, m.pushToast(errText(msg.err), true)
	}

	m.itemCache.Put(msg.boxID, msg.data.Items)

	if m.modal == modalBoxDetail && m.detailBox.ID == msg.boxID {
		m.detailBox = msg.data.Box
		m.detailItems = msg.data.Items
		m.detailLoading = false
	}
	if m.searchQuery.Project != "" {
		m.runSearch()
	}
	return m, nil
}

func (m appModel) onActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.actionSeq {
		return m, nil
	}
	if msg.err != nil {
		text := errText(msg.err)
		switch {
		case m.boxForm != nil:
			m.boxForm.submitting = false
			m.boxForm.errText = text
		case m.itemForm != nil:
			m.itemForm.submitting = false
			m.itemForm.errText = text
		case m.archForm != nil:
			m.archForm.submitting = false
			m.archForm.errText = text
		case m.shForm != nil:
			m.shForm.submitting = false
			m.shForm.errText = text
		}
		return m, m.pushToast(text, true)
	}

	m.closeModal()

	// Flag-based fan-out: subscribers mark what needs reloading, then
	// the update loop turns the flags into fetches.
	var flags refreshFlags
	unsub := m.subscribeRefresh(&flags)
	m.hub.Publish(msg.topic)
	unsub()

	cmds := []tea.Cmd{m.pushToast(msg.label, false)}
	if flags.boxes {
		m.positionCache.InvalidateAll()
		m.boxesSeq = m.nextSeq()
		cmds = append(cmds, m.fetchBoxesCmd(m.boxesSeq), m.loadGridCmd())
	}
	if flags.shelves {
		m.locationsSeq = m.nextSeq()
		cmds = append(cmds, m.fetchLocationsCmd(m.locationsSeq))
	}
	if flags.items {
		m.itemCache.InvalidateAll()
	}
	if msg.openBox > 0 {
		m.modal = modalBoxDetail
		m.detailBox = model.Box{ID: msg.openBox}
		if b, ok := m.boxByID(msg.openBox); ok {
			m.detailBox = b
		}
		m.detailLoading = true
		m.detailSeq = m.nextSeq()
		cmds = append(cmds, m.fetchBoxItemsCmd(m.detailSeq, msg.openBox))
	}
	return m, tea.Batch(cmds...)
}

type refreshFlags struct {
	boxes   bool
	shelves bool
	items   bool
}

func (m *appModel) subscribeRefresh(flags *refreshFlags) func() {
	u1 := m.hub.Subscribe(refresh.Boxes, func(refresh.Topic) { flags.boxes = true })
	u2 := m.hub.Subscribe(refresh.Shelves, func(refresh.Topic) { flags.shelves = true })
	u3 := m.hub.Subscribe(refresh.Items, func(refresh.Topic) { flags.items = true })
	u4 := m.hub.Subscribe(refresh.Archive, func(refresh.Topic) { flags.items = true })
	return func() { u1(); u2(); u3(); u4() }
}
