package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"sklad-cli/internal/api"
	"sklad-cli/internal/model"
)

// pickerOption is one selectable entry in a form picker. id carries
// entity ids; key carries string codes (archive reasons, shelf types).
type pickerOption struct {
	id    int
	key   string
	label string
}

type picker struct {
	options []pickerOption
	cursor  int
	chosen  bool
}

func (p *picker) set(options []pickerOption) {
	p.options = options
	p.cursor = 0
	p.chosen = len(options) > 0 && p.chosen
	if p.cursor >= len(options) {
		p.cursor = 0
	}
}

func (p *picker) move(delta int) {
	if len(p.options) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.options)) % len(p.options)
	p.chosen = true
}

func (p *picker) selected() (pickerOption, bool) {
	if !p.chosen || p.cursor < 0 || p.cursor >= len(p.options) {
		return pickerOption{}, false
	}
	return p.options[p.cursor], true
}

// selectID marks the option with the given id as chosen, if present.
func (p *picker) selectID(id int) {
	for i, o := range p.options {
		if o.id == id {
			p.cursor = i
			p.chosen = true
			return
		}
	}
}

func (p *picker) selectKey(key string) {
	for i, o := range p.options {
		if o.key == key {
			p.cursor = i
			p.chosen = true
			return
		}
	}
}

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

// Box form focus order. Create mode starts at the number picker; edit
// mode skips it because the GB number never changes after creation.
const (
	boxFocusNumber = iota
	boxFocusPerson
	boxFocusLocation
	boxFocusShelf
	boxFocusPosition
	boxFocusFill
	boxFocusNote
	boxFocusSubmit
	boxFocusCount
)

type boxForm struct {
	mode  formMode
	boxID int
	// number is fixed in edit mode and displayed read-only.
	number     int
	numberPick picker
	person     textinput.Model
	fill       textinput.Model
	note       textarea.Model

	locationPick picker
	shelfPick    picker
	positionPick picker
	// posSeq is the sequence of the in-flight position load for the
	// picker, so a stale response never fills it for a different shelf.
	posSeq int

	focus      int
	submitting bool
	errText    string
}

func newBoxForm(mode formMode) *boxForm {
	f := &boxForm{mode: mode}

	f.person = textinput.New()
	f.person.Placeholder = "Zodpovědná osoba"
	f.person.CharLimit = 100

	f.fill = textinput.New()
	f.fill.Placeholder = "100"
	f.fill.CharLimit = 3
	f.fill.SetValue("100")

	f.note = textarea.New()
	f.note.Placeholder = "Poznámka"
	f.note.SetHeight(3)

	f.focus = boxFocusNumber
	if mode == formEdit {
		f.focus = boxFocusPerson
	}
	f.syncFocus()
	return f
}

// prefill loads an existing box into the form for editing.
func (f *boxForm) prefill(b model.Box) {
	f.boxID = b.ID
	f.number = b.Number
	f.person.SetValue(b.Person)
	f.fill.SetValue(strconv.Itoa(b.FillPercent))
	f.note.SetValue(b.Note)
}

func (f *boxForm) nextFocus() {
	for {
		f.focus = (f.focus + 1) % boxFocusCount
		if f.mode == formEdit && f.focus == boxFocusNumber {
			continue
		}
		break
	}
	f.syncFocus()
}

func (f *boxForm) prevFocus() {
	for {
		f.focus = (f.focus - 1 + boxFocusCount) % boxFocusCount
		if f.mode == formEdit && f.focus == boxFocusNumber {
			continue
		}
		break
	}
	f.syncFocus()
}

func (f *boxForm) syncFocus() {
	f.person.Blur()
	f.fill.Blur()
	f.note.Blur()
	switch f.focus {
	case boxFocusPerson:
		f.person.Focus()
	case boxFocusFill:
		f.fill.Focus()
	case boxFocusNote:
		f.note.Focus()
	}
}

// validate checks the form without touching the network. It returns
// the first problem in Czech, matching the backend's language.
func (f *boxForm) validate() string {
	if f.mode == formCreate {
		n, ok := f.numberPick.selected()
		if !ok || n.id < 1 {
			return "Vyberte číslo GB"
		}
	}
	if strings.TrimSpace(f.person.Value()) == "" {
		return "Vyplňte zodpovědnou osobu"
	}
	if _, ok := f.positionPick.selected(); !ok {
		return "Vyberte pozici"
	}
	if v := strings.TrimSpace(f.fill.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return "Naplněnost musí být 0-100"
		}
	}
	return ""
}

func (f *boxForm) fillPercent() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.fill.Value()))
	if err != nil {
		return 100
	}
	return n
}

func (f *boxForm) createPayload() api.BoxCreate {
	num, _ := f.numberPick.selected()
	pos, _ := f.positionPick.selected()
	return api.BoxCreate{
		Number:      num.id,
		Person:      strings.TrimSpace(f.person.Value()),
		PositionID:  pos.id,
		FillPercent: f.fillPercent(),
		Note:        strings.TrimSpace(f.note.Value()),
	}
}

func (f *boxForm) updatePayload() api.BoxUpdate {
	fill := f.fillPercent()
	note := strings.TrimSpace(f.note.Value())
	u := api.BoxUpdate{
		Person:      strings.TrimSpace(f.person.Value()),
		FillPercent: &fill,
		Note:        &note,
	}
	if pos, ok := f.positionPick.selected(); ok {
		u.PositionID = pos.id
	}
	return u
}

// Item form.
const (
	itemFocusTMA = iota
	itemFocusName
	itemFocusProject
	itemFocusQty
	itemFocusUnit
	itemFocusTrack
	itemFocusExpiry
	itemFocusNote
	itemFocusSubmit
	itemFocusCount
)

type itemForm struct {
	mode   formMode
	itemID int
	boxID  int

	tma     textinput.Model
	name    textinput.Model
	project textinput.Model
	qty     textinput.Model
	unit    textinput.Model
	expiry  textinput.Model
	track   bool
	note    textarea.Model

	focus      int
	submitting bool
	errText    string
}

func newItemForm(mode formMode, boxID int) *itemForm {
	f := &itemForm{mode: mode, boxID: boxID, track: true}

	f.tma = textinput.New()
	f.tma.Placeholder = "123456"
	f.tma.CharLimit = 6

	f.name = textinput.New()
	f.name.Placeholder = "Název dílu"
	f.name.CharLimit = 200

	f.project = textinput.New()
	f.project.Placeholder = "Projekt"
	f.project.CharLimit = 100

	f.qty = textinput.New()
	f.qty.Placeholder = "1"
	f.qty.CharLimit = 6
	f.qty.SetValue("1")

	f.unit = textinput.New()
	f.unit.Placeholder = "ks"
	f.unit.CharLimit = 20
	f.unit.SetValue("ks")

	f.expiry = textinput.New()
	f.expiry.Placeholder = "RRRR-MM-DD"
	f.expiry.CharLimit = 10

	f.note = textarea.New()
	f.note.Placeholder = "Poznámka"
	f.note.SetHeight(3)

	f.focus = itemFocusTMA
	f.tma.Focus()
	return f
}

func (f *itemForm) prefill(it model.Item) {
	f.itemID = it.ID
	f.boxID = it.BoxID
	f.tma.SetValue(model.TMAMiddle(it.TMANumber))
	f.name.SetValue(it.PartName)
	f.project.SetValue(it.Project)
	f.qty.SetValue(strconv.Itoa(it.Quantity))
	f.unit.SetValue(it.Unit)
	f.expiry.SetValue(it.ExpiryDate)
	f.track = it.TrackExpiry
	f.note.SetValue(it.Note)
}

func (f *itemForm) nextFocus() {
	f.focus = (f.focus + 1) % itemFocusCount
	f.syncFocus()
}

func (f *itemForm) prevFocus() {
	f.focus = (f.focus - 1 + itemFocusCount) % itemFocusCount
	f.syncFocus()
}

func (f *itemForm) syncFocus() {
	for _, in := range []*textinput.Model{&f.tma, &f.name, &f.project, &f.qty, &f.unit, &f.expiry} {
		in.Blur()
	}
	f.note.Blur()
	switch f.focus {
	case itemFocusTMA:
		f.tma.Focus()
	case itemFocusName:
		f.name.Focus()
	case itemFocusProject:
		f.project.Focus()
	case itemFocusQty:
		f.qty.Focus()
	case itemFocusUnit:
		f.unit.Focus()
	case itemFocusExpiry:
		f.expiry.Focus()
	case itemFocusNote:
		f.note.Focus()
	}
}

func (f *itemForm) validate() string {
	if strings.TrimSpace(f.name.Value()) == "" {
		return "Vyplňte název dílu"
	}
	if _, ok := model.ComposeTMANumber(f.tma.Value()); !ok {
		return "TMA číslo musí mít přesně 6 číslic"
	}
	if v := strings.TrimSpace(f.qty.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return "Počet kusů musí být kladné číslo"
		}
	}
	if f.track && strings.TrimSpace(f.expiry.Value()) == "" {
		return "Vyplňte expirační datum nebo vypněte sledování expirace"
	}
	return ""
}

func (f *itemForm) quantity() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.qty.Value()))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (f *itemForm) createPayload() api.ItemCreate {
	tma, _ := model.ComposeTMANumber(f.tma.Value())
	return api.ItemCreate{
		BoxID:       f.boxID,
		TMANumber:   tma,
		Project:     strings.TrimSpace(f.project.Value()),
		PartName:    strings.TrimSpace(f.name.Value()),
		Quantity:    f.quantity(),
		Unit:        strings.TrimSpace(f.unit.Value()),
		TrackExpiry: f.track,
		ExpiryDate:  strings.TrimSpace(f.expiry.Value()),
		Note:        strings.TrimSpace(f.note.Value()),
	}
}

func (f *itemForm) updatePayload() api.ItemUpdate {
	tma, _ := model.ComposeTMANumber(f.tma.Value())
	name := strings.TrimSpace(f.name.Value())
	project := strings.TrimSpace(f.project.Value())
	qty := f.quantity()
	unit := strings.TrimSpace(f.unit.Value())
	expiry := strings.TrimSpace(f.expiry.Value())
	track := f.track
	note := strings.TrimSpace(f.note.Value())
	return api.ItemUpdate{
		TMANumber:   &tma,
		PartName:    &name,
		Project:     &project,
		Quantity:    &qty,
		Unit:        &unit,
		TrackExpiry: &track,
		ExpiryDate:  &expiry,
		Note:        &note,
	}
}

// Archive form. Targets either a single item or a whole box; the
// warning text differs, the payload shape does not.
const (
	archiveFocusReason = iota
	archiveFocusNote
	archiveFocusSubmit
	archiveFocusCount
)

type archiveForm struct {
	itemID   int
	boxID    int
	boxLabel string

	reasonPick picker
	note       textarea.Model

	focus      int
	submitting bool
	errText    string
}

func newArchiveForm(itemID, boxID int, boxLabel string) *archiveForm {
	f := &archiveForm{itemID: itemID, boxID: boxID, boxLabel: boxLabel}
	f.note = textarea.New()
	f.note.Placeholder = "Poznámka k vyskladnění"
	f.note.SetHeight(3)
	f.focus = archiveFocusReason
	return f
}

func (f *archiveForm) wholeBox() bool { return f.itemID == 0 }

func (f *archiveForm) nextFocus() {
	f.focus = (f.focus + 1) % archiveFocusCount
	f.note.Blur()
	if f.focus == archiveFocusNote {
		f.note.Focus()
	}
}

func (f *archiveForm) validate() string {
	r, ok := f.reasonPick.selected()
	if !ok || !model.KnownArchiveReason(r.key) {
		return "Vyberte důvod vyskladnění"
	}
	return ""
}

func (f *archiveForm) payload() api.ArchiveRequest {
	r, _ := f.reasonPick.selected()
	return api.ArchiveRequest{
		Reason: model.ArchiveReason(r.key),
		Note:   strings.TrimSpace(f.note.Value()),
	}
}

// Shelf form (admin tab).
const (
	shelfFocusLocation = iota
	shelfFocusName
	shelfFocusRows
	shelfFocusCols
	shelfFocusType
	shelfFocusSubmit
	shelfFocusCount
)

type shelfForm struct {
	mode    formMode
	shelfID int

	locationPick picker
	name         textinput.Model
	rows         textinput.Model
	cols         textinput.Model
	typePick     picker

	focus      int
	submitting bool
	errText    string
}

var shelfTypes = []pickerOption{
	{key: "standardni", label: "Standardní"},
	{key: "velky", label: "Velký"},
	{key: "maly", label: "Malý"},
	{key: "specialni", label: "Speciální"},
}

func newShelfForm(mode formMode) *shelfForm {
	f := &shelfForm{mode: mode}

	f.name = textinput.New()
	f.name.Placeholder = "Název regálu"
	f.name.CharLimit = 50

	f.rows = textinput.New()
	f.rows.Placeholder = "3"
	f.rows.CharLimit = 2

	f.cols = textinput.New()
	f.cols.Placeholder = "9"
	f.cols.CharLimit = 2

	f.typePick.set(shelfTypes)
	f.typePick.selectKey("standardni")

	f.focus = shelfFocusLocation
	if mode == formEdit {
		f.focus = shelfFocusName
		f.name.Focus()
	}
	return f
}

func (f *shelfForm) prefill(s model.Shelf) {
	f.shelfID = s.ID
	f.name.SetValue(s.Name)
	rows, cols := s.Size()
	f.rows.SetValue(strconv.Itoa(rows))
	f.cols.SetValue(strconv.Itoa(cols))
	if s.Type != "" {
		f.typePick.selectKey(s.Type)
	}
}

func (f *shelfForm) nextFocus() {
	for {
		f.focus = (f.focus + 1) % shelfFocusCount
		if f.mode == formEdit && f.focus == shelfFocusLocation {
			continue
		}
		break
	}
	f.syncFocus()
}

func (f *shelfForm) syncFocus() {
	f.name.Blur()
	f.rows.Blur()
	f.cols.Blur()
	switch f.focus {
	case shelfFocusName:
		f.name.Focus()
	case shelfFocusRows:
		f.rows.Focus()
	case shelfFocusCols:
		f.cols.Focus()
	}
}

func (f *shelfForm) dims() (rows, cols int, ok bool) {
	r, err1 := strconv.Atoi(strings.TrimSpace(f.rows.Value()))
	c, err2 := strconv.Atoi(strings.TrimSpace(f.cols.Value()))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return r, c, true
}

func (f *shelfForm) validate() string {
	if f.mode == formCreate {
		if _, ok := f.locationPick.selected(); !ok {
			return "Vyberte lokaci"
		}
	}
	if strings.TrimSpace(f.name.Value()) == "" {
		return "Vyplňte název regálu"
	}
	rows, cols, ok := f.dims()
	if !ok || rows < 1 || cols < 1 || rows > 20 || cols > 20 {
		return "Řádky a sloupce musí být 1-20"
	}
	return ""
}

func (f *shelfForm) createPayload() api.ShelfCreate {
	loc, _ := f.locationPick.selected()
	typ, _ := f.typePick.selected()
	rows, cols, _ := f.dims()
	return api.ShelfCreate{
		LocationID: loc.id,
		Name:       strings.TrimSpace(f.name.Value()),
		Rows:       rows,
		Cols:       cols,
		Type:       typ.key,
	}
}

func (f *shelfForm) updatePayload() api.ShelfUpdate {
	name := strings.TrimSpace(f.name.Value())
	rows, cols, _ := f.dims()
	typ, _ := f.typePick.selected()
	return api.ShelfUpdate{
		Name: &name,
		Rows: &rows,
		Cols: &cols,
		Type: &typ.key,
	}
}
