package tui

import (
	"testing"

	"sklad-cli/internal/model"
)

func TestBoxFormValidateCreate(t *testing.T) {
	f := newBoxForm(formCreate)

	if problem := f.validate(); problem == "" {
		t.Fatal("empty create form validated clean")
	}

	f.numberPick.set([]pickerOption{{id: 5, label: "GB #5"}})
	f.numberPick.move(0) // mark chosen
	if problem := f.validate(); problem == "" {
		t.Fatal("form without person validated clean")
	}

	f.person.SetValue("Novák")
	if problem := f.validate(); problem == "" {
		t.Fatal("form without position validated clean")
	}

	f.positionPick.set([]pickerOption{{id: 12, label: "1-1"}})
	f.positionPick.selectID(12)
	if problem := f.validate(); problem != "" {
		t.Fatalf("complete form rejected: %s", problem)
	}
}

func TestBoxFormFillRange(t *testing.T) {
	f := newBoxForm(formCreate)
	f.numberPick.set([]pickerOption{{id: 1, label: "GB #1"}})
	f.numberPick.selectID(1)
	f.person.SetValue("Novák")
	f.positionPick.set([]pickerOption{{id: 3, label: "1-1"}})
	f.positionPick.selectID(3)

	f.fill.SetValue("150")
	if problem := f.validate(); problem == "" {
		t.Error("fill 150 accepted")
	}
	f.fill.SetValue("80")
	if problem := f.validate(); problem != "" {
		t.Errorf("fill 80 rejected: %s", problem)
	}
}

func TestBoxEditNeverSendsNumber(t *testing.T) {
	f := newBoxForm(formEdit)
	f.prefill(model.Box{ID: 7, Number: 42, Person: "Novák", FillPercent: 90})

	// Focus cycling skips the number field entirely in edit mode.
	for i := 0; i < boxFocusCount*2; i++ {
		if f.focus == boxFocusNumber {
			t.Fatal("edit form focused the number field")
		}
		f.nextFocus()
	}

	u := f.updatePayload()
	if u.Person != "Novák" {
		t.Errorf("person = %q", u.Person)
	}
	// A BoxUpdate has no number field at all; this asserts the fill
	// carried over from prefill.
	if u.FillPercent == nil || *u.FillPercent != 90 {
		t.Errorf("fill = %v, want 90", u.FillPercent)
	}
}

func TestItemFormTMAValidation(t *testing.T) {
	f := newItemForm(formCreate, 1)
	f.name.SetValue("Brzdový kotouč")
	f.track = false

	f.tma.SetValue("12345")
	if problem := f.validate(); problem == "" {
		t.Error("5-digit TMA accepted")
	}

	f.tma.SetValue("123456")
	if problem := f.validate(); problem != "" {
		t.Errorf("6-digit TMA rejected: %s", problem)
	}
	if got := f.createPayload().TMANumber; got != "EU-SVA-123456-25" {
		t.Errorf("composed TMA = %q", got)
	}

	f.tma.SetValue("")
	if problem := f.validate(); problem != "" {
		t.Errorf("empty TMA rejected: %s", problem)
	}
}

func TestItemFormExpiryRequiredWhenTracking(t *testing.T) {
	f := newItemForm(formCreate, 1)
	f.name.SetValue("Filtr")
	f.track = true
	if problem := f.validate(); problem == "" {
		t.Error("tracking without expiry date accepted")
	}
	f.expiry.SetValue("2026-12-31")
	if problem := f.validate(); problem != "" {
		t.Errorf("tracking with expiry rejected: %s", problem)
	}
}

func TestArchiveFormRequiresKnownReason(t *testing.T) {
	f := newArchiveForm(3, 1, "GB #5")
	if problem := f.validate(); problem == "" {
		t.Error("archive without reason accepted")
	}
	f.reasonPick.set([]pickerOption{{key: "expirace", label: "Expirace"}})
	f.reasonPick.selectKey("expirace")
	if problem := f.validate(); problem != "" {
		t.Errorf("valid reason rejected: %s", problem)
	}
	if got := f.payload().Reason; got != model.ReasonExpired {
		t.Errorf("payload reason = %q", got)
	}
}

func TestShelfFormDimensionLimits(t *testing.T) {
	f := newShelfForm(formCreate)
	f.locationPick.set([]pickerOption{{id: 1, label: "Hala A"}})
	f.locationPick.selectID(1)
	f.name.SetValue("A9")

	cases := []struct {
		rows, cols string
		ok         bool
	}{
		{"3", "9", true},
		{"20", "20", true},
		{"0", "9", false},
		{"21", "9", false},
		{"", "9", false},
		{"x", "9", false},
	}
	for _, c := range cases {
		f.rows.SetValue(c.rows)
		f.cols.SetValue(c.cols)
		problem := f.validate()
		if c.ok && problem != "" {
			t.Errorf("%sx%s rejected: %s", c.rows, c.cols, problem)
		}
		if !c.ok && problem == "" {
			t.Errorf("%sx%s accepted", c.rows, c.cols)
		}
	}
}

func TestPickerCycling(t *testing.T) {
	var p picker
	p.set([]pickerOption{{id: 1, label: "a"}, {id: 2, label: "b"}, {id: 3, label: "c"}})

	if _, ok := p.selected(); ok {
		t.Fatal("fresh picker reports a selection")
	}
	p.move(1)
	if sel, _ := p.selected(); sel.id != 2 {
		t.Errorf("after move(1): id %d, want 2", sel.id)
	}
	p.move(-1)
	p.move(-1)
	if sel, _ := p.selected(); sel.id != 3 {
		t.Errorf("wrap backwards: id %d, want 3", sel.id)
	}
	p.selectID(2)
	if sel, _ := p.selected(); sel.id != 2 {
		t.Errorf("selectID: id %d, want 2", sel.id)
	}
}
