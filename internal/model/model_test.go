package model

import "testing"

func TestParseDimensions(t *testing.T) {
	cases := []struct {
		in   string
		rows int
		cols int
	}{
		{"3x9", 3, 9},
		{"10x2", 10, 2},
		{"3X9", 3, 9},
		{" 4 x 5 ", 4, 5},
		{"", 0, 0},
		{"x9", 0, 0},
		{"3x", 0, 0},
		{"3x0", 0, 0},
		{"-1x4", 0, 0},
		{"axb", 0, 0},
		{"3", 0, 0},
	}
	for _, c := range cases {
		r, cols := ParseDimensions(c.in)
		if r != c.rows || cols != c.cols {
			t.Errorf("ParseDimensions(%q) = %d,%d; want %d,%d", c.in, r, cols, c.rows, c.cols)
		}
	}
}

func TestShelfSize_PrefersExplicitFields(t *testing.T) {
	s := Shelf{Rows: 2, Cols: 7, Dimensions: "3x9"}
	if r, c := s.Size(); r != 2 || c != 7 {
		t.Fatalf("Size() = %d,%d; want 2,7", r, c)
	}

	s = Shelf{Dimensions: "3x9"}
	if r, c := s.Size(); r != 3 || c != 9 {
		t.Fatalf("Size() = %d,%d; want 3,9", r, c)
	}
}

func TestValidTMANumber(t *testing.T) {
	valid := []string{"", "EU-SVA-000123-25", "EU-SVA-999999-25"}
	for _, s := range valid {
		if !ValidTMANumber(s) {
			t.Errorf("ValidTMANumber(%q) = false; want true", s)
		}
	}
	invalid := []string{
		"EU-SVA-12345-25",
		"EU-SVA-1234567-25",
		"EU-SVA-12345a-25",
		"EU-SVA-123456-24",
		"eu-sva-123456-25",
		"EU-SVA-123456-25 ",
	}
	for _, s := range invalid {
		if ValidTMANumber(s) {
			t.Errorf("ValidTMANumber(%q) = true; want false", s)
		}
	}
}

func TestComposeTMANumber(t *testing.T) {
	if got, ok := ComposeTMANumber("001234"); !ok || got != "EU-SVA-001234-25" {
		t.Fatalf("ComposeTMANumber(001234) = %q,%v", got, ok)
	}
	if got, ok := ComposeTMANumber(""); !ok || got != "" {
		t.Fatalf("ComposeTMANumber(empty) = %q,%v; want empty,true", got, ok)
	}
	for _, bad := range []string{"12345", "1234567", "12a456"} {
		if _, ok := ComposeTMANumber(bad); ok {
			t.Errorf("ComposeTMANumber(%q) accepted", bad)
		}
	}
}

func TestTMAMiddle(t *testing.T) {
	if got := TMAMiddle("EU-SVA-004217-25"); got != "004217" {
		t.Fatalf("TMAMiddle = %q; want 004217", got)
	}
	if got := TMAMiddle("garbage"); got != "" {
		t.Fatalf("TMAMiddle(garbage) = %q; want empty", got)
	}
}

func TestDisplayStatus(t *testing.T) {
	cases := []struct {
		box  Box
		want string
	}{
		{Box{Status: BoxActive}, "aktivni"},
		{Box{Status: BoxFull}, "plny"},
		{Box{Status: BoxFull, Critical: true}, StatusCritical},
		{Box{}, "aktivni"},
	}
	for _, c := range cases {
		if got := c.box.DisplayStatus(); got != c.want {
			t.Errorf("DisplayStatus(%+v) = %q; want %q", c.box, got, c.want)
		}
	}
}

func TestUnderfilled(t *testing.T) {
	if !(Box{FillPercent: 79}).Underfilled() {
		t.Error("79% should be underfilled")
	}
	if (Box{FillPercent: 80}).Underfilled() {
		t.Error("80% should not be underfilled")
	}
}

func TestAvailableNumbersContains(t *testing.T) {
	a := AvailableNumbers{Free: []int{1, 3, 8}}
	if !a.Contains(3) || a.Contains(2) {
		t.Fatalf("Contains misbehaves: %v", a.Free)
	}
}
