package search

import (
	"reflect"
	"testing"

	"sklad-cli/internal/model"
)

func sampleBoxes() []model.Box {
	return []model.Box{
		{ID: 1, Number: 5, Person: "Jan Novák", Location: "Hala A", ShelfName: "A1", Status: model.BoxActive},
		{ID: 2, Number: 9, Person: "Petr Svoboda", Location: "Hala A", ShelfName: "A2", Status: model.BoxFull, Critical: true},
		{ID: 3, Number: 12, Person: "Jan Novák", Location: "Hala B", ShelfName: "B1", Status: model.BoxActive, Note: "křehké"},
		{ID: 4, Number: 21, Person: "Eva Malá", Location: "Hala B", ShelfName: "B1", Status: model.BoxActive, Critical: true},
		{ID: 5, Number: 30, Person: "Eva Malá", Location: "Hala C", ShelfName: "C1", Status: model.BoxFull},
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	boxes := sampleBoxes()
	got := Filter(boxes, Query{}, nil)
	if !reflect.DeepEqual(got, boxes) {
		t.Fatalf("empty query changed the result: %v", got)
	}
}

func TestFilter_NeverGrows(t *testing.T) {
	boxes := sampleBoxes()
	queries := []Query{
		{Text: "jan"},
		{Location: "Hala A"},
		{Status: "plny"},
		{Status: model.StatusCritical},
		{Person: "malá"},
		{Text: "a", Location: "Hala B"},
	}
	for _, q := range queries {
		if got := Filter(boxes, q, nil); len(got) > len(boxes) {
			t.Errorf("query %+v grew result: %d > %d", q, len(got), len(boxes))
		}
	}
}

func TestFilter_Composition(t *testing.T) {
	boxes := sampleBoxes()
	f1 := Query{Location: "Hala B"}
	f2 := Query{Person: "jan"}
	combined := Query{Location: "Hala B", Person: "jan"}

	step := Filter(Filter(boxes, f1, nil), f2, nil)
	direct := Filter(boxes, combined, nil)
	if !reflect.DeepEqual(step, direct) {
		t.Fatalf("composition mismatch:\nstep=%v\ndirect=%v", step, direct)
	}
}

func TestFilter_CriticalStatus(t *testing.T) {
	boxes := sampleBoxes()
	got := Filter(boxes, Query{Status: model.StatusCritical}, nil)
	if len(got) != 2 {
		t.Fatalf("critical filter: got %d boxes; want 2", len(got))
	}
	for _, gb := range got {
		if !gb.Critical {
			t.Errorf("non-critical box %d in result", gb.Number)
		}
	}
}

func TestFilter_StatusEnum(t *testing.T) {
	got := Filter(sampleBoxes(), Query{Status: "plny"}, nil)
	if len(got) != 2 {
		t.Fatalf("plny filter: got %d; want 2", len(got))
	}
}

func TestFilter_TextMatchesAllFields(t *testing.T) {
	boxes := sampleBoxes()
	cases := []struct {
		text string
		want []int // box numbers
	}{
		{"12", []int{12}},
		{"novák", []int{5, 12}},
		{"NOVÁK", []int{5, 12}},
		{"křehké", []int{12}},
		{"hala c", []int{30}},
		{"b1", []int{12, 21}},
		{"nothing-matches-this", nil},
	}
	for _, c := range cases {
		got := Filter(boxes, Query{Text: c.text}, nil)
		var nums []int
		for _, gb := range got {
			nums = append(nums, gb.Number)
		}
		if !reflect.DeepEqual(nums, c.want) {
			t.Errorf("text %q: got %v; want %v", c.text, nums, c.want)
		}
	}
}

func TestFilter_Project(t *testing.T) {
	boxes := sampleBoxes()
	itemsByBox := map[int][]model.Item{
		1: {{Project: "Alfa"}, {Project: "Beta"}},
		3: {{Project: "alfa"}},
		4: {},
	}
	lookup := func(id int) ([]model.Item, bool) {
		its, ok := itemsByBox[id]
		return its, ok
	}

	got := Filter(boxes, Query{Project: "Alfa"}, lookup)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("project filter: got %v", got)
	}

	// Boxes whose items are not loaded are excluded, not guessed.
	if got := Filter(boxes, Query{Project: "Alfa"}, func(int) ([]model.Item, bool) { return nil, false }); len(got) != 0 {
		t.Fatalf("unloaded items should exclude: got %v", got)
	}
	// A project filter without a lookup matches nothing.
	if got := Filter(boxes, Query{Project: "Alfa"}, nil); len(got) != 0 {
		t.Fatalf("nil lookup should exclude: got %v", got)
	}
}

func TestQueryEmpty(t *testing.T) {
	if !(Query{}).Empty() {
		t.Error("zero query should be empty")
	}
	if (Query{Text: " x "}).Empty() {
		t.Error("text query should not be empty")
	}
	if (Query{Text: "   "}).Empty() != true {
		t.Error("whitespace-only text is empty")
	}
}

func TestDistinct(t *testing.T) {
	boxes := sampleBoxes()
	persons := DistinctPersons(boxes)
	if !reflect.DeepEqual(persons, []string{"Eva Malá", "Jan Novák", "Petr Svoboda"}) {
		t.Fatalf("persons = %v", persons)
	}
	locs := DistinctLocations(boxes)
	if !reflect.DeepEqual(locs, []string{"Hala A", "Hala B", "Hala C"}) {
		t.Fatalf("locations = %v", locs)
	}
	projects := DistinctProjects([]model.Item{
		{Project: "Beta"}, {Project: "Alfa"}, {Project: "Beta"}, {Project: " "},
	})
	if !reflect.DeepEqual(projects, []string{"Alfa", "Beta"}) {
		t.Fatalf("projects = %v", projects)
	}
}
