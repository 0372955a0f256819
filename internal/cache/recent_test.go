package cache

import "testing"

type viewed struct {
	id   int
	name string
}

func newViewedList() *Recent[viewed] {
	return NewRecent(10, func(v viewed) int { return v.id })
}

func TestRecent_NewestFirst(t *testing.T) {
	r := newViewedList()
	r.Add(viewed{id: 1})
	r.Add(viewed{id: 2})
	r.Add(viewed{id: 3})

	items := r.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d; want 3", len(items))
	}
	if items[0].id != 3 || items[2].id != 1 {
		t.Fatalf("order = %v; want newest first", items)
	}
}

func TestRecent_DedupMovesToFront(t *testing.T) {
	r := newViewedList()
	r.Add(viewed{id: 1, name: "old"})
	r.Add(viewed{id: 2})
	r.Add(viewed{id: 1, name: "new"})

	items := r.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d; want 2 (dedup)", len(items))
	}
	if items[0].id != 1 || items[0].name != "new" {
		t.Fatalf("re-added entry should be first and updated: %v", items)
	}
}

func TestRecent_NeverExceedsLimit(t *testing.T) {
	r := newViewedList()
	for i := 1; i <= 25; i++ {
		r.Add(viewed{id: i})
	}
	if r.Len() != 10 {
		t.Fatalf("len = %d; want 10", r.Len())
	}
	items := r.Items()
	if items[0].id != 25 {
		t.Fatalf("most recent should be 25, got %d", items[0].id)
	}
	if items[9].id != 16 {
		t.Fatalf("oldest kept should be 16, got %d", items[9].id)
	}
}

func TestRecent_Clear(t *testing.T) {
	r := newViewedList()
	r.Add(viewed{id: 1})
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("len after Clear = %d", r.Len())
	}
}
