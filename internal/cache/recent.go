package cache

// Recent is the most-recently-viewed list shown in the side panel:
// bounded, deduplicated by id, newest first. Resets with the session.
type Recent[T any] struct {
	limit int
	id    func(T) int
	items []T
}

// NewRecent builds a recent list keeping at most limit entries,
// identified by the id function.
func NewRecent[T any](limit int, id func(T) int) *Recent[T] {
	if limit < 1 {
		limit = 1
	}
	return &Recent[T]{limit: limit, id: id}
}

// Add records a view. An already-present entry moves to the front
// (updated to the new value); overflow drops the oldest.
func (r *Recent[T]) Add(v T) {
	id := r.id(v)
	kept := make([]T, 0, len(r.items)+1)
	kept = append(kept, v)
	for _, it := range r.items {
		if r.id(it) == id {
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) > r.limit {
		kept = kept[:r.limit]
	}
	r.items = kept
}

// Items returns the list newest first. The returned slice is shared;
// callers must not mutate it.
func (r *Recent[T]) Items() []T { return r.items }

func (r *Recent[T]) Len() int { return len(r.items) }

func (r *Recent[T]) Clear() { r.items = nil }
