// Package refresh is the cross-view "data changed" hub. Views
// subscribe to the entity topics they render; mutations publish to the
// topic they touched, and every subscriber reloads. This replaces the
// original string-keyed callback registry with typed topics.
package refresh

// Topic identifies the entity family whose data changed.
type Topic int

const (
	// Boxes covers Gitterbox create/update/delete and position changes.
	Boxes Topic = iota
	// Shelves covers shelf CRUD and location structure.
	Shelves
	// Items covers item create/update inside a box.
	Items
	// Archive covers unshelving of items or whole boxes.
	Archive
)

// Hub fans out change notifications. It is not safe for concurrent
// use: the TUI runs it on the bubbletea update loop only.
type Hub struct {
	subs   map[Topic][]func(Topic)
	nextID int
	ids    map[Topic][]int
}

func NewHub() *Hub {
	return &Hub{
		subs: map[Topic][]func(Topic){},
		ids:  map[Topic][]int{},
	}
}

// Subscribe registers fn for topic and returns an unsubscribe func.
func (h *Hub) Subscribe(topic Topic, fn func(Topic)) (unsubscribe func()) {
	h.nextID++
	id := h.nextID
	h.subs[topic] = append(h.subs[topic], fn)
	h.ids[topic] = append(h.ids[topic], id)
	return func() {
		for i, sid := range h.ids[topic] {
			if sid == id {
				h.subs[topic] = append(h.subs[topic][:i], h.subs[topic][i+1:]...)
				h.ids[topic] = append(h.ids[topic][:i], h.ids[topic][i+1:]...)
				return
			}
		}
	}
}

// Publish notifies every subscriber of topic, plus subscribers of the
// topics it implies: item and archive changes alter box item counts
// and expiry flags, so they also publish Boxes.
func (h *Hub) Publish(topic Topic) {
	for _, t := range expand(topic) {
		for _, fn := range h.subs[t] {
			fn(topic)
		}
	}
}

func expand(topic Topic) []Topic {
	switch topic {
	case Items, Archive:
		return []Topic{topic, Boxes}
	default:
		return []Topic{topic}
	}
}
