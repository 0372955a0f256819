// Package search filters the full Gitterbox set in memory. The backend
// exposes a /api/search endpoint, but the client fetches all active
// boxes and filters locally, which keeps filter changes instant and the
// predicate testable.
package search

import (
	"sort"
	"strconv"
	"strings"

	"sklad-cli/internal/model"
)

// Query is the AND-combined filter set. Zero values mean "not active".
type Query struct {
	// Text matches case-insensitively against the box number, person,
	// note, location, and shelf name.
	Text string
	// Location is an exact location-name match.
	Location string
	// Status matches the stav enum, except model.StatusCritical which
	// matches the critical-expiry flag instead.
	Status string
	// Person is a case-insensitive substring match.
	Person string
	// Project matches any of the box's items; requires an item lookup.
	Project string
}

func (q Query) Empty() bool {
	return strings.TrimSpace(q.Text) == "" &&
		q.Location == "" &&
		q.Status == "" &&
		strings.TrimSpace(q.Person) == "" &&
		strings.TrimSpace(q.Project) == ""
}

// ItemLookup resolves a box's items for the project filter. Callers
// back it with the per-box item cache; ok=false means the items are
// not loaded, in which case the box is excluded from project-filtered
// results rather than guessed at.
type ItemLookup func(boxID int) (items []model.Item, ok bool)

// Filter returns the boxes matching every active predicate of q.
// The input slice is never mutated; an empty query returns a copy of
// the input in order.
func Filter(boxes []model.Box, q Query, items ItemLookup) []model.Box {
	out := make([]model.Box, 0, len(boxes))
	for _, gb := range boxes {
		if Matches(gb, q, items) {
			out = append(out, gb)
		}
	}
	return out
}

// Matches reports whether a single box passes q.
func Matches(gb model.Box, q Query, items ItemLookup) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !matchesText(gb, text) {
			return false
		}
	}
	if q.Location != "" && gb.Location != q.Location {
		return false
	}
	if q.Status != "" {
		if q.Status == model.StatusCritical {
			if !gb.Critical {
				return false
			}
		} else if string(gb.Status) != q.Status {
			return false
		}
	}
	if person := strings.ToLower(strings.TrimSpace(q.Person)); person != "" {
		if !strings.Contains(strings.ToLower(gb.Person), person) {
			return false
		}
	}
	if project := strings.TrimSpace(q.Project); project != "" {
		if items == nil {
			return false
		}
		its, ok := items(gb.ID)
		if !ok || !anyProject(its, project) {
			return false
		}
	}
	return true
}

func matchesText(gb model.Box, lowered string) bool {
	if strings.Contains(strconv.Itoa(gb.Number), lowered) {
		return true
	}
	for _, field := range []string{gb.Person, gb.Note, gb.Location, gb.ShelfName} {
		if field != "" && strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

func anyProject(items []model.Item, project string) bool {
	p := strings.ToLower(project)
	for _, it := range items {
		if strings.ToLower(it.Project) == p {
			return true
		}
	}
	return false
}

// DistinctPersons lists unique responsible persons, sorted, for the
// person filter dropdown.
func DistinctPersons(boxes []model.Box) []string {
	return distinct(boxes, func(gb model.Box) string { return gb.Person })
}

// DistinctLocations lists unique location names, sorted.
func DistinctLocations(boxes []model.Box) []string {
	return distinct(boxes, func(gb model.Box) string { return gb.Location })
}

// DistinctProjects lists unique project names across the given items.
func DistinctProjects(items []model.Item) []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range items {
		p := strings.TrimSpace(it.Project)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func distinct(boxes []model.Box, key func(model.Box) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, gb := range boxes {
		k := strings.TrimSpace(key(gb))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
