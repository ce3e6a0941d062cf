// Package selection tracks which rows of a table are checked.
package selection

import (
	"slices"

	"tableflip.dev/hrow/pkg/entity"
)

// Set is a set of selected ids. The zero value is empty and ready to use.
type Set struct {
	ids map[entity.ID]struct{}
}

// New returns a Set holding ids.
func New(ids ...entity.ID) *Set {
	s := &Set{}
	s.Add(ids...)
	return s
}

// Toggle flips membership of id.
func (s *Set) Toggle(id entity.ID) {
	if s.Has(id) {
		delete(s.ids, id)
		return
	}
	s.Add(id)
}

// Add selects ids.
func (s *Set) Add(ids ...entity.ID) {
	if len(ids) == 0 {
		return
	}
	if s.ids == nil {
		s.ids = make(map[entity.ID]struct{}, len(ids))
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Has reports whether id is selected.
func (s *Set) Has(id entity.ID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len is the number of selected ids.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Set) IDs() []entity.ID {
	out := make([]entity.ID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Clear empties the set.
func (s *Set) Clear() {
	clear(s.ids)
}

// Replace swaps the contents for ids.
func (s *Set) Replace(ids ...entity.ID) {
	s.Clear()
	s.Add(ids...)
}

// Retain drops every id for which keep returns false and reports how many
// were dropped.
func (s *Set) Retain(keep func(entity.ID) bool) int {
	dropped := 0
	for id := range s.ids {
		if !keep(id) {
			delete(s.ids, id)
			dropped++
		}
	}
	return dropped
}
