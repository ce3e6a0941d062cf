// Package resolve joins worker references on partners and finance entries
// to the committed worker roster for display.
package resolve

import (
	"tableflip.dev/hrow/pkg/entity"
)

const (
	// Unassigned is shown for a null reference.
	Unassigned = "—"
	// Unresolved is shown for a reference to a worker that no longer exists.
	Unresolved = "unresolved"
)

// Resolver looks workers up by id. Build one from committed workers only.
type Resolver struct {
	byID map[entity.ID]entity.Worker
}

// New indexes workers.
func New(workers []entity.Worker) Resolver {
	r := Resolver{byID: make(map[entity.ID]entity.Worker, len(workers))}
	for _, w := range workers {
		r.byID[w.ID] = w
	}
	return r
}

// Lookup returns the referenced worker.
func (r Resolver) Lookup(ref entity.NullID) (entity.Worker, bool) {
	if !ref.Valid {
		return entity.Worker{}, false
	}
	w, ok := r.byID[ref.ID]
	return w, ok
}

// Name renders a reference as the worker's full name or a placeholder.
func (r Resolver) Name(ref entity.NullID) string {
	if !ref.Valid {
		return Unassigned
	}
	w, ok := r.byID[ref.ID]
	if !ok {
		return Unresolved
	}
	if name := w.FullName(); name != "" {
		return name
	}
	return "#" + ref.String()
}

// Dangling reports whether ref points at a missing worker.
func (r Resolver) Dangling(ref entity.NullID) bool {
	if !ref.Valid {
		return false
	}
	_, ok := r.byID[ref.ID]
	return !ok
}
