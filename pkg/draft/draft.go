// Package draft implements the committed/draft pair behind every editable
// table. Views read the committed copy outside an edit session and the draft
// copy inside one; Promote and Revert end the session by making the two
// copies equal again.
package draft

import (
	"slices"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/schema"
)

// Stager is implemented by everything that takes part in an edit session.
type Stager interface {
	// Snapshot overwrites the draft with a copy of the committed state.
	Snapshot()
	// Promote overwrites the committed state with a copy of the draft.
	Promote()
	// Revert throws the draft away.
	Revert()
}

// Collection is a committed/draft pair of rows of one type.
type Collection[T entity.Row] struct {
	fields    schema.Set[T]
	committed []T
	draft     []T
}

var _ Stager = (*Collection[entity.Worker])(nil)

// New returns a collection whose committed and draft copies both hold rows.
func New[T entity.Row](fields schema.Set[T], rows ...T) *Collection[T] {
	c := &Collection[T]{fields: fields}
	c.Load(rows)
	return c
}

// Fields returns the descriptors used to edit rows.
func (c *Collection[T]) Fields() schema.Set[T] {
	return c.fields
}

// Load replaces both copies with rows.
func (c *Collection[T]) Load(rows []T) {
	c.committed = slices.Clone(rows)
	c.draft = slices.Clone(rows)
}

// Committed returns a copy of the authoritative rows.
func (c *Collection[T]) Committed() []T {
	return slices.Clone(c.committed)
}

// Draft returns a copy of the scratch rows.
func (c *Collection[T]) Draft() []T {
	return slices.Clone(c.draft)
}

// View returns the rows a table shows in the given mode.
func (c *Collection[T]) View(editing bool) []T {
	if editing {
		return c.Draft()
	}
	return c.Committed()
}

// Snapshot implements Stager.
func (c *Collection[T]) Snapshot() {
	c.draft = slices.Clone(c.committed)
}

// Promote implements Stager.
func (c *Collection[T]) Promote() {
	c.committed = slices.Clone(c.draft)
}

// Revert implements Stager.
func (c *Collection[T]) Revert() {
	c.Snapshot()
}

// Add appends the row built by factory to the draft only and returns it.
func (c *Collection[T]) Add(factory func() T) T {
	row := factory()
	c.draft = append(c.draft, row)
	return row
}

// Edit writes raw into key on the draft row with id. It reports false when
// the row or an editable field is missing.
func (c *Collection[T]) Edit(id entity.ID, key string, raw any) bool {
	i := indexOf(c.draft, id)
	if i < 0 {
		return false
	}
	updated, ok := c.fields.Apply(c.draft[i], key, raw)
	if !ok {
		return false
	}
	c.draft = slices.Clone(c.draft)
	c.draft[i] = updated
	return true
}

// Remove deletes the rows whose id matches from both copies and returns how
// many committed rows went away.
func (c *Collection[T]) Remove(match func(entity.ID) bool) int {
	before := len(c.committed)
	drop := func(row T) bool { return match(row.RowID()) }
	c.committed = slices.DeleteFunc(slices.Clone(c.committed), drop)
	c.draft = slices.DeleteFunc(slices.Clone(c.draft), drop)
	return before - len(c.committed)
}

// Find looks up a committed row.
func (c *Collection[T]) Find(id entity.ID) (T, bool) {
	return find(c.committed, id)
}

// FindDraft looks up a draft row.
func (c *Collection[T]) FindDraft(id entity.ID) (T, bool) {
	return find(c.draft, id)
}

// Has reports whether id is committed.
func (c *Collection[T]) Has(id entity.ID) bool {
	return indexOf(c.committed, id) >= 0
}

// HasDraft reports whether id is in the draft.
func (c *Collection[T]) HasDraft(id entity.ID) bool {
	return indexOf(c.draft, id) >= 0
}

// Sortable reports whether key names a sortable field.
func (c *Collection[T]) Sortable(key string) bool {
	return c.fields.Sortable(key)
}

// IDs lists committed ids in stored order.
func (c *Collection[T]) IDs() []entity.ID {
	out := make([]entity.ID, len(c.committed))
	for i, row := range c.committed {
		out[i] = row.RowID()
	}
	return out
}

// Len is the number of committed rows.
func (c *Collection[T]) Len() int {
	return len(c.committed)
}

func indexOf[T entity.Row](rows []T, id entity.ID) int {
	return slices.IndexFunc(rows, func(row T) bool { return row.RowID() == id })
}

func find[T entity.Row](rows []T, id entity.ID) (T, bool) {
	if i := indexOf(rows, id); i >= 0 {
		return rows[i], true
	}
	var zero T
	return zero, false
}
