package attendance

import (
	"tableflip.dev/hrow/pkg/draft"
	"tableflip.dev/hrow/pkg/entity"
)

// Matrix is the committed/draft pair of attendance sheets. Mutations target
// the draft unless stated otherwise; the caller decides whether an edit
// session is open.
type Matrix struct {
	committed Sheet
	draft     Sheet
}

var _ draft.Stager = (*Matrix)(nil)

// NewMatrix returns an empty matrix with one record per worker.
func NewMatrix(workerIDs ...entity.ID) *Matrix {
	m := &Matrix{}
	m.Sync(workerIDs)
	return m
}

// Load replaces both sheets with a copy of s.
func (m *Matrix) Load(s Sheet) {
	m.committed = s.Clone()
	m.draft = s.Clone()
}

// Committed returns a copy of the committed sheet.
func (m *Matrix) Committed() Sheet {
	return m.committed.Clone()
}

// Draft returns a copy of the draft sheet.
func (m *Matrix) Draft() Sheet {
	return m.draft.Clone()
}

// View returns the sheet shown in the given mode.
func (m *Matrix) View(editing bool) Sheet {
	if editing {
		return m.Draft()
	}
	return m.Committed()
}

// Snapshot implements draft.Stager.
func (m *Matrix) Snapshot() {
	m.draft = m.committed.Clone()
}

// Promote implements draft.Stager.
func (m *Matrix) Promote() {
	m.committed = m.draft.Clone()
}

// Revert implements draft.Stager.
func (m *Matrix) Revert() {
	m.Snapshot()
}

// SetColumnDate sets the draft column text, flags its validity and, when a
// non-empty date changes to another non-empty date, moves every entry from
// the old key to the new one. Invalid text is kept as typed.
func (m *Matrix) SetColumnDate(index int, raw string) bool {
	return m.draft.setColumnDate(index, raw)
}

// SetCommittedColumnDate applies SetColumnDate to both sheets. It is used
// outside an edit session so the two copies stay equal.
func (m *Matrix) SetCommittedColumnDate(index int, raw string) bool {
	if !m.committed.setColumnDate(index, raw) {
		return false
	}
	m.draft.setColumnDate(index, raw)
	return true
}

// TogglePresence flips the draft presence flag of a worker on date. Blank or
// invalid dates are ignored.
func (m *Matrix) TogglePresence(workerID entity.ID, date string) bool {
	return m.draft.update(workerID, date, func(e Entry) Entry {
		e.Present = !e.Present
		return e
	})
}

// SetComment replaces the draft comment of a worker on date. Blank or
// invalid dates are ignored.
func (m *Matrix) SetComment(workerID entity.ID, date, text string) bool {
	return m.draft.update(workerID, date, func(e Entry) Entry {
		e.Comment = text
		return e
	})
}

// AddColumn appends a blank, valid draft column and seeds every draft record
// with an entry under the empty key.
func (m *Matrix) AddColumn() int {
	m.draft.addColumn()
	return len(m.draft.Columns) - 1
}

// Sync resynchronizes both sheets to the worker roster: records of retained
// workers are kept untouched, new workers get empty records and records of
// removed workers are dropped.
func (m *Matrix) Sync(workerIDs []entity.ID) {
	m.committed.sync(workerIDs)
	m.draft.sync(workerIDs)
}
