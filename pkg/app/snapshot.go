package app

import (
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/store"
)

// Snapshot captures the committed state for a persistence collaborator.
// Open drafts are not included.
func (c *Controller) Snapshot() store.Snapshot {
	return store.Snapshot{
		Schema:     store.CurrentSchema,
		Taken:      c.now(),
		Workers:    c.workers.Committed(),
		Partners:   c.partners.Committed(),
		Expenses:   c.expenses.Committed(),
		Revenues:   c.revenues.Committed(),
		Attendance: c.attendance.Committed(),
		Groups:     c.groups.All(),
	}
}

// observer is implemented by id generators that can skip past restored ids.
type observer interface {
	Observe(entity.ID)
}

// Restore replaces committed and draft state with snap, closes any edit
// session and clears every selection.
func (c *Controller) Restore(snap store.Snapshot) {
	c.workers.Load(snap.Workers)
	c.partners.Load(snap.Partners)
	c.expenses.Load(snap.Expenses)
	c.revenues.Load(snap.Revenues)
	c.attendance.Load(snap.Attendance)
	c.syncAttendance()
	c.groups.Load(snap.Groups)
	if o, ok := c.ids.(observer); ok {
		o.Observe(snap.MaxID())
	}
	c.editing = false
	c.clearSelections()
	c.log.Debug("restore",
		zap.Int("workers", len(snap.Workers)),
		zap.Int("partners", len(snap.Partners)),
		zap.Int("expenses", len(snap.Expenses)),
		zap.Int("revenues", len(snap.Revenues)),
	)
}
