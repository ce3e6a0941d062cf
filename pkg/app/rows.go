package app

import (
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/selection"
	"tableflip.dev/hrow/pkg/sorting"
)

// Add appends a new row with a fresh id to the draft of scope. It is a
// no-op outside an edit session or when scope is not on the active table.
func (c *Controller) Add(s Scope) (entity.ID, bool) {
	if !c.canEdit() || !c.editing || !c.owns(s) {
		return 0, false
	}
	id := c.ids.Next()
	switch s {
	case ScopeWorkers:
		c.workers.Add(func() entity.Worker { return c.make.Worker(id) })
	case ScopePartners:
		c.partners.Add(func() entity.Partner { return c.make.Partner(id) })
	case ScopeExpenses:
		c.expenses.Add(func() entity.Expense { return c.make.Expense(id) })
	case ScopeRevenues:
		c.revenues.Add(func() entity.Revenue { return c.make.Revenue(id) })
	default:
		return 0, false
	}
	c.log.Debug("add", zap.String("scope", string(s)), zap.Int64("id", int64(id)))
	return id, true
}

// Edit coerces raw into field key of the draft row id. It reports false
// outside an edit session or for unknown rows and read-only fields.
func (c *Controller) Edit(s Scope, id entity.ID, key string, raw any) bool {
	if !c.canEdit() || !c.editing || !c.owns(s) {
		return false
	}
	return c.rows(s).Edit(id, key, raw)
}

// Delete removes ids from both copies of scope immediately, whether or not
// an edit session is open, and clears the selection. Removing workers
// resynchronizes the attendance records; references held by other rows are
// left dangling.
func (c *Controller) Delete(s Scope, ids ...entity.ID) int {
	if !c.canEdit() || len(ids) == 0 || !c.owns(s) {
		return 0
	}
	doomed := selection.New(ids...)
	n := c.rows(s).Remove(doomed.Has)
	if s == ScopeWorkers {
		c.syncAttendance()
	}
	c.selections[s].Clear()
	c.prune()
	c.log.Debug("delete", zap.String("scope", string(s)), zap.Int("rows", n))
	return n
}

// DeleteSelected deletes the selected rows of scope.
func (c *Controller) DeleteSelected(s Scope) int {
	return c.Delete(s, c.selections[s].IDs()...)
}

// Toggle flips the selection of a visible row of scope.
func (c *Controller) Toggle(s Scope, id entity.ID) bool {
	if !c.owns(s) {
		return false
	}
	r := c.rows(s)
	if !r.Has(id) && !(c.editing && r.HasDraft(id)) {
		return false
	}
	c.selections[s].Toggle(id)
	return true
}

// Selection lists the selected ids of scope in ascending order.
func (c *Controller) Selection(s Scope) []entity.ID {
	return c.selections[s].IDs()
}

// Selected reports whether id is selected in scope.
func (c *Controller) Selected(s Scope, id entity.ID) bool {
	return c.selections[s].Has(id)
}

// Sort registers a header click on key for scope and returns the new state.
// sorting.BySelection sorts selected rows last.
func (c *Controller) Sort(s Scope, key string) sorting.State {
	sortable := key == sorting.BySelection || c.rows(s).Sortable(key)
	c.sorts[s] = c.sorts[s].Click(key, sortable)
	return c.sorts[s]
}

// SortState is the current sort of scope.
func (c *Controller) SortState(s Scope) sorting.State {
	return c.sorts[s]
}
