package app

import (
	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/resolve"
	"tableflip.dev/hrow/pkg/sorting"
)

// drafting reports whether scope shows its draft.
func (c *Controller) drafting(s Scope) bool {
	return c.editing && c.owns(s)
}

func (c *Controller) selectedFn(s Scope) func(entity.ID) bool {
	return c.selections[s].Has
}

// Workers is the displayed worker rows: the draft while editing the workers
// table, committed otherwise, in the current sort order.
func (c *Controller) Workers() []entity.Worker {
	sel := c.selectedFn(ScopeWorkers)
	return sorting.Fields(c.workers.View(c.drafting(ScopeWorkers)), c.workers.Fields(), c.sorts[ScopeWorkers],
		func(w entity.Worker) bool { return sel(w.ID) })
}

// Partners is the displayed partner rows.
func (c *Controller) Partners() []entity.Partner {
	sel := c.selectedFn(ScopePartners)
	return sorting.Fields(c.partners.View(c.drafting(ScopePartners)), c.partners.Fields(), c.sorts[ScopePartners],
		func(p entity.Partner) bool { return sel(p.ID) })
}

// Expenses is the displayed expense rows.
func (c *Controller) Expenses() []entity.Expense {
	sel := c.selectedFn(ScopeExpenses)
	return sorting.Fields(c.expenses.View(c.drafting(ScopeExpenses)), c.expenses.Fields(), c.sorts[ScopeExpenses],
		func(e entity.Expense) bool { return sel(e.ID) })
}

// Revenues is the displayed revenue rows.
func (c *Controller) Revenues() []entity.Revenue {
	sel := c.selectedFn(ScopeRevenues)
	return sorting.Fields(c.revenues.View(c.drafting(ScopeRevenues)), c.revenues.Fields(), c.sorts[ScopeRevenues],
		func(r entity.Revenue) bool { return sel(r.ID) })
}

// CommittedWorkers returns the committed workers in stored order.
func (c *Controller) CommittedWorkers() []entity.Worker { return c.workers.Committed() }

// DraftWorkers returns the draft workers in stored order.
func (c *Controller) DraftWorkers() []entity.Worker { return c.workers.Draft() }

// CommittedPartners returns the committed partners in stored order.
func (c *Controller) CommittedPartners() []entity.Partner { return c.partners.Committed() }

// DraftPartners returns the draft partners in stored order.
func (c *Controller) DraftPartners() []entity.Partner { return c.partners.Draft() }

// CommittedExpenses returns the committed expenses in stored order.
func (c *Controller) CommittedExpenses() []entity.Expense { return c.expenses.Committed() }

// DraftExpenses returns the draft expenses in stored order.
func (c *Controller) DraftExpenses() []entity.Expense { return c.expenses.Draft() }

// CommittedRevenues returns the committed revenues in stored order.
func (c *Controller) CommittedRevenues() []entity.Revenue { return c.revenues.Committed() }

// DraftRevenues returns the draft revenues in stored order.
func (c *Controller) DraftRevenues() []entity.Revenue { return c.revenues.Draft() }

// Attendance is the displayed attendance sheet.
func (c *Controller) Attendance() attendance.Sheet {
	return c.attendance.View(c.editing && c.active == TableAttendance)
}

// CommittedAttendance returns the committed sheet.
func (c *Controller) CommittedAttendance() attendance.Sheet { return c.attendance.Committed() }

// DraftAttendance returns the draft sheet.
func (c *Controller) DraftAttendance() attendance.Sheet { return c.attendance.Draft() }

// Resolver resolves worker references against the committed roster.
func (c *Controller) Resolver() resolve.Resolver {
	return resolve.New(c.workers.Committed())
}
