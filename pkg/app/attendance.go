package app

import (
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/entity"
)

// SetColumnDate sets the text of an attendance column. Inside an edit
// session only the draft changes; outside one both copies are written so
// they stay equal.
func (c *Controller) SetColumnDate(index int, raw string) bool {
	if !c.canEdit() || c.active != TableAttendance {
		return false
	}
	if c.editing {
		return c.attendance.SetColumnDate(index, raw)
	}
	return c.attendance.SetCommittedColumnDate(index, raw)
}

// TogglePresence flips a draft attendance cell.
func (c *Controller) TogglePresence(workerID entity.ID, date string) bool {
	if !c.canEdit() || !c.editing || c.active != TableAttendance {
		return false
	}
	return c.attendance.TogglePresence(workerID, date)
}

// SetComment replaces the comment of a draft attendance cell.
func (c *Controller) SetComment(workerID entity.ID, date, text string) bool {
	if !c.canEdit() || !c.editing || c.active != TableAttendance {
		return false
	}
	return c.attendance.SetComment(workerID, date, text)
}

// AddColumn appends a blank date column to the draft. Without an open edit
// session it begins one first, so adding a column always leaves the
// attendance table in edit mode.
func (c *Controller) AddColumn() (int, bool) {
	if !c.canEdit() || c.active != TableAttendance {
		return 0, false
	}
	if !c.editing {
		c.BeginEdit()
	}
	i := c.attendance.AddColumn()
	c.log.Debug("add column", zap.Int("index", i))
	return i, true
}
