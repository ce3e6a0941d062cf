package app

import (
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/auth"
)

// BeginEdit copies the committed state of every collection of the active
// table into its draft and turns editing on. Calling it while editing
// throws the open draft away and starts over.
func (c *Controller) BeginEdit() bool {
	if !c.canEdit() {
		return false
	}
	for _, s := range c.stagers(c.active) {
		s.Snapshot()
	}
	c.editing = true
	c.log.Debug("begin edit", zap.String("table", string(c.active)))
	return true
}

// Commit promotes the drafts of the active table and turns editing off.
func (c *Controller) Commit() bool {
	if !c.editing {
		return false
	}
	for _, s := range c.stagers(c.active) {
		s.Promote()
	}
	c.editing = false
	if c.active == TableWorkers {
		c.syncAttendance()
	}
	c.prune()
	c.log.Debug("commit", zap.String("table", string(c.active)))
	return true
}

// Discard reverts the drafts of the active table and turns editing off.
func (c *Controller) Discard() bool {
	if !c.editing {
		return false
	}
	for _, s := range c.stagers(c.active) {
		s.Revert()
	}
	c.editing = false
	c.prune()
	c.log.Debug("discard", zap.String("table", string(c.active)))
	return true
}

// Login checks the credentials against the account directory and switches
// the session role.
func (c *Controller) Login(username, password string) error {
	if c.dir == nil {
		dir, err := auth.DefaultDirectory()
		if err != nil {
			return err
		}
		c.dir = dir
	}
	role, err := c.dir.Authenticate(username, password)
	if err != nil {
		c.log.Debug("login rejected", zap.String("user", username))
		return err
	}
	if c.editing {
		c.Discard()
	}
	c.role = role
	c.log.Debug("login", zap.String("user", username), zap.String("role", string(role)))
	return nil
}

// Logout drops the role and any open edit session.
func (c *Controller) Logout() {
	if c.editing {
		c.Discard()
	}
	c.role = auth.RoleNone
	c.log.Debug("logout")
}
