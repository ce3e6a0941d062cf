package app

import (
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/group"
)

// CreateGroup adds workerIDs to the named group. Groups are not part of the
// draft and take effect immediately.
func (c *Controller) CreateGroup(name string, workerIDs []entity.ID) (entity.Group, error) {
	if !c.canEdit() {
		return entity.Group{}, ErrReadOnly
	}
	g, err := c.groups.Create(name, workerIDs)
	if err != nil {
		return entity.Group{}, err
	}
	c.log.Debug("group", zap.String("name", g.Name), zap.Int("workers", len(g.WorkerIDs)))
	return g, nil
}

// GroupSelection creates or extends a group from the selected workers.
func (c *Controller) GroupSelection(name string) (entity.Group, error) {
	return c.CreateGroup(name, c.Selection(ScopeWorkers))
}

// SelectGroup replaces the workers selection with the members of the named
// group that are still on the roster.
func (c *Controller) SelectGroup(name string) error {
	if c.active != TableWorkers {
		return ErrWrongTable
	}
	if name == "" {
		return group.ErrNoGroupSelected
	}
	g, ok := c.groups.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", group.ErrUnknownGroup, name)
	}
	sel := c.selections[ScopeWorkers]
	sel.Clear()
	for _, id := range g.WorkerIDs {
		if c.workers.Has(id) {
			sel.Add(id)
		}
	}
	return nil
}

// Groups lists every group in creation order.
func (c *Controller) Groups() []entity.Group {
	return c.groups.All()
}

// Certificates issues certificates for the members of the named group.
func (c *Controller) Certificates(name string) ([]group.Certificate, error) {
	return c.groups.Certificates(name, c.workers.Committed(), c.now())
}
