// Package group keeps named sets of workers used as selection shortcuts and
// for issuing certificates.
package group

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"tableflip.dev/hrow/pkg/entity"
)

var (
	// ErrGroupName is returned when a group is created without a name.
	ErrGroupName = errors.New("group: name required")
	// ErrGroupEmpty is returned when a group is created without workers.
	ErrGroupEmpty = errors.New("group: select at least one worker")
	// ErrNoGroupSelected is returned when certificates are requested without a group.
	ErrNoGroupSelected = errors.New("group: select a group first")
	// ErrUnknownGroup is returned for names that were never created.
	ErrUnknownGroup = errors.New("group: unknown group")
)

// Registry holds groups in creation order. The zero value is ready to use.
type Registry struct {
	groups []entity.Group
}

// Load replaces every group.
func (r *Registry) Load(groups []entity.Group) {
	r.groups = make([]entity.Group, 0, len(groups))
	for _, g := range groups {
		r.groups = append(r.groups, clone(g))
	}
}

// All returns a copy of the groups.
func (r *Registry) All() []entity.Group {
	out := make([]entity.Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = clone(g)
	}
	return out
}

// Get looks a group up by name.
func (r *Registry) Get(name string) (entity.Group, bool) {
	i := r.index(strings.TrimSpace(name))
	if i < 0 {
		return entity.Group{}, false
	}
	return clone(r.groups[i]), true
}

// Create adds workerIDs to the named group, creating it if needed.
func (r *Registry) Create(name string, workerIDs []entity.ID) (entity.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Group{}, ErrGroupName
	}
	if len(workerIDs) == 0 {
		return entity.Group{}, ErrGroupEmpty
	}
	i := r.index(name)
	if i < 0 {
		r.groups = append(r.groups, entity.Group{Name: name})
		i = len(r.groups) - 1
	}
	g := r.groups[i]
	for _, id := range workerIDs {
		if !slices.Contains(g.WorkerIDs, id) {
			g.WorkerIDs = append(g.WorkerIDs, id)
		}
	}
	r.groups[i] = g
	return clone(g), nil
}

// Certificate is issued to one member of a group.
type Certificate struct {
	Group    string    `json:"group"`
	WorkerID entity.ID `json:"workerId"`
	Holder   string    `json:"holder"`
	Issued   time.Time `json:"issued"`
}

func (c Certificate) String() string {
	return fmt.Sprintf("%s: %s (issued %s)", c.Group, c.Holder, c.Issued.Format("2006-01-02"))
}

// Certificates issues one certificate per member of the named group that is
// still on the roster.
func (r *Registry) Certificates(name string, workers []entity.Worker, now time.Time) ([]Certificate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNoGroupSelected
	}
	g, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	byID := make(map[entity.ID]entity.Worker, len(workers))
	for _, w := range workers {
		byID[w.ID] = w
	}
	certs := make([]Certificate, 0, len(g.WorkerIDs))
	for _, id := range g.WorkerIDs {
		w, ok := byID[id]
		if !ok {
			continue
		}
		certs = append(certs, Certificate{
			Group:    g.Name,
			WorkerID: id,
			Holder:   w.FullName(),
			Issued:   now,
		})
	}
	return certs, nil
}

func (r *Registry) index(name string) int {
	return slices.IndexFunc(r.groups, func(g entity.Group) bool { return g.Name == name })
}

func clone(g entity.Group) entity.Group {
	return entity.Group{Name: g.Name, WorkerIDs: slices.Clone(g.WorkerIDs)}
}
