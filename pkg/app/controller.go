// Package app holds the application state of one session and routes every
// command from the presentation layer to the collections it affects.
package app

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/auth"
	"tableflip.dev/hrow/pkg/draft"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/group"
	"tableflip.dev/hrow/pkg/ident"
	"tableflip.dev/hrow/pkg/schema"
	"tableflip.dev/hrow/pkg/selection"
	"tableflip.dev/hrow/pkg/sorting"
)

var (
	// ErrReadOnly is returned when the session role may not mutate records.
	ErrReadOnly = errors.New("app: read-only session")
	// ErrWrongTable is returned when a command needs another active table.
	ErrWrongTable = errors.New("app: command not available for the active table")
)

// Factories build new entities with a fresh id and default fields.
type Factories struct {
	Worker  func(entity.ID) entity.Worker
	Partner func(entity.ID) entity.Partner
	Expense func(entity.ID) entity.Expense
	Revenue func(entity.ID) entity.Revenue
}

// DefaultFactories uses the entity constructors.
func DefaultFactories() Factories {
	return Factories{
		Worker:  entity.NewWorker,
		Partner: entity.NewPartner,
		Expense: entity.NewExpense,
		Revenue: entity.NewRevenue,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithIDs sets the id source for new rows.
func WithIDs(ids ident.Generator) Option {
	return func(c *Controller) {
		if ids != nil {
			c.ids = ids
		}
	}
}

// WithFactories replaces the entity constructors.
func WithFactories(f Factories) Option {
	return func(c *Controller) {
		c.make = f
	}
}

// WithDirectory sets the accounts used by Login.
func WithDirectory(dir *auth.Directory) Option {
	return func(c *Controller) {
		c.dir = dir
	}
}

// WithRole starts the session with role.
func WithRole(role auth.Role) Option {
	return func(c *Controller) {
		c.role = role
	}
}

// WithClock sets the time source for certificates and snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller owns every collection of a session, the active table and the
// single editing flag. It is not safe for concurrent use; the presentation
// layer drives it from one event loop.
type Controller struct {
	log  *zap.Logger
	ids  ident.Generator
	make Factories
	dir  *auth.Directory
	now  func() time.Time

	role    auth.Role
	active  Table
	editing bool

	workers    *draft.Collection[entity.Worker]
	partners   *draft.Collection[entity.Partner]
	expenses   *draft.Collection[entity.Expense]
	revenues   *draft.Collection[entity.Revenue]
	attendance *attendance.Matrix
	groups     group.Registry

	selections map[Scope]*selection.Set
	sorts      map[Scope]sorting.State
}

// rows is the part of draft.Collection the controller drives without
// knowing the row type.
type rows interface {
	draft.Stager
	Has(entity.ID) bool
	HasDraft(entity.ID) bool
	IDs() []entity.ID
	Len() int
	Sortable(string) bool
	Edit(entity.ID, string, any) bool
	Remove(func(entity.ID) bool) int
}

// New returns an empty session on the workers table, logged in as admin.
func New(opts ...Option) *Controller {
	c := &Controller{
		log:        zap.NewNop(),
		ids:        ident.NewSequence(0),
		make:       DefaultFactories(),
		now:        time.Now,
		role:       auth.RoleAdmin,
		active:     TableWorkers,
		workers:    draft.New(schema.Workers()),
		partners:   draft.New(schema.Partners()),
		expenses:   draft.New(schema.Expenses()),
		revenues:   draft.New(schema.Revenues()),
		attendance: attendance.NewMatrix(),
		selections: make(map[Scope]*selection.Set),
		sorts:      make(map[Scope]sorting.State),
	}
	for _, s := range Scopes() {
		c.selections[s] = selection.New()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Active is the table currently shown.
func (c *Controller) Active() Table {
	return c.active
}

// Editing reports whether an edit session is open.
func (c *Controller) Editing() bool {
	return c.editing
}

// Role is the role of the logged in user.
func (c *Controller) Role() auth.Role {
	return c.role
}

// SetActiveTable switches tables. An open edit session is discarded and
// every selection is cleared.
func (c *Controller) SetActiveTable(t Table) {
	if t == c.active {
		return
	}
	if c.editing {
		c.Discard()
	}
	c.clearSelections()
	c.log.Debug("switch table", zap.String("from", string(c.active)), zap.String("to", string(t)))
	c.active = t
}

func (c *Controller) rows(s Scope) rows {
	switch s {
	case ScopePartners:
		return c.partners
	case ScopeExpenses:
		return c.expenses
	case ScopeRevenues:
		return c.revenues
	default:
		return c.workers
	}
}

// stagers lists every copy pair belonging to t.
func (c *Controller) stagers(t Table) []draft.Stager {
	if t == TableAttendance {
		return []draft.Stager{c.attendance}
	}
	scopes := t.Scopes()
	out := make([]draft.Stager, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, c.rows(s))
	}
	return out
}

func (c *Controller) canEdit() bool {
	return c.role.CanEdit()
}

// owns reports whether the scope belongs to the active table.
func (c *Controller) owns(s Scope) bool {
	return s.Table() == c.active
}

// syncAttendance keeps one attendance record per committed worker.
func (c *Controller) syncAttendance() {
	c.attendance.Sync(c.workers.IDs())
}

// prune drops selected ids that are no longer committed.
func (c *Controller) prune() {
	for s, sel := range c.selections {
		if n := sel.Retain(c.rows(s).Has); n > 0 {
			c.log.Debug("pruned selection", zap.String("scope", string(s)), zap.Int("ids", n))
		}
	}
}

func (c *Controller) clearSelections() {
	for _, sel := range c.selections {
		sel.Clear()
	}
}
