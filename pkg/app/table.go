package app

import (
	"fmt"
	"strings"
)

// Table is a family of collections shown and edited together.
type Table string

const (
	// TableWorkers shows the worker roster.
	TableWorkers Table = "workers"
	// TableAttendance shows the attendance matrix.
	TableAttendance Table = "attendance"
	// TablePartners shows external contacts.
	TablePartners Table = "partners"
	// TableFinance shows expenses and revenues side by side.
	TableFinance Table = "finance"
)

// Tables lists the tables in menu order.
func Tables() []Table {
	return []Table{TableWorkers, TableAttendance, TablePartners, TableFinance}
}

// ParseTable matches raw case-insensitively against the known tables.
func ParseTable(raw string) (Table, error) {
	t := Table(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range Tables() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TableWorkers, fmt.Errorf("app: unknown table %q", raw)
}

// Scopes lists the selectable row collections of the table. The attendance
// table has none.
func (t Table) Scopes() []Scope {
	switch t {
	case TableWorkers:
		return []Scope{ScopeWorkers}
	case TablePartners:
		return []Scope{ScopePartners}
	case TableFinance:
		return []Scope{ScopeExpenses, ScopeRevenues}
	default:
		return nil
	}
}

// Scope names one row collection.
type Scope string

const (
	ScopeWorkers  Scope = "workers"
	ScopePartners Scope = "partners"
	ScopeExpenses Scope = "expenses"
	ScopeRevenues Scope = "revenues"
)

// Scopes lists every row collection.
func Scopes() []Scope {
	return []Scope{ScopeWorkers, ScopePartners, ScopeExpenses, ScopeRevenues}
}

// Table returns the table that owns the scope.
func (s Scope) Table() Table {
	switch s {
	case ScopePartners:
		return TablePartners
	case ScopeExpenses, ScopeRevenues:
		return TableFinance
	default:
		return TableWorkers
	}
}
