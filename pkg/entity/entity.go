// Package entity defines the records kept by hrow: workers, partners and
// finance entries.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ID identifies a record for the lifetime of a session.
type ID int64

// Worker is a person on the organization's roster.
type Worker struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Index        string `json:"index"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Section      string `json:"section"`
}

// NewWorker returns an empty worker carrying id.
func NewWorker(id ID) Worker {
	return Worker{ID: id}
}

// RowID implements Row.
func (w Worker) RowID() ID { return w.ID }

// FullName joins name and surname.
func (w Worker) FullName() string {
	return strings.TrimSpace(w.Name + " " + w.Surname)
}

// Partner is an external contact, optionally assigned to a worker.
type Partner struct {
	ID       ID            `json:"id"`
	Name     string        `json:"name"`
	WorkerID NullID        `json:"workerId"`
	Phone    string        `json:"phone"`
	Email    string        `json:"email"`
	Status   PartnerStatus `json:"status"`
	Comment  string        `json:"comment"`
}

// NewPartner returns a pending, unassigned partner carrying id.
func NewPartner(id ID) Partner {
	return Partner{ID: id, Status: StatusPending}
}

// RowID implements Row.
func (p Partner) RowID() ID { return p.ID }

// FinanceEntry is the shape shared by expenses and revenues.
type FinanceEntry struct {
	ID       ID              `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	WorkerID NullID          `json:"workerId"`
}

// Expense is money going out.
type Expense struct {
	FinanceEntry
}

// NewExpense returns a zero expense carrying id.
func NewExpense(id ID) Expense {
	return Expense{FinanceEntry{ID: id, Amount: decimal.Zero}}
}

// RowID implements Row.
func (e Expense) RowID() ID { return e.ID }

// Entry exposes the shared finance fields.
func (e *Expense) Entry() *FinanceEntry { return &e.FinanceEntry }

// Revenue is money coming in.
type Revenue struct {
	FinanceEntry
}

// NewRevenue returns a zero revenue carrying id.
func NewRevenue(id ID) Revenue {
	return Revenue{FinanceEntry{ID: id, Amount: decimal.Zero}}
}

// RowID implements Row.
func (r Revenue) RowID() ID { return r.ID }

// Entry exposes the shared finance fields.
func (r *Revenue) Entry() *FinanceEntry { return &r.FinanceEntry }

// Row is implemented by every record kept in a draft collection.
type Row interface {
	RowID() ID
}
