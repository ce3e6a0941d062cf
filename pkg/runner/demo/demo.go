// Package demo walks through one edit session: an expense is drafted for
// a worker, committed and resolved back to the worker's name.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/printers"
	"tableflip.dev/hrow/pkg/store"
)

type Demo struct {
	Log    *zap.Logger
	Output string
	Out    io.Writer
}

// Result is what the walkthrough committed.
type Result struct {
	Expense entity.Expense  `json:"expense"`
	Amount  decimal.Decimal `json:"amount"`
	Worker  string          `json:"worker"`
}

func (d *Demo) Do(ctx context.Context) error {
	r, err := d.Run()
	if err != nil {
		return err
	}
	out := d.Out
	if out == nil {
		out = printers.Stdout()
	}
	if d.Output == "json" {
		return printers.JSON(out, r)
	}
	_, _ = fmt.Fprintf(out, "committed %q for %s: %s\n\n", r.Expense.Name, r.Worker, r.Amount.StringFixed(2))
	return nil
}

// Run performs the walkthrough on a fresh controller.
func (d *Demo) Run() (Result, error) {
	ctrl := app.New(app.WithLogger(d.Log))
	ctrl.Restore(store.Snapshot{Workers: []entity.Worker{{ID: 1, Name: "Ann"}}})
	ctrl.SetActiveTable(app.TableFinance)
	ctrl.BeginEdit()

	id, ok := ctrl.Add(app.ScopeExpenses)
	if !ok {
		return Result{}, errors.New("demo: could not add an expense")
	}
	ctrl.Edit(app.ScopeExpenses, id, "name", "Lunch")
	ctrl.Edit(app.ScopeExpenses, id, "amount", "12.50")
	ctrl.Edit(app.ScopeExpenses, id, "workerId", 1)
	if !ctrl.Commit() {
		return Result{}, errors.New("demo: commit refused")
	}

	expenses := ctrl.CommittedExpenses()
	if len(expenses) != 1 {
		return Result{}, fmt.Errorf("demo: expected one expense, got %d", len(expenses))
	}
	e := expenses[0]
	return Result{Expense: e, Amount: e.Amount, Worker: ctrl.Resolver().Name(e.WorkerID)}, nil
}
