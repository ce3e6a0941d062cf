package sorting

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/schema"
	"tableflip.dev/hrow/pkg/selection"
)

func names(workers []entity.Worker) []string {
	out := make([]string, len(workers))
	for i, w := range workers {
		out[i] = w.Name
	}
	return out
}

func TestSelectionKeyIsStable(t *testing.T) {
	rows := []entity.Worker{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}
	sel := selection.New(2)
	picked := func(w entity.Worker) bool { return sel.Has(w.ID) }

	asc := Fields(rows, schema.Workers(), State{Key: BySelection}, picked)
	if got := names(asc); !slices.Equal(got, []string{"A", "C", "B"}) {
		t.Fatalf("ascending by selection: got %v", got)
	}

	desc := Fields(rows, schema.Workers(), State{Key: BySelection, Direction: Descending}, picked)
	if got := names(desc); !slices.Equal(got, []string{"B", "A", "C"}) {
		t.Fatalf("descending by selection: got %v", got)
	}
	if got := names(rows); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("input must not be reordered, got %v", got)
	}
}

func TestTextIsCaseInsensitive(t *testing.T) {
	rows := []entity.Worker{
		{ID: 1, Name: "bob"},
		{ID: 2, Name: "Alice"},
		{ID: 3, Name: "carl"},
	}
	got := names(Fields(rows, schema.Workers(), State{Key: "name"}, nil))
	if !slices.Equal(got, []string{"Alice", "bob", "carl"}) {
		t.Fatalf("got %v", got)
	}
}

func TestNumbersAndNulls(t *testing.T) {
	mk := func(id entity.ID, amount string, worker entity.NullID) entity.Expense {
		e := entity.NewExpense(id)
		e.Amount = decimal.RequireFromString(amount)
		e.WorkerID = worker
		return e
	}
	rows := []entity.Expense{
		mk(1, "10", entity.Ref(2)),
		mk(2, "9.5", entity.Unassigned),
		mk(3, "100", entity.Ref(1)),
	}
	ids := func(es []entity.Expense) []entity.ID {
		out := make([]entity.ID, len(es))
		for i, e := range es {
			out[i] = e.ID
		}
		return out
	}

	byAmount := Fields(rows, schema.Expenses(), State{Key: "amount"}, nil)
	if got := ids(byAmount); !slices.Equal(got, []entity.ID{2, 1, 3}) {
		t.Fatalf("amount must compare numerically, got %v", got)
	}

	byWorker := Fields(rows, schema.Expenses(), State{Key: "workerId"}, nil)
	if got := ids(byWorker); !slices.Equal(got, []entity.ID{2, 3, 1}) {
		t.Fatalf("null reference must sort first ascending, got %v", got)
	}
	byWorker = Fields(rows, schema.Expenses(), State{Key: "workerId", Direction: Descending}, nil)
	if got := ids(byWorker); !slices.Equal(got, []entity.ID{1, 3, 2}) {
		t.Fatalf("null reference must sort last descending, got %v", got)
	}
}

func TestClick(t *testing.T) {
	var s State
	s = s.Click("name", true)
	if s != (State{Key: "name", Direction: Ascending}) {
		t.Fatalf("first click: %+v", s)
	}
	s = s.Click("name", true)
	if s.Direction != Descending {
		t.Fatalf("second click should flip to descending: %+v", s)
	}
	s = s.Click("name", true)
	if s.Direction != Ascending {
		t.Fatalf("third click should flip back: %+v", s)
	}
	s = s.Click("name", true).Click("email", true)
	if s != (State{Key: "email", Direction: Ascending}) {
		t.Fatalf("new key resets to ascending: %+v", s)
	}
	if next := s.Click("comment", false); next != s {
		t.Fatalf("unsortable click must be ignored: %+v", next)
	}
}

func TestUnsortableKeyKeepsOrder(t *testing.T) {
	rows := []entity.Partner{
		{ID: 1, Comment: "z"},
		{ID: 2, Comment: "a"},
	}
	got := Fields(rows, schema.Partners(), State{Key: "comment"}, nil)
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected stored order, got %+v", got)
	}
}
