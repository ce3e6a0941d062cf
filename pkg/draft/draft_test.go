package draft

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/schema"
)

func seedWorkers() *Collection[entity.Worker] {
	return New(schema.Workers(),
		entity.Worker{ID: 1, Name: "Ann"},
		entity.Worker{ID: 2, Name: "Ben"},
	)
}

func TestSnapshotThenRevertLeavesCommitted(t *testing.T) {
	c := seedWorkers()
	before := c.Committed()

	c.Snapshot()
	c.Edit(1, "name", "Anna")
	c.Add(func() entity.Worker { return entity.NewWorker(3) })
	c.Revert()

	if !reflect.DeepEqual(c.Committed(), before) {
		t.Fatalf("committed changed: %+v", c.Committed())
	}
	if !reflect.DeepEqual(c.Draft(), c.Committed()) {
		t.Fatalf("draft %+v != committed %+v", c.Draft(), c.Committed())
	}
}

func TestPromoteCommitsCoercedValue(t *testing.T) {
	c := New(schema.Expenses(), entity.NewExpense(1))
	c.Snapshot()
	if !c.Edit(1, "amount", "12.50") {
		t.Fatalf("edit rejected")
	}
	if got, _ := c.Find(1); !got.Amount.IsZero() {
		t.Fatalf("edit leaked into committed: %s", got.Amount)
	}
	c.Promote()

	got, ok := c.Find(1)
	if !ok {
		t.Fatalf("row missing after promote")
	}
	if !got.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected 12.5, got %s", got.Amount)
	}
	if !reflect.DeepEqual(c.Draft(), c.Committed()) {
		t.Fatalf("draft and committed differ after promote")
	}
}

func TestEditIsCopyOnWrite(t *testing.T) {
	c := seedWorkers()
	c.Snapshot()
	held := c.Draft()
	c.Edit(2, "surname", "Bell")
	if held[1].Surname != "" {
		t.Fatalf("previously returned draft was mutated: %+v", held[1])
	}
	if got, _ := c.FindDraft(2); got.Surname != "Bell" {
		t.Fatalf("draft not updated: %+v", got)
	}
}

func TestEditRejectsUnknownRowAndField(t *testing.T) {
	c := seedWorkers()
	if c.Edit(99, "name", "x") {
		t.Fatalf("edit of missing row should fail")
	}
	if c.Edit(1, "id", "7") {
		t.Fatalf("edit of read-only field should fail")
	}
}

func TestRemoveHitsBothCopies(t *testing.T) {
	c := seedWorkers()
	c.Snapshot()
	added := c.Add(func() entity.Worker { return entity.NewWorker(3) })

	removed := c.Remove(func(id entity.ID) bool { return id == 1 || id == added.ID })
	if removed != 1 {
		t.Fatalf("expected one committed row removed, got %d", removed)
	}
	if c.Has(1) {
		t.Fatalf("row 1 still committed")
	}
	if _, ok := c.FindDraft(1); ok {
		t.Fatalf("row 1 still drafted")
	}
	if _, ok := c.FindDraft(3); ok {
		t.Fatalf("draft-only row 3 should be removed too")
	}
	if got := c.IDs(); !reflect.DeepEqual(got, []entity.ID{2}) {
		t.Fatalf("unexpected ids %v", got)
	}
}

func TestAddOnlyTouchesDraft(t *testing.T) {
	c := seedWorkers()
	c.Snapshot()
	c.Add(func() entity.Worker { return entity.NewWorker(3) })
	if c.Len() != 2 {
		t.Fatalf("committed grew to %d", c.Len())
	}
	if len(c.View(true)) != 3 || len(c.View(false)) != 2 {
		t.Fatalf("unexpected views: draft=%d committed=%d", len(c.View(true)), len(c.View(false)))
	}
	if c.Has(3) || !c.HasDraft(3) {
		t.Fatalf("new row should only be in the draft")
	}
}
