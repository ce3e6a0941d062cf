package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/resolve"
	"tableflip.dev/hrow/pkg/schema"
)

func init() {
	color.NoColor = true
}

var roster = []entity.Worker{{ID: 1, Name: "Ann", Surname: "Lee"}}

func TestCellResolvesReferences(t *testing.T) {
	r := resolve.New(roster)
	fields := schema.Expenses()
	ref, _ := fields.Lookup("workerId")
	amount, _ := fields.Lookup("amount")

	e := entity.NewExpense(2)
	e.Amount = decimal.RequireFromString("12.5")
	if got := Cell(amount, e, r); got != "12.50" {
		t.Fatalf("amount rendered as %q", got)
	}
	if got := Cell(ref, e, r); got != resolve.Unassigned {
		t.Fatalf("null reference rendered as %q", got)
	}
	e.WorkerID = entity.Ref(1)
	if got := Cell(ref, e, r); got != "Ann Lee" {
		t.Fatalf("reference rendered as %q", got)
	}
	e.WorkerID = entity.Ref(9)
	if got := Cell(ref, e, r); got != resolve.Unresolved {
		t.Fatalf("dangling reference rendered as %q", got)
	}
}

func TestFinanceTotals(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Resolver: resolve.New(roster)}

	e := entity.NewExpense(2)
	e.Name = "Lunch"
	e.Amount = decimal.RequireFromString("12.5")
	e.WorkerID = entity.Ref(1)
	r := entity.NewRevenue(3)
	r.Name = "Grant"
	r.Amount = decimal.NewFromInt(10)

	pp.Finance([]entity.Expense{e}, []entity.Revenue{r})

	out := buf.String()
	for _, want := range []string{"Expenses - 1 row", "Lunch", "Ann Lee", "Grant", "-2.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAttendanceHidesInvalidColumns(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	sheet := attendance.Sheet{
		Columns: []attendance.Column{{Date: "2024-01-01", Valid: true}, {Date: "2024-13-40"}},
		Records: []attendance.Record{{WorkerID: 1, Dates: map[string]attendance.Entry{
			"2024-01-01": {Present: true, Comment: "late"},
			"2024-13-40": {Present: true, Comment: "hidden"},
		}}},
	}

	pp.Attendance(sheet, roster)

	out := buf.String()
	if !strings.Contains(out, "✓ late") || !strings.Contains(out, "Ann Lee") {
		t.Fatalf("missing cell:\n%s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("cell under an invalid date rendered:\n%s", out)
	}
}

func TestEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Partners(nil)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, roster); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []entity.Worker
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ann" {
		t.Fatalf("unexpected decode %+v", got)
	}
}
