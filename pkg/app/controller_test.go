package app

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/auth"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/group"
	"tableflip.dev/hrow/pkg/sorting"
	"tableflip.dev/hrow/pkg/store"
)

var issued = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

func newController(t *testing.T, workers ...entity.Worker) *Controller {
	t.Helper()
	c := New(WithClock(func() time.Time { return issued }))
	c.Restore(store.Snapshot{Workers: workers})
	return c
}

func ids[T entity.Row](rows []T) []entity.ID {
	out := make([]entity.ID, len(rows))
	for i, r := range rows {
		out[i] = r.RowID()
	}
	return out
}

func TestBeginEditThenDiscardKeepsCommitted(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"}, entity.Worker{ID: 2, Name: "Bob"})
	before := c.CommittedWorkers()

	if !c.BeginEdit() {
		t.Fatalf("begin edit refused")
	}
	c.Edit(ScopeWorkers, 1, "name", "Anna")
	c.Add(ScopeWorkers)
	if !c.Discard() {
		t.Fatalf("discard refused")
	}

	if c.Editing() {
		t.Fatalf("still editing after discard")
	}
	if !reflect.DeepEqual(c.CommittedWorkers(), before) {
		t.Fatalf("committed changed: %+v", c.CommittedWorkers())
	}
	if !reflect.DeepEqual(c.DraftWorkers(), before) {
		t.Fatalf("draft not reverted: %+v", c.DraftWorkers())
	}
}

func TestExpenseScenario(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	c.SetActiveTable(TableFinance)
	c.BeginEdit()

	id, ok := c.Add(ScopeExpenses)
	if !ok {
		t.Fatalf("add refused")
	}
	for key, raw := range map[string]any{"name": "Lunch", "amount": "12.50", "workerId": 1} {
		if !c.Edit(ScopeExpenses, id, key, raw) {
			t.Fatalf("edit %s refused", key)
		}
	}
	if got := c.CommittedExpenses(); len(got) != 0 {
		t.Fatalf("draft leaked into committed: %+v", got)
	}
	if !c.Commit() {
		t.Fatalf("commit refused")
	}

	got := c.CommittedExpenses()
	if len(got) != 1 {
		t.Fatalf("expected one expense, got %d", len(got))
	}
	e := got[0]
	if e.ID != id || e.Name != "Lunch" {
		t.Fatalf("unexpected expense %+v", e)
	}
	if !e.Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected amount 12.5, got %s", e.Amount)
	}
	if e.WorkerID != entity.Ref(1) {
		t.Fatalf("expected worker 1, got %v", e.WorkerID)
	}
	if name := c.Resolver().Name(e.WorkerID); name != "Ann" {
		t.Fatalf("expected Ann, got %q", name)
	}
	if !reflect.DeepEqual(c.DraftExpenses(), got) {
		t.Fatalf("draft differs from committed after commit")
	}
}

func TestAddAndEditNeedEditSession(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	if _, ok := c.Add(ScopeWorkers); ok {
		t.Fatalf("add outside edit session")
	}
	if c.Edit(ScopeWorkers, 1, "name", "Anna") {
		t.Fatalf("edit outside edit session")
	}
	c.BeginEdit()
	if _, ok := c.Add(ScopePartners); ok {
		t.Fatalf("add to a scope of another table")
	}
	if c.Edit(ScopeWorkers, 1, "id", 9) {
		t.Fatalf("id must not be editable")
	}
	if c.Commit(); c.Commit() {
		t.Fatalf("second commit should be a no-op")
	}
}

func TestDeleteIgnoresEditMode(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"}, entity.Worker{ID: 2, Name: "Bob"})
	c.Toggle(ScopeWorkers, 1)
	c.BeginEdit()

	if n := c.DeleteSelected(ScopeWorkers); n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}
	if c.Selected(ScopeWorkers, 1) || len(c.Selection(ScopeWorkers)) != 0 {
		t.Fatalf("selection not cleared")
	}
	c.Discard()

	if got := ids(c.CommittedWorkers()); !reflect.DeepEqual(got, []entity.ID{2}) {
		t.Fatalf("committed workers %v", got)
	}
	if got := ids(c.DraftWorkers()); !reflect.DeepEqual(got, []entity.ID{2}) {
		t.Fatalf("draft workers %v", got)
	}
	for _, sheet := range []attendance.Sheet{c.CommittedAttendance(), c.DraftAttendance()} {
		if len(sheet.Records) != 1 || sheet.Records[0].WorkerID != 2 {
			t.Fatalf("attendance not resynchronized: %+v", sheet.Records)
		}
	}
	if n := c.Delete(ScopeWorkers); n != 0 {
		t.Fatalf("empty delete removed %d rows", n)
	}
}

func TestDeleteOutsideEditSession(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"}, entity.Worker{ID: 2, Name: "Bob"})
	c.Toggle(ScopeWorkers, 2)

	if n := c.DeleteSelected(ScopeWorkers); n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}
	if c.Editing() {
		t.Fatalf("delete opened an edit session")
	}
	if len(c.Selection(ScopeWorkers)) != 0 {
		t.Fatalf("selection not cleared")
	}
	if got := ids(c.CommittedWorkers()); !reflect.DeepEqual(got, []entity.ID{1}) {
		t.Fatalf("committed workers %v", got)
	}
	if got := ids(c.DraftWorkers()); !reflect.DeepEqual(got, []entity.ID{1}) {
		t.Fatalf("draft workers %v", got)
	}
	for _, sheet := range []attendance.Sheet{c.CommittedAttendance(), c.DraftAttendance()} {
		if len(sheet.Records) != 1 || sheet.Records[0].WorkerID != 1 {
			t.Fatalf("attendance not resynchronized: %+v", sheet.Records)
		}
	}
}

func TestBeginEditTwiceRestartsDraft(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	c.BeginEdit()
	id, ok := c.Add(ScopeWorkers)
	if !ok {
		t.Fatalf("add refused")
	}
	c.Edit(ScopeWorkers, 1, "name", "Anna")

	if !c.BeginEdit() {
		t.Fatalf("second begin edit refused")
	}
	if !c.Editing() {
		t.Fatalf("expected to stay in edit mode")
	}
	if !reflect.DeepEqual(c.DraftWorkers(), c.CommittedWorkers()) {
		t.Fatalf("draft %+v differs from committed %+v", c.DraftWorkers(), c.CommittedWorkers())
	}
	for _, w := range c.DraftWorkers() {
		if w.ID == id {
			t.Fatalf("row %d survived the restart", id)
		}
	}
	if got := c.DraftWorkers()[0].Name; got != "Ann" {
		t.Fatalf("edit survived the restart: %q", got)
	}
}

func TestDeleteLeavesDanglingReferences(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	c.SetActiveTable(TablePartners)
	c.BeginEdit()
	id, _ := c.Add(ScopePartners)
	c.Edit(ScopePartners, id, "workerId", "1")
	c.Commit()

	c.SetActiveTable(TableWorkers)
	c.Delete(ScopeWorkers, 1)

	p := c.CommittedPartners()[0]
	if p.WorkerID != entity.Ref(1) {
		t.Fatalf("reference was cascaded: %v", p.WorkerID)
	}
	if !c.Resolver().Dangling(p.WorkerID) {
		t.Fatalf("expected dangling reference")
	}
}

func TestSetActiveTableDiscardsAndClears(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	c.Toggle(ScopeWorkers, 1)
	c.BeginEdit()
	c.Edit(ScopeWorkers, 1, "name", "Anna")

	c.SetActiveTable(TablePartners)

	if c.Editing() {
		t.Fatalf("edit session survived table switch")
	}
	if len(c.Selection(ScopeWorkers)) != 0 {
		t.Fatalf("selection survived table switch")
	}
	if got := c.DraftWorkers()[0].Name; got != "Ann" {
		t.Fatalf("draft not reverted: %q", got)
	}
	if c.Toggle(ScopeWorkers, 1) {
		t.Fatalf("toggled a row of an inactive table")
	}
}

func TestAddColumnStartsEditSession(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"}, entity.Worker{ID: 2, Name: "Bob"})
	if _, ok := c.AddColumn(); ok {
		t.Fatalf("column added outside the attendance table")
	}
	c.SetActiveTable(TableAttendance)

	col, ok := c.AddColumn()
	if !ok || !c.Editing() {
		t.Fatalf("add column should begin editing")
	}
	if !c.SetColumnDate(col, "2024-01-01") {
		t.Fatalf("set column date refused")
	}
	if !c.TogglePresence(1, "2024-01-01") || !c.SetComment(1, "2024-01-01", "ok") {
		t.Fatalf("cell edits refused")
	}
	c.Commit()

	want := attendance.Entry{Present: true, Comment: "ok"}
	if got := c.CommittedAttendance().Cell(1, col); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := c.CommittedAttendance().Cell(2, col); got != (attendance.Entry{}) {
		t.Fatalf("expected default entry, got %+v", got)
	}
}

func TestInvalidDateBlocksToggle(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	c.SetActiveTable(TableAttendance)
	col, _ := c.AddColumn()
	c.SetColumnDate(col, "2024-13-40")

	sheet := c.Attendance()
	if sheet.Columns[col].Valid {
		t.Fatalf("2024-13-40 accepted")
	}
	if c.TogglePresence(1, "2024-13-40") {
		t.Fatalf("toggle under an invalid date")
	}
	if got := c.Attendance().Cell(1, col); got != (attendance.Entry{}) {
		t.Fatalf("expected default entry, got %+v", got)
	}
}

func TestRenameOutsideEditWritesBothCopies(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	c.SetActiveTable(TableAttendance)
	col, _ := c.AddColumn()
	c.SetColumnDate(col, "2024-01-01")
	c.TogglePresence(1, "2024-01-01")
	c.Commit()

	if !c.SetColumnDate(col, "2024-02-02") {
		t.Fatalf("rename refused")
	}
	for _, sheet := range []attendance.Sheet{c.CommittedAttendance(), c.DraftAttendance()} {
		r, _ := sheet.Record(1)
		if _, ok := r.Entry("2024-01-01"); ok {
			t.Fatalf("old key kept")
		}
		if e, _ := r.Entry("2024-02-02"); !e.Present {
			t.Fatalf("entry not moved")
		}
	}
}

func TestSortBySelection(t *testing.T) {
	c := newController(t,
		entity.Worker{ID: 1, Name: "A"},
		entity.Worker{ID: 2, Name: "B"},
		entity.Worker{ID: 3, Name: "C"},
	)
	c.Toggle(ScopeWorkers, 2)

	c.Sort(ScopeWorkers, sorting.BySelection)
	if got := ids(c.Workers()); !reflect.DeepEqual(got, []entity.ID{1, 3, 2}) {
		t.Fatalf("ascending by selection: %v", got)
	}
	st := c.Sort(ScopeWorkers, sorting.BySelection)
	if st.Direction != sorting.Descending {
		t.Fatalf("second click should flip direction")
	}
	if got := ids(c.Workers()); !reflect.DeepEqual(got, []entity.ID{2, 1, 3}) {
		t.Fatalf("descending by selection: %v", got)
	}
}

func TestSortIgnoresUnsortableColumn(t *testing.T) {
	c := newController(t)
	c.Sort(ScopePartners, "name")
	if st := c.Sort(ScopePartners, "comment"); st.Key != "name" || st.Direction != sorting.Ascending {
		t.Fatalf("unsortable click changed state: %+v", st)
	}
}

func TestWorkerRoleIsReadOnly(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann"})
	if err := c.Login("worker", "nope"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err := c.Login("worker", "worker"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c.Role() != auth.RoleWorker {
		t.Fatalf("unexpected role %q", c.Role())
	}
	if c.BeginEdit() {
		t.Fatalf("worker may not edit")
	}
	if n := c.Delete(ScopeWorkers, 1); n != 0 {
		t.Fatalf("worker deleted %d rows", n)
	}
	if _, err := c.CreateGroup("Lab", []entity.ID{1}); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	c.Logout()
	if c.Role() != auth.RoleNone {
		t.Fatalf("logout kept role %q", c.Role())
	}
}

func TestGroupsAndCertificates(t *testing.T) {
	c := newController(t, entity.Worker{ID: 1, Name: "Ann", Surname: "Lee"}, entity.Worker{ID: 2, Name: "Bob"})
	c.Toggle(ScopeWorkers, 1)
	c.Toggle(ScopeWorkers, 2)
	if _, err := c.GroupSelection("  Lab "); err != nil {
		t.Fatalf("group: %v", err)
	}
	if _, err := c.GroupSelection(""); !errors.Is(err, group.ErrGroupName) {
		t.Fatalf("expected ErrGroupName, got %v", err)
	}

	c.SetActiveTable(TablePartners)
	if err := c.SelectGroup("Lab"); !errors.Is(err, ErrWrongTable) {
		t.Fatalf("expected ErrWrongTable, got %v", err)
	}
	c.SetActiveTable(TableWorkers)
	c.Delete(ScopeWorkers, 2)

	if err := c.SelectGroup("Lab"); err != nil {
		t.Fatalf("select group: %v", err)
	}
	if got := c.Selection(ScopeWorkers); !reflect.DeepEqual(got, []entity.ID{1}) {
		t.Fatalf("unexpected selection %v", got)
	}
	if err := c.SelectGroup("Gym"); !errors.Is(err, group.ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}

	certs, err := c.Certificates("Lab")
	if err != nil {
		t.Fatalf("certificates: %v", err)
	}
	if len(certs) != 1 || certs[0].String() != "Lab: Ann Lee (issued 2024-06-01)" {
		t.Fatalf("unexpected certificates %+v", certs)
	}
	if _, err := c.Certificates(""); !errors.Is(err, group.ErrNoGroupSelected) {
		t.Fatalf("expected ErrNoGroupSelected, got %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	c := newController(t, entity.Worker{ID: 7, Name: "Ann"})
	c.SetActiveTable(TableAttendance)
	col, _ := c.AddColumn()
	c.SetColumnDate(col, "2024-01-01")
	c.Commit()
	c.SetActiveTable(TableWorkers)
	c.Toggle(ScopeWorkers, 7)
	c.GroupSelection("Lab")

	snap := c.Snapshot()
	if !snap.Taken.Equal(issued) || len(snap.Workers) != 1 || len(snap.Attendance.Columns) != 1 || len(snap.Groups) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	other := New()
	other.BeginEdit()
	other.Restore(snap)
	if other.Editing() {
		t.Fatalf("restore left an edit session open")
	}
	if !reflect.DeepEqual(other.Snapshot().Workers, snap.Workers) {
		t.Fatalf("workers not restored")
	}
	other.BeginEdit()
	id, _ := other.Add(ScopeWorkers)
	if id <= 7 {
		t.Fatalf("new id %d collides with restored ids", id)
	}
}
