// Package attendance keeps the workers × dates presence matrix. Columns are
// free text dates in insertion order; records are sparse per worker maps
// keyed by the column text.
package attendance

import (
	"maps"
	"regexp"
	"slices"
	"time"

	"tableflip.dev/hrow/pkg/entity"
)

// DateLayout is the only accepted column date format.
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether raw is YYYY-MM-DD and a real calendar day.
// time.Parse rejects out of range days, so 2024-02-30 is invalid.
func ValidDate(raw string) bool {
	if !datePattern.MatchString(raw) {
		return false
	}
	_, err := time.Parse(DateLayout, raw)
	return err == nil
}

// Column is one date header.
type Column struct {
	Date  string `json:"date"`
	Valid bool   `json:"valid"`
}

// Editable reports whether cells under the column accept changes.
func (c Column) Editable() bool {
	return c.Date != "" && c.Valid
}

// Entry is one cell.
type Entry struct {
	Present bool   `json:"present"`
	Comment string `json:"comment"`
}

// Record holds a worker's entries keyed by column date.
type Record struct {
	WorkerID entity.ID        `json:"workerId"`
	Dates    map[string]Entry `json:"dates"`
}

// Entry returns the entry under date, or the zero Entry when absent.
func (r Record) Entry(date string) (Entry, bool) {
	e, ok := r.Dates[date]
	return e, ok
}

func (r Record) clone() Record {
	out := Record{WorkerID: r.WorkerID, Dates: maps.Clone(r.Dates)}
	if out.Dates == nil {
		out.Dates = map[string]Entry{}
	}
	return out
}

// Sheet is one consistent copy of columns and records.
type Sheet struct {
	Columns []Column `json:"columns"`
	Records []Record `json:"records"`
}

// Clone deep copies the sheet.
func (s Sheet) Clone() Sheet {
	out := Sheet{
		Columns: slices.Clone(s.Columns),
		Records: make([]Record, len(s.Records)),
	}
	for i, r := range s.Records {
		out.Records[i] = r.clone()
	}
	return out
}

// Record looks up the worker's record.
func (s Sheet) Record(workerID entity.ID) (Record, bool) {
	i := s.recordIndex(workerID)
	if i < 0 {
		return Record{}, false
	}
	return s.Records[i], true
}

// Cell returns what the cell at (worker, column) shows. Cells under a blank
// or invalid date always show as absent.
func (s Sheet) Cell(workerID entity.ID, column int) Entry {
	if column < 0 || column >= len(s.Columns) || !s.Columns[column].Editable() {
		return Entry{}
	}
	r, ok := s.Record(workerID)
	if !ok {
		return Entry{}
	}
	e, _ := r.Entry(s.Columns[column].Date)
	return e
}

// HasInvalid reports whether any column carries an invalid date.
func (s Sheet) HasInvalid() bool {
	return slices.ContainsFunc(s.Columns, func(c Column) bool { return !c.Valid })
}

func (s Sheet) recordIndex(workerID entity.ID) int {
	return slices.IndexFunc(s.Records, func(r Record) bool { return r.WorkerID == workerID })
}

func (s *Sheet) setColumnDate(index int, raw string) bool {
	if index < 0 || index >= len(s.Columns) {
		return false
	}
	old := s.Columns[index].Date
	s.Columns = slices.Clone(s.Columns)
	s.Columns[index] = Column{Date: raw, Valid: ValidDate(raw)}
	if old != "" && raw != "" && old != raw {
		s.rename(old, raw)
	}
	return true
}

// rename moves every entry under old to raw, overwriting what raw held.
func (s *Sheet) rename(old, raw string) {
	records := make([]Record, len(s.Records))
	for i, r := range s.Records {
		e, ok := r.Dates[old]
		if !ok {
			records[i] = r
			continue
		}
		moved := r.clone()
		delete(moved.Dates, old)
		moved.Dates[raw] = e
		records[i] = moved
	}
	s.Records = records
}

func (s *Sheet) update(workerID entity.ID, date string, apply func(Entry) Entry) bool {
	if date == "" || !ValidDate(date) {
		return false
	}
	i := s.recordIndex(workerID)
	if i < 0 {
		return false
	}
	r := s.Records[i].clone()
	r.Dates[date] = apply(r.Dates[date])
	s.Records = slices.Clone(s.Records)
	s.Records[i] = r
	return true
}

func (s *Sheet) addColumn() {
	s.Columns = append(slices.Clone(s.Columns), Column{Date: "", Valid: true})
	records := make([]Record, len(s.Records))
	for i, r := range s.Records {
		seeded := r.clone()
		seeded.Dates[""] = Entry{}
		records[i] = seeded
	}
	s.Records = records
}

// sync leaves exactly one record per worker, in worker order.
func (s *Sheet) sync(workerIDs []entity.ID) {
	records := make([]Record, 0, len(workerIDs))
	for _, id := range workerIDs {
		if r, ok := s.Record(id); ok {
			records = append(records, r)
			continue
		}
		records = append(records, Record{WorkerID: id, Dates: map[string]Entry{}})
	}
	s.Records = records
}
