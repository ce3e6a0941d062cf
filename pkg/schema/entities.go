package schema

import (
	"tableflip.dev/hrow/pkg/entity"
)

func textField[T any](key, header string, get func(T) string, set func(*T, string)) Field[T] {
	return Field[T]{
		Key:      key,
		Header:   header,
		Kind:     KindText,
		Editable: true,
		Sortable: true,
		Get:      func(row T) any { return get(row) },
		Set: func(row T, raw any) T {
			set(&row, Text(raw))
			return row
		},
	}
}

func idField[T entity.Row]() Field[T] {
	return Field[T]{
		Key:      "id",
		Header:   "ID",
		Kind:     KindNumber,
		Sortable: true,
		Get:      func(row T) any { return row.RowID() },
	}
}

// Workers describes the worker table.
func Workers() Set[entity.Worker] {
	type w = entity.Worker
	return NewSet(
		idField[w](),
		textField("name", "Name", func(r w) string { return r.Name }, func(r *w, v string) { r.Name = v }),
		textField("surname", "Surname", func(r w) string { return r.Surname }, func(r *w, v string) { r.Surname = v }),
		textField("email", "Email", func(r w) string { return r.Email }, func(r *w, v string) { r.Email = v }),
		textField("phone", "Phone", func(r w) string { return r.Phone }, func(r *w, v string) { r.Phone = v }),
		textField("index", "Index", func(r w) string { return r.Index }, func(r *w, v string) { r.Index = v }),
		textField("fieldOfStudy", "Field of study", func(r w) string { return r.FieldOfStudy }, func(r *w, v string) { r.FieldOfStudy = v }),
		textField("section", "Section", func(r w) string { return r.Section }, func(r *w, v string) { r.Section = v }),
	)
}

// Partners describes the partner table.
func Partners() Set[entity.Partner] {
	type p = entity.Partner
	comment := textField("comment", "Comment", func(r p) string { return r.Comment }, func(r *p, v string) { r.Comment = v })
	comment.Sortable = false
	return NewSet(
		idField[p](),
		textField("name", "Name", func(r p) string { return r.Name }, func(r *p, v string) { r.Name = v }),
		Field[p]{
			Key:      "workerId",
			Header:   "Responsible",
			Kind:     KindReference,
			Editable: true,
			Sortable: true,
			Get:      func(r p) any { return refValue(r.WorkerID) },
			Set: func(r p, raw any) p {
				r.WorkerID = Reference(raw)
				return r
			},
		},
		textField("phone", "Phone", func(r p) string { return r.Phone }, func(r *p, v string) { r.Phone = v }),
		textField("email", "Email", func(r p) string { return r.Email }, func(r *p, v string) { r.Email = v }),
		Field[p]{
			Key:      "status",
			Header:   "Status",
			Kind:     KindStatus,
			Editable: true,
			Sortable: true,
			Get:      func(r p) any { return r.Status.String() },
			Set: func(r p, raw any) p {
				r.Status = Status(raw)
				return r
			},
		},
		comment,
	)
}

type financeRow[T any] interface {
	*T
	entity.Row
	Entry() *entity.FinanceEntry
}

func financeFields[T entity.Row, P financeRow[T]]() Set[T] {
	entry := func(row *T) *entity.FinanceEntry { return P(row).Entry() }
	return NewSet(
		idField[T](),
		Field[T]{
			Key:      "name",
			Header:   "Name",
			Kind:     KindText,
			Editable: true,
			Sortable: true,
			Get:      func(row T) any { return entry(&row).Name },
			Set: func(row T, raw any) T {
				entry(&row).Name = Text(raw)
				return row
			},
		},
		Field[T]{
			Key:      "amount",
			Header:   "Amount",
			Kind:     KindNumber,
			Editable: true,
			Sortable: true,
			Get:      func(row T) any { return entry(&row).Amount },
			Set: func(row T, raw any) T {
				entry(&row).Amount = Amount(raw)
				return row
			},
		},
		Field[T]{
			Key:      "workerId",
			Header:   "Responsible",
			Kind:     KindReference,
			Editable: true,
			Sortable: true,
			Get:      func(row T) any { return refValue(entry(&row).WorkerID) },
			Set: func(row T, raw any) T {
				entry(&row).WorkerID = Reference(raw)
				return row
			},
		},
	)
}

// Expenses describes the expense table.
func Expenses() Set[entity.Expense] {
	return financeFields[entity.Expense]()
}

// Revenues describes the revenue table.
func Revenues() Set[entity.Revenue] {
	return financeFields[entity.Revenue]()
}
