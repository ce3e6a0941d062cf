// Package schema describes the columns of each record type: how a value is
// read, whether it may be edited or sorted, and how raw input is coerced
// into it.
package schema

// Kind selects the comparison and coercion rules for a field.
type Kind int

const (
	// KindText compares case-insensitively.
	KindText Kind = iota
	// KindNumber compares numerically.
	KindNumber
	// KindReference holds a nullable worker id.
	KindReference
	// KindStatus holds a partner status.
	KindStatus
)

// Field describes one column of T.
type Field[T any] struct {
	Key      string
	Header   string
	Kind     Kind
	Editable bool
	Sortable bool

	// Get returns the field value, or nil when the value is null.
	Get func(T) any
	// Set returns a copy of the row with raw coerced into the field.
	Set func(T, any) T
}

// Set is an ordered collection of fields keyed by Field.Key.
type Set[T any] struct {
	fields []Field[T]
	index  map[string]int
}

// NewSet builds a Set. Later fields with a duplicate key win.
func NewSet[T any](fields ...Field[T]) Set[T] {
	s := Set[T]{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Key] = i
	}
	return s
}

// Fields returns the fields in display order.
func (s Set[T]) Fields() []Field[T] {
	out := make([]Field[T], len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup finds a field by key.
func (s Set[T]) Lookup(key string) (Field[T], bool) {
	i, ok := s.index[key]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// Value reads key from row. Unknown keys read as null.
func (s Set[T]) Value(row T, key string) any {
	f, ok := s.Lookup(key)
	if !ok || f.Get == nil {
		return nil
	}
	return f.Get(row)
}

// Sortable reports whether clicks on the key's header should sort.
func (s Set[T]) Sortable(key string) bool {
	f, ok := s.Lookup(key)
	return ok && f.Sortable
}

// Apply writes raw into key. It reports false, leaving row untouched, when
// the key is unknown or not editable.
func (s Set[T]) Apply(row T, key string, raw any) (T, bool) {
	f, ok := s.Lookup(key)
	if !ok || !f.Editable || f.Set == nil {
		return row, false
	}
	return f.Set(row, raw), true
}
