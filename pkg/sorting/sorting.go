// Package sorting orders table rows by a column or by selection state.
package sorting

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/schema"
)

// BySelection is the sort key for the checkbox column.
const BySelection = "__selected__"

// Direction of a sort.
type Direction int

const (
	// Ascending puts nulls and unselected rows first.
	Ascending Direction = iota
	// Descending reverses Ascending.
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow is the header marker for the direction.
func (d Direction) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// State is the current sort of one table. An empty Key keeps rows in their
// stored order.
type State struct {
	Key       string
	Direction Direction
}

// Click returns the state after the header for key is clicked. Clicking the
// active key flips direction, any other key starts ascending. Unsortable
// headers leave the state alone.
func (s State) Click(key string, sortable bool) State {
	if !sortable {
		return s
	}
	if s.Key == key && s.Direction == Ascending {
		return State{Key: key, Direction: Descending}
	}
	return State{Key: key, Direction: Ascending}
}

// Rows returns a sorted copy of rows. value reads a field by key and
// selected reports whether a row is checked; ties keep their input order.
func Rows[T any](rows []T, state State, value func(T, string) any, selected func(T) bool) []T {
	out := slices.Clone(rows)
	if state.Key == "" {
		return out
	}
	var cmp func(a, b T) int
	if state.Key == BySelection {
		cmp = func(a, b T) int {
			return compareBool(isSelected(selected, a), isSelected(selected, b))
		}
	} else {
		cmp = func(a, b T) int {
			return Compare(value(a, state.Key), value(b, state.Key))
		}
	}
	if state.Direction == Descending {
		asc := cmp
		cmp = func(a, b T) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// Fields sorts rows using the field descriptors of their table. Keys that are
// unknown or unsortable keep the stored order.
func Fields[T any](rows []T, fields schema.Set[T], state State, selected func(T) bool) []T {
	if state.Key != "" && state.Key != BySelection && !fields.Sortable(state.Key) {
		state.Key = ""
	}
	return Rows(rows, state, fields.Value, selected)
}

// Compare orders two field values: nulls first, numbers numerically and
// everything else as case-insensitive text.
func Compare(x, y any) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	case y == nil:
		return 1
	}
	if xn, ok := number(x); ok {
		if yn, ok := number(y); ok {
			return xn.Cmp(yn)
		}
	}
	return strings.Compare(strings.ToLower(schema.Text(x)), strings.ToLower(schema.Text(y)))
}

func number(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case entity.ID:
		return decimal.NewFromInt(int64(n)), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	default:
		return decimal.Decimal{}, false
	}
}

func isSelected[T any](selected func(T) bool, row T) bool {
	return selected != nil && selected(row)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
