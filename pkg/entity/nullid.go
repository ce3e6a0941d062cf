package entity

import (
	"encoding/json"
	"strconv"
)

// NullID is a reference to a worker that may be unassigned.
type NullID struct {
	ID    ID
	Valid bool
}

// Ref returns an assigned reference to id.
func Ref(id ID) NullID {
	return NullID{ID: id, Valid: true}
}

// Unassigned is the empty reference.
var Unassigned = NullID{}

func (n NullID) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(int64(n.ID), 10)
}

// MarshalJSON writes null for unassigned references.
func (n NullID) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(int64(n.ID))
}

// UnmarshalJSON accepts a number or null.
func (n *NullID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Unassigned
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*n = Ref(ID(id))
	return nil
}
