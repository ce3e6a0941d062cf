package store

import (
	"encoding/json"
	"time"

	"tableflip.dev/hrow/pkg/attendance"
	"tableflip.dev/hrow/pkg/entity"
)

const (
	// CurrentSchema is written into every snapshot.
	CurrentSchema = 1
	// DefaultName is the snapshot saved from the UI and read by --restore.
	DefaultName = "latest"
)

// Snapshot is the committed state of a session.
type Snapshot struct {
	Schema     int              `json:"schema"`
	Taken      time.Time        `json:"taken"`
	Workers    []entity.Worker  `json:"workers"`
	Partners   []entity.Partner `json:"partners"`
	Expenses   []entity.Expense `json:"expenses"`
	Revenues   []entity.Revenue `json:"revenues"`
	Attendance attendance.Sheet `json:"attendance"`
	Groups     []entity.Group   `json:"groups"`
}

// MaxID is the largest record id in the snapshot.
func (s Snapshot) MaxID() entity.ID {
	var max entity.ID
	bump := func(id entity.ID) {
		if id > max {
			max = id
		}
	}
	for _, w := range s.Workers {
		bump(w.ID)
	}
	for _, p := range s.Partners {
		bump(p.ID)
	}
	for _, e := range s.Expenses {
		bump(e.ID)
	}
	for _, r := range s.Revenues {
		bump(r.ID)
	}
	return max
}

// Marshal encodes the snapshot as indented JSON.
func (s Snapshot) Marshal() ([]byte, error) {
	if s.Schema == 0 {
		s.Schema = CurrentSchema
	}
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	if s.Schema == 0 {
		s.Schema = CurrentSchema
	}
	return s, nil
}
