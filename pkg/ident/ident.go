// Package ident hands out record ids that are unique within a session.
package ident

import "tableflip.dev/hrow/pkg/entity"

// Generator produces fresh ids.
type Generator interface {
	Next() entity.ID
}

// Sequence is a monotonic Generator. The zero value starts at 1. Like the
// controller that owns it, it is driven from one event loop.
type Sequence struct {
	last entity.ID
}

// NewSequence returns a Sequence whose first id is after+1.
func NewSequence(after entity.ID) *Sequence {
	return &Sequence{last: after}
}

// Next implements Generator.
func (s *Sequence) Next() entity.ID {
	s.last++
	return s.last
}

// Observe moves the sequence past id so restored records never collide with
// new ones.
func (s *Sequence) Observe(id entity.ID) {
	if id > s.last {
		s.last = id
	}
}
