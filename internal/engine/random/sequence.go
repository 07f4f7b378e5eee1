package random

import (
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// Sequence replays fixed values. Floats and ints are consumed from separate
// queues; a drained queue returns an Internal error.
type Sequence struct {
	floats []float64
	ints   []int
}

// NewSequence creates a Sequence with the given float queue
func NewSequence(floats ...float64) *Sequence {
	return &Sequence{floats: floats}
}

// WithInts sets the int queue
func (s *Sequence) WithInts(ints ...int) *Sequence {
	s.ints = ints
	return s
}

var _ Source = (*Sequence)(nil)

// Float64 returns the next queued float
func (s *Sequence) Float64() (float64, error) {
	if len(s.floats) == 0 {
		return 0, errors.Internal("float sequence exhausted")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v, nil
}

// IntN returns the next queued int reduced modulo n
func (s *Sequence) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", n)
	}
	if len(s.ints) == 0 {
		return 0, errors.Internal("int sequence exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return ((v % n) + n) % n, nil
}

// Remaining reports how many floats and ints are still queued
func (s *Sequence) Remaining() (floats, ints int) {
	return len(s.floats), len(s.ints)
}
