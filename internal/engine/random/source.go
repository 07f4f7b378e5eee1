// Package random provides the injectable randomness used by stat generation
package random

//go:generate mockgen -destination=mock/mock_source.go -package=randommock github.com/KirkDiggler/rpg-petgen/internal/engine/random Source

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// floatDieSize is the number of faces rolled to produce one Float64 sample
const floatDieSize = 1 << 24

// Source supplies uniform random values
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() (float64, error)
	// IntN returns a value in [0, n)
	IntN(n int) (int, error)
}

// DiceSource draws randomness from an rpg-toolkit dice roller
type DiceSource struct {
	roller dice.Roller
}

// NewDiceSource wraps roller as a Source
func NewDiceSource(roller dice.Roller) *DiceSource {
	return &DiceSource{roller: roller}
}

// NewDefault returns a Source backed by the toolkit's default roller
func NewDefault() *DiceSource {
	return NewDiceSource(dice.DefaultRoller)
}

var _ Source = (*DiceSource)(nil)

// Float64 rolls a 2^24-sided die and scales the face into [0, 1)
func (s *DiceSource) Float64() (float64, error) {
	face, err := s.roller.Roll(floatDieSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll float sample")
	}
	return float64(face-1) / floatDieSize, nil
}

// IntN rolls an n-sided die and shifts the face to start at zero
func (s *DiceSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", n)
	}
	face, err := s.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	return face - 1, nil
}
