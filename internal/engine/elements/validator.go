// Package elements enforces the elemental affinity rules for pets
package elements

import (
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// Rule violation messages shown to the designer
const (
	MsgOutOfRange      = "element values must be between 0 and 10"
	MsgTotalNotBudget  = "element total must be exactly 10"
	MsgOppositesPaired = "opposite elements cannot be combined"
	MsgTooManyActive   = "at most two elements can be selected"
	MsgOppositeActive  = "opposite elements cannot be selected together"
)

// Validate checks a at generation time and returns its canonical tuple
// (earth, water, fire, wind). Violations are InvalidArgument errors whose
// message names the broken rule.
func Validate(a pet.ElementAffinity) ([4]int, error) {
	tuple := a.Tuple()

	for _, v := range tuple {
		if v < 0 || v > pet.ElementMax {
			return [4]int{}, errors.InvalidArgument(MsgOutOfRange).WithMeta("elements", tuple)
		}
	}

	if a.Total() != pet.ElementBudget {
		return [4]int{}, errors.InvalidArgument(MsgTotalNotBudget).
			WithMeta("elements", tuple).
			WithMeta("total", a.Total())
	}

	if (a.Earth > 0 && a.Fire > 0) || (a.Water > 0 && a.Wind > 0) {
		return [4]int{}, errors.InvalidArgument(MsgOppositesPaired).WithMeta("elements", tuple)
	}

	return tuple, nil
}
