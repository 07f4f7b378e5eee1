package elements

import (
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// EditPolicy decides how an edit that pushes the total over budget is absorbed
type EditPolicy string

// Edit policies
const (
	// PolicyRedistribute takes the excess from the other elements in canonical order
	PolicyRedistribute EditPolicy = "redistribute"
	// PolicyClamp lowers the edited element to whatever budget is left
	PolicyClamp EditPolicy = "clamp"
)

// Policies lists the supported edit policies
var Policies = []EditPolicy{PolicyRedistribute, PolicyClamp}

// Picker applies interactive edits to an affinity. Rejected edits return the
// current affinity unchanged together with an InvalidArgument error.
type Picker struct {
	policy EditPolicy
}

// NewPicker creates a picker. Unknown policies fall back to PolicyRedistribute.
func NewPicker(policy EditPolicy) *Picker {
	if policy != PolicyClamp {
		policy = PolicyRedistribute
	}
	return &Picker{policy: policy}
}

// Policy returns the policy in effect
func (p *Picker) Policy() EditPolicy {
	return p.policy
}

// Set sets element e to value
func (p *Picker) Set(current pet.ElementAffinity, e pet.Element, value int) (pet.ElementAffinity, error) {
	if e.Opposite() == "" {
		return current, errors.InvalidArgumentf("unknown element %q", e)
	}
	if value < 0 || value > pet.ElementMax {
		return current, errors.InvalidArgument(MsgOutOfRange).WithMeta("value", value)
	}

	existing := current.Get(e)
	if existing == 0 && current.ActiveCount() >= pet.MaxActiveCount {
		return current, errors.InvalidArgument(MsgTooManyActive).WithMeta("element", string(e))
	}
	if current.Get(e.Opposite()) > 0 && value > 0 {
		return current, errors.InvalidArgument(MsgOppositeActive).
			WithMeta("element", string(e)).
			WithMeta("opposite", string(e.Opposite()))
	}

	next := current
	excess := current.Total() - existing + value - pet.ElementBudget
	if excess > 0 {
		switch p.policy {
		case PolicyClamp:
			value -= excess
			if value < 0 {
				value = 0
			}
		default:
			for _, k := range pet.ElementOrder {
				if excess == 0 {
					break
				}
				have := next.Get(k)
				if k == e || have <= 0 {
					continue
				}
				cut := min(have, excess)
				next = next.With(k, have-cut)
				excess -= cut
			}
		}
	}

	return next.With(e, value), nil
}

// ApplyPreset replaces the affinity with the preset after full validation
func (p *Picker) ApplyPreset(current pet.ElementAffinity, preset pet.Preset) (pet.ElementAffinity, error) {
	if _, err := Validate(preset.Elements); err != nil {
		return current, err
	}
	return preset.Elements, nil
}

// Clear returns an affinity with every element at zero
func Clear() pet.ElementAffinity {
	return pet.ElementAffinity{}
}
