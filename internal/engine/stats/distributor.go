// Package stats splits a stat budget across the four axes and projects level-1 stats
package stats

import (
	"math"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/random"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// Distributor splits a total budget by concept weights and elemental bias
type Distributor struct {
	source random.Source
}

// NewDistributor creates a distributor drawing randomness from source
func NewDistributor(source random.Source) *Distributor {
	return &Distributor{source: source}
}

// Distribute produces a StatVector that sums to total. The affinity tuple must
// already be validated. Balanced pets get fresh jitter on every call and the
// rounding remainder lands on random axes, so results are not reproducible
// unless the source is.
func (d *Distributor) Distribute(total int, concept pet.Concept, elements [4]int) (pet.StatVector, error) {
	weights := BaseWeights(concept)

	if concept == pet.ConceptBalanced {
		for i := range weights {
			r, err := d.source.Float64()
			if err != nil {
				return pet.StatVector{}, errors.Wrap(err, "failed to jitter balanced weights")
			}
			// explicit conversion keeps the product unfused
			weights[i] += float64(r*(2*BalancedJitter)) - BalancedJitter
		}
	}

	weights = ApplyElementBias(weights, elements)
	sum := weights.Sum()

	var values [4]int
	assigned := 0
	for i, w := range weights {
		values[i] = int(math.Floor((w / sum) * float64(total)))
		assigned += values[i]
	}

	for diff := total - assigned; diff > 0; diff-- {
		axis, err := d.source.IntN(len(values))
		if err != nil {
			return pet.StatVector{}, errors.Wrap(err, "failed to distribute remainder")
		}
		values[axis]++
	}

	return pet.StatVectorFromArray(values), nil
}
