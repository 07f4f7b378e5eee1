package stats

import "github.com/KirkDiggler/rpg-petgen/internal/entities/pet"

// Weight tuning
const (
	// ElementBiasScale is added to a stat weight when its element is at full strength
	ElementBiasScale = 0.3
	// BalancedJitter bounds the per-axis perturbation of the balanced profile
	BalancedJitter = 0.1
)

// Weights are relative stat-axis weights (vitality, attack, toughness, agility)
type Weights [4]float64

var conceptWeights = map[pet.Concept]Weights{
	pet.ConceptOffenseDefense: {1, 1.4, 1.4, 0.8},
	pet.ConceptOffenseSpeed:   {0.8, 1.5, 0.7, 1.5},
	pet.ConceptTank:           {1.6, 0.8, 1.6, 0.5},
	pet.ConceptBalanced:       {1, 1, 1, 1},
}

// BaseWeights returns the weight vector of c, or the balanced vector for unknown concepts
func BaseWeights(c pet.Concept) Weights {
	if w, ok := conceptWeights[c]; ok {
		return w
	}
	return conceptWeights[pet.ConceptBalanced]
}

// ApplyElementBias skews w by the affinity tuple (earth, water, fire, wind).
// Water feeds vitality, fire feeds attack, earth feeds toughness and wind feeds agility.
func ApplyElementBias(w Weights, elements [4]int) Weights {
	earth, water, fire, wind := elements[0], elements[1], elements[2], elements[3]
	budget := float64(pet.ElementBudget)

	return Weights{
		w[0] + float64((float64(water)/budget)*ElementBiasScale),
		w[1] + float64((float64(fire)/budget)*ElementBiasScale),
		w[2] + float64((float64(earth)/budget)*ElementBiasScale),
		w[3] + float64((float64(wind)/budget)*ElementBiasScale),
	}
}

// Sum adds the four weights
func (w Weights) Sum() float64 {
	return w[0] + w[1] + w[2] + w[3]
}
