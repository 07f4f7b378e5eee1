package pet

import (
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// Concept is the stat archetype of a pet
type Concept string

// Concept constants
const (
	ConceptOffenseDefense Concept = "offense-defense"
	ConceptOffenseSpeed   Concept = "offense-speed"
	ConceptTank           Concept = "tank"
	ConceptBalanced       Concept = "balanced"
)

// Concepts lists every known concept in display order
var Concepts = []Concept{ConceptOffenseDefense, ConceptOffenseSpeed, ConceptTank, ConceptBalanced}

var conceptLabels = map[Concept]string{
	ConceptOffenseDefense: "공방형",
	ConceptOffenseSpeed:   "공순형",
	ConceptTank:           "탱커형",
	ConceptBalanced:       "밸런스형",
}

// Label returns the designer-facing label of the concept
func (c Concept) Label() string {
	return conceptLabels[c]
}

// Known reports whether c is one of the enumerated concepts
func (c Concept) Known() bool {
	_, ok := conceptLabels[c]
	return ok
}

// ParseConcept accepts an English concept id or its label.
// An empty string yields ConceptBalanced.
func ParseConcept(s string) (Concept, error) {
	needle := normalize(s)
	if needle == "" {
		return ConceptBalanced, nil
	}
	for _, c := range Concepts {
		if needle == string(c) || needle == c.Label() {
			return c, nil
		}
	}

	names := make([]string, len(Concepts))
	for i, c := range Concepts {
		names[i] = string(c)
	}
	if guess := closest(needle, names); guess != "" {
		return "", errors.NotFoundf("unknown concept %q (did you mean %q?)", s, guess)
	}
	return "", errors.NotFoundf("unknown concept %q", s)
}
