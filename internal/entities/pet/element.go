package pet

import (
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// Element is one of the four elemental affinities
type Element string

// Element constants
const (
	ElementEarth Element = "earth"
	ElementWater Element = "water"
	ElementFire  Element = "fire"
	ElementWind  Element = "wind"
)

// Affinity limits
const (
	ElementBudget  = 10
	ElementMax     = 10
	MaxActiveCount = 2
)

// ElementOrder is the canonical order used by tuples, iteration and the export record
var ElementOrder = []Element{ElementEarth, ElementWater, ElementFire, ElementWind}

var elementLabels = map[Element]string{
	ElementEarth: "지",
	ElementWater: "수",
	ElementFire:  "화",
	ElementWind:  "풍",
}

// Opposite returns the element that may never be active together with e
func (e Element) Opposite() Element {
	switch e {
	case ElementEarth:
		return ElementFire
	case ElementFire:
		return ElementEarth
	case ElementWater:
		return ElementWind
	case ElementWind:
		return ElementWater
	default:
		return ""
	}
}

// Label returns the short in-game label for the element
func (e Element) Label() string {
	return elementLabels[e]
}

// ParseElement accepts an English element name or its in-game label
func ParseElement(s string) (Element, error) {
	needle := normalize(s)
	for _, e := range ElementOrder {
		if needle == string(e) || needle == e.Label() {
			return e, nil
		}
	}

	if guess := closest(needle, elementNames()); guess != "" {
		return "", errors.InvalidArgumentf("unknown element %q (did you mean %q?)", s, guess)
	}
	return "", errors.InvalidArgumentf("unknown element %q", s)
}

func elementNames() []string {
	names := make([]string, len(ElementOrder))
	for i, e := range ElementOrder {
		names[i] = string(e)
	}
	return names
}

// ElementAffinity holds the four elemental magnitudes
type ElementAffinity struct {
	Earth int `json:"earth" yaml:"earth"`
	Water int `json:"water" yaml:"water"`
	Fire  int `json:"fire" yaml:"fire"`
	Wind  int `json:"wind" yaml:"wind"`
}

// Get returns the magnitude of e
func (a ElementAffinity) Get(e Element) int {
	switch e {
	case ElementEarth:
		return a.Earth
	case ElementWater:
		return a.Water
	case ElementFire:
		return a.Fire
	case ElementWind:
		return a.Wind
	default:
		return 0
	}
}

// With returns a copy of a with e set to v
func (a ElementAffinity) With(e Element, v int) ElementAffinity {
	switch e {
	case ElementEarth:
		a.Earth = v
	case ElementWater:
		a.Water = v
	case ElementFire:
		a.Fire = v
	case ElementWind:
		a.Wind = v
	}
	return a
}

// Tuple returns the magnitudes in canonical order (earth, water, fire, wind)
func (a ElementAffinity) Tuple() [4]int {
	return [4]int{a.Earth, a.Water, a.Fire, a.Wind}
}

// Total sums all four magnitudes
func (a ElementAffinity) Total() int {
	return a.Earth + a.Water + a.Fire + a.Wind
}

// ActiveCount counts elements with a positive magnitude
func (a ElementAffinity) ActiveCount() int {
	count := 0
	for _, e := range ElementOrder {
		if a.Get(e) > 0 {
			count++
		}
	}
	return count
}

// AffinityFromTuple builds an affinity from a canonical-order tuple
func AffinityFromTuple(t [4]int) ElementAffinity {
	return ElementAffinity{Earth: t[0], Water: t[1], Fire: t[2], Wind: t[3]}
}

// DefaultElements is the affinity a fresh form starts with
func DefaultElements() ElementAffinity {
	return ElementAffinity{Fire: ElementBudget}
}
