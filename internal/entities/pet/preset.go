package pet

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// Preset is a named quick-select affinity
type Preset struct {
	Name     string          `json:"name" yaml:"name"`
	Label    string          `json:"label" yaml:"label"`
	Elements ElementAffinity `json:"elements" yaml:"elements"`
}

// BuiltinPresets returns the quick-select presets in display order
func BuiltinPresets() []Preset {
	return []Preset{
		{Name: "earth10", Label: "지 10", Elements: ElementAffinity{Earth: 10}},
		{Name: "water10", Label: "수 10", Elements: ElementAffinity{Water: 10}},
		{Name: "fire10", Label: "화 10", Elements: ElementAffinity{Fire: 10}},
		{Name: "wind10", Label: "풍 10", Elements: ElementAffinity{Wind: 10}},
		{Name: "fire7-water3", Label: "화7 수3", Elements: ElementAffinity{Water: 3, Fire: 7}},
	}
}

// FindPreset looks a preset up by name or label
func FindPreset(presets []Preset, name string) (Preset, error) {
	needle := norm.NFC.String(strings.TrimSpace(name))
	for _, p := range presets {
		if strings.EqualFold(needle, p.Name) || needle == p.Label {
			return p, nil
		}
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	if guess := closest(normalize(needle), names); guess != "" {
		return Preset{}, errors.NotFoundf("preset %q not found (did you mean %q?)", name, guess)
	}
	return Preset{}, errors.NotFoundf("preset %q not found", name)
}
