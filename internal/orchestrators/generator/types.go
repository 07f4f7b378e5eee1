package generator

import (
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
)

// GenerateInput defines the request for generating a pet
type GenerateInput struct {
	Request pet.GenerationRequest
}

// GenerateOutput defines the response for generating a pet
type GenerateOutput struct {
	Result *pet.GenerationResult
}

// EditElementInput defines an interactive edit of one element
type EditElementInput struct {
	Current pet.ElementAffinity
	Element pet.Element
	Value   int
}

// EditElementOutput holds the affinity after the edit
type EditElementOutput struct {
	Elements pet.ElementAffinity
}

// ApplyPresetInput defines the request for applying a named preset
type ApplyPresetInput struct {
	Current pet.ElementAffinity
	Name    string
}

// ApplyPresetOutput holds the affinity after the preset
type ApplyPresetOutput struct {
	Preset   pet.Preset
	Elements pet.ElementAffinity
}

// ListPresetsInput defines the request for listing presets
type ListPresetsInput struct{}

// ListPresetsOutput lists built-in presets followed by configured ones
type ListPresetsOutput struct {
	Presets []pet.Preset
}
