// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
)

// GenerationRequestBuilder provides a fluent interface for building test GenerationRequest instances
type GenerationRequestBuilder struct {
	req pet.GenerationRequest
}

// NewGenerationRequestBuilder creates a new builder holding the form defaults
func NewGenerationRequestBuilder() *GenerationRequestBuilder {
	return &GenerationRequestBuilder{
		req: pet.DefaultRequest(),
	}
}

// WithName sets the display name
func (b *GenerationRequestBuilder) WithName(name string) *GenerationRequestBuilder {
	b.req.Name = name
	return b
}

// WithTempID sets the temp id
func (b *GenerationRequestBuilder) WithTempID(id string) *GenerationRequestBuilder {
	b.req.TempID = id
	return b
}

// WithImageID sets the image id
func (b *GenerationRequestBuilder) WithImageID(id string) *GenerationRequestBuilder {
	b.req.ImageID = id
	return b
}

// WithTotal sets the stat budget from raw form text
func (b *GenerationRequestBuilder) WithTotal(raw string) *GenerationRequestBuilder {
	b.req.Total = pet.ParseNumber(raw)
	return b
}

// WithInitialValue sets the initial value from raw form text
func (b *GenerationRequestBuilder) WithInitialValue(raw string) *GenerationRequestBuilder {
	b.req.InitialValue = pet.ParseNumber(raw)
	return b
}

// WithConcept sets the concept
func (b *GenerationRequestBuilder) WithConcept(c pet.Concept) *GenerationRequestBuilder {
	b.req.Concept = c
	return b
}

// WithElements sets the element affinity
func (b *GenerationRequestBuilder) WithElements(a pet.ElementAffinity) *GenerationRequestBuilder {
	b.req.Elements = a
	return b
}

// WithCaptureDifficulty sets the capture difficulty
func (b *GenerationRequestBuilder) WithCaptureDifficulty(v int) *GenerationRequestBuilder {
	b.req.CaptureDifficulty = v
	return b
}

// WithRarity sets the rarity
func (b *GenerationRequestBuilder) WithRarity(v int) *GenerationRequestBuilder {
	b.req.Rarity = v
	return b
}

// Build returns the request
func (b *GenerationRequestBuilder) Build() pet.GenerationRequest {
	return b.req
}
