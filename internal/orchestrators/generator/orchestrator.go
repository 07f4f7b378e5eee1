// Package generator implements the pet generation orchestrator
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=generatormock github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/elements"
	"github.com/KirkDiggler/rpg-petgen/internal/engine/random"
	"github.com/KirkDiggler/rpg-petgen/internal/engine/stats"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/export/enemybase"
	"github.com/KirkDiggler/rpg-petgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-petgen/internal/pkg/idgen"
)

// Service defines the interface for pet generation operations
type Service interface {
	// Generate validates the affinity, splits the stat budget, projects
	// level-1 stats and renders the enemybase line
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Interactive affinity editing
	EditElement(ctx context.Context, input *EditElementInput) (*EditElementOutput, error)
	ApplyPreset(ctx context.Context, input *ApplyPresetInput) (*ApplyPresetOutput, error)
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)
}

// Config holds the dependencies for the pet orchestrator
type Config struct {
	Source      random.Source
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EditPolicy  elements.EditPolicy
	Presets     []pet.Preset
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	distributor *stats.Distributor
	picker      *elements.Picker
	idGen       idgen.Generator
	clock       clock.Clock
	presets     []pet.Preset
}

// NewOrchestrator creates a new pet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	presets := append(pet.BuiltinPresets(), cfg.Presets...)

	return &orchestrator{
		distributor: stats.NewDistributor(cfg.Source),
		picker:      elements.NewPicker(cfg.EditPolicy),
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		presets:     presets,
	}, nil
}

// Generate runs the full pipeline for one form snapshot
func (o *orchestrator) Generate(_ context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	req := input.Request

	tuple, err := elements.Validate(req.Elements)
	if err != nil {
		return nil, err
	}

	statVector, err := o.distributor.Distribute(req.Total.Int(), req.Concept, tuple)
	if err != nil {
		return nil, errors.Wrap(err, "failed to distribute stats")
	}

	result := &pet.GenerationResult{
		ID:            o.idGen.Generate(),
		GeneratedAt:   o.clock.Now(),
		Request:       req,
		Stats:         statVector,
		BaseStats:     stats.Project(statVector, req.InitialValue.Value),
		Elements:      tuple,
		EnemybaseLine: enemybase.Format(req, statVector, tuple),
	}

	slog.Info("Pet generated",
		"result_id", result.ID,
		"name", req.DisplayName(),
		"concept", string(req.Concept),
		"total", req.Total.Int(),
		"stats", statVector.Array(),
		"base_stats", result.BaseStats.Array(),
	)

	return &GenerateOutput{
		Result: result,
	}, nil
}

// EditElement applies one interactive element edit
func (o *orchestrator) EditElement(_ context.Context, input *EditElementInput) (*EditElementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	next, err := o.picker.Set(input.Current, input.Element, input.Value)
	if err != nil {
		return nil, err
	}

	slog.Debug("Element edited",
		"element", string(input.Element),
		"value", input.Value,
		"policy", string(o.picker.Policy()),
		"elements", next.Tuple(),
	)

	return &EditElementOutput{
		Elements: next,
	}, nil
}

// ApplyPreset replaces the affinity with a named preset
func (o *orchestrator) ApplyPreset(_ context.Context, input *ApplyPresetInput) (*ApplyPresetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	preset, err := pet.FindPreset(o.presets, input.Name)
	if err != nil {
		return nil, err
	}

	next, err := o.picker.ApplyPreset(input.Current, preset)
	if err != nil {
		return nil, err
	}

	return &ApplyPresetOutput{
		Preset:   preset,
		Elements: next,
	}, nil
}

// ListPresets returns every preset the orchestrator knows
func (o *orchestrator) ListPresets(_ context.Context, _ *ListPresetsInput) (*ListPresetsOutput, error) {
	presets := make([]pet.Preset, len(o.presets))
	copy(presets, o.presets)

	return &ListPresetsOutput{
		Presets: presets,
	}, nil
}
