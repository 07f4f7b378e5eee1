// Package form holds the editable generator form. It keeps the raw field
// values, routes element edits through the generator service and turns
// validation rejections into transient notices.
package form

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/elements"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-petgen/internal/pkg/clock"
)

// Select ranges
const (
	MaxCaptureDifficulty = 10
	MaxRarity            = 2
)

// Config holds the dependencies for a Form
type Config struct {
	Service   generator.Service
	Clock     clock.Clock
	NoticeTTL time.Duration
	Defaults  pet.GenerationRequest
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.NoticeTTL <= 0 {
		vb.Field("NoticeTTL", "must be positive")
	}

	return vb.Build()
}

// Form is the in-memory form snapshot. It is not safe for concurrent use.
type Form struct {
	service generator.Service
	notices *NoticeBoard
	req     pet.GenerationRequest
	result  *pet.GenerationResult
}

// New creates a form holding cfg.Defaults
func New(cfg *Config) (*Form, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Form{
		service: cfg.Service,
		notices: NewNoticeBoard(cfg.Clock, cfg.NoticeTTL),
		req:     cfg.Defaults,
	}, nil
}

// SetName sets the pet name
func (f *Form) SetName(name string) {
	f.req.Name = name
}

// SetTempID sets the temporary id
func (f *Form) SetTempID(id string) {
	f.req.TempID = id
}

// SetImageID sets the image id
func (f *Form) SetImageID(id string) {
	f.req.ImageID = id
}

// SetTotal sets the stat budget; text that is not a number reads as zero
func (f *Form) SetTotal(raw string) {
	f.req.Total = pet.ParseNumber(raw)
}

// SetInitialValue sets the initial value; text that is not a number reads as zero
func (f *Form) SetInitialValue(raw string) {
	f.req.InitialValue = pet.ParseNumber(raw)
}

// SetConcept selects a concept by id or label
func (f *Form) SetConcept(name string) error {
	c, err := pet.ParseConcept(name)
	if err != nil {
		return err
	}
	f.req.Concept = c
	return nil
}

// SetCapture sets the capture difficulty (0-10)
func (f *Form) SetCapture(v int) error {
	if v < 0 || v > MaxCaptureDifficulty {
		return errors.InvalidArgumentf("capture difficulty must be between 0 and %d", MaxCaptureDifficulty)
	}
	f.req.CaptureDifficulty = v
	return nil
}

// SetRarity sets the rarity (0-2)
func (f *Form) SetRarity(v int) error {
	if v < 0 || v > MaxRarity {
		return errors.InvalidArgumentf("rarity must be between 0 and %d", MaxRarity)
	}
	f.req.Rarity = v
	return nil
}

// SetElement edits one element. A rejected edit leaves the affinity as it
// was and posts a notice; only unexpected failures are returned.
func (f *Form) SetElement(ctx context.Context, e pet.Element, value int) error {
	out, err := f.service.EditElement(ctx, &generator.EditElementInput{
		Current: f.req.Elements,
		Element: e,
		Value:   value,
	})
	if err != nil {
		return f.reject(err)
	}

	f.req.Elements = out.Elements
	return nil
}

// ApplyPreset replaces the affinity with the named preset
func (f *Form) ApplyPreset(ctx context.Context, name string) (pet.Preset, error) {
	out, err := f.service.ApplyPreset(ctx, &generator.ApplyPresetInput{
		Current: f.req.Elements,
		Name:    name,
	})
	if err != nil {
		return pet.Preset{}, f.reject(err)
	}

	f.req.Elements = out.Elements
	return out.Preset, nil
}

// LoadElements replaces the affinity as given. Nothing is checked here;
// Generate validates.
func (f *Form) LoadElements(a pet.ElementAffinity) {
	f.req.Elements = a
}

// ClearElements sets every element to zero
func (f *Form) ClearElements() {
	f.req.Elements = elements.Clear()
}

// Elements returns the current affinity
func (f *Form) Elements() pet.ElementAffinity {
	return f.req.Elements
}

// Snapshot returns the form as a generation request
func (f *Form) Snapshot() pet.GenerationRequest {
	return f.req
}

// Generate runs the generator on the current snapshot. When the affinity is
// rejected a notice is posted, the previous result stays and nil is returned.
func (f *Form) Generate(ctx context.Context) (*pet.GenerationResult, error) {
	out, err := f.service.Generate(ctx, &generator.GenerateInput{
		Request: f.Snapshot(),
	})
	if err != nil {
		return nil, f.reject(err)
	}

	f.result = out.Result
	return out.Result, nil
}

// Result returns the last generated result
func (f *Form) Result() *pet.GenerationResult {
	return f.result
}

// Notice returns the visible notice, if any
func (f *Form) Notice() (Notice, bool) {
	return f.notices.Current()
}

// DismissNotice drops the visible notice
func (f *Form) DismissNotice() {
	f.notices.Dismiss()
}

// reject posts validation failures as a notice and passes everything else on
func (f *Form) reject(err error) error {
	if errors.IsInvalidArgument(err) {
		f.notices.Show(errors.GetMessage(err))
		return nil
	}
	return err
}
