// Package config loads petgen settings from YAML
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/elements"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
)

// DefaultNoticeTTL is how long a warning notice stays up
const DefaultNoticeTTL = 1500 * time.Millisecond

// Config holds all petgen settings
type Config struct {
	Defaults   FormDefaults        `yaml:"defaults"`
	NoticeTTL  time.Duration       `yaml:"notice_ttl"`
	EditPolicy elements.EditPolicy `yaml:"edit_policy"`
	Presets    []pet.Preset        `yaml:"presets"`
}

// FormDefaults are the values a fresh form starts with
type FormDefaults struct {
	Name              string              `yaml:"name"`
	TempID            string              `yaml:"temp_id"`
	ImageID           string              `yaml:"image_id"`
	Total             int                 `yaml:"total"`
	InitialValue      int                 `yaml:"initial_value"`
	Concept           pet.Concept         `yaml:"concept"`
	Elements          pet.ElementAffinity `yaml:"elements"`
	CaptureDifficulty int                 `yaml:"capture_difficulty"`
	Rarity            int                 `yaml:"rarity"`
}

// Default returns Config with the stock form defaults
func Default() Config {
	req := pet.DefaultRequest()
	return Config{
		Defaults: FormDefaults{
			ImageID:      req.ImageID,
			Total:        req.Total.Int(),
			InitialValue: req.InitialValue.Int(),
			Concept:      req.Concept,
			Elements:     req.Elements,
		},
		NoticeTTL:  DefaultNoticeTTL,
		EditPolicy: elements.PolicyRedistribute,
	}
}

// Load reads config from a YAML file on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.NoticeTTL <= 0 {
		vb.Field("notice_ttl", "must be positive")
	}

	policies := make([]string, len(elements.Policies))
	for i, p := range elements.Policies {
		policies[i] = string(p)
	}
	errors.ValidateEnum("edit_policy", string(c.EditPolicy), policies, vb)

	if !c.Defaults.Concept.Known() {
		vb.InvalidField("defaults.concept", fmt.Sprintf("unknown concept %q", c.Defaults.Concept))
	}
	errors.ValidateRange("defaults.capture_difficulty", c.Defaults.CaptureDifficulty, 0, 10, vb)
	errors.ValidateRange("defaults.rarity", c.Defaults.Rarity, 0, 2, vb)

	seen := make(map[string]bool)
	for _, p := range pet.BuiltinPresets() {
		seen[p.Name] = true
	}
	for i, p := range c.Presets {
		field := fmt.Sprintf("presets[%d].name", i)
		if p.Name == "" {
			vb.RequiredField(field)
			continue
		}
		if seen[p.Name] {
			vb.Fieldf(field, "duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
	}

	return vb.Build()
}

// Request converts the form defaults into a generation request
func (c *Config) Request() pet.GenerationRequest {
	d := c.Defaults
	return pet.GenerationRequest{
		Name:              d.Name,
		TempID:            d.TempID,
		ImageID:           d.ImageID,
		Total:             pet.NumberOf(d.Total),
		InitialValue:      pet.NumberOf(d.InitialValue),
		Concept:           d.Concept,
		Elements:          d.Elements,
		CaptureDifficulty: d.CaptureDifficulty,
		Rarity:            d.Rarity,
	}
}
