package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/form"
	"github.com/KirkDiggler/rpg-petgen/internal/ui"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
)

// generateOptions mirrors the generator form. Numeric fields are strings so
// that blank or non-numeric input is read leniently, as the form does.
type generateOptions struct {
	name         string
	tempID       string
	imageID      string
	total        string
	initialValue string
	concept      string
	elements     map[pet.Element]*string
	capture      string
	rarity       string
	preset       string
	format       string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{
		elements: make(map[pet.Element]*string),
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stats and the enemybase line for one pet",
		Long: `Generate fills the form from the configured defaults, applies the flags and runs the generator.

Element flags replace the whole affinity; elements left out count as 0.
--preset is applied first, element flags after it.

Examples:
  petgen generate --name 불꽃여우 --temp-id 1234 --concept offense-defense --fire 10
  petgen generate --preset fire7-water3 --total 240 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "Pet name (blank writes "+pet.DefaultName+")")
	flags.StringVar(&opts.tempID, "temp-id", "", "Temporary id (blank writes "+pet.DefaultTempID+")")
	flags.StringVar(&opts.imageID, "image-id", "", "Image id")
	flags.StringVar(&opts.total, "total", "", "Stat budget")
	flags.StringVar(&opts.initialValue, "initial", "", "Initial value (coefficient percentage)")
	flags.StringVar(&opts.concept, "concept", "", "Concept: offense-defense, offense-speed, tank, balanced")
	for _, e := range pet.ElementOrder {
		opts.elements[e] = flags.String(string(e), "", fmt.Sprintf("%s (%s) magnitude 0-10", e, e.Label()))
	}
	flags.StringVar(&opts.capture, "capture", "", "Capture difficulty 0-10")
	flags.StringVar(&opts.rarity, "rarity", "", "Rarity 0-2")
	flags.StringVar(&opts.preset, "preset", "", "Element preset to start from")
	flags.StringVar(&opts.format, "format", formatText, "Output format: text or json")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	if opts.format != formatText && opts.format != formatJSON {
		return errors.InvalidArgumentf("unknown format %q (text or json)", opts.format)
	}

	svc, err := root.newService()
	if err != nil {
		return err
	}
	f, err := root.newForm(svc)
	if err != nil {
		return err
	}

	if err := opts.apply(cmd, f); err != nil {
		return err
	}

	result, err := f.Generate(cmd.Context())
	if err != nil {
		return err
	}
	if result == nil {
		return noticeError(f)
	}

	if opts.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	}

	ui.WriteResult(cmd.OutOrStdout(), result)
	return nil
}

// apply copies the flags the user set onto f
func (o *generateOptions) apply(cmd *cobra.Command, f *form.Form) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		f.SetName(o.name)
	}
	if flags.Changed("temp-id") {
		f.SetTempID(o.tempID)
	}
	if flags.Changed("image-id") {
		f.SetImageID(o.imageID)
	}
	if flags.Changed("total") {
		f.SetTotal(o.total)
	}
	if flags.Changed("initial") {
		f.SetInitialValue(o.initialValue)
	}
	if flags.Changed("concept") {
		if err := f.SetConcept(o.concept); err != nil {
			return err
		}
	}
	if flags.Changed("capture") {
		if err := f.SetCapture(pet.ParseInt(o.capture)); err != nil {
			return err
		}
	}
	if flags.Changed("rarity") {
		if err := f.SetRarity(pet.ParseInt(o.rarity)); err != nil {
			return err
		}
	}

	if o.preset != "" {
		if _, err := f.ApplyPreset(cmd.Context(), o.preset); err != nil {
			return err
		}
		if _, shown := f.Notice(); shown {
			return noticeError(f)
		}
	}

	var affinity pet.ElementAffinity
	explicit := false
	for _, e := range pet.ElementOrder {
		if flags.Changed(string(e)) {
			explicit = true
			affinity = affinity.With(e, pet.ParseInt(*o.elements[e]))
		}
	}
	if explicit {
		f.LoadElements(affinity)
	}

	return nil
}

// noticeError turns the form's visible notice into an InvalidArgument error
func noticeError(f *form.Form) error {
	notice, shown := f.Notice()
	if !shown {
		return errors.Internal("generation produced no result")
	}
	return errors.InvalidArgument(notice.Message)
}
