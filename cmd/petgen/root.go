package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-petgen/internal/config"
	"github.com/KirkDiggler/rpg-petgen/internal/engine/random"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/form"
	"github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-petgen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-petgen/internal/pkg/idgen"
)

// rootOptions carries persistent flags and the state they produce
type rootOptions struct {
	configPath string
	verbose    bool

	cfg    config.Config
	source random.Source
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootOptions{})
}

// buildRootCmd assembles the command tree around opts. A preset opts.source
// is kept, which lets tests pin the random sequence.
func buildRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "petgen",
		Short: "Pet stat generator",
		Long: `petgen splits a pet's stat budget by concept and elemental affinity,
derives its level-1 stats and prints the enemybase line for the game data sheet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with form defaults, notice ttl, edit policy and extra presets")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newElementsCmd(opts),
		newPresetsCmd(opts),
		newConceptsCmd(),
		newShellCmd(opts),
	)

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if o.source == nil {
		o.source = random.NewDefault()
	}

	slog.Debug("Config loaded",
		"path", o.configPath,
		"edit_policy", string(cfg.EditPolicy),
		"notice_ttl", cfg.NoticeTTL,
		"extra_presets", len(cfg.Presets),
	)

	return nil
}

// newService wires the generator with production dependencies
func (o *rootOptions) newService() (generator.Service, error) {
	svc, err := generator.NewOrchestrator(&generator.Config{
		Source:      o.source,
		IDGenerator: idgen.NewUUID("pet"),
		Clock:       clock.New(),
		EditPolicy:  o.cfg.EditPolicy,
		Presets:     o.cfg.Presets,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}
	return svc, nil
}

// newForm creates a form over svc holding the configured defaults
func (o *rootOptions) newForm(svc generator.Service) (*form.Form, error) {
	f, err := form.New(&form.Config{
		Service:   svc,
		Clock:     clock.New(),
		NoticeTTL: o.cfg.NoticeTTL,
		Defaults:  o.cfg.Request(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create form")
	}
	return f, nil
}
