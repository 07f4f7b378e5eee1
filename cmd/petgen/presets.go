package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-petgen/internal/ui"
)

func newPresetsCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List element presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := root.newService()
			if err != nil {
				return err
			}
			out, err := svc.ListPresets(cmd.Context(), &generator.ListPresetsInput{})
			if err != nil {
				return err
			}

			switch format {
			case formatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Presets)
			case formatText:
				ui.WritePresets(cmd.OutOrStdout(), out.Presets)
				return nil
			default:
				return errors.InvalidArgumentf("unknown format %q (text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")

	return cmd
}

func newConceptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concepts",
		Short: "List pet concepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui.WriteConcepts(cmd.OutOrStdout())
			return nil
		},
	}
}
