package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-petgen/internal/engine/elements"
	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/ui"
)

func newElementsCmd(root *rootOptions) *cobra.Command {
	var preset string
	var zero bool
	var edits []string

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Try element edits the way the form picker applies them",
		Long: `Elements starts from the default affinity (or --preset, or all zero with --clear),
applies each --set edit in order and prints the result. Rejected edits are reported
and leave the affinity unchanged.

Example:
  petgen elements --set water=3 --set wind=2 --set earth=8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := root.newService()
			if err != nil {
				return err
			}
			f, err := root.newForm(svc)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if zero {
				f.ClearElements()
			}
			if preset != "" {
				if _, err := f.ApplyPreset(ctx, preset); err != nil {
					return err
				}
				if notice, shown := f.Notice(); shown {
					fmt.Fprintln(out, ui.NoticeText(preset+": "+notice.Message))
					f.DismissNotice()
				}
			}

			for _, edit := range edits {
				e, v, err := parseEdit(edit)
				if err != nil {
					return err
				}

				if err := f.SetElement(ctx, e, v); err != nil {
					return err
				}
				line := fmt.Sprintf("%s=%d", e, v)
				if notice, shown := f.Notice(); shown {
					fmt.Fprintln(out, ui.NoticeText(line+": "+notice.Message))
					f.DismissNotice()
					continue
				}
				fmt.Fprintln(out, ui.LabelValue(line, ui.AffinityText(f.Elements())))
			}

			fmt.Fprintln(out, ui.LabelValue("elements", ui.AffinityText(f.Elements())))
			if _, err := elements.Validate(f.Elements()); err != nil {
				fmt.Fprintln(out, ui.NoticeText("not ready to generate: "+errors.GetMessage(err)))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" ready to generate"))
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Preset to start from")
	cmd.Flags().BoolVar(&zero, "clear", false, "Start from all zero")
	cmd.Flags().StringArrayVar(&edits, "set", nil, "Edit as element=value; repeatable, applied in order")

	return cmd
}

// parseEdit reads "fire=7" or "화=7"
func parseEdit(s string) (pet.Element, int, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, errors.InvalidArgumentf("edit %q must look like element=value", s)
	}
	e, err := pet.ParseElement(name)
	if err != nil {
		return "", 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, errors.InvalidArgumentf("edit %q: value must be a number", s)
	}
	return e, v, nil
}
