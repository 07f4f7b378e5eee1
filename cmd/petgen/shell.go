package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-petgen/internal/shell"
)

func newShellCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit the form interactively",
		Long:  `Shell keeps one form open and reads commands line by line. Type help inside the shell for the command list.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := root.newService()
			if err != nil {
				return err
			}
			f, err := root.newForm(svc)
			if err != nil {
				return err
			}

			sh, err := shell.New(&shell.Config{
				Form:    f,
				Service: svc,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			return sh.Run(cmd.Context())
		},
	}
}
