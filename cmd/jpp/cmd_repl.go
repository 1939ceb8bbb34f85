package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/jpp/repl"
)

func newReplCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := opts.featureSet(cmd)
			if err != nil {
				return err
			}
			return repl.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), features).Run()
		},
	}
}
