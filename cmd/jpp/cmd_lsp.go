package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/jpp/lsp"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := opts.featureSet(cmd)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, features)
			return server.RunStdio()
		},
	}
}
