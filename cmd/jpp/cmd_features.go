package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFeaturesCmd(opts *globalOptions) *cobra.Command {
	var onlyEnabled, onlyDisabled bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the dialect's features and whether they are enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyEnabled && onlyDisabled {
				return fmt.Errorf("--enabled and --disabled are mutually exclusive")
			}
			features, err := opts.featureSet(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case onlyEnabled:
				for _, f := range features.Enabled() {
					fmt.Fprintln(out, f.ID())
				}
			case onlyDisabled:
				for _, f := range features.Disabled() {
					fmt.Fprintln(out, f.ID())
				}
			default:
				for _, f := range features.Registry().All() {
					state := "off"
					if features.IsEnabled(f.ID()) {
						state = "on"
					}
					fmt.Fprintf(out, "%-30s %-3s %s\n", f.ID(), state, f.Summary())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyEnabled, "enabled", false, "list only enabled feature ids")
	cmd.Flags().BoolVar(&onlyDisabled, "disabled", false, "list only disabled feature ids")

	return cmd
}
