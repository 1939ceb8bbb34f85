package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:          "jpp",
		Short:        "Parser and formatter for an extended Java dialect",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		var path *string
		if opts.logFile != "" {
			path = &opts.logFile
		}
		commonlog.Configure(opts.verbose, path)
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&opts.logFile, "log", "", "write logs to this file instead of stderr")
	flags.StringVar(&opts.configFile, "config", "", "feature configuration file (default "+defaultConfigHint+")")
	flags.StringSliceVar(&opts.enable, "enable", nil, "feature patterns to enable")
	flags.StringSliceVar(&opts.disable, "disable", nil, "feature patterns to disable")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newFmtCmd(opts))
	rootCmd.AddCommand(newFeaturesCmd(opts))
	rootCmd.AddCommand(newGrammarCmd(opts))
	rootCmd.AddCommand(newReplCmd(opts))
	rootCmd.AddCommand(newLSPCmd(opts))

	return rootCmd
}
