package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/feature"
)

var log = commonlog.GetLogger("jpp")

const defaultConfigHint = "./" + feature.DefaultConfigFile

type globalOptions struct {
	verbose    int
	logFile    string
	configFile string
	enable     []string
	disable    []string
}

// featureSet builds the feature set for a command: registry defaults, then
// the configuration file, then --disable and --enable. Patterns that match
// nothing are reported on stderr.
func (o *globalOptions) featureSet(cmd *cobra.Command) (*feature.Set, error) {
	set := feature.Default.Defaults()

	var cfg *feature.Config
	var err error
	if o.configFile != "" {
		cfg, err = feature.ReadConfigFile(o.configFile)
	} else {
		cfg, err = feature.FindConfig()
	}
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		changes, err := cfg.Apply(set)
		if err != nil {
			return nil, fmt.Errorf("apply feature config: %w", err)
		}
		reportUnmatched(cmd.ErrOrStderr(), changes)
	}

	changes, err := set.Disable(o.disable...)
	if err != nil {
		return nil, err
	}
	reportUnmatched(cmd.ErrOrStderr(), changes)

	changes, err = set.Enable(o.enable...)
	if err != nil {
		return nil, err
	}
	reportUnmatched(cmd.ErrOrStderr(), changes)

	log.Debugf("features: [%s]", set)
	return set, nil
}

func reportUnmatched(w io.Writer, changes []feature.Change) {
	for _, c := range changes {
		if c.Outcome == feature.NotFound {
			fmt.Fprintln(w, c)
		}
	}
}

// readSource reads the named file, or stdin when name is empty or "-".
func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
