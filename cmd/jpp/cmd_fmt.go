package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/parser"
)

func newFmtCmd(opts *globalOptions) *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite statements in base syntax",
		Long: `Parse a list of statements and print them back in base syntax, with
every enabled extension desugared.

If no file is provided, reads source from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) > 0 {
				filename = args[0]
			} else if fmtOverwrite {
				return fmt.Errorf("-w requires a file argument")
			}

			features, err := opts.featureSet(cmd)
			if err != nil {
				return err
			}
			source, err := readSource(cmd, filename)
			if err != nil {
				return err
			}

			p := parser.ParseStatements(bytes.NewReader(source), parser.WithFile(filename), parser.WithFeatures(features))
			node, err := p.Finish()
			if err != nil {
				return err
			}
			output := format.Statements(node.(*ast.Block))

			if fmtOverwrite {
				return os.WriteFile(filename, []byte(output), 0644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
