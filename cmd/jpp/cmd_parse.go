package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/parser"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var outputFormat string
	var entry string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse source and dump the syntax tree",
		Long: `Parse source from a file, or stdin if no file is given, and print the
resulting syntax tree.

Formats:
  json   the tree as JSON
  dump   an indented tree, one node per line
  code   the tree rendered back to source in base syntax`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := opts.featureSet(cmd)
			if err != nil {
				return err
			}

			var filename string
			if len(args) > 0 {
				filename = args[0]
			}
			source, err := readSource(cmd, filename)
			if err != nil {
				return err
			}

			newParser, err := entryFunc(entry)
			if err != nil {
				return err
			}
			p := newParser(bytes.NewReader(source), parser.WithFile(filename), parser.WithFeatures(features))
			node, err := p.Finish()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				if err := format.NewASTJSONEncoder(out).Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "dump":
				fmt.Fprint(out, ast.Dump(node))
			case "code":
				if block, ok := node.(*ast.Block); ok && entry == "statements" {
					fmt.Fprint(out, format.Statements(block))
				} else {
					fmt.Fprintln(out, format.Code(node))
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, dump, code)")
	cmd.Flags().StringVarP(&entry, "entry", "e", "statements", "what the input holds (expression, statement, statements)")

	return cmd
}

func entryFunc(name string) (func(io.Reader, ...parser.Option) *parser.Parser, error) {
	switch name {
	case "expression", "expr":
		return parser.ParseExpression, nil
	case "statement", "stmt":
		return parser.ParseStatement, nil
	case "statements", "stmts":
		return parser.ParseStatements, nil
	}
	return nil, fmt.Errorf("unknown entry point: %s", name)
}
