package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/jpp/grammar"
)

func newGrammarCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "EBNF grammar of the dialect",
	}

	cmd.AddCommand(newGrammarPrintCmd())
	cmd.AddCommand(newGrammarGatesCmd(opts))
	cmd.AddCommand(newGrammarVerifyCmd())
	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source())
			return err
		},
	}
}

func newGrammarGatesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the productions each feature introduces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := opts.featureSet(cmd)
			if err != nil {
				return err
			}
			for _, g := range grammar.Gates(features) {
				mark := " "
				if g.Enabled {
					mark = "+"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-22s %s\n", mark, g.Production, g.Feature)
			}
			return nil
		},
	}
}

func newGrammarVerifyCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Parse and verify an EBNF grammar file, or the built-in grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if _, err := grammar.Load(); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return err
				}
				return nil
			}

			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			g, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(g, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var production string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check source against the grammar instead of the parser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) > 0 {
				filename = args[0]
			}
			source, err := readSource(cmd, filename)
			if err != nil {
				return err
			}
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			if err := grammar.Recognize(g, source, production); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&production, "production", grammar.SourceProduction, "production the source must derive from")

	return cmd
}

// printErrors prints each error of a list such as scanner.ErrorList on its
// own line.
func printErrors(w io.Writer, err error) {
	for reflect.ValueOf(err).Kind() != reflect.Slice {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
