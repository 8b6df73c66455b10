package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sanskriti/interpreter-go/pkg/parser"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single expression and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			tree, err := parser.New(src).ParseExpression()
			if err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err)
				return &exitError{code: exitDataErr}
			}
			fmt.Println(tree)
			return nil
		},
	}
}
