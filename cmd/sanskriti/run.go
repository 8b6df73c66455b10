package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sanskriti/interpreter-go/pkg/driver"
	"sanskriti/interpreter-go/pkg/translator"
)

func newRunCmd() *cobra.Command {
	var keywordTable string
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Translate, parse, and execute a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			var opts driver.Options
			if keywordTable != "" {
				table, err := translator.LoadTable(keywordTable)
				if err != nil {
					return err
				}
				opts.Translator = translator.NewWithTable(table)
			}

			if err := driver.RunSource(src, opts); err != nil {
				color.New(color.FgRed).Fprintln(os.Stderr, err)
				return &exitError{code: exitDataErr}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keywordTable, "keywords", "", "YAML keyword table replacing the built-in Sanskrit spellings")
	return cmd
}
