package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sanskriti/interpreter-go/pkg/lexer"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			return tokenize(src)
		},
	}
}

// tokenize prints one line per token to stdout and one line per lexical
// error to stderr. Errors do not stop the scan; they flip the exit code
// to 65 once the whole stream has been reported.
func tokenize(src string) error {
	anyErr := false
	lex := lexer.New(src)
	for {
		tok, err := lex.Next()
		if err != nil {
			anyErr = true
			color.New(color.FgRed).Fprintln(os.Stderr, err)
			continue
		}
		if tok.Kind == lexer.EOF {
			break
		}
		fmt.Println(tok)
	}
	fmt.Println("EOF  null")
	if anyErr {
		return &exitError{code: exitDataErr}
	}
	return nil
}
