// Package driver wires the pipeline stages together: keyword translation,
// program parsing, and tree execution. The CLI and the end-to-end tests
// share it so both exercise the same path.
package driver

import (
	"io"
	"os"

	"sanskriti/interpreter-go/pkg/interpreter"
	"sanskriti/interpreter-go/pkg/parser"
	"sanskriti/interpreter-go/pkg/translator"
)

// Options configures one run. Zero values select the built-in Sanskrit
// keyword table and stdout.
type Options struct {
	Translator *translator.Translator
	Output     io.Writer
}

// RunSource translates src, parses it as a program, and executes it.
// The returned error is the parser's structured failure; execution itself
// never fails.
func RunSource(src string, opts Options) error {
	trans := opts.Translator
	if trans == nil {
		trans = translator.New()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	program, err := parser.New(trans.Translate(src)).ParseProgram()
	if err != nil {
		return err
	}
	interpreter.NewWithOutput(out).Run(program)
	return nil
}
