package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	// exitUsage covers unreadable input and bad invocations; exitDataErr
	// is the sysexits EX_DATAERR code the tool reports for lexical and
	// syntax errors.
	exitUsage   = 1
	exitDataErr = 65
)

// exitError carries a specific process exit code out of a RunE handler.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sanskriti",
		Short: "A Sanskrit-keyword scripting language",
		Long: `sanskriti runs scripts written with Sanskrit keywords by translating
them to the canonical keyword set, parsing, and walking the tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			displayBanner(os.Stderr)
		},
	}
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newRunCmd())
	return root
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading '%s' failed: %w", path, err)
	}
	return string(data), nil
}
