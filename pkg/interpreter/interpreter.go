// Package interpreter walks a parsed TokenTree program and executes it
// against one flat variable environment. Evaluation has no error channel:
// type-mismatched operations degrade to nil or false per the rule tables
// in operations.go, never to a raised error.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"sanskriti/interpreter-go/pkg/ast"
	"sanskriti/interpreter-go/pkg/runtime"
)

// Interpreter owns the environment for one program run.
type Interpreter struct {
	env *runtime.Env
	out io.Writer
}

// New constructs an interpreter writing print output to stdout.
func New() *Interpreter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput constructs an interpreter writing print output to w.
func NewWithOutput(w io.Writer) *Interpreter {
	return &Interpreter{env: runtime.NewEnv(), out: w}
}

// Env exposes the variable environment, mainly for inspection in tests.
func (i *Interpreter) Env() *runtime.Env {
	return i.env
}

// Run executes the statements in program order.
func (i *Interpreter) Run(stmts []ast.TokenTree) {
	for _, stmt := range stmts {
		i.exec(stmt)
	}
}

func (i *Interpreter) exec(node ast.TokenTree) {
	switch n := node.(type) {
	case *ast.Cons:
		switch n.Op {
		case ast.OpGroup:
			// Blocks share the flat environment; no scope is pushed.
			for _, stmt := range n.Children {
				i.exec(stmt)
			}
		case ast.OpVar:
			if len(n.Children) == 2 {
				if name, ok := identName(n.Children[0]); ok {
					i.env.Define(name, i.Eval(n.Children[1]))
				}
			}
		case ast.OpPrint:
			if len(n.Children) == 1 {
				fmt.Fprintln(i.out, i.Eval(n.Children[0]).Display())
			}
		case ast.OpWhile:
			if len(n.Children) == 2 {
				for i.Eval(n.Children[0]).Truthy() {
					i.exec(n.Children[1])
				}
			}
		default:
			i.Eval(n)
		}
	case *ast.If:
		if i.Eval(n.Condition).Truthy() {
			i.exec(n.Yes)
		} else if n.No != nil {
			i.exec(n.No)
		}
	default:
		// Expression statements, and the unexecuted Fun/Call forms:
		// evaluate for effect, discard the value.
		i.Eval(node)
	}
}

func identName(node ast.TokenTree) (string, bool) {
	atom, ok := node.(*ast.Atom)
	if !ok || atom.Kind != ast.AtomIdent {
		return "", false
	}
	return atom.Text, true
}
