package ast

import (
	"strings"

	"sanskriti/interpreter-go/pkg/runtime"
)

// The String forms below are the parse-inspection output: a Lisp-style
// rendering with the operator first and children space-separated.

func (a *Atom) String() string {
	switch a.Kind {
	case AtomNumber:
		return runtime.FormatNumber(a.Number)
	case AtomString:
		return a.Text
	case AtomBool:
		if a.Bool {
			return "true"
		}
		return "false"
	case AtomNil:
		return "nil"
	case AtomIdent:
		return a.Text
	case AtomThis:
		return "this"
	case AtomSuper:
		return "super"
	default:
		return "atom?"
	}
}

func (c *Cons) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(c.Op.String())
	for _, child := range c.Children {
		b.WriteByte(' ')
		b.WriteString(child.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (i *If) String() string {
	var b strings.Builder
	b.WriteString("(if ")
	b.WriteString(i.Condition.String())
	b.WriteByte(' ')
	b.WriteString(i.Yes.String())
	if i.No != nil {
		b.WriteString(" else ")
		b.WriteString(i.No.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (f *Fun) String() string {
	var b strings.Builder
	b.WriteString("(fun ")
	b.WriteString(f.Name)
	b.WriteString(" (")
	b.WriteString(strings.Join(f.Params, " "))
	b.WriteString(") ")
	b.WriteString(f.Body.String())
	b.WriteByte(')')
	return b.String()
}

func (c *Call) String() string {
	var b strings.Builder
	b.WriteString("(call ")
	b.WriteString(c.Callee.String())
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}
