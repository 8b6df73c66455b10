package interpreter

import (
	"sanskriti/interpreter-go/pkg/ast"
	"sanskriti/interpreter-go/pkg/runtime"
)

// binaryRule pairs a numeric operation with the value produced whenever
// either operand is not a number. Keeping the mismatch result in a table
// (rather than scattered nil checks) lets tests enumerate every
// mismatched-type pairing against one rule set.
type binaryRule struct {
	apply    func(a, b float64) runtime.Value
	mismatch runtime.Value
}

var binaryRules = map[ast.Op]binaryRule{
	ast.OpMinus: {
		apply:    func(a, b float64) runtime.Value { return runtime.NumberValue{Val: a - b} },
		mismatch: runtime.NilValue{},
	},
	ast.OpStar: {
		apply:    func(a, b float64) runtime.Value { return runtime.NumberValue{Val: a * b} },
		mismatch: runtime.NilValue{},
	},
	ast.OpSlash: {
		// Dividing by exactly zero yields nil, not an IEEE infinity.
		apply: func(a, b float64) runtime.Value {
			if b == 0 {
				return runtime.NilValue{}
			}
			return runtime.NumberValue{Val: a / b}
		},
		mismatch: runtime.NilValue{},
	},
	ast.OpLess: {
		apply:    func(a, b float64) runtime.Value { return runtime.BoolValue{Val: a < b} },
		mismatch: runtime.BoolValue{},
	},
	ast.OpLessEqual: {
		apply:    func(a, b float64) runtime.Value { return runtime.BoolValue{Val: a <= b} },
		mismatch: runtime.BoolValue{},
	},
	ast.OpGreater: {
		apply:    func(a, b float64) runtime.Value { return runtime.BoolValue{Val: a > b} },
		mismatch: runtime.BoolValue{},
	},
	ast.OpGreaterEqual: {
		apply:    func(a, b float64) runtime.Value { return runtime.BoolValue{Val: a >= b} },
		mismatch: runtime.BoolValue{},
	},
}

// Eval evaluates an expression node to a runtime value. Statement-shaped
// nodes, the unexecuted Fun/Call forms, and operator applications with the
// wrong arity all evaluate to nil.
func (i *Interpreter) Eval(node ast.TokenTree) runtime.Value {
	switch n := node.(type) {
	case *ast.Atom:
		return i.evalAtom(n)
	case *ast.Cons:
		return i.evalCons(n)
	default:
		// *ast.If in expression position, *ast.Fun, *ast.Call.
		return runtime.NilValue{}
	}
}

func (i *Interpreter) evalAtom(a *ast.Atom) runtime.Value {
	switch a.Kind {
	case ast.AtomNumber:
		return runtime.NumberValue{Val: a.Number}
	case ast.AtomString:
		return runtime.StringValue{Val: a.Text}
	case ast.AtomBool:
		return runtime.BoolValue{Val: a.Bool}
	case ast.AtomIdent:
		return i.env.Get(a.Text)
	default:
		// nil, and the unsupported this/super markers.
		return runtime.NilValue{}
	}
}

func (i *Interpreter) evalCons(n *ast.Cons) runtime.Value {
	switch n.Op {
	case ast.OpGroup:
		if len(n.Children) == 0 {
			return runtime.NilValue{}
		}
		return i.Eval(n.Children[0])

	case ast.OpMinus:
		if len(n.Children) == 1 {
			if num, ok := i.Eval(n.Children[0]).(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: -num.Val}
			}
			return runtime.NilValue{}
		}

	case ast.OpBang:
		if len(n.Children) == 1 {
			return runtime.BoolValue{Val: !i.Eval(n.Children[0]).Truthy()}
		}
		return runtime.NilValue{}

	case ast.OpAssign:
		if len(n.Children) == 2 {
			if name, ok := identName(n.Children[0]); ok {
				value := i.Eval(n.Children[1])
				i.env.Assign(name, value)
				return value
			}
		}
		return runtime.NilValue{}

	case ast.OpPlus:
		if len(n.Children) == 2 {
			return addValues(i.Eval(n.Children[0]), i.Eval(n.Children[1]))
		}
		return runtime.NilValue{}

	case ast.OpEqualEqual:
		if len(n.Children) == 2 {
			return runtime.BoolValue{Val: runtime.Equal(i.Eval(n.Children[0]), i.Eval(n.Children[1]))}
		}
		return runtime.NilValue{}

	case ast.OpBangEqual:
		// Delegates to the equality rule and negates.
		if len(n.Children) == 2 {
			equal := i.evalCons(&ast.Cons{Op: ast.OpEqualEqual, Children: n.Children})
			if b, ok := equal.(runtime.BoolValue); ok {
				return runtime.BoolValue{Val: !b.Val}
			}
			return runtime.BoolValue{}
		}
		return runtime.NilValue{}

	case ast.OpAnd:
		if len(n.Children) == 2 {
			left := i.Eval(n.Children[0])
			if !left.Truthy() {
				return left
			}
			return i.Eval(n.Children[1])
		}
		return runtime.NilValue{}

	case ast.OpOr:
		if len(n.Children) == 2 {
			left := i.Eval(n.Children[0])
			if left.Truthy() {
				return left
			}
			return i.Eval(n.Children[1])
		}
		return runtime.NilValue{}
	}

	if rule, ok := binaryRules[n.Op]; ok && len(n.Children) == 2 {
		left := i.Eval(n.Children[0])
		right := i.Eval(n.Children[1])
		a, aok := left.(runtime.NumberValue)
		b, bok := right.(runtime.NumberValue)
		if aok && bok {
			return rule.apply(a.Val, b.Val)
		}
		return rule.mismatch
	}

	// Statement forms in expression position, unknown operators,
	// malformed arity: all degrade to nil.
	return runtime.NilValue{}
}

// addValues implements +: numeric addition for two numbers, string
// concatenation when either side is a string (the other side coerced via
// its display form), nil otherwise.
func addValues(left, right runtime.Value) runtime.Value {
	if a, ok := left.(runtime.NumberValue); ok {
		if b, ok := right.(runtime.NumberValue); ok {
			return runtime.NumberValue{Val: a.Val + b.Val}
		}
	}
	if _, ok := left.(runtime.StringValue); ok {
		return runtime.StringValue{Val: left.Display() + right.Display()}
	}
	if _, ok := right.(runtime.StringValue); ok {
		return runtime.StringValue{Val: left.Display() + right.Display()}
	}
	return runtime.NilValue{}
}
