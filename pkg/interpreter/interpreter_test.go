package interpreter

import (
	"bytes"
	"testing"

	"sanskriti/interpreter-go/pkg/ast"
	"sanskriti/interpreter-go/pkg/parser"
	"sanskriti/interpreter-go/pkg/runtime"
)

// runSource parses and executes canonical-keyword source, returning what
// the program printed.
func runSource(t *testing.T, src string) string {
	t.Helper()
	program, err := parser.New(src).ParseProgram()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var out bytes.Buffer
	NewWithOutput(&out).Run(program)
	return out.String()
}

// evalSource evaluates a single expression with an empty environment.
func evalSource(t *testing.T, src string) runtime.Value {
	t.Helper()
	expr, err := parser.New(src).ParseExpression()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return NewWithOutput(&bytes.Buffer{}).Eval(expr)
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"while loop counts",
			"var x = 1; while (x < 4) { print x; x = x + 1; }",
			"1.0\n2.0\n3.0\n",
		},
		{"string number concat", `print "a" + 1;`, "a1.0\n"},
		{"nil not equal false", "print nil == false;", "false\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runSource(t, tc.src); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStatementSemantics(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"program order", "print 1; print 2;", "1.0\n2.0\n"},
		{"block runs children in order", "{ print 1; { print 2; } }", "1.0\n2.0\n"},
		{"var overwrites prior binding", "var x = 1; var x = 2; print x;", "2.0\n"},
		{"var without initializer binds nil", "var x; print x;", "nil\n"},
		{"blocks share the flat namespace", "var x = 1; { var x = 2; } print x;", "2.0\n"},
		{"if truthy", "if (0) print 1;", "1.0\n"},
		{"if falsy without else", "if (nil) print 1;", ""},
		{"if falsy with else", "if (false) print 1; else print 2;", "2.0\n"},
		{"empty string is truthy", `if ("") print 1;`, "1.0\n"},
		{"while never entered", "while (false) print 1;", ""},
		{"expression statement discards value", "1 + 2; print 3;", "3.0\n"},
		{"assignment creates unbound name", "x = 5; print x;", "5.0\n"},
		{"assignment is an expression", "var x; print x = 2;", "2.0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runSource(t, tc.src); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWhileExecutesBodyPerTruthyCheck(t *testing.T) {
	got := runSource(t, "var n = 0; while (n < 5) n = n + 1; print n;")
	if got != "5.0\n" {
		t.Errorf("got %q", got)
	}
}

func TestShortCircuit(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"and skips right when left falsy",
			"var hit = false; false and (hit = true); print hit;",
			"false\n",
		},
		{
			"or skips right when left truthy",
			"var hit = false; true or (hit = true); print hit;",
			"false\n",
		},
		{
			"and evaluates right when left truthy",
			"var hit = false; true and (hit = true); print hit;",
			"true\n",
		},
		{
			"or evaluates right when left falsy",
			"var hit = false; nil or (hit = true); print hit;",
			"true\n",
		},
		// The result is an operand value, not a coerced boolean.
		{"and returns left operand", "print nil and 1;", "nil\n"},
		{"and returns right operand", `print 1 and "x";`, "x\n"},
		{"or returns left operand", "print 2 or 1;", "2.0\n"},
		{"or returns right operand", "print false or nil;", "nil\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runSource(t, tc.src); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"print 1 + 2;", "3.0\n"},
		{"print 5 - 3;", "2.0\n"},
		{"print 4 * 2.5;", "10.0\n"},
		{"print 7 / 2;", "3.5\n"},
		{"print -(3);", "-3.0\n"},
		{"print -(-3);", "3.0\n"},
		{`print "foo" + "bar";`, "foobar\n"},
		{`print 1 + "a";`, "1.0a\n"},
		{`print "v=" + true;`, "v=true\n"},
		{`print "n:" + nil;`, "n:nil\n"},
	}
	for _, tc := range cases {
		if got := runSource(t, tc.src); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestDivisionByZeroYieldsNil(t *testing.T) {
	for _, src := range []string{"1 / 0", "0 / 0", "-5 / 0", "1 / (2 - 2)", "1 / 0.0"} {
		if got := evalSource(t, src); got.Kind() != runtime.KindNil {
			t.Errorf("%s: got %#v, want nil", src, got)
		}
	}
	if got := evalSource(t, "0 / 1"); !runtime.Equal(got, runtime.NumberValue{Val: 0}) {
		t.Errorf("0 / 1: got %#v", got)
	}
}

// Every mismatched-type operand pairing degrades per the rule table:
// nil for arithmetic, false for comparisons. No pairing panics.
func TestMismatchedOperandFallbacks(t *testing.T) {
	operands := []string{"nil", "true", "false", `"s"`, "1"}
	arithmetic := []string{"-", "*", "/"}
	comparison := []string{"<", "<=", ">", ">="}

	isNumber := func(s string) bool { return s == "1" }
	for _, left := range operands {
		for _, right := range operands {
			if isNumber(left) && isNumber(right) {
				continue
			}
			for _, op := range arithmetic {
				src := left + " " + op + " " + right
				if got := evalSource(t, src); got.Kind() != runtime.KindNil {
					t.Errorf("%s: got %#v, want nil", src, got)
				}
			}
			for _, op := range comparison {
				src := left + " " + op + " " + right
				if got := evalSource(t, src); !runtime.Equal(got, runtime.BoolValue{}) {
					t.Errorf("%s: got %#v, want false", src, got)
				}
			}
		}
	}
}

func TestPlusFallback(t *testing.T) {
	// Without a string operand, + on mismatched types yields nil.
	for _, src := range []string{"1 + nil", "true + 1", "nil + false", "true + true"} {
		if got := evalSource(t, src); got.Kind() != runtime.KindNil {
			t.Errorf("%s: got %#v, want nil", src, got)
		}
	}
}

func TestUnaryFallbacks(t *testing.T) {
	for _, src := range []string{"-nil", "-true", `-"s"`} {
		if got := evalSource(t, src); got.Kind() != runtime.KindNil {
			t.Errorf("%s: got %#v, want nil", src, got)
		}
	}
	cases := []struct {
		src  string
		want bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false},
		{`!""`, false},
	}
	for _, tc := range cases {
		if got := evalSource(t, tc.src); !runtime.Equal(got, runtime.BoolValue{Val: tc.want}) {
			t.Errorf("%s: got %#v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestEquality(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"1 == 1", true},
		{"1 == 2", false},
		{`"a" == "a"`, true},
		{"nil == nil", true},
		{"true == true", true},
		{"nil == false", false},
		{"0 == false", false},
		{`"" == nil`, false},
		{`1 == "1"`, false},
		{"1 != 2", true},
		{"nil != false", true},
		{`"a" != "a"`, false},
	}
	for _, tc := range cases {
		if got := evalSource(t, tc.src); !runtime.Equal(got, runtime.BoolValue{Val: tc.want}) {
			t.Errorf("%s: got %#v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestUnboundIdentifierEvaluatesToNil(t *testing.T) {
	if got := runSource(t, "print missing;"); got != "nil\n" {
		t.Errorf("got %q", got)
	}
}

func TestGroupingEvaluatesChild(t *testing.T) {
	if got := evalSource(t, "(1 + 2)"); !runtime.Equal(got, runtime.NumberValue{Val: 3}) {
		t.Errorf("got %#v", got)
	}
	// Defensive default for an empty group, which the parser never emits
	// as an expression.
	interp := NewWithOutput(&bytes.Buffer{})
	empty := &ast.Cons{Op: ast.OpGroup}
	if got := interp.Eval(empty); got.Kind() != runtime.KindNil {
		t.Errorf("empty group: got %#v", got)
	}
}

func TestThisAndSuperEvaluateToNil(t *testing.T) {
	for _, src := range []string{"this", "super"} {
		if got := evalSource(t, src); got.Kind() != runtime.KindNil {
			t.Errorf("%s: got %#v", src, got)
		}
	}
}

// Fun declarations and calls are parsed but not executed: declaring runs
// nothing, calling yields nil.
func TestFunctionsAreUnevaluated(t *testing.T) {
	if got := runSource(t, "fun f() { print 1; } print 2;"); got != "2.0\n" {
		t.Errorf("declaration: got %q", got)
	}
	if got := runSource(t, "fun f() { print 1; } f(); print f();"); got != "nil\n" {
		t.Errorf("call: got %q", got)
	}
}

// Malformed Cons arity is a non-match and evaluates to nil, never a panic.
func TestMalformedArityEvaluatesToNil(t *testing.T) {
	interp := NewWithOutput(&bytes.Buffer{})
	one := ast.TokenTree(ast.NumberAtom(1))
	nodes := []ast.TokenTree{
		&ast.Cons{Op: ast.OpPlus, Children: []ast.TokenTree{one}},
		&ast.Cons{Op: ast.OpStar, Children: []ast.TokenTree{one, one, one}},
		&ast.Cons{Op: ast.OpLess, Children: nil},
		&ast.Cons{Op: ast.OpAnd, Children: []ast.TokenTree{one}},
		&ast.Cons{Op: ast.OpAssign, Children: []ast.TokenTree{one}},
		&ast.Cons{Op: ast.OpAssign, Children: []ast.TokenTree{one, one}},
		&ast.Cons{Op: ast.OpVar, Children: nil},
	}
	for _, node := range nodes {
		if got := interp.Eval(node); got.Kind() != runtime.KindNil {
			t.Errorf("%s: got %#v, want nil", node, got)
		}
	}
}

func TestEnvInspection(t *testing.T) {
	program, err := parser.New("var x = 1; x = x + 1;").ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	interp := NewWithOutput(&bytes.Buffer{})
	interp.Run(program)
	if got := interp.Env().Get("x"); !runtime.Equal(got, runtime.NumberValue{Val: 2}) {
		t.Errorf("x = %#v", got)
	}
}
