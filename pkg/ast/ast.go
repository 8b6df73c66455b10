// Package ast defines the TokenTree syntax tree shared by the parser and
// the interpreter. Trees are built once and never mutated afterwards:
// nodes own their children outright and carry no back-edges.
package ast

import "strconv"

// Op names an operator applied by a Cons node. The statement forms (var,
// print, while, group) reuse the same shape as the expression operators.
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpStar
	OpSlash
	OpBang
	OpAssign
	OpEqualEqual
	OpBangEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpAnd
	OpOr
	OpGroup
	OpVar
	OpPrint
	OpWhile
)

var opNames = map[Op]string{
	OpPlus:         "+",
	OpMinus:        "-",
	OpStar:         "*",
	OpSlash:        "/",
	OpBang:         "!",
	OpAssign:       "=",
	OpEqualEqual:   "==",
	OpBangEqual:    "!=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpAnd:          "and",
	OpOr:           "or",
	OpGroup:        "group",
	OpVar:          "var",
	OpPrint:        "print",
	OpWhile:        "while",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "op_" + strconv.Itoa(int(op))
}

// TokenTree is a node of the syntax tree.
type TokenTree interface {
	tree()
	String() string
}

// AtomKind selects the terminal variant an Atom carries.
type AtomKind int

const (
	AtomNumber AtomKind = iota
	AtomString
	AtomBool
	AtomNil
	AtomIdent
	AtomThis
	AtomSuper
)

// Atom is a terminal node: a literal, an identifier, or one of the
// reserved this/super markers.
type Atom struct {
	Kind   AtomKind
	Number float64
	Text   string // string literal text or identifier name
	Bool   bool
}

// Cons is an n-ary operator application. Children arity follows the
// operator's shape; the evaluator treats any other arity as a non-match.
type Cons struct {
	Op       Op
	Children []TokenTree
}

// If is a conditional statement with an optional else branch (No is nil
// when absent).
type If struct {
	Condition TokenTree
	Yes       TokenTree
	No        TokenTree
}

// Fun is a function declaration. It is parsed for shape only; the
// evaluator does not execute functions.
type Fun struct {
	Name   string
	Params []string
	Body   TokenTree
}

// Call is a call expression. Parsed for shape only, like Fun.
type Call struct {
	Callee TokenTree
	Args   []TokenTree
}

func (*Atom) tree() {}
func (*Cons) tree() {}
func (*If) tree()   {}
func (*Fun) tree()  {}
func (*Call) tree() {}

// Helpers used where the parser builds terminals.

func NumberAtom(n float64) *Atom  { return &Atom{Kind: AtomNumber, Number: n} }
func StringAtom(s string) *Atom   { return &Atom{Kind: AtomString, Text: s} }
func BoolAtom(b bool) *Atom       { return &Atom{Kind: AtomBool, Bool: b} }
func NilAtom() *Atom              { return &Atom{Kind: AtomNil} }
func IdentAtom(name string) *Atom { return &Atom{Kind: AtomIdent, Text: name} }
