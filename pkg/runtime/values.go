package runtime

import (
	"math"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown_kind_" + strconv.Itoa(int(k))
	}
}

// Value is the shared behaviour for all runtime values. Values are plain
// data; accessing one never aliases mutable state held elsewhere.
type Value interface {
	Kind() Kind
	// Display renders the value the way print writes it.
	Display() string
	// Truthy reports whether the value counts as true in a condition.
	// Only nil and false are falsy.
	Truthy() bool
}

// NilValue is the absent value.
type NilValue struct{}

func (NilValue) Kind() Kind      { return KindNil }
func (NilValue) Display() string { return "nil" }
func (NilValue) Truthy() bool    { return false }

// NumberValue holds a double-precision number.
type NumberValue struct {
	Val float64
}

func (NumberValue) Kind() Kind   { return KindNumber }
func (NumberValue) Truthy() bool { return true }

func (n NumberValue) Display() string {
	return FormatNumber(n.Val)
}

// BoolValue holds a boolean.
type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

func (b BoolValue) Display() string {
	if b.Val {
		return "true"
	}
	return "false"
}

func (b BoolValue) Truthy() bool { return b.Val }

// StringValue holds immutable text.
type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind        { return KindString }
func (s StringValue) Display() string { return s.Val }
func (StringValue) Truthy() bool      { return true }

// FormatNumber renders a number the way the language displays it: integral
// values gain a trailing .0 (1 becomes "1.0"), everything else prints in
// the shortest decimal form without an exponent. The tokenizer reuses this
// for NUMBER literal columns.
func FormatNumber(f float64) string {
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) {
		return text + ".0"
	}
	return text
}

// Equal compares two values: same-kind pairs compare by value, cross-kind
// pairs are never equal.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NilValue:
		return true
	case NumberValue:
		return av.Val == b.(NumberValue).Val
	case BoolValue:
		return av.Val == b.(BoolValue).Val
	case StringValue:
		return av.Val == b.(StringValue).Val
	default:
		return false
	}
}
