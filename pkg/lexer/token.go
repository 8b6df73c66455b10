package lexer

import (
	"fmt"

	"sanskriti/interpreter-go/pkg/runtime"
)

// TokenKind classifies a lexeme.
type TokenKind int

const (
	// single-character tokens
	LeftParen TokenKind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one- or two-character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var kindNames = map[TokenKind]string{
	LeftParen:    "LEFT_PAREN",
	RightParen:   "RIGHT_PAREN",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Comma:        "COMMA",
	Dot:          "DOT",
	Minus:        "MINUS",
	Plus:         "PLUS",
	Semicolon:    "SEMICOLON",
	Slash:        "SLASH",
	Star:         "STAR",
	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Number:       "NUMBER",
	And:          "AND",
	Class:        "CLASS",
	Else:         "ELSE",
	False:        "FALSE",
	For:          "FOR",
	Fun:          "FUN",
	If:           "IF",
	Nil:          "NIL",
	Or:           "OR",
	Print:        "PRINT",
	Return:       "RETURN",
	Super:        "SUPER",
	This:         "THIS",
	True:         "TRUE",
	Var:          "VAR",
	While:        "WHILE",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", int(k))
}

var keywords = map[string]TokenKind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is one classified lexeme. Lexeme is the verbatim source slice.
// Number carries the decoded value for NUMBER tokens and Text the decoded
// (unquoted) value for STRING tokens.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Number float64
	Text   string
	Line   int
}

// String renders the token in `<KIND> <LEXEME> <LITERAL>` form, "null"
// standing in for tokens without a literal.
func (t Token) String() string {
	literal := "null"
	switch t.Kind {
	case Number:
		literal = runtime.FormatNumber(t.Number)
	case String:
		literal = t.Text
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, literal)
}
