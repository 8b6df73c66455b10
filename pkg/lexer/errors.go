package lexer

import "fmt"

// UnexpectedCharacterError reports a character that begins no valid token.
// Scanning continues after the offending character.
type UnexpectedCharacterError struct {
	Line int
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("[line %d] Error: Unexpected character: %c", e.Line, e.Char)
}

// UnterminatedStringError reports an end of input inside a string literal.
// Line is the line on which scanning halted.
type UnterminatedStringError struct {
	Line int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("[line %d] Error: Unterminated string.", e.Line)
}
