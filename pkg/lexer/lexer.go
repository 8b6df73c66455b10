package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer scans source text into a lazy token stream. Each call to Next
// yields one token or one lexical error; errors are non-fatal and later
// tokens remain reachable. A Lexer is single-use: restart by constructing
// a new one.
type Lexer struct {
	src  string
	pos  int
	line int
	done bool
}

// New constructs a lexer over already-translated source text.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Next returns the next token. At end of input it returns the EOF token
// once and every call thereafter. A non-nil error is either an
// *UnexpectedCharacterError or an *UnterminatedStringError; the zero Token
// accompanies it.
func (l *Lexer) Next() (Token, error) {
	l.skipBlanks()
	if l.pos >= len(l.src) {
		l.done = true
		return Token{Kind: EOF, Line: l.line}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	l.pos++

	kind, ok := l.scanOperator(c)
	if ok {
		return l.emit(kind, start), nil
	}

	switch {
	case c == '"':
		return l.scanString(start)
	case isDigit(c):
		return l.scanNumber(start)
	case isAlpha(c):
		return l.scanIdentifier(start), nil
	}

	// Re-decode so multi-byte runes report as one character.
	r, size := utf8.DecodeRuneInString(l.src[start:])
	l.pos = start + size
	return Token{}, &UnexpectedCharacterError{Line: l.line, Char: r}
}

// Done reports whether the EOF token has been produced.
func (l *Lexer) Done() bool {
	return l.done
}

func (l *Lexer) emit(kind TokenKind, start int) Token {
	return Token{Kind: kind, Lexeme: l.src[start:l.pos], Line: l.line}
}

func (l *Lexer) skipBlanks() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.line++
			l.pos++
		case '/':
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
				if end := strings.IndexByte(l.src[l.pos:], '\n'); end >= 0 {
					l.pos += end
				} else {
					l.pos = len(l.src)
				}
				continue
			}
			return
		default:
			return
		}
	}
}

// scanOperator covers punctuation and one/two-character operators. The
// byte at pos-1 has already been consumed.
func (l *Lexer) scanOperator(c byte) (TokenKind, bool) {
	switch c {
	case '(':
		return LeftParen, true
	case ')':
		return RightParen, true
	case '{':
		return LeftBrace, true
	case '}':
		return RightBrace, true
	case ',':
		return Comma, true
	case '.':
		return Dot, true
	case '-':
		return Minus, true
	case '+':
		return Plus, true
	case ';':
		return Semicolon, true
	case '*':
		return Star, true
	case '/':
		return Slash, true
	case '!':
		if l.match('=') {
			return BangEqual, true
		}
		return Bang, true
	case '=':
		if l.match('=') {
			return EqualEqual, true
		}
		return Equal, true
	case '<':
		if l.match('=') {
			return LessEqual, true
		}
		return Less, true
	case '>':
		if l.match('=') {
			return GreaterEqual, true
		}
		return Greater, true
	}
	return 0, false
}

func (l *Lexer) match(expected byte) bool {
	if l.pos < len(l.src) && l.src[l.pos] == expected {
		l.pos++
		return true
	}
	return false
}

// scanString consumes up to the closing quote. Literals may span lines; an
// unterminated literal reports the line scanning halted on.
func (l *Lexer) scanString(start int) (Token, error) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		if c == '\n' {
			l.line++
			continue
		}
		if c == '"' {
			tok := l.emit(String, start)
			tok.Text = tok.Lexeme[1 : len(tok.Lexeme)-1]
			return tok, nil
		}
	}
	return Token{}, &UnterminatedStringError{Line: l.line}
}

func (l *Lexer) scanNumber(start int) (Token, error) {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	tok := l.emit(Number, start)
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		// Digits plus at most one interior dot always parse.
		return Token{}, &UnexpectedCharacterError{Line: l.line, Char: rune(l.src[start])}
	}
	tok.Number = value
	return tok, nil
}

func (l *Lexer) scanIdentifier(start int) Token {
	for l.pos < len(l.src) && isAlphaNumeric(l.src[l.pos]) {
		l.pos++
	}
	tok := l.emit(Identifier, start)
	if kind, ok := keywords[tok.Lexeme]; ok {
		tok.Kind = kind
	}
	return tok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
