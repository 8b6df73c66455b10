// Package parser builds TokenTree syntax trees from source text by
// recursive descent, with an explicit precedence table for binary
// operators. The first syntax error aborts the invocation; there is no
// recovery.
package parser

import (
	"fmt"

	"sanskriti/interpreter-go/pkg/ast"
	"sanskriti/interpreter-go/pkg/lexer"
)

// SyntaxError is a fatal parse failure. Where holds the offending lexeme,
// or "end" when input ran out.
type SyntaxError struct {
	Line    int
	Where   string
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Where == "end" {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Where, e.Message)
}

// Parser consumes the token stream of one source text. Single-use, like
// the lexer underneath it.
type Parser struct {
	lex    *lexer.Lexer
	peeked *lexer.Token
}

// New constructs a parser over already-translated source text.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// ParseExpression parses a single expression, the parse-inspection entry
// point.
func (p *Parser) ParseExpression() (ast.TokenTree, error) {
	return p.expression()
}

// ParseProgram parses a sequence of statements up to end of input, the
// execution entry point.
func (p *Parser) ParseProgram() ([]ast.TokenTree, error) {
	var stmts []ast.TokenTree
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			return stmts, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// token stream plumbing

func (p *Parser) next() (lexer.Token, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	return p.lex.Next()
}

func (p *Parser) peek() (lexer.Token, error) {
	if p.peeked == nil {
		tok, err := p.lex.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		p.peeked = &tok
	}
	return *p.peeked, nil
}

func (p *Parser) match(kind lexer.TokenKind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind != kind {
		return false, nil
	}
	p.peeked = nil
	return true, nil
}

func (p *Parser) expect(kind lexer.TokenKind, message string) (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return lexer.Token{}, err
	}
	if tok.Kind != kind {
		return lexer.Token{}, errorAt(tok, message)
	}
	return tok, nil
}

func errorAt(tok lexer.Token, message string) *SyntaxError {
	where := tok.Lexeme
	if tok.Kind == lexer.EOF {
		where = "end"
	}
	return &SyntaxError{Line: tok.Line, Where: where, Message: message}
}

// statements

func (p *Parser) statement() (ast.TokenTree, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lexer.Var:
		p.peeked = nil
		return p.varDeclaration()
	case lexer.Fun:
		p.peeked = nil
		return p.funDeclaration()
	case lexer.Print:
		p.peeked = nil
		return p.printStatement()
	case lexer.LeftBrace:
		p.peeked = nil
		return p.block()
	case lexer.If:
		p.peeked = nil
		return p.ifStatement()
	case lexer.While:
		p.peeked = nil
		return p.whileStatement()
	case lexer.For, lexer.Class, lexer.Return:
		return nil, errorAt(tok, fmt.Sprintf("Unsupported statement '%s'.", tok.Lexeme))
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) varDeclaration() (ast.TokenTree, error) {
	name, err := p.expect(lexer.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	initializer := ast.TokenTree(ast.NilAtom())
	assigned, err := p.match(lexer.Equal)
	if err != nil {
		return nil, err
	}
	if assigned {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Cons{Op: ast.OpVar, Children: []ast.TokenTree{ast.IdentAtom(name.Lexeme), initializer}}, nil
}

func (p *Parser) funDeclaration() (ast.TokenTree, error) {
	name, err := p.expect(lexer.Identifier, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	var params []string
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.RightParen {
		for {
			param, err := p.expect(lexer.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)
			more, err := p.match(lexer.Comma)
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LeftBrace, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Fun{Name: name.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) printStatement() (ast.TokenTree, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Cons{Op: ast.OpPrint, Children: []ast.TokenTree{value}}, nil
}

// block parses statements up to the closing brace. The opening brace has
// already been consumed.
func (p *Parser) block() (ast.TokenTree, error) {
	var stmts []ast.TokenTree
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.RightBrace {
			p.peeked = nil
			return &ast.Cons{Op: ast.OpGroup, Children: stmts}, nil
		}
		if tok.Kind == lexer.EOF {
			return nil, errorAt(tok, "Expect '}' after block.")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) ifStatement() (ast.TokenTree, error) {
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	yes, err := p.statement()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Condition: condition, Yes: yes}
	hasElse, err := p.match(lexer.Else)
	if err != nil {
		return nil, err
	}
	if hasElse {
		node.No, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *Parser) whileStatement() (ast.TokenTree, error) {
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.Cons{Op: ast.OpWhile, Children: []ast.TokenTree{condition, body}}, nil
}

func (p *Parser) expressionStatement() (ast.TokenTree, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return expr, nil
}
