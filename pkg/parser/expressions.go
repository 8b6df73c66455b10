package parser

import (
	"sanskriti/interpreter-go/pkg/ast"
	"sanskriti/interpreter-go/pkg/lexer"
)

// Binary operator precedence, lowest binding power first. Assignment sits
// below all of these and is handled separately because it is
// right-associative and restricts its left side.
const (
	precOr = iota + 1
	precAnd
	precEquality
	precComparison
	precAdditive
	precMultiplicative
)

var binaryOps = map[lexer.TokenKind]struct {
	prec int
	op   ast.Op
}{
	lexer.Or:           {precOr, ast.OpOr},
	lexer.And:          {precAnd, ast.OpAnd},
	lexer.EqualEqual:   {precEquality, ast.OpEqualEqual},
	lexer.BangEqual:    {precEquality, ast.OpBangEqual},
	lexer.Less:         {precComparison, ast.OpLess},
	lexer.LessEqual:    {precComparison, ast.OpLessEqual},
	lexer.Greater:      {precComparison, ast.OpGreater},
	lexer.GreaterEqual: {precComparison, ast.OpGreaterEqual},
	lexer.Plus:         {precAdditive, ast.OpPlus},
	lexer.Minus:        {precAdditive, ast.OpMinus},
	lexer.Star:         {precMultiplicative, ast.OpStar},
	lexer.Slash:        {precMultiplicative, ast.OpSlash},
}

func (p *Parser) expression() (ast.TokenTree, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.TokenTree, error) {
	left, err := p.binary(0)
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.Equal {
		return left, nil
	}
	p.peeked = nil
	target, ok := left.(*ast.Atom)
	if !ok || target.Kind != ast.AtomIdent {
		return nil, errorAt(tok, "Invalid assignment target.")
	}
	// Right-associative: a = b = c assigns b first.
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	return &ast.Cons{Op: ast.OpAssign, Children: []ast.TokenTree{left, value}}, nil
}

// binary climbs the precedence table: it folds in every operator whose
// binding power is at least minPrec, recursing one level tighter for the
// right operand so all binary operators associate left.
func (p *Parser) binary(minPrec int) (ast.TokenTree, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		entry, ok := binaryOps[tok.Kind]
		if !ok || entry.prec < minPrec {
			return left, nil
		}
		p.peeked = nil
		right, err := p.binary(entry.prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Cons{Op: entry.op, Children: []ast.TokenTree{left, right}}
	}
}

func (p *Parser) unary() (ast.TokenTree, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	var op ast.Op
	switch tok.Kind {
	case lexer.Minus:
		op = ast.OpMinus
	case lexer.Bang:
		op = ast.OpBang
	default:
		return p.call()
	}
	p.peeked = nil
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Cons{Op: op, Children: []ast.TokenTree{operand}}, nil
}

// call parses a primary followed by any number of argument lists, so
// f(1)(2) nests Call nodes.
func (p *Parser) call() (ast.TokenTree, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		open, err := p.match(lexer.LeftParen)
		if err != nil {
			return nil, err
		}
		if !open {
			return expr, nil
		}
		var args []ast.TokenTree
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != lexer.RightParen {
			for {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				more, err := p.match(lexer.Comma)
				if err != nil {
					return nil, err
				}
				if !more {
					break
				}
			}
		}
		if _, err := p.expect(lexer.RightParen, "Expect ')' after arguments."); err != nil {
			return nil, err
		}
		expr = &ast.Call{Callee: expr, Args: args}
	}
}

func (p *Parser) primary() (ast.TokenTree, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case lexer.Number:
		return ast.NumberAtom(tok.Number), nil
	case lexer.String:
		return ast.StringAtom(tok.Text), nil
	case lexer.True:
		return ast.BoolAtom(true), nil
	case lexer.False:
		return ast.BoolAtom(false), nil
	case lexer.Nil:
		return ast.NilAtom(), nil
	case lexer.Identifier:
		return ast.IdentAtom(tok.Lexeme), nil
	case lexer.This:
		return &ast.Atom{Kind: ast.AtomThis}, nil
	case lexer.Super:
		return &ast.Atom{Kind: ast.AtomSuper}, nil
	case lexer.LeftParen:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Cons{Op: ast.OpGroup, Children: []ast.TokenTree{inner}}, nil
	default:
		return nil, errorAt(tok, "Expect expression.")
	}
}
