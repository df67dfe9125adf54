// File: expressions.go
// Title: minipy Expression Resolver
// Description: Resolves operands, prefix operators, calls and infix
//              operators. Infix chains associate to the right.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial expression resolver

package parser

import (
	"github.com/msto63/minipy/foundation/minipy/ast"
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

// terminator reports whether a token ends the expression being resolved.
// The end of a line always does.
type terminator func(lexer.Token) bool

func stopAt(tokens ...lexer.Token) terminator {
	return func(tok lexer.Token) bool {
		for _, t := range tokens {
			if tok == t {
				return true
			}
		}
		return false
	}
}

func noStop(lexer.Token) bool { return false }

// moduleStop ends module-level expression statements at a statement keyword
func moduleStop(tok lexer.Token) bool {
	keyword, ok := tok.(lexer.Keyword)
	return ok && !binaryKeywords[keyword] && keyword != lexer.KeywordNot
}

// binaryKeywords are the words resolved as infix operators
var binaryKeywords = map[lexer.Keyword]bool{
	lexer.KeywordAnd: true,
	lexer.KeywordOr:  true,
	lexer.KeywordIn:  true,
	lexer.KeywordAs:  true,
}

func isBinaryOperator(tok lexer.Token) bool {
	switch t := tok.(type) {
	case lexer.Symbol:
		return lexer.BinaryOperators[t] || t == lexer.Dot
	case lexer.Keyword:
		return binaryKeywords[t]
	}
	return false
}

// isPrefix reports whether operand is a bare prefix operator still waiting
// for the operand it applies to
func isPrefix(operand ast.Expr) bool {
	atom, ok := operand.(*ast.Atom)
	if !ok {
		return false
	}

	switch t := atom.Token.(type) {
	case lexer.Symbol:
		return lexer.UnaryOperators[t]
	case lexer.Keyword:
		return t == lexer.KeywordNot
	}
	return false
}

// expression parses the operand starting at first and resolves what follows
func (p *Parser) expression(first lexer.Token, stop terminator) (ast.Expr, error) {
	left, err := p.operand(first)
	if err != nil {
		return nil, err
	}
	return p.resolve(left, stop)
}

// operand converts a single token into an operand. An opening parenthesis
// in operand position groups a nested expression.
func (p *Parser) operand(tok lexer.Token) (ast.Expr, error) {
	switch t := tok.(type) {
	case lexer.None, lexer.Indent, lexer.Comment:
		return nil, p.unexpected("an expression", tok)
	case lexer.Name:
		return ast.NewName(t.Value), nil
	case lexer.Literal:
		return &ast.Literal{Value: t}, nil
	}

	if tok == lexer.LeftParenthesis {
		return p.group()
	}
	return &ast.Atom{Token: tok}, nil
}

func (p *Parser) group() (ast.Expr, error) {
	first, err := p.take()
	if err != nil {
		return nil, err
	}

	inner, err := p.expression(first, stopAt(lexer.RightParenthesis))
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RightParenthesis); err != nil {
		return nil, err
	}
	return inner, nil
}

// resolve reads the token after left. Prefix operators and calls become the
// new left operand, and a prefix operator covers any calls on its operand. A
// binary operator takes the recursively resolved remainder as its right
// operand.
func (p *Parser) resolve(left ast.Expr, stop terminator) (ast.Expr, error) {
	for {
		tok, err := p.take()
		if err != nil {
			return nil, err
		}

		if isEnd(tok) {
			return left, nil
		}
		if isLineEnd(tok) || stop(tok) {
			if err := p.drop(); err != nil {
				return nil, err
			}
			return left, nil
		}

		switch {
		case isPrefix(left):
			operand, err := p.operand(tok)
			if err != nil {
				return nil, err
			}
			if operand, err = p.calls(operand); err != nil {
				return nil, err
			}
			left = &ast.UnaryOperation{Operator: left.(*ast.Atom).Token, Operand: operand}

		case tok == lexer.LeftParenthesis:
			call, err := p.call(left)
			if err != nil {
				return nil, err
			}
			left = call

		case isBinaryOperator(tok):
			next, err := p.take()
			if err != nil {
				return nil, err
			}
			right, err := p.expression(next, stop)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryOperation{Operator: tok, Left: left, Right: right}, nil

		default:
			return nil, p.unexpectedOperator(tok)
		}
	}
}

// calls applies the argument lists that directly follow head, so a prefix
// operator covers the whole call.
func (p *Parser) calls(head ast.Expr) (ast.Expr, error) {
	for {
		tok, err := p.take()
		if err != nil {
			return nil, err
		}
		if tok != lexer.LeftParenthesis {
			if isEnd(tok) {
				return head, nil
			}
			return head, p.drop()
		}
		if head, err = p.call(head); err != nil {
			return nil, err
		}
	}
}

// call parses the argument list after an opening parenthesis
func (p *Parser) call(head ast.Expr) (*ast.Call, error) {
	call := &ast.Call{Head: head}

	for {
		tok, err := p.take()
		if err != nil {
			return nil, err
		}
		if tok == lexer.RightParenthesis {
			return call, nil
		}

		arg, err := p.expression(tok, stopAt(lexer.Comma, lexer.RightParenthesis))
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		separator, err := p.take()
		if err != nil {
			return nil, err
		}
		switch separator {
		case lexer.RightParenthesis:
			return call, nil
		case lexer.Comma:
			continue
		default:
			return nil, p.unexpected("',' or ')'", separator)
		}
	}
}
