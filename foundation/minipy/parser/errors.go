// File: errors.go
// Title: minipy Parser Errors
// Description: Sentinel errors and constructors for syntax failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser errors

package parser

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

var (
	// ErrUnexpectedToken is returned when a statement's fixed token
	// sequence is violated
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedOperator is returned when an operand is followed by a
	// token that is neither a terminator, a call nor a binary operator.
	// It also matches ErrUnexpectedToken.
	ErrUnexpectedOperator = fmt.Errorf("unexpected operator: %w", ErrUnexpectedToken)
)

func (p *Parser) unexpected(expected string, found lexer.Token) *mdwerror.Error {
	return mdwerror.Wrap(ErrUnexpectedToken, fmt.Sprintf("expecting %s, found %s", expected, quote(found))).
		WithCode(mdwerror.CodeUnexpectedToken).
		WithOperation("parser.Next").
		WithDetail("expected", expected).
		WithDetail("found", found.String()).
		WithDetail("offset", p.offset())
}

func (p *Parser) unexpectedOperator(found lexer.Token) *mdwerror.Error {
	return mdwerror.Wrap(ErrUnexpectedOperator, fmt.Sprintf("unexpected operator %s", quote(found))).
		WithCode(mdwerror.CodeUnexpectedOperator).
		WithOperation("parser.Next").
		WithDetail("found", found.String()).
		WithDetail("offset", p.offset())
}

// offset is the token index of the token just taken
func (p *Parser) offset() int {
	return p.tokens.Position() - 1
}

func quote(tok lexer.Token) string {
	switch tok.(type) {
	case lexer.Symbol, lexer.Keyword:
		return "'" + tok.String() + "'"
	default:
		return tok.String()
	}
}
