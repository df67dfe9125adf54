// File: parser.go
// Title: minipy Recursive Descent Parser
// Description: Produces a lazy stream of top-level statements from a token
//              cursor. Block structure follows the indentation tokens and
//              every failure aborts the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser implementation

// Package parser implements the recursive descent parser for minipy.
package parser

import (
	"errors"
	"fmt"
	"io"
	"iter"

	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/foundation/minipy/ast"
	"github.com/msto63/minipy/foundation/minipy/cursor"
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Parser turns tokens into statements
type Parser struct {
	tokens *cursor.Cursor[lexer.Token]
	logger *mdwlog.Logger

	// depth is the reference indentation of the innermost open block
	depth int

	statements int
	err        error
}

// New creates a parser reading from tokens
func New(tokens *cursor.Cursor[lexer.Token], opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		tokens: tokens,
		logger: opts.Logger.WithField("component", "parser"),
	}
}

// Next parses the next top-level statement. It returns io.EOF once the
// tokens are exhausted and keeps returning the first failure after an error.
func (p *Parser) Next() (ast.Node, error) {
	if p.err != nil {
		return nil, p.err
	}

	node, err := p.statement(block{module: true})
	if err == nil && node == nil {
		err = io.EOF
	}
	if err != nil {
		p.err = err
		if !errors.Is(err, io.EOF) {
			p.logger.WarnWithErr("parsing failed", err, mdwlog.Fields{
				"statements": p.statements,
			})
		}
		return nil, err
	}

	p.statements++
	p.logger.Debug("statement parsed", mdwlog.Fields{
		"statement": p.statements,
		"node":      fmt.Sprintf("%T", node),
	})
	return node, nil
}

// All yields top-level statements on demand. A failure is yielded once as
// the final pair. The sequence is single-pass.
func (p *Parser) All() iter.Seq2[ast.Node, error] {
	return func(yield func(ast.Node, error) bool) {
		for {
			node, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(node, err) || err != nil {
				return
			}
		}
	}
}

// Collect parses every remaining statement
func (p *Parser) Collect() ([]ast.Node, error) {
	var nodes []ast.Node
	for node, err := range p.All() {
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Statements returns how many top-level statements have been produced
func (p *Parser) Statements() int {
	return p.statements
}

// take reads the next token. Running into the end of a token cursor that
// stopped on a lexer failure reports that failure instead.
func (p *Parser) take() (lexer.Token, error) {
	tok := p.tokens.Take()
	if tok == (lexer.None{}) {
		if err := p.tokens.Err(); err != nil {
			return tok, err
		}
	}
	return tok, nil
}

// drop un-takes the token just taken
func (p *Parser) drop() error {
	return p.tokens.Drop(1)
}

// expect takes the next token and fails unless it equals want
func (p *Parser) expect(want lexer.Token) error {
	tok, err := p.take()
	if err != nil {
		return err
	}
	if tok != want {
		return p.unexpected(quote(want), tok)
	}
	return nil
}

func (p *Parser) expectName() (*ast.Name, error) {
	tok, err := p.take()
	if err != nil {
		return nil, err
	}

	name, ok := tok.(lexer.Name)
	if !ok {
		return nil, p.unexpected("a name", tok)
	}
	return ast.NewName(name.Value), nil
}

// isLineEnd reports tokens that end the current line: indentation,
// comments and the end of input
func isLineEnd(tok lexer.Token) bool {
	switch tok.(type) {
	case lexer.Indent, lexer.Comment, lexer.None:
		return true
	}
	return false
}

func isEnd(tok lexer.Token) bool {
	return tok == lexer.None{}
}
