// File: statements.go
// Title: minipy Statement Parsers
// Description: The shared statement loop used by the module level and by
//              indented bodies, plus the keyword-specific statement parsers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial statement parsers

package parser

import (
	"github.com/msto63/minipy/foundation/minipy/ast"
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

// block is the context of the statement loop
type block struct {
	depth  int
	module bool
}

// statement parses the next statement of b. It returns a nil node without
// error when the block ends, either at the end of input or at a lesser
// indentation, which is left for the enclosing block.
func (p *Parser) statement(b block) (ast.Node, error) {
	for {
		tok, err := p.take()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case lexer.None:
			return nil, nil
		case lexer.Indent:
			if !b.module && !t.Blank && t.Depth < b.depth {
				return nil, p.drop()
			}
			continue
		case lexer.Comment:
			return &ast.Comment{Text: t.Text}, nil
		case lexer.Name:
			return p.declaration(t)
		case lexer.Keyword:
			if parse, ok := p.keywordParser(t); ok {
				return parse()
			}
		}

		stop := noStop
		if b.module {
			stop = moduleStop
		}
		return p.expression(tok, stop)
	}
}

func (p *Parser) keywordParser(keyword lexer.Keyword) (func() (ast.Node, error), bool) {
	switch keyword {
	case lexer.KeywordDef:
		return node(p.def), true
	case lexer.KeywordClass:
		return node(p.class), true
	case lexer.KeywordImport:
		return node(p.importStatement), true
	case lexer.KeywordFrom:
		return node(p.from), true
	case lexer.KeywordReturn:
		return node(p.returnStatement), true
	case lexer.KeywordElse:
		return node(p.elseStatement), true
	case lexer.KeywordIf, lexer.KeywordElif, lexer.KeywordWhile, lexer.KeywordWith:
		return func() (ast.Node, error) { return p.conditional(keyword) }, true
	}
	return nil, false
}

// node adapts a typed statement parser to the statement loop
func node[T ast.Node](parse func() (T, error)) func() (ast.Node, error) {
	return func() (ast.Node, error) {
		n, err := parse()
		if err != nil {
			return nil, err
		}
		return n, nil
	}
}

// declaration handles a statement starting with a name: an optionally
// hinted assignment target, or the first operand of an expression.
func (p *Parser) declaration(tok lexer.Name) (ast.Node, error) {
	name := ast.NewName(tok.Value)

	next, err := p.take()
	if err != nil {
		return nil, err
	}

	if next == lexer.Colon {
		first, err := p.take()
		if err != nil {
			return nil, err
		}
		hint, err := p.expression(first, stopAt(lexer.Equal))
		if err != nil {
			return nil, err
		}
		name = name.WithHint(hint)

		if next, err = p.take(); err != nil {
			return nil, err
		}
	}

	if operator, ok := next.(lexer.Symbol); ok && lexer.AssignmentOperators[operator] {
		first, err := p.take()
		if err != nil {
			return nil, err
		}
		value, err := p.expression(first, noStop)
		if err != nil {
			return nil, err
		}
		return &ast.Set{Name: name, Operator: operator, Value: value}, nil
	}

	if err := p.drop(); err != nil {
		return nil, err
	}
	return p.resolve(name, noStop)
}

// body parses ':' followed by an indented block, or by a single statement
// on the same line
func (p *Parser) body() (*ast.Body, error) {
	if err := p.expect(lexer.Colon); err != nil {
		return nil, err
	}

	// comments between ':' and the first line belong to the body
	var leading []ast.Node
	tok, err := p.take()
	for err == nil && (isBlank(tok) || isComment(tok)) {
		if comment, ok := tok.(lexer.Comment); ok {
			leading = append(leading, &ast.Comment{Text: comment.Text})
		}
		tok, err = p.take()
	}
	if err != nil {
		return nil, err
	}

	indent, ok := tok.(lexer.Indent)
	if !ok {
		if isEnd(tok) {
			return nil, p.unexpected("an indented block", tok)
		}
		if err := p.drop(); err != nil {
			return nil, err
		}
		line, err := p.statement(block{depth: p.depth})
		if err != nil {
			return nil, err
		}
		return &ast.Body{Lines: append(leading, line)}, nil
	}

	if indent.Depth <= p.depth {
		return nil, p.unexpected("an indented block", tok)
	}

	enclosing := p.depth
	p.depth = indent.Depth
	defer func() { p.depth = enclosing }()

	body := &ast.Body{Lines: leading}
	for {
		line, err := p.statement(block{depth: indent.Depth})
		if err != nil {
			return nil, err
		}
		if line == nil {
			return body, nil
		}
		body.Lines = append(body.Lines, line)
	}
}

func isBlank(tok lexer.Token) bool {
	indent, ok := tok.(lexer.Indent)
	return ok && indent.Blank
}

func isComment(tok lexer.Token) bool {
	_, ok := tok.(lexer.Comment)
	return ok
}

// conditional parses the head and body of if, elif, while and with
func (p *Parser) conditional(keyword lexer.Keyword) (ast.Node, error) {
	first, err := p.take()
	if err != nil {
		return nil, err
	}
	head, err := p.expression(first, stopAt(lexer.Colon))
	if err != nil {
		return nil, err
	}
	body, err := p.body()
	if err != nil {
		return nil, err
	}

	switch keyword {
	case lexer.KeywordElif:
		return &ast.Elif{Head: head, Body: body}, nil
	case lexer.KeywordWhile:
		return &ast.While{Head: head, Body: body}, nil
	case lexer.KeywordWith:
		return &ast.With{Head: head, Body: body}, nil
	default:
		return &ast.If{Head: head, Body: body}, nil
	}
}

func (p *Parser) elseStatement() (*ast.Else, error) {
	body, err := p.body()
	if err != nil {
		return nil, err
	}
	return &ast.Else{Body: body}, nil
}

func (p *Parser) returnStatement() (*ast.Return, error) {
	tok, err := p.take()
	if err != nil {
		return nil, err
	}
	if isLineEnd(tok) {
		return &ast.Return{}, p.drop()
	}

	value, err := p.expression(tok, noStop)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

func (p *Parser) importStatement() (*ast.Import, error) {
	tok, err := p.take()
	if err != nil {
		return nil, err
	}
	value, err := p.expression(tok, noStop)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Value: value}, nil
}

// from parses "from <head> import a, b". The name list ends at the end of
// the line, which is left for the statement loop.
func (p *Parser) from() (*ast.From, error) {
	first, err := p.take()
	if err != nil {
		return nil, err
	}
	head, err := p.expression(first, stopAt(lexer.KeywordImport))
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KeywordImport); err != nil {
		return nil, err
	}

	from := &ast.From{Head: head}
	for {
		tok, err := p.take()
		if err != nil {
			return nil, err
		}
		if isLineEnd(tok) {
			break
		}

		name, ok := tok.(lexer.Name)
		if !ok {
			return nil, p.unexpected("a name", tok)
		}
		from.Names = append(from.Names, ast.NewName(name.Value))

		separator, err := p.take()
		if err != nil {
			return nil, err
		}
		if isLineEnd(separator) {
			break
		}
		if separator != lexer.Comma {
			return nil, p.unexpected("','", separator)
		}
	}

	return from, p.drop()
}

// def parses "def name(params) -> hint: body"
func (p *Parser) def() (*ast.Def, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LeftParenthesis); err != nil {
		return nil, err
	}

	def := &ast.Def{Name: name}
	for {
		tok, err := p.take()
		if err != nil {
			return nil, err
		}
		if tok == lexer.RightParenthesis {
			break
		}

		token, ok := tok.(lexer.Name)
		if !ok {
			return nil, p.unexpected("a name", tok)
		}
		param := ast.NewName(token.Value)

		if tok, err = p.take(); err != nil {
			return nil, err
		}
		if tok == lexer.Colon {
			first, err := p.take()
			if err != nil {
				return nil, err
			}
			hint, err := p.expression(first, stopAt(lexer.Comma, lexer.RightParenthesis))
			if err != nil {
				return nil, err
			}
			param = param.WithHint(hint)

			if tok, err = p.take(); err != nil {
				return nil, err
			}
		}
		def.Params = append(def.Params, param)

		if tok == lexer.RightParenthesis {
			break
		}
		if tok != lexer.Comma {
			return nil, p.unexpected("',' or ')'", tok)
		}
	}

	tok, err := p.take()
	if err != nil {
		return nil, err
	}
	if tok == lexer.Arrow {
		first, err := p.take()
		if err != nil {
			return nil, err
		}
		if def.Hint, err = p.expression(first, stopAt(lexer.Colon)); err != nil {
			return nil, err
		}
	} else if err := p.drop(); err != nil {
		return nil, err
	}

	if def.Body, err = p.body(); err != nil {
		return nil, err
	}
	return def, nil
}

// class parses "class Name(Base, Other): body"
func (p *Parser) class() (*ast.Class, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}

	class := &ast.Class{Name: name}

	tok, err := p.take()
	if err != nil {
		return nil, err
	}
	if tok != lexer.LeftParenthesis {
		if err := p.drop(); err != nil {
			return nil, err
		}
	} else {
		for {
			tok, err := p.take()
			if err != nil {
				return nil, err
			}
			if tok == lexer.RightParenthesis {
				break
			}

			base, ok := tok.(lexer.Name)
			if !ok {
				return nil, p.unexpected("a name", tok)
			}
			class.Bases = append(class.Bases, ast.NewName(base.Value))

			separator, err := p.take()
			if err != nil {
				return nil, err
			}
			if separator == lexer.RightParenthesis {
				break
			}
			if separator != lexer.Comma {
				return nil, p.unexpected("',' or ')'", separator)
			}
		}
	}

	if class.Body, err = p.body(); err != nil {
		return nil, err
	}
	return class, nil
}
