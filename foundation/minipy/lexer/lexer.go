// File: lexer.go
// Title: minipy Lexical Analyzer
// Description: Turns a character cursor into a stream of tokens. Spaces are
//              skipped, every newline produces an indentation token and the
//              symbol table is matched longest first.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial lexer implementation

// Package lexer provides the tokenizer for minipy source text.
package lexer

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/foundation/minipy/cursor"
)

// ErrInvalidToken is returned when the input cannot start any token
var ErrInvalidToken = errors.New("invalid token")

// Options configures the lexer
type Options struct {
	Logger *mdwlog.Logger

	// PromoteConstants turns True, False and None into literals
	PromoteConstants bool

	// DigitNames allows digits after the first character of a name
	DigitNames bool
}

// Lexer produces tokens from a character cursor
type Lexer struct {
	chars   *cursor.Cursor[rune]
	options Options
	logger  *mdwlog.Logger
	err     error
}

// New creates a lexer reading from chars
func New(chars *cursor.Cursor[rune], opts Options) *Lexer {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	return &Lexer{
		chars:   chars,
		options: opts,
		logger:  logger.WithField("component", "lexer"),
	}
}

// FromReader creates a lexer over the characters of r
func FromReader(r io.Reader, opts Options) *Lexer {
	return New(cursor.Runes(r), opts)
}

// Next scans the next token. It returns io.EOF once the input is exhausted
// and keeps returning the first failure after an error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return None{}, l.err
	}

	tok, err := l.scan()
	if err != nil {
		l.err = err
		if !errors.Is(err, io.EOF) {
			l.logger.WarnWithErr("tokenization failed", err)
		}
		return None{}, err
	}

	if l.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		l.logger.Trace("token scanned", mdwlog.Fields{"token": tok.String()})
	}
	return tok, nil
}

// All yields tokens until the input is exhausted. A failure is yielded once
// as the final pair.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// Tokens wraps the lexer in a token cursor ending with None. A lexer
// failure also ends the cursor and is reported by its Err method.
func (l *Lexer) Tokens() *cursor.Cursor[Token] {
	return cursor.New[Token](l.Next, None{})
}

func (l *Lexer) scan() (Token, error) {
	for {
		ch := l.chars.Take()

		switch {
		case ch == cursor.EndOfText:
			if err := l.chars.Err(); err != nil {
				return None{}, mdwerror.Wrap(err, "failed to read source").
					WithCode(mdwerror.CodeIO).
					WithOperation("lexer.Next")
			}
			return None{}, io.EOF
		case ch == ' ' || ch == '\r':
			continue
		case ch == '\n':
			return l.scanIndent(), nil
		case ch == '#':
			return l.scanComment(), nil
		case isDigit(ch):
			return l.scanNumber(ch)
		case isLower(ch):
			return l.scanWord(ch), nil
		case ch == '_' || isUpper(ch):
			return l.scanName(ch), nil
		case ch == '"' || ch == '\'':
			return l.scanString(ch)
		default:
			return l.scanSymbol()
		}
	}
}

// scanIndent counts the spaces after a newline. A line holding nothing but
// spaces resets the depth to 0 and leaves its newline for the next token.
func (l *Lexer) scanIndent() Token {
	depth := 0
	for {
		ch := l.chars.Take()
		if ch == ' ' {
			depth++
			continue
		}
		l.rewind()

		if ch == '\n' || ch == '\r' || ch == cursor.EndOfText {
			return Indent{Depth: 0, Blank: true}
		}
		return Indent{Depth: depth}
	}
}

func (l *Lexer) scanComment() Token {
	var text strings.Builder
	for {
		ch := l.chars.Take()
		if ch == '\n' || ch == cursor.EndOfText {
			l.rewind()
			break
		}
		text.WriteRune(ch)
	}
	return Comment{Text: strings.TrimSpace(text.String())}
}

func (l *Lexer) scanNumber(first rune) (Token, error) {
	var raw strings.Builder
	raw.WriteRune(first)

	if l.scanDigits(&raw) != '.' {
		l.rewind()
		value, err := strconv.ParseInt(stripUnderscores(raw.String()), 10, 64)
		if err != nil {
			return None{}, l.invalid("integer literal out of range", raw.String())
		}
		return IntegerLiteral(value), nil
	}

	raw.WriteRune('.')
	l.scanDigits(&raw)
	l.rewind()

	value, err := strconv.ParseFloat(stripUnderscores(raw.String()), 64)
	if err != nil {
		return None{}, l.invalid("malformed float literal", raw.String())
	}
	return FloatLiteral(value), nil
}

// scanDigits appends digits and underscores and returns the first other
// character, which has already been taken.
func (l *Lexer) scanDigits(raw *strings.Builder) rune {
	for {
		ch := l.chars.Take()
		if !isDigit(ch) && ch != '_' {
			return ch
		}
		raw.WriteRune(ch)
	}
}

func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

// scanWord reads a lowercase-initial word, which is a keyword or a name
func (l *Lexer) scanWord(first rune) Token {
	word := l.readName(first)
	if keyword, ok := LookupKeyword(word); ok {
		return keyword
	}
	return Name{Value: word}
}

func (l *Lexer) scanName(first rune) Token {
	word := l.readName(first)

	if l.options.PromoteConstants {
		switch word {
		case "True":
			return BooleanLiteral(true)
		case "False":
			return BooleanLiteral(false)
		case "None":
			return NullLiteral()
		}
	}
	return Name{Value: word}
}

func (l *Lexer) readName(first rune) string {
	var word strings.Builder
	word.WriteRune(first)

	for {
		ch := l.chars.Take()
		if !l.isNameChar(ch) {
			l.rewind()
			return word.String()
		}
		word.WriteRune(ch)
	}
}

func (l *Lexer) isNameChar(ch rune) bool {
	if isLower(ch) || isUpper(ch) || ch == '_' {
		return true
	}
	return l.options.DigitNames && isDigit(ch)
}

// scanString reads a raw string. Two more quote characters after the
// opening one switch to a triple-quoted string.
func (l *Lexer) scanString(quote rune) (Token, error) {
	start := l.chars.Position() - 1
	terminator := []rune{quote}
	if _, ok := l.chars.Test([]rune{quote, quote}); ok {
		terminator = []rune{quote, quote, quote}
	}

	var text strings.Builder
	for {
		if _, ok := l.chars.Test(terminator); ok {
			return StringLiteral(text.String()), nil
		}

		ch := l.chars.Take()
		if ch == cursor.EndOfText {
			return None{}, l.invalid("unterminated string literal", string(terminator)).
				WithDetail("start", start)
		}
		text.WriteRune(ch)
	}
}

func (l *Lexer) scanSymbol() (Token, error) {
	l.rewind()

	if matched, ok := l.chars.Test(symbolCandidates...); ok {
		return Symbol(matched), nil
	}

	ch := l.chars.Take()
	return None{}, l.invalid("no symbol matches the input", string(ch))
}

// rewind un-takes the character just taken. The position is always at
// least one here, so the rewind cannot fail.
func (l *Lexer) rewind() {
	_ = l.chars.Drop(1)
}

func (l *Lexer) invalid(message, found string) *mdwerror.Error {
	return mdwerror.Wrap(ErrInvalidToken, message).
		WithCode(mdwerror.CodeInvalidToken).
		WithOperation("lexer.Next").
		WithDetail("offset", l.chars.Position()).
		WithDetail("found", found)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }
func isLower(ch rune) bool { return ch >= 'a' && ch <= 'z' }
func isUpper(ch rune) bool { return ch >= 'A' && ch <= 'Z' }
