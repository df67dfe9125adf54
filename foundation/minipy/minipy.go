// File: minipy.go
// Title: minipy Main Interface and Engine
// Description: High-level entry points that wire a character source through
//              the lexer and the parser. Provides streaming and collecting
//              variants for readers, strings and files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial engine

// Package minipy lexes and parses a reduced Python-like language.
package minipy

import (
	"io"
	"iter"
	"os"
	"strings"
	"time"

	mdwerror "github.com/msto63/minipy/foundation/core/error"
	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/foundation/minipy/ast"
	"github.com/msto63/minipy/foundation/minipy/cursor"
	"github.com/msto63/minipy/foundation/minipy/lexer"
	"github.com/msto63/minipy/foundation/minipy/parser"
)

// Options configures the engine
type Options struct {
	// Logger for lexer and parser (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// PromoteConstants lexes True, False and None as literals
	PromoteConstants bool

	// DigitNames allows digits inside names
	DigitNames bool
}

// Engine builds lexers and parsers sharing one configuration
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Result is the outcome of parsing a whole source
type Result struct {
	// Source names the parsed input, usually a file path
	Source string

	// Nodes are the top-level statements in source order
	Nodes []ast.Node

	// Duration is the time spent lexing and parsing
	Duration time.Duration
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Engine{
		logger:  opts.Logger,
		options: opts,
	}
}

func (e *Engine) lexerOptions() lexer.Options {
	return lexer.Options{
		Logger:           e.logger,
		PromoteConstants: e.options.PromoteConstants,
		DigitNames:       e.options.DigitNames,
	}
}

// Lexer creates a lexer over r
func (e *Engine) Lexer(r io.Reader) *lexer.Lexer {
	return lexer.New(cursor.Runes(r), e.lexerOptions())
}

// Tokens yields the tokens of r on demand
func (e *Engine) Tokens(r io.Reader) iter.Seq2[lexer.Token, error] {
	return e.Lexer(r).All()
}

// Parser creates a parser over the tokens of r. Statements are produced
// only as the caller pulls them.
func (e *Engine) Parser(r io.Reader) *parser.Parser {
	return parser.New(e.Lexer(r).Tokens(), parser.Options{Logger: e.logger})
}

// Parse yields the top-level statements of r on demand
func (e *Engine) Parse(r io.Reader) iter.Seq2[ast.Node, error] {
	return e.Parser(r).All()
}

// ParseString parses src completely
func (e *Engine) ParseString(src string) ([]ast.Node, error) {
	return e.Parser(strings.NewReader(src)).Collect()
}

// ParseFile parses the file at path completely
func (e *Engine) ParseFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open source file").
			WithCode(mdwerror.CodeIO).
			WithOperation("minipy.ParseFile").
			WithDetail("path", path)
	}
	defer file.Close()

	return e.ParseReader(path, file)
}

// ParseReader parses r completely and labels the result with source
func (e *Engine) ParseReader(source string, r io.Reader) (*Result, error) {
	timer := e.logger.StartTimer("parse").WithField("source", source)
	start := time.Now()

	nodes, err := e.Parser(r).Collect()
	if err != nil {
		timer.StopWithError(err)
		return nil, mdwerror.Wrap(err, "failed to parse "+source).WithDetail("source", source)
	}

	timer.WithField("statements", len(nodes)).Stop()
	return &Result{
		Source:   source,
		Nodes:    nodes,
		Duration: time.Since(start),
	}, nil
}

// Parse yields the statements of r using default options
func Parse(r io.Reader) iter.Seq2[ast.Node, error] {
	return New(Options{}).Parse(r)
}

// ParseString parses src using default options
func ParseString(src string) ([]ast.Node, error) {
	return New(Options{}).ParseString(src)
}

// Tokenize yields the tokens of r using default options
func Tokenize(r io.Reader) iter.Seq2[lexer.Token, error] {
	return New(Options{}).Tokens(r)
}
