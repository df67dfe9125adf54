// File: token.go
// Title: minipy Token Definitions
// Description: Defines the closed set of lexical tokens produced by the
//              lexer together with the fixed symbol and keyword tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial token definitions

package lexer

import (
	"fmt"
	"slices"
	"strconv"
)

// Token is one lexical unit. The implementations are Symbol, Keyword, Name,
// Literal, Comment, Indent and None. All of them are comparable values.
type Token interface {
	String() string
	token()
}

// Symbol is a punctuation or operator lexeme
type Symbol string

const (
	LeftParenthesis  Symbol = "("
	RightParenthesis Symbol = ")"
	LeftBrace        Symbol = "{"
	RightBrace       Symbol = "}"
	LeftBracket      Symbol = "["
	RightBracket     Symbol = "]"

	Arrow Symbol = "->"

	Ellipsis  Symbol = "..."
	Colon     Symbol = ":"
	Semicolon Symbol = ";"
	Dot       Symbol = "."
	Comma     Symbol = ","

	Equal       Symbol = "="
	GreaterThan Symbol = ">"
	LessThan    Symbol = "<"
	Plus        Symbol = "+"
	Minus       Symbol = "-"
	Star        Symbol = "*"
	StarStar    Symbol = "**"
	Slash       Symbol = "/"
	SlashSlash  Symbol = "//"
	Percent     Symbol = "%"
	And         Symbol = "&"
	Or          Symbol = "|"
	Xor         Symbol = "^"
	Neg         Symbol = "~"
	LeftShift   Symbol = "<<"
	RightShift  Symbol = ">>"

	NotEqual         Symbol = "!="
	EqualEqual       Symbol = "=="
	GreaterThanEqual Symbol = ">="
	LessThanEqual    Symbol = "<="
	PlusEqual        Symbol = "+="
	MinusEqual       Symbol = "-="
	StarEqual        Symbol = "*="
	StarStarEqual    Symbol = "**="
	SlashEqual       Symbol = "/="
	SlashSlashEqual  Symbol = "//="
	PercentEqual     Symbol = "%="
	AndEqual         Symbol = "&="
	OrEqual          Symbol = "|="
	XorEqual         Symbol = "^="
	NegEqual         Symbol = "~="
	LeftShiftEqual   Symbol = "<<="
	RightShiftEqual  Symbol = ">>="

	At Symbol = "@"
)

func (s Symbol) String() string { return string(s) }
func (Symbol) token()            {}

// symbolTable lists every symbol in declaration order
var symbolTable = []Symbol{
	LeftParenthesis, RightParenthesis, LeftBrace, RightBrace, LeftBracket, RightBracket,
	Arrow,
	Ellipsis, Colon, Semicolon, Dot, Comma,
	Equal, GreaterThan, LessThan, Plus, Minus, Star, StarStar, Slash, SlashSlash,
	Percent, And, Or, Xor, Neg, LeftShift, RightShift,
	NotEqual, EqualEqual, GreaterThanEqual, LessThanEqual, PlusEqual, MinusEqual,
	StarEqual, StarStarEqual, SlashEqual, SlashSlashEqual, PercentEqual, AndEqual,
	OrEqual, XorEqual, NegEqual, LeftShiftEqual, RightShiftEqual,
	At,
}

// symbolCandidates holds the symbol lexemes longest first, ties in table order
var symbolCandidates = func() [][]rune {
	ordered := slices.Clone(symbolTable)
	slices.SortStableFunc(ordered, func(a, b Symbol) int {
		return len(b) - len(a)
	})

	candidates := make([][]rune, len(ordered))
	for i, s := range ordered {
		candidates[i] = []rune(string(s))
	}
	return candidates
}()

// Symbols returns the symbol table in longest-first match order
func Symbols() []Symbol {
	symbols := make([]Symbol, len(symbolCandidates))
	for i, c := range symbolCandidates {
		symbols[i] = Symbol(c)
	}
	return symbols
}

// BinaryOperators are the symbols resolved as infix operators
var BinaryOperators = map[Symbol]bool{
	Plus: true, Minus: true, Star: true, StarStar: true, Slash: true, SlashSlash: true,
	Percent: true, And: true, Or: true, Xor: true, LeftShift: true, RightShift: true,
	GreaterThan: true, LessThan: true, NotEqual: true, EqualEqual: true,
	GreaterThanEqual: true, LessThanEqual: true,
}

// UnaryOperators are the symbols applied in prefix position
var UnaryOperators = map[Symbol]bool{
	Plus: true, Minus: true, Neg: true,
}

// AssignmentOperators are the symbols that turn a name into a Set
var AssignmentOperators = map[Symbol]bool{
	Equal: true, PlusEqual: true, MinusEqual: true, StarEqual: true, StarStarEqual: true,
	SlashEqual: true, SlashSlashEqual: true, PercentEqual: true, AndEqual: true,
	OrEqual: true, XorEqual: true, NegEqual: true, LeftShiftEqual: true, RightShiftEqual: true,
}

// Keyword is a reserved lowercase word
type Keyword string

const (
	KeywordPass     Keyword = "pass"
	KeywordImport   Keyword = "import"
	KeywordFrom     Keyword = "from"
	KeywordAs       Keyword = "as"
	KeywordClass    Keyword = "class"
	KeywordDef      Keyword = "def"
	KeywordReturn   Keyword = "return"
	KeywordYield    Keyword = "yield"
	KeywordIf       Keyword = "if"
	KeywordElif     Keyword = "elif"
	KeywordElse     Keyword = "else"
	KeywordWhile    Keyword = "while"
	KeywordBreak    Keyword = "break"
	KeywordContinue Keyword = "continue"
	KeywordFor      Keyword = "for"
	KeywordIn       Keyword = "in"
	KeywordTry      Keyword = "try"
	KeywordExcept   Keyword = "except"
	KeywordFinally  Keyword = "finally"
	KeywordRaise    Keyword = "raise"
	KeywordWith     Keyword = "with"
	KeywordAssert   Keyword = "assert"
	KeywordNot      Keyword = "not"
	KeywordOr       Keyword = "or"
	KeywordAnd      Keyword = "and"
)

func (k Keyword) String() string { return string(k) }
func (Keyword) token()            {}

var keywords = map[string]Keyword{}

func init() {
	for _, k := range []Keyword{
		KeywordPass, KeywordImport, KeywordFrom, KeywordAs, KeywordClass, KeywordDef,
		KeywordReturn, KeywordYield, KeywordIf, KeywordElif, KeywordElse, KeywordWhile,
		KeywordBreak, KeywordContinue, KeywordFor, KeywordIn, KeywordTry, KeywordExcept,
		KeywordFinally, KeywordRaise, KeywordWith, KeywordAssert, KeywordNot, KeywordOr,
		KeywordAnd,
	} {
		keywords[string(k)] = k
	}
}

// LookupKeyword returns the keyword spelled by word
func LookupKeyword(word string) (Keyword, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Name is an identifier
type Name struct {
	Value string
}

func (n Name) String() string { return fmt.Sprintf("Name(%s)", n.Value) }
func (Name) token()            {}

// LiteralKind tells which payload a Literal carries
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInteger
	LiteralFloat
	LiteralBoolean
	LiteralNull
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "string"
	case LiteralInteger:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralBoolean:
		return "boolean"
	case LiteralNull:
		return "null"
	default:
		return "unknown"
	}
}

// Literal is a constant value. Value holds a string, int64, float64, bool
// or nil according to Kind.
type Literal struct {
	Kind  LiteralKind
	Value any
}

// StringLiteral creates a string literal
func StringLiteral(s string) Literal { return Literal{Kind: LiteralString, Value: s} }

// IntegerLiteral creates an integer literal
func IntegerLiteral(i int64) Literal { return Literal{Kind: LiteralInteger, Value: i} }

// FloatLiteral creates a float literal
func FloatLiteral(f float64) Literal { return Literal{Kind: LiteralFloat, Value: f} }

// BooleanLiteral creates a boolean literal
func BooleanLiteral(b bool) Literal { return Literal{Kind: LiteralBoolean, Value: b} }

// NullLiteral creates the null literal
func NullLiteral() Literal { return Literal{Kind: LiteralNull} }

func (l Literal) String() string {
	return fmt.Sprintf("Literal(%s)", l.Repr())
}

// Repr returns the literal the way it would be written in source
func (l Literal) Repr() string {
	switch l.Kind {
	case LiteralString:
		return strconv.Quote(l.Value.(string))
	case LiteralInteger:
		return strconv.FormatInt(l.Value.(int64), 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.Value.(float64), 'g', -1, 64)
	case LiteralBoolean:
		if l.Value.(bool) {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}

func (Literal) token() {}

// Comment is the trimmed text of a trailing-line comment
type Comment struct {
	Text string
}

func (c Comment) String() string { return fmt.Sprintf("Comment(%s)", c.Text) }
func (Comment) token()            {}

// Indent is the number of leading spaces of a line. Blank marks a line with
// no content; its depth is always 0.
type Indent struct {
	Depth int
	Blank bool
}

func (i Indent) String() string { return fmt.Sprintf("Indent(%d)", i.Depth) }
func (Indent) token()            {}

// None marks the end of the token stream
type None struct{}

func (None) String() string { return "<none>" }
func (None) token()          {}
