// File: nodes.go
// Title: minipy AST Node Definitions
// Description: Defines the statement and expression nodes produced by the
//              parser together with their compact textual forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/minipy/foundation/minipy/lexer"
)

// Node is any statement or expression produced by the parser
type Node interface {
	// String returns the compact textual form of the node
	String() string

	node()
}

// Expr is an operand: Name, Literal, Atom, UnaryOperation,
// BinaryOperation or Call
type Expr interface {
	Node
	expr()
}

// Name is an identifier with an optional type hint
type Name struct {
	Value string
	Hint  Expr
}

// NewName creates a name without hint
func NewName(value string) *Name {
	return &Name{Value: value}
}

// WithHint returns a copy of the name annotated with hint
func (n *Name) WithHint(hint Expr) *Name {
	return &Name{Value: n.Value, Hint: hint}
}

func (n *Name) String() string {
	if n.Hint != nil {
		return fmt.Sprintf("Name(%s: %s)", n.Value, n.Hint)
	}
	return fmt.Sprintf("Name(%s)", n.Value)
}

// Literal is a constant operand
type Literal struct {
	Value lexer.Literal
}

func (l *Literal) String() string {
	return fmt.Sprintf("Literal(%s)", l.Value.Repr())
}

// Atom is a token standing alone in operand position, such as pass,
// break or the ellipsis
type Atom struct {
	Token lexer.Token
}

func (a *Atom) String() string {
	return a.Token.String()
}

// UnaryOperation applies a prefix operator to its operand
type UnaryOperation struct {
	Operator lexer.Token
	Operand  Expr
}

func (u *UnaryOperation) String() string {
	return fmt.Sprintf("UnaryOperation(%s, %s)", u.Operator, u.Operand)
}

// BinaryOperation combines two operands with an infix operator
type BinaryOperation struct {
	Operator lexer.Token
	Left     Expr
	Right    Expr
}

func (b *BinaryOperation) String() string {
	return fmt.Sprintf("BinaryOperation(%s, %s, %s)", b.Operator, b.Left, b.Right)
}

// Call applies Head to Args
type Call struct {
	Head Expr
	Args []Expr
}

func (c *Call) String() string {
	return fmt.Sprintf("Call(%s, %s)", c.Head, list(c.Args))
}

// Set assigns Value to Name. Operator is = or a compound assignment.
type Set struct {
	Name     *Name
	Operator lexer.Symbol
	Value    Expr
}

func (s *Set) String() string {
	if s.Operator == "" || s.Operator == lexer.Equal {
		return fmt.Sprintf("Set(%s, %s)", s.Name, s.Value)
	}
	return fmt.Sprintf("Set(%s, %s, %s)", s.Name, s.Operator, s.Value)
}

// Body is the statement list of an indented block
type Body struct {
	Lines []Node
}

func (b *Body) String() string {
	lines := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		lines[i] = line.String()
	}
	return "Body[" + strings.Join(lines, "; ") + "]"
}

// Return exits a function. Value is nil for a bare return.
type Return struct {
	Value Expr
}

func (r *Return) String() string {
	if r.Value == nil {
		return "Return()"
	}
	return fmt.Sprintf("Return(%s)", r.Value)
}

// Import loads the module named by Value
type Import struct {
	Value Expr
}

func (i *Import) String() string {
	return fmt.Sprintf("Import(%s)", i.Value)
}

// From imports Names out of the module named by Head
type From struct {
	Head  Expr
	Names []*Name
}

func (f *From) String() string {
	return fmt.Sprintf("From(%s, %s)", f.Head, list(f.Names))
}

// If is a conditional block
type If struct {
	Head Expr
	Body *Body
}

func (i *If) String() string { return block("If", i.Head, i.Body) }

// Elif is a chained conditional block
type Elif struct {
	Head Expr
	Body *Body
}

func (e *Elif) String() string { return block("Elif", e.Head, e.Body) }

// While is a loop block
type While struct {
	Head Expr
	Body *Body
}

func (w *While) String() string { return block("While", w.Head, w.Body) }

// With is a context block
type With struct {
	Head Expr
	Body *Body
}

func (w *With) String() string { return block("With", w.Head, w.Body) }

// Else is the fallback block of a conditional
type Else struct {
	Body *Body
}

func (e *Else) String() string {
	return fmt.Sprintf("Else(%s)", e.Body)
}

// Def is a function definition. Hint is the optional return hint.
type Def struct {
	Name   *Name
	Params []*Name
	Hint   Expr
	Body   *Body
}

func (d *Def) String() string {
	if d.Hint != nil {
		return fmt.Sprintf("Def(%s, %s, -> %s, %s)", d.Name, list(d.Params), d.Hint, d.Body)
	}
	return fmt.Sprintf("Def(%s, %s, %s)", d.Name, list(d.Params), d.Body)
}

// Class is a class definition with optional bases
type Class struct {
	Name  *Name
	Bases []*Name
	Body  *Body
}

func (c *Class) String() string {
	return fmt.Sprintf("Class(%s, %s, %s)", c.Name, list(c.Bases), c.Body)
}

// Comment passes a source comment through to the statement stream
type Comment struct {
	Text string
}

func (c *Comment) String() string {
	return fmt.Sprintf("Comment(%s)", c.Text)
}

func (*Name) node()            {}
func (*Literal) node()         {}
func (*Atom) node()            {}
func (*UnaryOperation) node()  {}
func (*BinaryOperation) node() {}
func (*Call) node()            {}
func (*Set) node()             {}
func (*Body) node()            {}
func (*Return) node()          {}
func (*Import) node()          {}
func (*From) node()            {}
func (*If) node()              {}
func (*Elif) node()            {}
func (*While) node()           {}
func (*With) node()            {}
func (*Else) node()            {}
func (*Def) node()             {}
func (*Class) node()           {}
func (*Comment) node()         {}

func (*Name) expr()            {}
func (*Literal) expr()         {}
func (*Atom) expr()            {}
func (*UnaryOperation) expr()  {}
func (*BinaryOperation) expr() {}
func (*Call) expr()            {}

func block(kind string, head Expr, body *Body) string {
	return fmt.Sprintf("%s(%s, %s)", kind, head, body)
}

func list[T Node](nodes []T) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
