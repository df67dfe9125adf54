// File: walk.go
// Title: minipy AST Traversal
// Description: Depth-first traversal of AST nodes through a visitor or a
//              plain inspection function.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial traversal helpers

package ast

// Visitor is invoked for each node encountered by Walk. If the returned
// visitor w is not nil, Walk visits the children of node with w, followed
// by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses node depth-first in source order
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	for _, child := range Children(node) {
		Walk(v, child)
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for node and every descendant. Returning false skips the
// children of that node. After the children f is called with nil.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Children returns the direct child nodes of node in source order
func Children(node Node) []Node {
	var children []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if !isNil(n) {
				children = append(children, n)
			}
		}
	}

	switch n := node.(type) {
	case *Name:
		add(n.Hint)
	case *UnaryOperation:
		add(n.Operand)
	case *BinaryOperation:
		add(n.Left, n.Right)
	case *Call:
		add(n.Head)
		for _, arg := range n.Args {
			add(arg)
		}
	case *Set:
		add(n.Name, n.Value)
	case *Body:
		add(n.Lines...)
	case *Return:
		add(n.Value)
	case *Import:
		add(n.Value)
	case *From:
		add(n.Head)
		for _, name := range n.Names {
			add(name)
		}
	case *If:
		add(n.Head, n.Body)
	case *Elif:
		add(n.Head, n.Body)
	case *While:
		add(n.Head, n.Body)
	case *With:
		add(n.Head, n.Body)
	case *Else:
		add(n.Body)
	case *Def:
		add(n.Name)
		for _, param := range n.Params {
			add(param)
		}
		add(n.Hint, n.Body)
	case *Class:
		add(n.Name)
		for _, base := range n.Bases {
			add(base)
		}
		add(n.Body)
	case *Literal, *Atom, *Comment:
	}

	return children
}

// isNil catches interfaces holding typed nil pointers of optional fields
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Name:
		return v == nil
	case *Body:
		return v == nil
	}
	return false
}
