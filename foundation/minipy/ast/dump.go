// File: dump.go
// Title: minipy AST Dump
// Description: Converts AST nodes into plain maps and slices so they can be
//              encoded as JSON or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial dump implementation

package ast

import (
	"github.com/msto63/minipy/foundation/minipy/lexer"
)

// Dump returns node as nested map[string]interface{} values. Every map has
// a "node" key naming the node kind.
func Dump(node Node) map[string]interface{} {
	switch n := node.(type) {
	case nil:
		return nil
	case *Name:
		if n == nil {
			return nil
		}
		m := kind("Name", "value", n.Value)
		if n.Hint != nil {
			m["hint"] = Dump(n.Hint)
		}
		return m
	case *Literal:
		m := kind("Literal", "type", n.Value.Kind.String())
		m["value"] = n.Value.Value
		return m
	case *Atom:
		return kind("Atom", "token", n.Token.String())
	case *UnaryOperation:
		m := kind("UnaryOperation", "operator", n.Operator.String())
		m["operand"] = Dump(n.Operand)
		return m
	case *BinaryOperation:
		m := kind("BinaryOperation", "operator", n.Operator.String())
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
		return m
	case *Call:
		m := kind("Call", "head", Dump(n.Head))
		m["args"] = dumpAll(n.Args)
		return m
	case *Set:
		operator := n.Operator
		if operator == "" {
			operator = lexer.Equal
		}
		m := kind("Set", "name", Dump(n.Name))
		m["operator"] = operator.String()
		m["value"] = Dump(n.Value)
		return m
	case *Body:
		if n == nil {
			return nil
		}
		return kind("Body", "lines", dumpAll(n.Lines))
	case *Return:
		return kind("Return", "value", Dump(n.Value))
	case *Import:
		return kind("Import", "value", Dump(n.Value))
	case *From:
		m := kind("From", "head", Dump(n.Head))
		m["names"] = dumpAll(n.Names)
		return m
	case *If:
		return dumpBlock("If", n.Head, n.Body)
	case *Elif:
		return dumpBlock("Elif", n.Head, n.Body)
	case *While:
		return dumpBlock("While", n.Head, n.Body)
	case *With:
		return dumpBlock("With", n.Head, n.Body)
	case *Else:
		return kind("Else", "body", Dump(n.Body))
	case *Def:
		m := kind("Def", "name", Dump(n.Name))
		m["params"] = dumpAll(n.Params)
		if n.Hint != nil {
			m["hint"] = Dump(n.Hint)
		}
		m["body"] = Dump(n.Body)
		return m
	case *Class:
		m := kind("Class", "name", Dump(n.Name))
		m["bases"] = dumpAll(n.Bases)
		m["body"] = Dump(n.Body)
		return m
	case *Comment:
		return kind("Comment", "text", n.Text)
	default:
		return kind("Unknown", "text", node.String())
	}
}

func kind(name, key string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"node": name, key: value}
}

func dumpBlock(name string, head Expr, body *Body) map[string]interface{} {
	m := kind(name, "head", Dump(head))
	m["body"] = Dump(body)
	return m
}

func dumpAll[T Node](nodes []T) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = Dump(n)
	}
	return out
}
