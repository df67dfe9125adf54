// File: doc.go
// Title: minipy Abstract Syntax Tree Package Documentation
// Description: Defines the syntax tree produced by the minipy parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial AST package

/*
Package ast defines the syntax tree of minipy source text.

Statements (Set, Def, Class, If, ...) and operands (Name, Literal,
UnaryOperation, BinaryOperation, Call) share the Node interface. Operands
additionally implement Expr. The set of node types is closed; code that
switches over nodes can rely on the types declared here.

Nodes are built once by the parser and never modified afterwards. An
annotated name is derived with Name.WithHint instead of mutating the name
that was already constructed.

Traversal:

	ast.Inspect(node, func(n ast.Node) bool {
		if call, ok := n.(*ast.Call); ok {
			fmt.Println(call.Head)
		}
		return true
	})

Dump converts a node into maps and slices for JSON or YAML encoding.
*/
package ast
