// Package dotparser reads back the Graphviz DOT subset written by the render
// package, so that a rendered upgrade tree can be inspected and checked.
//
// Accepted input is one digraph with node statements, edge chains (->),
// node/edge/graph default attribute lists and top-level key=value
// declarations. Node IDs may be identifiers, integers or quoted strings.
// Subgraphs, ports and undirected edges are not supported. // and # line
// comments and /* */ block comments are skipped.
//
// The parser is hand-rolled recursive descent over a token stream:
//
//   - Lexer: raw bytes to tokens.
//   - Parser: tokens to Graph, Node, Edge and Attr values.
//   - Validate: lint rules checking that the graph is a tree.
//
// Usage:
//
//	g, err := dotparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := dotparser.ValidateOrError(g); err != nil {
//	    log.Fatal(err)
//	}
package dotparser
