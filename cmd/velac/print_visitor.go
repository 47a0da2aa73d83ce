/*
File    : vela/cmd/velac/print_visitor.go

printingVisitor is the CLI's tracing visitor, built against
ast.Visitor's single Visit method: Walk drives the recursion, and the
indent is tracked by wrapping each Visit call's return in a fresh
*printingVisitor at a deeper level.
*/
package main

import (
	"fmt"
	"reflect"

	"github.com/rickenator/vela/internal/ast"
)

type printingVisitor struct {
	depth int
}

func (p *printingVisitor) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}
	kind := reflect.TypeOf(node).Elem().Name()
	fmt.Printf("%s%s @ %s\n", indentOf(p.depth), kind, node.Location())
	return &printingVisitor{depth: p.depth + 1}
}

func indentOf(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
