/*
File    : vela/internal/ast/ast_test.go

Exercises the properties that belong to the AST layer itself: Walk
visits every node and terminates, and a node's String() rendering is
stable across repeated calls.
*/
package ast

import (
	"testing"

	"github.com/rickenator/vela/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc() source.Location { return source.New("t.vela", 1, 1) }

func sampleModule() *Module {
	ret := &ReturnStmt{base: base{Loc: loc()}, Value: &BinaryExpr{
		base: base{Loc: loc()}, Op: "+",
		Left:  &Identifier{base: base{Loc: loc()}, Name: "x"},
		Right: &IntegerLiteral{base: base{Loc: loc()}, Value: 1, Raw: "1"},
	}}
	fn := &FunctionDecl{
		base: base{Loc: loc()},
		Name: "main",
		Params: []Param{
			{Name: "x", Type: &NamedType{base: base{Loc: loc()}, Path: []string{"Int"}}, Loc: loc()},
		},
		ReturnType: &NamedType{base: base{Loc: loc()}, Path: []string{"Int"}},
		Body:       &BlockStmt{base: base{Loc: loc()}, Statements: []Stmt{ret}},
	}
	return NewModule("t.vela", loc(), []Stmt{fn})
}

func TestWalk_VisitsEveryNode(t *testing.T) {
	m := sampleModule()
	cv := &CountingVisitor{}
	Walk(cv, m)
	// module, fn decl, param type, return type, block, return stmt,
	// binary expr, identifier, integer literal = 9
	assert.Equal(t, 9, cv.Count)
}

func TestWalk_NilNodeIsNoop(t *testing.T) {
	cv := &CountingVisitor{}
	Walk(cv, nil)
	assert.Equal(t, 0, cv.Count)
}

func TestString_IsStableAcrossCalls(t *testing.T) {
	m := sampleModule()
	first := m.String()
	second := m.String()
	require.Equal(t, first, second)
}

func TestNamedType_CloneIsIndependent(t *testing.T) {
	orig := &NamedType{base: base{Loc: loc()}, Path: []string{"List"}, GenericArgs: []TypeExpr{
		&NamedType{base: base{Loc: loc()}, Path: []string{"Int"}},
	}}
	clone := orig.Clone().(*NamedType)
	clone.Path[0] = "Mutated"
	assert.Equal(t, "List", orig.Path[0])
	assert.Equal(t, "Mutated", clone.Path[0])
}
