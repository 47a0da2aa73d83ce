/*
File    : vela/internal/ast/ast.go

Package ast defines the closed set of AST node variants produced by
the parser family and walked by the semantic analyzer.

The traversal contract mirrors go/ast's Visitor/Walk pair: a tagged
variant (sum type) per node category, with a single walk helper doing
the structural recursion by pattern-matching on concrete type. Walk
(visitor.go) is that helper; every concrete node type below is a
tagged variant matched inside it.
*/
package ast

import "github.com/rickenator/vela/internal/source"

// Node is the root interface implemented by every AST variant:
// expressions, statements, declarations, type expressions, and the
// module itself. Every node carries its source location; String
// returns a structural rendering used for diagnostics that is the same
// on every call for the same tree.
type Node interface {
	Location() source.Location
	String() string
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node, including declarations,
// which occur in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by declaration nodes. Every Decl is also a Stmt.
type Decl interface {
	Stmt
	declNode()
}

// TypeExpr is implemented by type-expression nodes. Type expressions
// are syntactically distinct from ordinary expressions even where
// surface syntax overlaps (a bare identifier used as a type is a
// NamedType, never an Identifier expression), and they expose a Clone
// because symbol tables can hold a type expression after its source
// node would otherwise go out of scope.
type TypeExpr interface {
	Node
	typeExprNode()
	Clone() TypeExpr
}

// base embeds the location every node carries and is composed into
// every concrete node struct below. InferredType is an optional slot
// reserved for the semantic analyzer; the parser leaves it nil, and
// the current analyzer does not set it either.
type base struct {
	Loc          source.Location
	InferredType TypeExpr
}

func (b base) Location() source.Location { return b.Loc }

// SetLoc lets a builder outside this package (the parser family)
// attach a node's source location after constructing it with a
// struct literal, since base's own field is unexported. Apart from
// the location, the parser sets one field after construction:
// NamedType.ConstQualified, for a `const`-prefixed type.
func (b *base) SetLoc(loc source.Location) { b.Loc = loc }

// Module is the root node: an ordered sequence of top-level
// statements. Destroying the Module releases the entire tree, since
// nothing outside of it holds a node reference.
type Module struct {
	base
	File       string
	Statements []Stmt
}

func NewModule(file string, loc source.Location, stmts []Stmt) *Module {
	return &Module{base: base{Loc: loc}, File: file, Statements: stmts}
}

func (m *Module) String() string {
	s := "module " + m.File + " {"
	for _, st := range m.Statements {
		s += "\n  " + st.String()
	}
	return s + "\n}"
}
