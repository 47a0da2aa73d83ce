/*
File    : vela/internal/sema/analyzer.go

Package sema walks a parsed module and reports semantic diagnostics:
the three memory intrinsics used outside an `unsafe` block, and
declarations that collide with the reserved intrinsic names. Analysis
never halts on a violation (every diagnostic here is SeverityWarning)
— it is a report, not a second parse. Name resolution and
break/continue-outside-a-loop checks are tracked (insideLoop, the
scope chain) but not yet reported; they're left for a later
extension.
*/
package sema

import (
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/source"
)

// Analyzer holds the mutable state threaded through one module's
// traversal: the current point in the scope chain, and the two
// context flags (inside an `unsafe` block, inside a loop body) that
// are saved and restored around the constructs that establish them.
type Analyzer struct {
	scope        *Scope
	insideUnsafe bool
	insideLoop   bool
	diags        *diag.Bag
}

// New creates an Analyzer with a fresh root scope.
func New() *Analyzer {
	return &Analyzer{scope: NewScope(nil), diags: diag.NewBag()}
}

// Analyze walks mod and returns the accumulated diagnostics.
func Analyze(mod *ast.Module) *diag.Bag {
	a := New()
	a.hoistModuleScope(mod)
	for _, stmt := range mod.Statements {
		a.analyzeStmt(stmt)
	}
	return a.diags
}

// hoistModuleScope pre-declares every top-level function, struct,
// class, enum, and trait before any statement body is analyzed, so
// forward references and mutual recursion between top-level
// declarations resolve correctly regardless of source order.
func (a *Analyzer) hoistModuleScope(mod *ast.Module) {
	for _, stmt := range mod.Statements {
		a.hoistDecl(stmt)
	}
}

func (a *Analyzer) hoistDecl(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.FunctionDecl:
		a.define(n.Name, KindFunction, n.ReturnType, n.Location())
	case *ast.StructDecl:
		a.define(n.Name, KindType, nil, n.Location())
	case *ast.ClassDecl:
		a.define(n.Name, KindType, nil, n.Location())
	case *ast.EnumDecl:
		a.define(n.Name, KindType, nil, n.Location())
	case *ast.TraitDecl:
		a.define(n.Name, KindType, nil, n.Location())
	case *ast.TypeAliasDecl:
		a.define(n.Name, KindType, n.Type, n.Location())
	}
}

// define binds name in the current scope, flagging a collision with
// one of the four reserved intrinsic identifiers (loc/addr/at/from).
func (a *Analyzer) define(name string, kind Kind, t ast.TypeExpr, loc source.Location) {
	if lexer.IsReservedIntrinsicName(name) {
		a.diags.Warnf(loc, diag.CodeReservedIdentifier, "%q shadows a reserved memory-intrinsic name", name)
	}
	a.scope.Define(Symbol{Name: name, Kind: kind, Type: t, Loc: loc})
}
