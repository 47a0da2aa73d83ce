/*
File    : vela/internal/sema/walk.go

The analyzer's own traversal, separate from ast.Walk/ast.Visitor:
unlike a pure visitor, the analyzer needs symmetric enter/exit hooks —
push a scope on block entry and pop it on exit, save and restore the
unsafe/loop flags around the constructs that establish them — which a
single-method Visitor can't express. So it recurses directly over a
type switch instead, dispatching by node type and threading the
current scope through each recursive call.
*/
package sema

import (
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/source"
)

func (a *Analyzer) pushScope() { a.scope = NewScope(a.scope) }
func (a *Analyzer) popScope()  { a.scope = a.scope.Parent }

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		if n.Value != nil {
			a.analyzeExpr(n.Value)
		}
		a.define(n.Name, KindVar, n.Type, n.Location())
	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(n)
	case *ast.StructDecl, *ast.ClassDecl, *ast.EnumDecl, *ast.TraitDecl, *ast.TypeAliasDecl:
		// Already bound during hoisting; no body to descend into for
		// structs/enums/traits/aliases. Classes carry methods, handled
		// below as a special case so their `this` binding is in scope.
		if cd, ok := n.(*ast.ClassDecl); ok {
			a.analyzeClassDecl(cd)
		}
	case *ast.ImportDecl:
		a.define(importBindingName(n), KindType, nil, n.Location())
	case *ast.ImplDecl:
		a.analyzeImplDecl(n)
	case *ast.NamespaceDecl:
		a.pushScope()
		for _, s := range n.Body {
			a.analyzeStmt(s)
		}
		a.popScope()
	case *ast.BlockStmt:
		a.pushScope()
		for _, s := range n.Statements {
			a.analyzeStmt(s)
		}
		a.popScope()
	case *ast.ExprStmt:
		a.analyzeExpr(n.X)
	case *ast.IfStmt:
		a.analyzeExpr(n.Cond)
		a.analyzeStmt(n.Then)
		if n.Else != nil {
			a.analyzeStmt(n.Else)
		}
	case *ast.WhileStmt:
		a.analyzeExpr(n.Cond)
		a.analyzeLoopBody(n.Body)
	case *ast.ForStmt:
		a.pushScope()
		if n.Init != nil {
			a.analyzeStmt(n.Init)
		}
		if n.Cond != nil {
			a.analyzeExpr(n.Cond)
		}
		if n.Update != nil {
			a.analyzeStmt(n.Update)
		}
		a.analyzeLoopBody(n.Body)
		a.popScope()
	case *ast.ReturnStmt:
		if n.Value != nil {
			a.analyzeExpr(n.Value)
		}
	case *ast.BreakStmt:
		// Not checked: whether a break/continue sits inside a loop is
		// left to a later extension.
	case *ast.ContinueStmt:
	case *ast.TryStmt:
		a.analyzeStmt(n.Body)
		for _, c := range n.Catches {
			a.pushScope()
			if c.Binder != "" {
				a.define(c.Binder, KindVar, c.BinderType, c.Loc)
			}
			a.analyzeStmt(c.Body)
			a.popScope()
		}
		if n.Finally != nil {
			a.analyzeStmt(n.Finally)
		}
	case *ast.ThrowStmt:
		a.analyzeExpr(n.Value)
	case *ast.UnsafeStmt:
		saved := a.insideUnsafe
		a.insideUnsafe = true
		a.analyzeStmt(n.Body)
		a.insideUnsafe = saved
	case *ast.DeferStmt:
		a.analyzeStmt(n.Body)
	case *ast.MatchStmt:
		a.analyzeExpr(n.Subject)
		for _, arm := range n.Arms {
			a.pushScope()
			a.analyzeExpr(arm.Pattern)
			a.analyzeStmt(arm.Body)
			a.popScope()
		}
	case *ast.YieldStmt:
		a.analyzeExpr(n.Value)
	case *ast.AssertStmt:
		a.analyzeExpr(n.Cond)
		if n.Message != nil {
			a.analyzeExpr(n.Message)
		}
	case *ast.ExternStmt:
		for _, d := range n.Declarations {
			a.analyzeStmt(d)
		}
	case *ast.EmptyStmt:
		// nothing to check.
	}
}

func importBindingName(n *ast.ImportDecl) string {
	if n.Alias != "" {
		return n.Alias
	}
	return n.Path
}

func (a *Analyzer) analyzeLoopBody(body *ast.BlockStmt) {
	saved := a.insideLoop
	a.insideLoop = true
	a.analyzeStmt(body)
	a.insideLoop = saved
}

func (a *Analyzer) analyzeFunctionDecl(n *ast.FunctionDecl) {
	a.pushScope()
	for _, g := range n.GenericParams {
		a.define(g.Name, KindType, g.Constraint, g.Location())
	}
	for _, p := range n.Params {
		a.define(p.Name, KindVar, p.Type, p.Loc)
		if p.Default != nil {
			a.analyzeExpr(p.Default)
		}
	}
	if n.Body != nil {
		for _, s := range n.Body.Statements {
			a.analyzeStmt(s)
		}
	}
	a.popScope()
}

func (a *Analyzer) analyzeClassDecl(n *ast.ClassDecl) {
	a.pushScope()
	for _, g := range n.GenericParams {
		a.define(g.Name, KindType, g.Constraint, g.Location())
	}
	for _, f := range n.Fields {
		a.define(f.Name, KindVar, f.Type, f.Location())
		if f.Default != nil {
			a.analyzeExpr(f.Default)
		}
	}
	for _, m := range n.Methods {
		a.analyzeFunctionDecl(m)
	}
	a.popScope()
}

func (a *Analyzer) analyzeImplDecl(n *ast.ImplDecl) {
	a.pushScope()
	for _, m := range n.Methods {
		a.analyzeFunctionDecl(m)
	}
	a.popScope()
}

// analyzeExpr is the expression half of the traversal. It gates the
// three unsafe memory intrinsics; loc() itself is exempt — it only
// forms a handle, the danger is in dereferencing one.
func (a *Analyzer) analyzeExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Identifier:
		// Not resolved against the scope chain: undeclared-name
		// reporting is left for a later extension.
	case *ast.BinaryExpr:
		a.analyzeExpr(n.Left)
		a.analyzeExpr(n.Right)
	case *ast.LogicalExpr:
		a.analyzeExpr(n.Left)
		a.analyzeExpr(n.Right)
	case *ast.ConditionalExpr:
		a.analyzeExpr(n.Cond)
		a.analyzeExpr(n.Then)
		a.analyzeExpr(n.Else)
	case *ast.SequenceExpr:
		for _, e := range n.Elements {
			a.analyzeExpr(e)
		}
	case *ast.CallExpr:
		a.analyzeExpr(n.Callee)
		for _, arg := range n.Args {
			a.analyzeExpr(arg)
		}
	case *ast.MemberExpr:
		a.analyzeExpr(n.Object)
	case *ast.IndexExpr:
		a.analyzeExpr(n.Object)
		a.analyzeExpr(n.Index)
	case *ast.AssignExpr:
		a.analyzeExpr(n.Target)
		a.analyzeExpr(n.Value)
	case *ast.UnaryExpr:
		a.analyzeExpr(n.Operand)
	case *ast.BorrowExpr:
		a.analyzeExpr(n.Operand)
	case *ast.AwaitExpr:
		a.analyzeExpr(n.Operand)
	case *ast.ArrayLiteral:
		for _, e := range n.Elements {
			a.analyzeExpr(e)
		}
	case *ast.ObjectLiteral:
		for _, f := range n.Fields {
			a.analyzeExpr(f.Value)
		}
	case *ast.ListComprehension:
		a.pushScope()
		a.analyzeExpr(n.Iterable)
		a.define(n.Var, KindVar, nil, n.Location())
		a.analyzeExpr(n.Element)
		if n.Condition != nil {
			a.analyzeExpr(n.Condition)
		}
		a.popScope()
	case *ast.IfExpr:
		a.analyzeExpr(n.Cond)
		a.analyzeExpr(n.Then)
		a.analyzeExpr(n.Else)
	case *ast.ConstructionExpr:
		for _, arg := range n.Args {
			a.analyzeExpr(arg)
		}
	case *ast.ArrayInitExpr:
		a.analyzeExpr(n.Size)
	case *ast.GenericInstantiationExpr:
		a.analyzeExpr(n.Base)
	case *ast.FunctionExpr:
		a.pushScope()
		for _, p := range n.Params {
			a.define(p.Name, KindVar, p.Type, p.Loc)
			if p.Default != nil {
				a.analyzeExpr(p.Default)
			}
		}
		if n.Body != nil {
			for _, s := range n.Body.Statements {
				a.analyzeStmt(s)
			}
		}
		a.popScope()
	case *ast.LocationOfExpr:
		a.analyzeExpr(n.Operand)
	case *ast.AddressOfExpr:
		a.checkUnsafe(n.Location())
		a.analyzeExpr(n.Operand)
	case *ast.DerefExpr:
		a.checkUnsafe(n.Location())
		a.analyzeExpr(n.Operand)
	case *ast.FromCastExpr:
		a.checkUnsafe(n.Location())
		a.analyzeExpr(n.Value)
	}
}

func (a *Analyzer) checkUnsafe(loc source.Location) {
	if a.insideUnsafe {
		return
	}
	a.diags.Warnf(loc, diag.CodeUnsafeViolation, "memory intrinsic used outside an unsafe block")
}
