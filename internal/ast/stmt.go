/*
File    : vela/internal/ast/stmt.go

The statement node variants: `throw` and `defer` are modeled as real
nodes rather than silently dropped, and every `catch` clause after the
first is kept (not discarded).
*/
package ast

import (
	"strings"

	"github.com/rickenator/vela/internal/source"
)

func (base) stmtNode() {}

// BlockStmt is `{ stmt* }` or an indented `INDENT stmt* DEDENT` body —
// the parser normalizes both surface forms into the same node.
type BlockStmt struct {
	base
	Statements []Stmt
}

func (n *BlockStmt) String() string {
	parts := make([]string, len(n.Statements))
	for i, s := range n.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	base
	X Expr
}

func (n *ExprStmt) String() string { return n.X.String() }

// IfStmt is the statement-position `if`. Else may be nil, a
// *BlockStmt, or another *IfStmt (an `else if` chain).
type IfStmt struct {
	base
	Cond Expr
	Then *BlockStmt
	Else Stmt
}

func (n *IfStmt) String() string {
	s := "if (" + n.Cond.String() + ") " + n.Then.String()
	if n.Else != nil {
		s += " else " + n.Else.String()
	}
	return s
}

// WhileStmt is `while (cond) block`.
type WhileStmt struct {
	base
	Cond Expr
	Body *BlockStmt
}

func (n *WhileStmt) String() string { return "while (" + n.Cond.String() + ") " + n.Body.String() }

// ForStmt is the C-style `for (init; cond; update) block`. Any of
// Init/Cond/Update may be nil.
type ForStmt struct {
	base
	Init   Stmt
	Cond   Expr
	Update Stmt
	Body   *BlockStmt
}

func (n *ForStmt) String() string {
	init, cond, update := "", "", ""
	if n.Init != nil {
		init = n.Init.String()
	}
	if n.Cond != nil {
		cond = n.Cond.String()
	}
	if n.Update != nil {
		update = n.Update.String()
	}
	return "for (" + init + "; " + cond + "; " + update + ") " + n.Body.String()
}

// ReturnStmt is `return [expr];`.
type ReturnStmt struct {
	base
	Value Expr // nil if bare `return;`
}

func (n *ReturnStmt) String() string {
	if n.Value == nil {
		return "return"
	}
	return "return " + n.Value.String()
}

// BreakStmt is `break;`.
type BreakStmt struct{ base }

func (n *BreakStmt) String() string { return "break" }

// ContinueStmt is `continue;`.
type ContinueStmt struct{ base }

func (n *ContinueStmt) String() string { return "continue" }

// CatchClause is one `catch (...) block` clause of a TryStmt. Binder
// is "" when no name was given; BinderType is nil unless the `(ident:
// Type)` form was used.
type CatchClause struct {
	Binder     string
	BinderType TypeExpr
	Body       *BlockStmt
	Loc        source.Location
}

func (c CatchClause) String() string {
	s := "catch"
	if c.Binder != "" {
		s += " (" + c.Binder
		if c.BinderType != nil {
			s += ": " + c.BinderType.String()
		}
		s += ")"
	}
	return s + " " + c.Body.String()
}

// TryStmt is `try block catch(...) block (catch(...) block)* (finally
// block)?`. Every parsed catch clause is kept, not just the first.
type TryStmt struct {
	base
	Body    *BlockStmt
	Catches []CatchClause
	Finally *BlockStmt // nil if absent
}

func (n *TryStmt) String() string {
	parts := make([]string, len(n.Catches))
	for i, c := range n.Catches {
		parts[i] = c.String()
	}
	s := "try " + n.Body.String() + " " + strings.Join(parts, " ")
	if n.Finally != nil {
		s += " finally " + n.Finally.String()
	}
	return s
}

// ThrowStmt is `throw expr;`, modeled as a real node rather than
// parsed and discarded.
type ThrowStmt struct {
	base
	Value Expr
}

func (n *ThrowStmt) String() string { return "throw " + n.Value.String() }

// UnsafeStmt is `unsafe { block }`. Its semantic effect — permitting
// at()/addr()/from<T>() inside Body — is enforced by the analyzer, not
// by the parser or the AST itself.
type UnsafeStmt struct {
	base
	Body *BlockStmt
}

func (n *UnsafeStmt) String() string { return "unsafe " + n.Body.String() }

// DeferStmt is `defer stmt;`, modeled as a real node wrapping the
// deferred statement instead of discarding it into a null statement.
type DeferStmt struct {
	base
	Body Stmt
}

func (n *DeferStmt) String() string { return "defer " + n.Body.String() }

// EmptyStmt is a bare `;` with no effect.
type EmptyStmt struct{ base }

func (n *EmptyStmt) String() string { return ";" }

// MatchArm is one `pattern => body` arm of a MatchStmt.
type MatchArm struct {
	Pattern Expr
	Body    Stmt
	Loc     source.Location
}

func (a MatchArm) String() string { return a.Pattern.String() + " => " + a.Body.String() }

// MatchStmt is `match (subject) { arm* }`.
type MatchStmt struct {
	base
	Subject Expr
	Arms    []MatchArm
}

func (n *MatchStmt) String() string {
	parts := make([]string, len(n.Arms))
	for i, a := range n.Arms {
		parts[i] = a.String()
	}
	return "match (" + n.Subject.String() + ") { " + strings.Join(parts, "; ") + " }"
}

// YieldStmt is `yield expr;`.
type YieldStmt struct {
	base
	Value Expr
}

func (n *YieldStmt) String() string { return "yield " + n.Value.String() }

// AssertStmt is `assert expr [, message];`.
type AssertStmt struct {
	base
	Cond    Expr
	Message Expr // nil if absent
}

func (n *AssertStmt) String() string {
	if n.Message == nil {
		return "assert " + n.Cond.String()
	}
	return "assert " + n.Cond.String() + ", " + n.Message.String()
}

// ExternStmt is an `extern { decl* }` block of forward declarations.
type ExternStmt struct {
	base
	Declarations []Decl
}

func (n *ExternStmt) String() string {
	parts := make([]string, len(n.Declarations))
	for i, d := range n.Declarations {
		parts[i] = d.String()
	}
	return "extern { " + strings.Join(parts, "; ") + " }"
}
