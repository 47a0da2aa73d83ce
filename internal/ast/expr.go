/*
File    : vela/internal/ast/expr.go

The expression node variants, including the four memory-intrinsic
forms (loc/addr/at/from<T>) lowered to dedicated nodes instead of
ordinary calls.
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/rickenator/vela/internal/source"
)

func (base) exprNode() {}

// Identifier is a bare name used as a value, e.g. `x`.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(loc source.Location, name string) *Identifier {
	return &Identifier{base: base{Loc: loc}, Name: name}
}
func (n *Identifier) String() string { return n.Name }

// IntegerLiteral is a decimal or hexadecimal integer constant.
type IntegerLiteral struct {
	base
	Value int64
	Raw   string
}

func (n *IntegerLiteral) String() string { return n.Raw }

// FloatLiteral is a decimal floating-point constant with exactly one '.'.
type FloatLiteral struct {
	base
	Value float64
	Raw   string
}

func (n *FloatLiteral) String() string { return n.Raw }

// StringLiteral holds the already-unescaped string contents.
type StringLiteral struct {
	base
	Value string
}

func (n *StringLiteral) String() string { return fmt.Sprintf("%q", n.Value) }

// CharLiteral holds a single already-unescaped character.
type CharLiteral struct {
	base
	Value byte
}

func (n *CharLiteral) String() string { return fmt.Sprintf("'%c'", n.Value) }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	base
	Value bool
}

func (n *BoolLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// NilLiteral is the literal `nil`.
type NilLiteral struct{ base }

func (n *NilLiteral) String() string { return "nil" }

// ArrayLiteral is `[e1, e2, ...]`, including the empty `[]`.
type ArrayLiteral struct {
	base
	Elements []Expr
}

func (n *ArrayLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectField is one `key: value` / `key = value` / shorthand `key`
// entry inside an ObjectLiteral. It is not itself an Expr.
type ObjectField struct {
	Key   string
	Value Expr
	Loc   source.Location
}

// ObjectLiteral is `{field: value, ...}` or, when TypePath is non-nil,
// the typed form `TypeName{field: value, ...}`.
type ObjectLiteral struct {
	base
	TypePath *NamedType
	Fields   []ObjectField
}

func (n *ObjectLiteral) String() string {
	prefix := ""
	if n.TypePath != nil {
		prefix = n.TypePath.String()
	}
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.Key + ": " + f.Value.String()
	}
	return prefix + "{" + strings.Join(parts, ", ") + "}"
}

// UnaryExpr is a prefix operator application: `! - + ~`. A prefix
// `await` builds an AwaitExpr instead.
type UnaryExpr struct {
	base
	Op      string
	Operand Expr
}

func (n *UnaryExpr) String() string { return "(" + n.Op + n.Operand.String() + ")" }

// BorrowExpr is the prefix-`&` borrow of an l-value, distinct from the
// `addr()` intrinsic: borrowing produces a typed reference the
// semantic analyzer can track, while `addr()` is a raw, unsafe-gated
// integer coercion. `&` in unary position is a borrow; in infix
// position it is bitwise AND.
type BorrowExpr struct {
	base
	Operand Expr
}

func (n *BorrowExpr) String() string { return "(&" + n.Operand.String() + ")" }

// BinaryExpr covers the arithmetic/bitwise/shift/relational/equality
// binary operators of the precedence ladder.
type BinaryExpr struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

// LogicalExpr covers short-circuiting `&&`/`||`, kept separate from
// BinaryExpr because the semantic analyzer and a future code generator
// both need to special-case control flow around these.
type LogicalExpr struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (n *LogicalExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

// ConditionalExpr is the ternary `cond ? then : else`.
type ConditionalExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

func (n *ConditionalExpr) String() string {
	return "(" + n.Cond.String() + " ? " + n.Then.String() + " : " + n.Else.String() + ")"
}

// SequenceExpr is a comma-separated run of expressions evaluated for
// their side effects, yielding the value of the last one.
type SequenceExpr struct {
	base
	Elements []Expr
}

func (n *SequenceExpr) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// CallExpr is an ordinary call `callee(args...)`.
type CallExpr struct {
	base
	Callee Expr
	Args   []Expr
}

func (n *CallExpr) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// MemberExpr is `object.name` field/method access.
type MemberExpr struct {
	base
	Object Expr
	Name   string
}

func (n *MemberExpr) String() string { return n.Object.String() + "." + n.Name }

// IndexExpr is `object[index]` array/slice indexing.
type IndexExpr struct {
	base
	Object Expr
	Index  Expr
}

func (n *IndexExpr) String() string { return n.Object.String() + "[" + n.Index.String() + "]" }

// AssignExpr covers `=` and every compound assignment operator.
type AssignExpr struct {
	base
	Op     string
	Target Expr
	Value  Expr
}

func (n *AssignExpr) String() string {
	return n.Target.String() + " " + n.Op + " " + n.Value.String()
}

// LocationOfExpr is `loc(expr)`: take a stable handle to expr's
// location. Always legal, even outside `unsafe` — its safety is
// deferred to the point where the location is dereferenced.
type LocationOfExpr struct {
	base
	Operand Expr
}

func (n *LocationOfExpr) String() string { return "loc(" + n.Operand.String() + ")" }

// AddressOfExpr is `addr(locExpr)`: coerce a location to an integer.
// Legal only inside `unsafe`.
type AddressOfExpr struct {
	base
	Operand Expr
}

func (n *AddressOfExpr) String() string { return "addr(" + n.Operand.String() + ")" }

// DerefExpr is `at(locExpr)`: dereference a location, producing an
// l-value. Legal only inside `unsafe`.
type DerefExpr struct {
	base
	Operand Expr
}

func (n *DerefExpr) String() string { return "at(" + n.Operand.String() + ")" }

// FromCastExpr is `from<T>(intExpr)`: an integer-to-location cast of
// type T. Legal only inside `unsafe`.
type FromCastExpr struct {
	base
	Type  TypeExpr
	Value Expr
}

func (n *FromCastExpr) String() string {
	return "from<" + n.Type.String() + ">(" + n.Value.String() + ")"
}

// ListComprehension is `[expr for ident in iterable (if cond)?]`.
type ListComprehension struct {
	base
	Element   Expr
	Var       string
	Iterable  Expr
	Condition Expr // nil if absent
}

func (n *ListComprehension) String() string {
	s := "[" + n.Element.String() + " for " + n.Var + " in " + n.Iterable.String()
	if n.Condition != nil {
		s += " if " + n.Condition.String()
	}
	return s + "]"
}

// IfExpr is the expression-position `if (cond) { then } else { else }`
// form; unlike the statement `if`, `else` is mandatory.
type IfExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

func (n *IfExpr) String() string {
	return "if (" + n.Cond.String() + ") { " + n.Then.String() + " } else { " + n.Else.String() + " }"
}

// ConstructionExpr is `T(args)`: construct a value of type T.
type ConstructionExpr struct {
	base
	Type TypeExpr
	Args []Expr
}

func (n *ConstructionExpr) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Type.String() + "(" + strings.Join(parts, ", ") + ")"
}

// ArrayInitExpr is `[T; N]()`: allocate a fixed-size array of T.
type ArrayInitExpr struct {
	base
	ElemType TypeExpr
	Size     Expr
}

func (n *ArrayInitExpr) String() string {
	return "[" + n.ElemType.String() + "; " + n.Size.String() + "]()"
}

// GenericInstantiationExpr is an identifier applied to explicit type
// arguments in value position, e.g. `make<Int>`.
type GenericInstantiationExpr struct {
	base
	Base     Expr
	TypeArgs []TypeExpr
}

func (n *GenericInstantiationExpr) String() string {
	parts := make([]string, len(n.TypeArgs))
	for i, t := range n.TypeArgs {
		parts[i] = t.String()
	}
	return n.Base.String() + "<" + strings.Join(parts, ", ") + ">"
}

// FunctionExpr is an anonymous function value.
type FunctionExpr struct {
	base
	Params     []Param
	ReturnType TypeExpr
	Body       *BlockStmt
}

func (n *FunctionExpr) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		parts[i] = p.String()
	}
	return "fn<" + typeStringOrVoid(n.ReturnType) + ">(" + strings.Join(parts, ", ") + ")"
}

func typeStringOrVoid(t TypeExpr) string {
	if t == nil {
		return "Void"
	}
	return t.String()
}

// ThisExpr is the `this` keyword.
type ThisExpr struct{ base }

func (n *ThisExpr) String() string { return "this" }

// SuperExpr is the `super` keyword.
type SuperExpr struct{ base }

func (n *SuperExpr) String() string { return "super" }

// AwaitExpr is `await expr`.
type AwaitExpr struct {
	base
	Operand Expr
}

func (n *AwaitExpr) String() string { return "await " + n.Operand.String() }

// Param is a function/method parameter, shared by FunctionExpr and
// FunctionDecl. Not itself a Node — it has no independent grammar
// position, only a location for diagnostics.
type Param struct {
	Name     string
	Type     TypeExpr
	Default  Expr // nil if absent
	IsConst  bool
	IsVar    bool
	Loc      source.Location
}

func (p Param) String() string {
	s := p.Name
	if p.Type != nil {
		s += ": " + p.Type.String()
	}
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}
