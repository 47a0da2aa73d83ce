/*
File    : vela/internal/ast/type.go

Type-expression node variants. These are syntactically and
structurally distinct from expression nodes even when the surface
syntax overlaps — a bare identifier used as a type parses to a
NamedType, never to an Identifier.
*/
package ast

import (
	"strings"

	"github.com/rickenator/vela/internal/source"
)

func (base) typeExprNode() {}

// NamedType is `Identifier`, optionally qualified (`a.b` or `a::b`)
// and optionally generic (`Identifier<T, U>`). The ownership-family
// identifiers `my`/`our`/`their`/`ptr` and the `const<T>` qualifier
// form both parse as NamedType: their semantics belong to a future
// type checker, not the parser.
type NamedType struct {
	base
	Path           []string
	GenericArgs    []TypeExpr
	ConstQualified bool
}

func (t *NamedType) String() string {
	s := strings.Join(t.Path, ".")
	if t.ConstQualified {
		s = "const " + s
	}
	if len(t.GenericArgs) > 0 {
		parts := make([]string, len(t.GenericArgs))
		for i, a := range t.GenericArgs {
			parts[i] = a.String()
		}
		s += "<" + strings.Join(parts, ", ") + ">"
	}
	return s
}

func (t *NamedType) Clone() TypeExpr {
	cp := *t
	cp.Path = append([]string(nil), t.Path...)
	cp.GenericArgs = cloneTypeSlice(t.GenericArgs)
	return &cp
}

// PointerType is `T*`.
type PointerType struct {
	base
	Elem TypeExpr
}

func (t *PointerType) String() string { return t.Elem.String() + "*" }
func (t *PointerType) Clone() TypeExpr {
	cp := *t
	cp.Elem = t.Elem.Clone()
	return &cp
}

// ArrayType is `T[]` (Size == nil, a slice) or `T[N]` (a fixed-size
// array; Size is typically a constant-foldable integer literal
// expression, which the parser does not itself fold — that is left to
// the semantic analyzer/codegen).
type ArrayType struct {
	base
	Elem TypeExpr
	Size Expr // nil for a slice type
}

func (t *ArrayType) String() string {
	if t.Size == nil {
		return t.Elem.String() + "[]"
	}
	return t.Elem.String() + "[" + t.Size.String() + "]"
}
func (t *ArrayType) Clone() TypeExpr {
	cp := *t
	cp.Elem = t.Elem.Clone()
	return &cp
}

// FunctionType is `fn(T, U) -> R`.
type FunctionType struct {
	base
	Params []TypeExpr
	Return TypeExpr // nil if no `-> R` was given
}

func (t *FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	s := "fn(" + strings.Join(parts, ", ") + ")"
	if t.Return != nil {
		s += " -> " + t.Return.String()
	}
	return s
}
func (t *FunctionType) Clone() TypeExpr {
	cp := *t
	cp.Params = cloneTypeSlice(t.Params)
	if t.Return != nil {
		cp.Return = t.Return.Clone()
	}
	return &cp
}

// OptionalType is `T?`.
type OptionalType struct {
	base
	Elem TypeExpr
}

func (t *OptionalType) String() string { return t.Elem.String() + "?" }
func (t *OptionalType) Clone() TypeExpr {
	cp := *t
	cp.Elem = t.Elem.Clone()
	return &cp
}

// TupleType is `(T, U, ...)`.
type TupleType struct {
	base
	Elements []TypeExpr
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *TupleType) Clone() TypeExpr {
	cp := *t
	cp.Elements = cloneTypeSlice(t.Elements)
	return &cp
}

// StructTypeField is one member of an inline StructType.
type StructTypeField struct {
	Name string
	Type TypeExpr
	Loc  source.Location
}

// StructType is an inline structural type `struct { field: T, ... }`.
type StructType struct {
	base
	Fields []StructTypeField
}

func (t *StructType) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "struct{" + strings.Join(parts, ", ") + "}"
}
func (t *StructType) Clone() TypeExpr {
	cp := *t
	cp.Fields = append([]StructTypeField(nil), t.Fields...)
	for i := range cp.Fields {
		cp.Fields[i].Type = t.Fields[i].Type.Clone()
	}
	return &cp
}

func cloneTypeSlice(in []TypeExpr) []TypeExpr {
	out := make([]TypeExpr, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}
