/*
File    : vela/internal/ast/decl.go

The declaration node variants. Every Decl also satisfies Stmt, since
declarations occur in statement position.
*/
package ast

import (
	"strings"
)

func (base) declNode() {}

// VarKind distinguishes the surface keyword used to introduce a
// variable declaration; `let/var/mut/const/auto` and the relaxed
// `Type name` form are all sugar over one declaration shape.
type VarKind int

const (
	VarKindLet VarKind = iota
	VarKindVar
	VarKindMut
	VarKindConst
	VarKindAuto
)

func (k VarKind) String() string {
	switch k {
	case VarKindVar:
		return "var"
	case VarKindMut:
		return "mut"
	case VarKindConst:
		return "const"
	case VarKindAuto:
		return "auto"
	default:
		return "let"
	}
}

// VarDecl is a variable declaration in either the standard
// (`var<Type> name = expr;`) or relaxed (`Type name = expr;`) surface
// syntax — both parse to this one node.
type VarDecl struct {
	base
	Kind  VarKind
	Name  string
	Type  TypeExpr // nil when the type is to be inferred (`auto`)
	Value Expr     // nil when no initializer was given
}

func (n *VarDecl) String() string {
	s := n.Kind.String() + " " + n.Name
	if n.Type != nil {
		s += ": " + n.Type.String()
	}
	if n.Value != nil {
		s += " = " + n.Value.String()
	}
	return s
}

// GenericParamDecl is one `<T>` / `<T: Bound>` generic parameter.
type GenericParamDecl struct {
	base
	Name       string
	Constraint TypeExpr // nil if unconstrained
}

func (n *GenericParamDecl) String() string {
	if n.Constraint != nil {
		return n.Name + ": " + n.Constraint.String()
	}
	return n.Name
}

// FunctionDecl is `[async] [extern] fn <Type> name(params) [throws
// ErrType] body?`. Body is nil for a forward declaration or an
// `extern` function.
type FunctionDecl struct {
	base
	IsAsync       bool
	IsExtern      bool
	Name          string
	GenericParams []*GenericParamDecl
	Params        []Param
	ReturnType    TypeExpr
	ThrowsType    TypeExpr // nil if no `throws` clause
	Body          *BlockStmt
}

func (n *FunctionDecl) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		parts[i] = p.String()
	}
	prefix := ""
	if n.IsAsync {
		prefix += "async "
	}
	if n.IsExtern {
		prefix += "extern "
	}
	s := prefix + "fn<" + typeStringOrVoid(n.ReturnType) + "> " + n.Name + "(" + strings.Join(parts, ", ") + ")"
	if n.ThrowsType != nil {
		s += " throws " + n.ThrowsType.String()
	}
	if n.Body != nil {
		s += " " + n.Body.String()
	}
	return s
}

// TypeAliasDecl is `type Name = Type;`.
type TypeAliasDecl struct {
	base
	Name string
	Type TypeExpr
}

func (n *TypeAliasDecl) String() string { return "type " + n.Name + " = " + n.Type.String() }

// ImportDecl is `import path [as alias];`.
type ImportDecl struct {
	base
	Path  string
	Alias string // "" if no alias was given
}

func (n *ImportDecl) String() string {
	s := "import " + n.Path
	if n.Alias != "" {
		s += " as " + n.Alias
	}
	return s
}

// FieldDecl is one field of a struct, class, or enum variant.
type FieldDecl struct {
	base
	Name    string
	Type    TypeExpr
	Default Expr // nil if absent
}

func (n *FieldDecl) String() string {
	s := n.Name + ": " + n.Type.String()
	if n.Default != nil {
		s += " = " + n.Default.String()
	}
	return s
}

// StructDecl is `struct Name<generics> { field* }`.
type StructDecl struct {
	base
	Name          string
	GenericParams []*GenericParamDecl
	Fields        []*FieldDecl
}

func (n *StructDecl) String() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		parts[i] = f.String()
	}
	return "struct " + n.Name + " { " + strings.Join(parts, "; ") + " }"
}

// ClassDecl is `class Name<generics> [: SuperClass] { field* method* }`.
type ClassDecl struct {
	base
	Name          string
	GenericParams []*GenericParamDecl
	SuperClass    *NamedType // nil if no base class
	Fields        []*FieldDecl
	Methods       []*FunctionDecl
}

func (n *ClassDecl) String() string {
	s := "class " + n.Name
	if n.SuperClass != nil {
		s += " : " + n.SuperClass.String()
	}
	s += " {"
	for _, f := range n.Fields {
		s += " " + f.String() + ";"
	}
	for _, m := range n.Methods {
		s += " " + m.String() + ";"
	}
	return s + " }"
}

// ImplDecl is `impl [Trait for] Type { method* }`.
type ImplDecl struct {
	base
	Target  TypeExpr
	Trait   *NamedType // nil for an inherent impl
	Methods []*FunctionDecl
}

func (n *ImplDecl) String() string {
	s := "impl "
	if n.Trait != nil {
		s += n.Trait.String() + " for "
	}
	s += n.Target.String() + " {"
	for _, m := range n.Methods {
		s += " " + m.String() + ";"
	}
	return s + " }"
}

// EnumVariantDecl is one variant of an EnumDecl: a bare tag, a tag
// with an explicit discriminant value, or a data-carrying tag with
// fields.
type EnumVariantDecl struct {
	base
	Name   string
	Fields []*FieldDecl
	Value  Expr // nil unless an explicit discriminant was given
}

func (n *EnumVariantDecl) String() string {
	if n.Value != nil {
		return n.Name + " = " + n.Value.String()
	}
	if len(n.Fields) > 0 {
		parts := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			parts[i] = f.String()
		}
		return n.Name + "(" + strings.Join(parts, ", ") + ")"
	}
	return n.Name
}

// EnumDecl is `enum Name<generics> { variant,* }`.
type EnumDecl struct {
	base
	Name          string
	GenericParams []*GenericParamDecl
	Variants      []*EnumVariantDecl
}

func (n *EnumDecl) String() string {
	parts := make([]string, len(n.Variants))
	for i, v := range n.Variants {
		parts[i] = v.String()
	}
	return "enum " + n.Name + " { " + strings.Join(parts, ", ") + " }"
}

// TemplateDecl is a template declaration parameterized over generic
// parameters, wrapping the declaration it generates.
type TemplateDecl struct {
	base
	Name   string
	Params []*GenericParamDecl
	Body   Decl
}

func (n *TemplateDecl) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		parts[i] = p.String()
	}
	return "template " + n.Name + "<" + strings.Join(parts, ", ") + "> " + n.Body.String()
}

// TraitDecl is `trait Name { method-signature* }`.
type TraitDecl struct {
	base
	Name    string
	Methods []*FunctionDecl
}

func (n *TraitDecl) String() string {
	parts := make([]string, len(n.Methods))
	for i, m := range n.Methods {
		parts[i] = m.String()
	}
	return "trait " + n.Name + " { " + strings.Join(parts, "; ") + " }"
}

// NamespaceDecl is `namespace Name { stmt* }`.
type NamespaceDecl struct {
	base
	Name string
	Body []Stmt
}

func (n *NamespaceDecl) String() string {
	parts := make([]string, len(n.Body))
	for i, s := range n.Body {
		parts[i] = s.String()
	}
	return "namespace " + n.Name + " { " + strings.Join(parts, "; ") + " }"
}
