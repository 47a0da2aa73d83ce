/*
File    : vela/internal/ast/visitor.go

Visitor and Walk implement a node-visiting traversal contract shaped
after go/ast's Visitor/Walk pair: a single Walk function pattern-
matches every variant in one place, so adding a node kind only touches
this file instead of every existing visitor implementation.
*/
package ast

// Visitor receives every node Walk descends into. If Visit returns a
// non-nil Visitor, Walk uses it (which may be v itself) to visit the
// node's children; returning nil stops descent into that subtree. This
// mirrors go/ast.Visitor exactly, which is the idiomatic shape for a
// stateful, mutable-between-visits traversal.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses an AST in source order, invoking v.Visit on node and
// then, if it returns a non-nil visitor, on every child of node. A nil
// node is a no-op, which keeps call sites that walk optional fields
// (an absent `else`, an absent initializer) simple.
func Walk(v Visitor, node Node) {
	if node == nil || v == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, s := range n.Statements {
			Walk(v, s)
		}

	// Expressions.
	case *Identifier, *IntegerLiteral, *FloatLiteral, *StringLiteral,
		*CharLiteral, *BoolLiteral, *NilLiteral, *ThisExpr, *SuperExpr:
		// leaves: nothing further to walk.
	case *ArrayLiteral:
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *ObjectLiteral:
		if n.TypePath != nil {
			Walk(v, n.TypePath)
		}
		for _, f := range n.Fields {
			Walk(v, f.Value)
		}
	case *UnaryExpr:
		Walk(v, n.Operand)
	case *BorrowExpr:
		Walk(v, n.Operand)
	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *SequenceExpr:
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *CallExpr:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *MemberExpr:
		Walk(v, n.Object)
	case *IndexExpr:
		Walk(v, n.Object)
		Walk(v, n.Index)
	case *AssignExpr:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *LocationOfExpr:
		Walk(v, n.Operand)
	case *AddressOfExpr:
		Walk(v, n.Operand)
	case *DerefExpr:
		Walk(v, n.Operand)
	case *FromCastExpr:
		Walk(v, n.Type)
		Walk(v, n.Value)
	case *ListComprehension:
		Walk(v, n.Element)
		Walk(v, n.Iterable)
		if n.Condition != nil {
			Walk(v, n.Condition)
		}
	case *IfExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *ConstructionExpr:
		Walk(v, n.Type)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *ArrayInitExpr:
		Walk(v, n.ElemType)
		Walk(v, n.Size)
	case *GenericInstantiationExpr:
		Walk(v, n.Base)
		for _, t := range n.TypeArgs {
			Walk(v, t)
		}
	case *FunctionExpr:
		for _, p := range n.Params {
			walkParam(v, p)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		Walk(v, n.Body)
	case *AwaitExpr:
		Walk(v, n.Operand)

	// Statements.
	case *BlockStmt:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *ExprStmt:
		Walk(v, n.X)
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ReturnStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *BreakStmt, *ContinueStmt, *EmptyStmt:
		// leaves.
	case *TryStmt:
		Walk(v, n.Body)
		for _, c := range n.Catches {
			Walk(v, c.Body)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *ThrowStmt:
		Walk(v, n.Value)
	case *UnsafeStmt:
		Walk(v, n.Body)
	case *DeferStmt:
		Walk(v, n.Body)
	case *MatchStmt:
		Walk(v, n.Subject)
		for _, a := range n.Arms {
			Walk(v, a.Pattern)
			Walk(v, a.Body)
		}
	case *YieldStmt:
		Walk(v, n.Value)
	case *AssertStmt:
		Walk(v, n.Cond)
		if n.Message != nil {
			Walk(v, n.Message)
		}
	case *ExternStmt:
		for _, d := range n.Declarations {
			Walk(v, d)
		}

	// Declarations.
	case *VarDecl:
		if n.Type != nil {
			Walk(v, n.Type)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *GenericParamDecl:
		if n.Constraint != nil {
			Walk(v, n.Constraint)
		}
	case *FunctionDecl:
		for _, g := range n.GenericParams {
			Walk(v, g)
		}
		for _, p := range n.Params {
			walkParam(v, p)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		if n.ThrowsType != nil {
			Walk(v, n.ThrowsType)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *TypeAliasDecl:
		Walk(v, n.Type)
	case *ImportDecl:
		// leaf.
	case *FieldDecl:
		Walk(v, n.Type)
		if n.Default != nil {
			Walk(v, n.Default)
		}
	case *StructDecl:
		for _, g := range n.GenericParams {
			Walk(v, g)
		}
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *ClassDecl:
		for _, g := range n.GenericParams {
			Walk(v, g)
		}
		if n.SuperClass != nil {
			Walk(v, n.SuperClass)
		}
		for _, f := range n.Fields {
			Walk(v, f)
		}
		for _, m := range n.Methods {
			Walk(v, m)
		}
	case *ImplDecl:
		if n.Trait != nil {
			Walk(v, n.Trait)
		}
		Walk(v, n.Target)
		for _, m := range n.Methods {
			Walk(v, m)
		}
	case *EnumVariantDecl:
		for _, f := range n.Fields {
			Walk(v, f)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *EnumDecl:
		for _, g := range n.GenericParams {
			Walk(v, g)
		}
		for _, vr := range n.Variants {
			Walk(v, vr)
		}
	case *TemplateDecl:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)
	case *TraitDecl:
		for _, m := range n.Methods {
			Walk(v, m)
		}
	case *NamespaceDecl:
		for _, s := range n.Body {
			Walk(v, s)
		}

	// Type expressions.
	case *NamedType:
		for _, a := range n.GenericArgs {
			Walk(v, a)
		}
	case *PointerType:
		Walk(v, n.Elem)
	case *ArrayType:
		Walk(v, n.Elem)
		if n.Size != nil {
			Walk(v, n.Size)
		}
	case *FunctionType:
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Return != nil {
			Walk(v, n.Return)
		}
	case *OptionalType:
		Walk(v, n.Elem)
	case *TupleType:
		for _, e := range n.Elements {
			Walk(v, e)
		}
	case *StructType:
		for _, f := range n.Fields {
			Walk(v, f.Type)
		}

	default:
		panic("ast.Walk: unhandled node type")
	}
}

func walkParam(v Visitor, p Param) {
	if p.Type != nil {
		Walk(v, p.Type)
	}
	if p.Default != nil {
		Walk(v, p.Default)
	}
}

// CountingVisitor counts every node Walk visits; it exists to check
// that walking a module with a visitor that counts nodes visits every
// node in source order and terminates.
type CountingVisitor struct {
	Count int
}

func (c *CountingVisitor) Visit(node Node) Visitor {
	c.Count++
	return c
}
