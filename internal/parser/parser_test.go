package parser

import (
	"testing"

	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) *ast.Module {
	t.Helper()
	toks := lexer.Lex(src, "t.vela")
	diags := diag.NewBag()
	mod, err := Parse(toks, "t.vela", diags)
	require.NoError(t, err, "diagnostics: %v", diags.Items())
	require.NotNil(t, mod)
	return mod
}

func TestParse_IntegerLiteral(t *testing.T) {
	mod := parseSource(t, "42;")
	require.Len(t, mod.Statements, 1)
	stmt := mod.Statements[0].(*ast.ExprStmt)
	lit := stmt.X.(*ast.IntegerLiteral)
	assert.Equal(t, int64(42), lit.Value)
}

func TestParse_BinaryPrecedence(t *testing.T) {
	mod := parseSource(t, "1 + 2 * 3;")
	stmt := mod.Statements[0].(*ast.ExprStmt)
	add := stmt.X.(*ast.BinaryExpr)
	assert.Equal(t, "+", add.Op)
	_, leftIsInt := add.Left.(*ast.IntegerLiteral)
	assert.True(t, leftIsInt)
	mul := add.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", mul.Op)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	mod := parseSource(t, "a = b = 1;")
	stmt := mod.Statements[0].(*ast.ExprStmt)
	outer := stmt.X.(*ast.AssignExpr)
	assert.Equal(t, "=", outer.Op)
	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "=", inner.Op)
}

func TestParse_CallMemberIndexChain(t *testing.T) {
	mod := parseSource(t, "a.b[0](1, 2);")
	stmt := mod.Statements[0].(*ast.ExprStmt)
	call := stmt.X.(*ast.CallExpr)
	assert.Len(t, call.Args, 2)
	idx := call.Callee.(*ast.IndexExpr)
	member := idx.Object.(*ast.MemberExpr)
	assert.Equal(t, "b", member.Name)
}

func TestParse_VarDeclStandardForm(t *testing.T) {
	mod := parseSource(t, "let x: Int = 5;")
	decl := mod.Statements[0].(*ast.VarDecl)
	assert.Equal(t, ast.VarKindLet, decl.Kind)
	assert.Equal(t, "x", decl.Name)
	require.NotNil(t, decl.Type)
	assert.Equal(t, "Int", decl.Type.String())
}

func TestParse_VarDeclRelaxedForm(t *testing.T) {
	mod := parseSource(t, "Int x = 5;")
	decl := mod.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "Int", decl.Type.String())
}

func TestParse_IfElseStatement(t *testing.T) {
	src := `
if (x) {
  return 1;
} else {
  return 2;
}
`
	mod := parseSource(t, src)
	stmt := mod.Statements[0].(*ast.IfStmt)
	require.Len(t, stmt.Then.Statements, 1)
	require.NotNil(t, stmt.Else)
}

func TestParse_IndentedBlock(t *testing.T) {
	src := "fn<Int> main()\n    return 1;\n"
	mod := parseSource(t, src)
	fn := mod.Statements[0].(*ast.FunctionDecl)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)
}

func TestParse_FunctionDeclWithGenericsAndThrows(t *testing.T) {
	src := "fn<T> identity<T>(x: T) throws Error { return x; }"
	mod := parseSource(t, src)
	fn := mod.Statements[0].(*ast.FunctionDecl)
	assert.Equal(t, "identity", fn.Name)
	require.Len(t, fn.GenericParams, 1)
	assert.Equal(t, "T", fn.GenericParams[0].Name)
	require.NotNil(t, fn.ThrowsType)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "x", fn.Params[0].Name)
}

func TestParse_TryCatchKeepsEveryClause(t *testing.T) {
	src := `
try {
  throw 1;
} catch (e: IOError) {
  return 1;
} catch (e: ValueError) {
  return 2;
} finally {
  return 3;
}
`
	mod := parseSource(t, src)
	stmt := mod.Statements[0].(*ast.TryStmt)
	require.Len(t, stmt.Catches, 2)
	assert.Equal(t, "IOError", stmt.Catches[0].BinderType.String())
	assert.Equal(t, "ValueError", stmt.Catches[1].BinderType.String())
	require.NotNil(t, stmt.Finally)
	throwStmt := stmt.Body.Statements[0].(*ast.ThrowStmt)
	assert.NotNil(t, throwStmt.Value)
}

func TestParse_DeferWrapsStatement(t *testing.T) {
	mod := parseSource(t, "defer close(f);")
	d := mod.Statements[0].(*ast.DeferStmt)
	exprStmt, ok := d.Body.(*ast.ExprStmt)
	require.True(t, ok)
	assert.IsType(t, &ast.CallExpr{}, exprStmt.X)
}

func TestParse_UnsafeBlockWithIntrinsics(t *testing.T) {
	src := `
unsafe {
  let p: Int* = from<Int>(addr(loc(x)));
  let y: Int = at(p);
}
`
	mod := parseSource(t, src)
	u := mod.Statements[0].(*ast.UnsafeStmt)
	require.Len(t, u.Body.Statements, 2)
	firstDecl := u.Body.Statements[0].(*ast.VarDecl)
	cast := firstDecl.Value.(*ast.FromCastExpr)
	addrExpr := cast.Value.(*ast.AddressOfExpr)
	_, ok := addrExpr.Operand.(*ast.LocationOfExpr)
	require.True(t, ok)

	secondDecl := u.Body.Statements[1].(*ast.VarDecl)
	_, ok = secondDecl.Value.(*ast.DerefExpr)
	require.True(t, ok)
}

func TestParse_StructAndClassDecl(t *testing.T) {
	src := `
struct Point {
  x: Int;
  y: Int;
}
class Shape : Entity {
  area: Int = 0;
  fn<Int> getArea() { return area; }
}
`
	mod := parseSource(t, src)
	sd := mod.Statements[0].(*ast.StructDecl)
	assert.Equal(t, "Point", sd.Name)
	require.Len(t, sd.Fields, 2)

	cd := mod.Statements[1].(*ast.ClassDecl)
	assert.Equal(t, "Shape", cd.Name)
	require.NotNil(t, cd.SuperClass)
	assert.Equal(t, "Entity", cd.SuperClass.String())
	require.Len(t, cd.Methods, 1)
}

func TestParse_EnumWithDataAndDiscriminant(t *testing.T) {
	src := `
enum Status {
  Ok,
  Err(code: Int),
  Custom = 7,
}
`
	mod := parseSource(t, src)
	ed := mod.Statements[0].(*ast.EnumDecl)
	require.Len(t, ed.Variants, 3)
	assert.Equal(t, "Ok", ed.Variants[0].Name)
	require.Len(t, ed.Variants[1].Fields, 1)
	require.NotNil(t, ed.Variants[2].Value)
}

func TestParse_ImplDeclForTrait(t *testing.T) {
	src := `
impl Drawable for Shape {
  fn<Bool> draw() { return true; }
}
`
	mod := parseSource(t, src)
	id := mod.Statements[0].(*ast.ImplDecl)
	require.NotNil(t, id.Trait)
	assert.Equal(t, "Drawable", id.Trait.String())
	assert.Equal(t, "Shape", id.Target.String())
}

func TestParse_ListComprehension(t *testing.T) {
	mod := parseSource(t, "let xs = [y * 2 for y in ys if y > 0];")
	decl := mod.Statements[0].(*ast.VarDecl)
	comp := decl.Value.(*ast.ListComprehension)
	assert.Equal(t, "y", comp.Var)
	require.NotNil(t, comp.Condition)
}

func TestParse_MatchStatement(t *testing.T) {
	src := `
match (x) {
  1 => return 1;
  2 => return 2;
}
`
	mod := parseSource(t, src)
	m := mod.Statements[0].(*ast.MatchStmt)
	require.Len(t, m.Arms, 2)
}

func TestParse_GenericInstantiation(t *testing.T) {
	mod := parseSource(t, "let x = make<Int>(1);")
	decl := mod.Statements[0].(*ast.VarDecl)
	call := decl.Value.(*ast.CallExpr)
	inst := call.Callee.(*ast.GenericInstantiationExpr)
	require.Len(t, inst.TypeArgs, 1)
	assert.Equal(t, "Int", inst.TypeArgs[0].String())
}

func TestParse_ComparisonIsNotMisreadAsGeneric(t *testing.T) {
	mod := parseSource(t, "let x = a < b;")
	decl := mod.Statements[0].(*ast.VarDecl)
	bin := decl.Value.(*ast.BinaryExpr)
	assert.Equal(t, "<", bin.Op)
}

func TestParse_SyntaxErrorIsFatalAndDiscardsTree(t *testing.T) {
	toks := lexer.Lex("let x = ;", "t.vela")
	diags := diag.NewBag()
	mod, err := Parse(toks, "t.vela", diags)
	require.Error(t, err)
	assert.Nil(t, mod)
	assert.True(t, diags.HasErrors())
}

func TestParse_ImportWithAlias(t *testing.T) {
	mod := parseSource(t, "import std.collections as coll;")
	imp := mod.Statements[0].(*ast.ImportDecl)
	assert.Equal(t, "std.collections", imp.Path)
	assert.Equal(t, "coll", imp.Alias)
}

func TestParse_EmptyModuleParsesToNoStatements(t *testing.T) {
	mod := parseSource(t, "")
	assert.Empty(t, mod.Statements)
}
