/*
File    : vela/internal/parser/expr.go

Expression parsing: a precedence-climbing descent from assignment down
through primary, one function per precedence level, the shape
conneroisu-gix/pkg/parser uses for its arithmetic ladder.
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/source"
)

// locSetter is satisfied by every *ast.<Node> via the promoted
// *base.SetLoc method.
type locSetter interface{ SetLoc(source.Location) }

// withLoc stamps loc onto a freshly built node and returns it,
// letting every construction site below read as a single expression
// instead of a declare-then-assign pair.
func withLoc[T locSetter](n T, loc source.Location) T {
	n.SetLoc(loc)
	return n
}

func newBinaryExpr(loc source.Location, op string, left, right ast.Expr) ast.Expr {
	return withLoc(&ast.BinaryExpr{Op: op, Left: left, Right: right}, loc)
}

func newLogicalExpr(loc source.Location, op string, left, right ast.Expr) ast.Expr {
	return withLoc(&ast.LogicalExpr{Op: op, Left: left, Right: right}, loc)
}

func newUnaryExpr(loc source.Location, op string, operand ast.Expr) ast.Expr {
	return withLoc(&ast.UnaryExpr{Op: op, Operand: operand}, loc)
}

func newConditionalExpr(loc source.Location, cond, then, els ast.Expr) ast.Expr {
	return withLoc(&ast.ConditionalExpr{Cond: cond, Then: then, Else: els}, loc)
}

// parseExpression is the entry point for a single expression, starting
// at the lowest (assignment) precedence level.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

var assignOps = map[lexer.TokenType]string{
	lexer.ASSIGN: "=", lexer.PLUS_ASSIGN: "+=", lexer.MINUS_ASSIGN: "-=",
	lexer.STAR_ASSIGN: "*=", lexer.SLASH_ASSIGN: "/=", lexer.PERCENT_ASSIGN: "%=",
	lexer.AMP_ASSIGN: "&=", lexer.PIPE_ASSIGN: "|=", lexer.CARET_ASSIGN: "^=",
	lexer.SHL_ASSIGN: "<<=", lexer.SHR_ASSIGN: ">>=",
}

// parseAssignment is right-associative: `a = b = c` parses as
// `a = (b = c)`.
func (p *Parser) parseAssignment() ast.Expr {
	loc := p.loc()
	left := p.parseConditional()
	if !p.ok() {
		return left
	}
	if op, ok := assignOps[p.cur().Kind]; ok {
		p.advance()
		value := p.parseAssignment()
		return withLoc(&ast.AssignExpr{Target: left, Op: op, Value: value}, loc)
	}
	return left
}

// parseConditional is the ternary `cond ? then : else`, right
// associative, binding tighter than assignment but looser than
// everything else.
func (p *Parser) parseConditional() ast.Expr {
	loc := p.loc()
	cond := p.parseLogicalOr()
	if !p.ok() {
		return cond
	}
	if _, ok := p.match(lexer.QUESTION); ok {
		then := p.parseAssignment()
		p.expect(lexer.COLON)
		els := p.parseConditional()
		return newConditionalExpr(loc, cond, then, els)
	}
	return cond
}

func (p *Parser) parseLogicalOr() ast.Expr {
	return p.parseLogicalLevel(lexer.OR_OR, "||", p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	return p.parseLogicalLevel(lexer.AND_AND, "&&", p.parseBitwiseOr)
}

func (p *Parser) parseLogicalLevel(kind lexer.TokenType, op string, next func() ast.Expr) ast.Expr {
	loc := p.loc()
	left := next()
	for p.ok() && p.at(kind) {
		p.advance()
		right := next()
		left = newLogicalExpr(loc, op, left, right)
		loc = p.loc()
	}
	return left
}

func (p *Parser) parseBitwiseOr() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{lexer.PIPE: "|"}, p.parseBitwiseXor)
}

func (p *Parser) parseBitwiseXor() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{lexer.CARET: "^"}, p.parseBitwiseAnd)
}

func (p *Parser) parseBitwiseAnd() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{lexer.AMP: "&"}, p.parseEquality)
}

func (p *Parser) parseEquality() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{lexer.EQ: "==", lexer.NEQ: "!="}, p.parseRelational)
}

func (p *Parser) parseRelational() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{
		lexer.LT: "<", lexer.LE: "<=", lexer.GT: ">", lexer.GE: ">=",
	}, p.parseShift)
}

func (p *Parser) parseShift() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{lexer.SHL: "<<", lexer.SHR: ">>"}, p.parseAdditive)
}

func (p *Parser) parseAdditive() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{lexer.PLUS: "+", lexer.MINUS: "-"}, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() ast.Expr {
	return p.parseBinaryLevel(map[lexer.TokenType]string{
		lexer.STAR: "*", lexer.SLASH: "/", lexer.PERCENT: "%",
	}, p.parseUnary)
}

// parseBinaryLevel is left-associative: it folds a run of same-tier
// operators into a left-leaning BinaryExpr chain.
func (p *Parser) parseBinaryLevel(ops map[lexer.TokenType]string, next func() ast.Expr) ast.Expr {
	loc := p.loc()
	left := next()
	for p.ok() {
		op, ok := ops[p.cur().Kind]
		if !ok {
			break
		}
		p.advance()
		right := next()
		left = newBinaryExpr(loc, op, left, right)
		loc = p.loc()
	}
	return left
}

var unaryOps = map[lexer.TokenType]string{
	lexer.BANG: "!", lexer.MINUS: "-", lexer.PLUS: "+", lexer.TILDE: "~",
}

// parseUnary handles prefix operators, `await`, and the borrow
// operator `&expr` — read as a borrow rather than infix bitwise-AND
// whenever it appears where a unary operator is expected, rather than
// an infix position.
func (p *Parser) parseUnary() ast.Expr {
	loc := p.loc()
	if op, ok := unaryOps[p.cur().Kind]; ok {
		p.advance()
		operand := p.parseUnary()
		return newUnaryExpr(loc, op, operand)
	}
	if _, ok := p.match(lexer.AMP); ok {
		operand := p.parseUnary()
		return withLoc(&ast.BorrowExpr{Operand: operand}, loc)
	}
	if _, ok := p.match(lexer.AWAIT); ok {
		operand := p.parseUnary()
		return withLoc(&ast.AwaitExpr{Operand: operand}, loc)
	}
	return p.parsePostfix()
}

// parsePostfix handles call, member, and index suffixes chained onto a
// primary expression: `f(x).y[0]`.
func (p *Parser) parsePostfix() ast.Expr {
	loc := p.loc()
	expr := p.parsePrimary()
	for p.ok() {
		switch {
		case p.at(lexer.LPAREN):
			p.advance()
			args := p.parseExpressionList(lexer.RPAREN)
			p.expect(lexer.RPAREN)
			expr = withLoc(&ast.CallExpr{Callee: expr, Args: args}, loc)
		case p.at(lexer.DOT):
			p.advance()
			name := p.expect(lexer.IDENT)
			expr = withLoc(&ast.MemberExpr{Object: expr, Name: name.Lexeme}, loc)
		case p.at(lexer.LBRACKET):
			p.advance()
			index := p.parseExpression()
			p.expect(lexer.RBRACKET)
			expr = withLoc(&ast.IndexExpr{Object: expr, Index: index}, loc)
		case p.at(lexer.LT) && isIdentifier(expr):
			args, ok := p.tryParseGenericArgs()
			if !ok {
				return expr
			}
			expr = withLoc(&ast.GenericInstantiationExpr{Base: expr, TypeArgs: args}, loc)
		default:
			return expr
		}
	}
	return expr
}

// isIdentifier restricts the speculative `<...>` type-argument parse
// to a bare identifier base, so `a < b` in ordinary comparison
// position is never misread as the start of `a<b>(...)`.
func isIdentifier(e ast.Expr) bool {
	_, ok := e.(*ast.Identifier)
	return ok
}

// tryParseGenericArgs speculatively parses `<T, U>`, backtracking to
// the saved position unless a closed type-argument list is
// immediately followed by a call's opening `(`.
func (p *Parser) tryParseGenericArgs() ([]ast.TypeExpr, bool) {
	save := p.pos
	savedFatal := p.fatal
	p.advance() // consume '<'
	var args []ast.TypeExpr
	for !p.atGT() {
		t := p.parseType()
		if !p.ok() {
			p.pos, p.fatal = save, savedFatal
			return nil, false
		}
		args = append(args, t)
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	if !p.matchGT() || !p.at(lexer.LPAREN) {
		p.pos, p.fatal = save, savedFatal
		return nil, false
	}
	return args, true
}

// parseExpressionList parses a comma-separated expression list up to
// (not including) the closing token.
func (p *Parser) parseExpressionList(closing lexer.TokenType) []ast.Expr {
	var list []ast.Expr
	if p.at(closing) {
		return list
	}
	for {
		list = append(list, p.parseExpression())
		if !p.ok() {
			return list
		}
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	return list
}

// parsePrimary parses literals, identifiers, parenthesized and
// bracketed expressions, the memory intrinsics, and the remaining
// keyword-led primary forms (`if`, anonymous `fn`, `this`, `super`).
func (p *Parser) parsePrimary() ast.Expr {
	loc := p.loc()
	tok := p.cur()

	switch tok.Kind {
	case lexer.INT:
		p.advance()
		return parseIntLiteral(loc, tok.Lexeme)
	case lexer.FLOAT:
		p.advance()
		return parseFloatLiteral(loc, tok.Lexeme)
	case lexer.STRING:
		p.advance()
		return withLoc(&ast.StringLiteral{Value: tok.Lexeme}, loc)
	case lexer.CHAR:
		p.advance()
		var b byte
		if len(tok.Lexeme) > 0 {
			b = tok.Lexeme[0]
		}
		return withLoc(&ast.CharLiteral{Value: b}, loc)
	case lexer.TRUE:
		p.advance()
		return withLoc(&ast.BoolLiteral{Value: true}, loc)
	case lexer.FALSE:
		p.advance()
		return withLoc(&ast.BoolLiteral{Value: false}, loc)
	case lexer.NIL:
		p.advance()
		return withLoc(&ast.NilLiteral{}, loc)
	case lexer.THIS:
		p.advance()
		return withLoc(&ast.ThisExpr{}, loc)
	case lexer.SUPER:
		p.advance()
		return withLoc(&ast.SuperExpr{}, loc)
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	case lexer.LBRACKET:
		return p.parseBracketedExpr(loc)
	case lexer.LBRACE:
		return p.parseObjectLiteral(loc, nil)
	case lexer.IF:
		return p.parseIfExpr(loc)
	case lexer.FN:
		return p.parseFunctionExpr(loc)
	case lexer.IDENT:
		return p.parseIdentOrIntrinsic(loc)
	default:
		p.fail("unexpected token " + string(tok.Kind) + " in expression")
		p.advance()
		return withLoc(&ast.NilLiteral{}, loc)
	}
}

func parseIntLiteral(loc source.Location, raw string) ast.Expr {
	clean := strings.ReplaceAll(raw, "_", "")
	base := 10
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		base = 16
		clean = clean[2:]
	}
	v, _ := strconv.ParseInt(clean, base, 64)
	return withLoc(&ast.IntegerLiteral{Value: v, Raw: raw}, loc)
}

func parseFloatLiteral(loc source.Location, raw string) ast.Expr {
	v, _ := strconv.ParseFloat(raw, 64)
	return withLoc(&ast.FloatLiteral{Value: v, Raw: raw}, loc)
}

// parseBracketedExpr disambiguates the three `[`-led primary forms: an
// array literal `[e, e]`, a list comprehension `[e for x in it]`, and
// a fixed-size array allocation `[T; N]()`.
func (p *Parser) parseBracketedExpr(loc source.Location) ast.Expr {
	p.advance() // consume '['
	if _, ok := p.match(lexer.RBRACKET); ok {
		return withLoc(&ast.ArrayLiteral{}, loc)
	}
	if isArrayInit, elemType := p.tryParseArrayInitType(); isArrayInit {
		p.expect(lexer.SEMI)
		size := p.parseExpression()
		p.expect(lexer.RBRACKET)
		p.expect(lexer.LPAREN)
		p.expect(lexer.RPAREN)
		return withLoc(&ast.ArrayInitExpr{ElemType: elemType, Size: size}, loc)
	}
	first := p.parseExpression()
	if !p.ok() {
		return first
	}
	if _, ok := p.match(lexer.FOR); ok {
		name := p.expect(lexer.IDENT)
		p.expect(lexer.IN)
		iterable := p.parseExpression()
		var cond ast.Expr
		if _, ok := p.match(lexer.IF); ok {
			cond = p.parseExpression()
		}
		p.expect(lexer.RBRACKET)
		return withLoc(&ast.ListComprehension{Element: first, Var: name.Lexeme, Iterable: iterable, Condition: cond}, loc)
	}
	elems := []ast.Expr{first}
	for {
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
		if p.at(lexer.RBRACKET) {
			break
		}
		elems = append(elems, p.parseExpression())
		if !p.ok() {
			break
		}
	}
	p.expect(lexer.RBRACKET)
	return withLoc(&ast.ArrayLiteral{Elements: elems}, loc)
}

// tryParseArrayInitType speculatively parses a type followed by `;`,
// the signature of the `[T; N]()` allocation form, backtracking if a
// `;` never follows.
func (p *Parser) tryParseArrayInitType() (bool, ast.TypeExpr) {
	save := p.pos
	savedFatal := p.fatal
	t := p.parseType()
	if !p.ok() || !p.at(lexer.SEMI) {
		p.pos, p.fatal = save, savedFatal
		return false, nil
	}
	return true, t
}

func (p *Parser) parseObjectLiteral(loc source.Location, typePath *ast.NamedType) ast.Expr {
	p.expect(lexer.LBRACE)
	var fields []ast.ObjectField
	for !p.at(lexer.RBRACE) && p.ok() {
		fieldLoc := p.loc()
		name := p.expect(lexer.IDENT)
		var value ast.Expr = ast.NewIdentifier(fieldLoc, name.Lexeme)
		if _, ok := p.match(lexer.COLON); ok {
			value = p.parseExpression()
		} else if _, ok := p.match(lexer.ASSIGN); ok {
			value = p.parseExpression()
		}
		fields = append(fields, ast.ObjectField{Key: name.Lexeme, Value: value, Loc: fieldLoc})
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.ObjectLiteral{TypePath: typePath, Fields: fields}, loc)
}

func (p *Parser) parseIfExpr(loc source.Location) ast.Expr {
	p.advance() // 'if'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)
	then := p.parseExpression()
	p.expect(lexer.RBRACE)
	p.expect(lexer.ELSE)
	p.expect(lexer.LBRACE)
	els := p.parseExpression()
	p.expect(lexer.RBRACE)
	return withLoc(&ast.IfExpr{Cond: cond, Then: then, Else: els}, loc)
}

func (p *Parser) parseFunctionExpr(loc source.Location) ast.Expr {
	p.advance() // 'fn'
	var retType ast.TypeExpr
	if _, ok := p.match(lexer.LT); ok {
		retType = p.parseType()
		p.expectGT()
	}
	params := p.parseParamList()
	body := p.parseBlock()
	return withLoc(&ast.FunctionExpr{Params: params, ReturnType: retType, Body: body}, loc)
}

// parseIdentOrIntrinsic recognizes the four memory intrinsics in call
// position (loc/addr/at/from<T>) and falls back to an ordinary
// identifier, or a typed object-construction literal when `{` follows.
func (p *Parser) parseIdentOrIntrinsic(loc source.Location) ast.Expr {
	name := p.advance()
	switch {
	case name.Lexeme == "loc" && p.at(lexer.LPAREN):
		p.advance()
		operand := p.parseExpression()
		p.expect(lexer.RPAREN)
		return withLoc(&ast.LocationOfExpr{Operand: operand}, loc)
	case name.Lexeme == "addr" && p.at(lexer.LPAREN):
		p.advance()
		operand := p.parseExpression()
		p.expect(lexer.RPAREN)
		return withLoc(&ast.AddressOfExpr{Operand: operand}, loc)
	case name.Lexeme == "at" && p.at(lexer.LPAREN):
		p.advance()
		operand := p.parseExpression()
		p.expect(lexer.RPAREN)
		return withLoc(&ast.DerefExpr{Operand: operand}, loc)
	case name.Lexeme == "from" && p.at(lexer.LT):
		p.advance()
		t := p.parseType()
		p.expectGT()
		p.expect(lexer.LPAREN)
		value := p.parseExpression()
		p.expect(lexer.RPAREN)
		return withLoc(&ast.FromCastExpr{Type: t, Value: value}, loc)
	}
	if p.at(lexer.LBRACE) {
		typePath := &ast.NamedType{Path: []string{name.Lexeme}}
		return p.parseObjectLiteral(loc, typePath)
	}
	return ast.NewIdentifier(loc, name.Lexeme)
}
