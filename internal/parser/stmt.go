/*
File    : vela/internal/parser/stmt.go

Statement parsing. A block accepts either brace-delimited or
indentation-delimited form (parseBlock below), matching the lexer's
dual mode: whichever opens, the matching INDENT/DEDENT pair or the
matching RBRACE closes it. Declarations are also statements and are
dispatched to decl.go's parseDeclaration.
*/
package parser

import (
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/source"
)

// parseBlock parses `{ stmt* }` or `INDENT stmt* DEDENT`, normalizing
// both surface forms to the same *ast.BlockStmt.
func (p *Parser) parseBlock() *ast.BlockStmt {
	p.skipNewlines()
	loc := p.loc()
	var closing lexer.TokenType
	switch {
	case p.at(lexer.LBRACE):
		p.advance()
		closing = lexer.RBRACE
	case p.at(lexer.INDENT):
		p.advance()
		closing = lexer.DEDENT
	default:
		p.fail("expected a block, got " + string(p.cur().Kind))
		return &ast.BlockStmt{}
	}
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.at(closing) && !p.isAtEnd() && p.ok() {
		stmts = append(stmts, p.parseStatement())
		p.skipNewlines()
	}
	p.expect(closing)
	return withLoc(&ast.BlockStmt{Statements: stmts}, loc)
}

// parseParamList parses `(name: Type = default, ...)`, accepting an
// optional leading `const`/`var` qualifier on each parameter.
func (p *Parser) parseParamList() []ast.Param {
	p.expect(lexer.LPAREN)
	var params []ast.Param
	for !p.at(lexer.RPAREN) && p.ok() {
		loc := p.loc()
		var isConst, isVar bool
		switch {
		case p.at(lexer.CONST):
			p.advance()
			isConst = true
		case p.at(lexer.VAR):
			p.advance()
			isVar = true
		}
		name := p.expect(lexer.IDENT)
		var t ast.TypeExpr
		if _, ok := p.match(lexer.COLON); ok {
			t = p.parseType()
		}
		var def ast.Expr
		if _, ok := p.match(lexer.ASSIGN); ok {
			def = p.parseExpression()
		}
		params = append(params, ast.Param{
			Name: name.Lexeme, Type: t, Default: def,
			IsConst: isConst, IsVar: isVar, Loc: loc,
		})
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return params
}

var varKeywords = map[lexer.TokenType]ast.VarKind{
	lexer.LET: ast.VarKindLet, lexer.VAR: ast.VarKindVar,
	lexer.MUT: ast.VarKindMut, lexer.CONST: ast.VarKindConst, lexer.AUTO: ast.VarKindAuto,
}

// parseStatement dispatches on the current token's keyword, falling
// back to the relaxed `Type name = expr;` declaration form or a bare
// expression statement.
func (p *Parser) parseStatement() ast.Stmt {
	loc := p.loc()
	switch {
	case p.atAny(lexer.FN, lexer.STRUCT, lexer.CLASS, lexer.IMPL, lexer.ENUM,
		lexer.TRAIT, lexer.TEMPLATE, lexer.NAMESPACE, lexer.TYPE, lexer.IMPORT):
		return p.parseDeclaration()
	case p.at(lexer.ASYNC):
		return p.parseDeclaration()
	case p.at(lexer.EXTERN) && p.peekNext().Kind == lexer.FN:
		return p.parseDeclaration()
	case p.atAny(lexer.LET, lexer.VAR, lexer.MUT, lexer.CONST, lexer.AUTO):
		return p.parseVarDeclStatement()
	case p.at(lexer.LBRACE), p.at(lexer.INDENT):
		return p.parseBlock()
	case p.at(lexer.IF):
		return p.parseIfStmt()
	case p.at(lexer.WHILE):
		return p.parseWhileStmt()
	case p.at(lexer.FOR):
		return p.parseForStmt()
	case p.at(lexer.RETURN):
		return p.parseReturnStmt()
	case p.at(lexer.BREAK):
		p.advance()
		p.skipTerminator()
		return withLoc(&ast.BreakStmt{}, loc)
	case p.at(lexer.CONTINUE):
		p.advance()
		p.skipTerminator()
		return withLoc(&ast.ContinueStmt{}, loc)
	case p.at(lexer.TRY):
		return p.parseTryStmt()
	case p.at(lexer.THROW):
		return p.parseThrowStmt()
	case p.at(lexer.UNSAFE):
		return p.parseUnsafeStmt()
	case p.at(lexer.DEFER):
		return p.parseDeferStmt()
	case p.at(lexer.MATCH):
		return p.parseMatchStmt()
	case p.at(lexer.YIELD):
		return p.parseYieldStmt()
	case p.at(lexer.ASSERT):
		return p.parseAssertStmt()
	case p.at(lexer.EXTERN):
		return p.parseExternStmt()
	case p.at(lexer.SEMI):
		p.advance()
		return withLoc(&ast.EmptyStmt{}, loc)
	default:
		if decl, ok := p.tryParseRelaxedVarDecl(); ok {
			return decl
		}
		expr := p.parseExpression()
		p.skipTerminator()
		return withLoc(&ast.ExprStmt{X: expr}, loc)
	}
}

// parseVarDeclStatement parses the standard declaration forms
// introduced by `let`/`var`/`mut`/`const`/`auto`.
func (p *Parser) parseVarDeclStatement() ast.Stmt {
	loc := p.loc()
	kind := varKeywords[p.cur().Kind]
	p.advance()
	var t ast.TypeExpr
	if _, ok := p.match(lexer.LT); ok {
		t = p.parseType()
		p.expectGT()
	}
	name := p.expect(lexer.IDENT)
	if t == nil {
		if _, ok := p.match(lexer.COLON); ok {
			t = p.parseType()
		}
	}
	var value ast.Expr
	if _, ok := p.match(lexer.ASSIGN); ok {
		value = p.parseExpression()
	}
	p.skipTerminator()
	return withLoc(&ast.VarDecl{Kind: kind, Name: name.Lexeme, Type: t, Value: value}, loc)
}

// tryParseRelaxedVarDecl speculatively recognizes the relaxed `Type
// name = expr;` declaration surface — a leading type expression
// immediately followed by an identifier — backtracking to an ordinary
// expression statement when that shape doesn't hold.
func (p *Parser) tryParseRelaxedVarDecl() (ast.Stmt, bool) {
	if !p.atAny(lexer.IDENT, lexer.MY, lexer.OUR, lexer.THEIR, lexer.PTR) {
		return nil, false
	}
	save := p.pos
	savedFatal := p.fatal
	loc := p.loc()
	t := p.parseType()
	if !p.ok() || !p.at(lexer.IDENT) {
		p.pos, p.fatal = save, savedFatal
		return nil, false
	}
	name := p.advance()
	var value ast.Expr
	if _, ok := p.match(lexer.ASSIGN); ok {
		value = p.parseExpression()
	} else if !p.atAny(lexer.SEMI, lexer.NEWLINE) {
		// Not actually a declaration (e.g. `x y` is never valid
		// syntax outside one); fall back to an expression statement.
		p.pos, p.fatal = save, savedFatal
		return nil, false
	}
	p.skipTerminator()
	return withLoc(&ast.VarDecl{Kind: ast.VarKindAuto, Name: name.Lexeme, Type: t, Value: value}, loc), true
}

func (p *Parser) parseIfStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'if'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	then := p.parseBlock()
	var els ast.Stmt
	if _, ok := p.match(lexer.ELSE); ok {
		if p.at(lexer.IF) {
			els = p.parseIfStmt()
		} else {
			els = p.parseBlock()
		}
	}
	return withLoc(&ast.IfStmt{Cond: cond, Then: then, Else: els}, loc)
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'while'
	p.expect(lexer.LPAREN)
	cond := p.parseExpression()
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return withLoc(&ast.WhileStmt{Cond: cond, Body: body}, loc)
}

// parseForStmt parses the C-style `for (init; cond; update) block`;
// any of the three clauses may be empty.
func (p *Parser) parseForStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'for'
	p.expect(lexer.LPAREN)
	var init ast.Stmt
	if !p.at(lexer.SEMI) {
		init = p.parseForClauseStmt()
	} else {
		p.advance()
	}
	var cond ast.Expr
	if !p.at(lexer.SEMI) {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMI)
	var update ast.Stmt
	if !p.at(lexer.RPAREN) {
		update = withLoc(&ast.ExprStmt{X: p.parseExpression()}, p.loc())
	}
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return withLoc(&ast.ForStmt{Init: init, Cond: cond, Update: update, Body: body}, loc)
}

// parseForClauseStmt parses the `for` init clause, which may be a
// variable declaration or a bare expression, terminated by the `;`
// this function itself consumes.
func (p *Parser) parseForClauseStmt() ast.Stmt {
	loc := p.loc()
	if p.atAny(lexer.LET, lexer.VAR, lexer.MUT, lexer.CONST, lexer.AUTO) {
		kind := varKeywords[p.cur().Kind]
		p.advance()
		name := p.expect(lexer.IDENT)
		var t ast.TypeExpr
		if _, ok := p.match(lexer.COLON); ok {
			t = p.parseType()
		}
		var value ast.Expr
		if _, ok := p.match(lexer.ASSIGN); ok {
			value = p.parseExpression()
		}
		p.expect(lexer.SEMI)
		return withLoc(&ast.VarDecl{Kind: kind, Name: name.Lexeme, Type: t, Value: value}, loc)
	}
	expr := p.parseExpression()
	p.expect(lexer.SEMI)
	return withLoc(&ast.ExprStmt{X: expr}, loc)
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'return'
	var value ast.Expr
	if !p.atAny(lexer.SEMI, lexer.NEWLINE, lexer.RBRACE, lexer.DEDENT) {
		value = p.parseExpression()
	}
	p.skipTerminator()
	return withLoc(&ast.ReturnStmt{Value: value}, loc)
}

// parseTryStmt keeps every parsed catch clause, not just the first.
func (p *Parser) parseTryStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'try'
	body := p.parseBlock()
	var catches []ast.CatchClause
	for p.at(lexer.CATCH) {
		catches = append(catches, p.parseCatchClause())
	}
	var finally *ast.BlockStmt
	if _, ok := p.match(lexer.FINALLY); ok {
		finally = p.parseBlock()
	}
	return withLoc(&ast.TryStmt{Body: body, Catches: catches, Finally: finally}, loc)
}

func (p *Parser) parseCatchClause() ast.CatchClause {
	loc := p.loc()
	p.advance() // 'catch'
	var binder string
	var binderType ast.TypeExpr
	if _, ok := p.match(lexer.LPAREN); ok {
		name := p.expect(lexer.IDENT)
		binder = name.Lexeme
		if _, ok := p.match(lexer.COLON); ok {
			binderType = p.parseType()
		}
		p.expect(lexer.RPAREN)
	}
	body := p.parseBlock()
	return ast.CatchClause{Binder: binder, BinderType: binderType, Body: body, Loc: loc}
}

// parseThrowStmt models `throw expr;` as a real node rather than
// discarding it.
func (p *Parser) parseThrowStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'throw'
	value := p.parseExpression()
	p.skipTerminator()
	return withLoc(&ast.ThrowStmt{Value: value}, loc)
}

func (p *Parser) parseUnsafeStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'unsafe'
	body := p.parseBlock()
	return withLoc(&ast.UnsafeStmt{Body: body}, loc)
}

// parseDeferStmt models `defer stmt;` wrapping the deferred statement
// as a real node.
func (p *Parser) parseDeferStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'defer'
	body := p.parseStatement()
	return withLoc(&ast.DeferStmt{Body: body}, loc)
}

func (p *Parser) parseMatchStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'match'
	p.expect(lexer.LPAREN)
	subject := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var arms []ast.MatchArm
	for !p.at(lexer.RBRACE) && p.ok() {
		armLoc := p.loc()
		pattern := p.parseExpression()
		p.expect(lexer.FATARROW)
		body := p.parseStatement()
		arms = append(arms, ast.MatchArm{Pattern: pattern, Body: body, Loc: armLoc})
		p.skipNewlines()
		if _, ok := p.match(lexer.COMMA); ok {
			p.skipNewlines()
		}
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.MatchStmt{Subject: subject, Arms: arms}, loc)
}

func (p *Parser) parseYieldStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'yield'
	value := p.parseExpression()
	p.skipTerminator()
	return withLoc(&ast.YieldStmt{Value: value}, loc)
}

func (p *Parser) parseAssertStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'assert'
	cond := p.parseExpression()
	var msg ast.Expr
	if _, ok := p.match(lexer.COMMA); ok {
		msg = p.parseExpression()
	}
	p.skipTerminator()
	return withLoc(&ast.AssertStmt{Cond: cond, Message: msg}, loc)
}

func (p *Parser) parseExternStmt() ast.Stmt {
	loc := p.loc()
	p.advance() // 'extern'
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var decls []ast.Decl
	for !p.at(lexer.RBRACE) && p.ok() {
		decls = append(decls, p.parseDeclaration())
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.ExternStmt{Declarations: decls}, loc)
}

// curLoc is a small convenience for sub-nodes that need a location
// before any token has been consumed; it is an alias of loc and has no
// caller in the package.
func (p *Parser) curLoc() source.Location { return p.loc() }
