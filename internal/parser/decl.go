/*
File    : vela/internal/parser/decl.go

Declaration parsing: functions, structs, classes, impls, enums,
templates, traits, namespaces, type aliases, and imports. Every one of
these is also a Stmt (ast.Decl embeds ast.Stmt), so parseDeclaration is
reachable both from the module's top-level loop and from
parseStatement wherever a declaration appears nested.
*/
package parser

import (
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/source"
)

// parseDeclaration dispatches on the leading keyword. `async`/`extern`
// are function modifiers and are consumed here before re-dispatching.
func (p *Parser) parseDeclaration() ast.Decl {
	loc := p.loc()
	isAsync, isExtern := false, false
	for {
		switch {
		case p.at(lexer.ASYNC):
			p.advance()
			isAsync = true
			continue
		case p.at(lexer.EXTERN) && p.peekNext().Kind == lexer.FN:
			p.advance()
			isExtern = true
			continue
		}
		break
	}
	switch {
	case p.at(lexer.FN):
		return p.parseFunctionDecl(loc, isAsync, isExtern)
	case p.at(lexer.STRUCT):
		return p.parseStructDecl(loc)
	case p.at(lexer.CLASS):
		return p.parseClassDecl(loc)
	case p.at(lexer.IMPL):
		return p.parseImplDecl(loc)
	case p.at(lexer.ENUM):
		return p.parseEnumDecl(loc)
	case p.at(lexer.TRAIT):
		return p.parseTraitDecl(loc)
	case p.at(lexer.TEMPLATE):
		return p.parseTemplateDecl(loc)
	case p.at(lexer.NAMESPACE):
		return p.parseNamespaceDecl(loc)
	case p.at(lexer.TYPE):
		return p.parseTypeAliasDecl(loc)
	case p.at(lexer.IMPORT):
		return p.parseImportDecl(loc)
	default:
		p.fail("expected a declaration, got " + string(p.cur().Kind))
		p.advance()
		return withLoc(&ast.ImportDecl{Path: "<error>"}, loc)
	}
}

// parseGenericParams parses an optional `<T: Bound, U>` list.
func (p *Parser) parseGenericParams() []*ast.GenericParamDecl {
	if _, ok := p.match(lexer.LT); !ok {
		return nil
	}
	var params []*ast.GenericParamDecl
	for !p.atGT() && p.ok() {
		gloc := p.loc()
		name := p.expect(lexer.IDENT)
		var constraint ast.TypeExpr
		if _, ok := p.match(lexer.COLON); ok {
			constraint = p.parseType()
		}
		params = append(params, withLoc(&ast.GenericParamDecl{Name: name.Lexeme, Constraint: constraint}, gloc))
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expectGT()
	return params
}

// operatorSymbolKinds are the tokens that may follow the identifier
// "operator" to name an operator-overload function, e.g. `operator+`
// or `operator[`.
var operatorSymbolKinds = map[lexer.TokenType]bool{
	lexer.PLUS: true, lexer.MINUS: true, lexer.STAR: true, lexer.SLASH: true, lexer.PERCENT: true,
	lexer.EQ: true, lexer.NEQ: true, lexer.LT: true, lexer.GT: true, lexer.LE: true, lexer.GE: true,
	lexer.AND_AND: true, lexer.OR_OR: true, lexer.AMP: true, lexer.PIPE: true, lexer.CARET: true,
	lexer.SHL: true, lexer.SHR: true, lexer.TILDE: true, lexer.LBRACKET: true,
}

// parseFunctionName parses a plain identifier or, when the identifier
// is exactly "operator" followed immediately by an operator symbol,
// folds the two into one combined name ("operator+", "operator[", ...).
func (p *Parser) parseFunctionName() lexer.Token {
	name := p.expect(lexer.IDENT)
	if name.Lexeme == "operator" && operatorSymbolKinds[p.cur().Kind] {
		op := p.advance()
		name.Lexeme += op.Lexeme
	}
	return name
}

// parseFunctionDecl parses `fn<ReturnType> name<Generics>(params)
// [-> ReturnType] [throws T] body?`. The angle-bracket return type and
// the post-parameter `->` return type are both optional and mutually
// redundant; at most one is expected to appear, but either surface
// satisfies ReturnType. Body is nil for an `extern` function or a
// forward declaration inside a trait.
func (p *Parser) parseFunctionDecl(loc source.Location, isAsync, isExtern bool) *ast.FunctionDecl {
	p.advance() // 'fn'
	var retType ast.TypeExpr
	if _, ok := p.match(lexer.LT); ok {
		retType = p.parseType()
		p.expectGT()
	}
	name := p.parseFunctionName()
	generics := p.parseGenericParams()
	params := p.parseParamList()
	if retType == nil {
		if _, ok := p.match(lexer.ARROW); ok {
			retType = p.parseType()
		}
	}
	var throws ast.TypeExpr
	if _, ok := p.match(lexer.THROWS); ok {
		throws = p.parseType()
	}
	p.skipNewlines()
	var body *ast.BlockStmt
	if p.atAny(lexer.LBRACE, lexer.INDENT) {
		body = p.parseBlock()
	} else {
		p.skipTerminator()
	}
	return withLoc(&ast.FunctionDecl{
		IsAsync: isAsync, IsExtern: isExtern, Name: name.Lexeme,
		GenericParams: generics, Params: params, ReturnType: retType,
		ThrowsType: throws, Body: body,
	}, loc)
}

func (p *Parser) parseFieldDecl() *ast.FieldDecl {
	loc := p.loc()
	name := p.expect(lexer.IDENT)
	p.expect(lexer.COLON)
	t := p.parseType()
	var def ast.Expr
	if _, ok := p.match(lexer.ASSIGN); ok {
		def = p.parseExpression()
	}
	p.skipTerminator()
	return withLoc(&ast.FieldDecl{Name: name.Lexeme, Type: t, Default: def}, loc)
}

func (p *Parser) parseStructDecl(loc source.Location) *ast.StructDecl {
	p.advance() // 'struct'
	name := p.expect(lexer.IDENT)
	generics := p.parseGenericParams()
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var fields []*ast.FieldDecl
	for !p.at(lexer.RBRACE) && p.ok() {
		fields = append(fields, p.parseFieldDecl())
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.StructDecl{Name: name.Lexeme, GenericParams: generics, Fields: fields}, loc)
}

func (p *Parser) parseClassDecl(loc source.Location) *ast.ClassDecl {
	p.advance() // 'class'
	name := p.expect(lexer.IDENT)
	generics := p.parseGenericParams()
	var super *ast.NamedType
	if _, ok := p.match(lexer.COLON); ok {
		t := p.parseNamedType(p.loc())
		super, _ = t.(*ast.NamedType)
	}
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var fields []*ast.FieldDecl
	var methods []*ast.FunctionDecl
	for !p.at(lexer.RBRACE) && p.ok() {
		if p.atAny(lexer.FN, lexer.ASYNC) {
			mloc := p.loc()
			_, isAsync := p.match(lexer.ASYNC)
			methods = append(methods, p.parseFunctionDecl(mloc, isAsync, false))
		} else {
			fields = append(fields, p.parseFieldDecl())
		}
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.ClassDecl{Name: name.Lexeme, GenericParams: generics, SuperClass: super, Fields: fields, Methods: methods}, loc)
}

func (p *Parser) parseImplDecl(loc source.Location) *ast.ImplDecl {
	p.advance() // 'impl'
	first := p.parseType()
	var trait *ast.NamedType
	target := first
	if _, ok := p.match(lexer.FOR); ok {
		trait, _ = first.(*ast.NamedType)
		target = p.parseType()
	}
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var methods []*ast.FunctionDecl
	for !p.at(lexer.RBRACE) && p.ok() {
		methods = append(methods, p.parseFunctionDecl(p.loc(), false, false))
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.ImplDecl{Target: target, Trait: trait, Methods: methods}, loc)
}

func (p *Parser) parseEnumVariant() *ast.EnumVariantDecl {
	loc := p.loc()
	name := p.expect(lexer.IDENT)
	var fields []*ast.FieldDecl
	var value ast.Expr
	switch {
	case p.at(lexer.LPAREN):
		p.advance()
		for !p.at(lexer.RPAREN) && p.ok() {
			floc := p.loc()
			fname := p.expect(lexer.IDENT)
			p.expect(lexer.COLON)
			ft := p.parseType()
			fields = append(fields, withLoc(&ast.FieldDecl{Name: fname.Lexeme, Type: ft}, floc))
			if _, ok := p.match(lexer.COMMA); !ok {
				break
			}
		}
		p.expect(lexer.RPAREN)
	case p.matchNoConsume(lexer.ASSIGN):
		p.advance()
		value = p.parseExpression()
	}
	return withLoc(&ast.EnumVariantDecl{Name: name.Lexeme, Fields: fields, Value: value}, loc)
}

func (p *Parser) matchNoConsume(kind lexer.TokenType) bool { return p.at(kind) }

func (p *Parser) parseEnumDecl(loc source.Location) *ast.EnumDecl {
	p.advance() // 'enum'
	name := p.expect(lexer.IDENT)
	generics := p.parseGenericParams()
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var variants []*ast.EnumVariantDecl
	for !p.at(lexer.RBRACE) && p.ok() {
		variants = append(variants, p.parseEnumVariant())
		p.skipNewlines()
		if _, ok := p.match(lexer.COMMA); ok {
			p.skipNewlines()
		}
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.EnumDecl{Name: name.Lexeme, GenericParams: generics, Variants: variants}, loc)
}

// parseTraitDecl parses method signatures only: a trait declares
// behavior, it never supplies bodies.
func (p *Parser) parseTraitDecl(loc source.Location) *ast.TraitDecl {
	p.advance() // 'trait'
	name := p.expect(lexer.IDENT)
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var methods []*ast.FunctionDecl
	for !p.at(lexer.RBRACE) && p.ok() {
		methods = append(methods, p.parseFunctionDecl(p.loc(), false, false))
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.TraitDecl{Name: name.Lexeme, Methods: methods}, loc)
}

// parseTemplateDecl parses a generic-parameterized declaration
// wrapper: `template Name<Params> <wrapped declaration>`.
func (p *Parser) parseTemplateDecl(loc source.Location) *ast.TemplateDecl {
	p.advance() // 'template'
	name := p.expect(lexer.IDENT)
	params := p.parseGenericParams()
	body := p.parseDeclaration()
	return withLoc(&ast.TemplateDecl{Name: name.Lexeme, Params: params, Body: body}, loc)
}

func (p *Parser) parseNamespaceDecl(loc source.Location) *ast.NamespaceDecl {
	p.advance() // 'namespace'
	name := p.expect(lexer.IDENT)
	p.expect(lexer.LBRACE)
	p.skipNewlines()
	var body []ast.Stmt
	for !p.at(lexer.RBRACE) && p.ok() {
		body = append(body, p.parseStatement())
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.NamespaceDecl{Name: name.Lexeme, Body: body}, loc)
}

func (p *Parser) parseTypeAliasDecl(loc source.Location) *ast.TypeAliasDecl {
	p.advance() // 'type'
	name := p.expect(lexer.IDENT)
	p.expect(lexer.ASSIGN)
	t := p.parseType()
	p.skipTerminator()
	return withLoc(&ast.TypeAliasDecl{Name: name.Lexeme, Type: t}, loc)
}

func (p *Parser) parseImportDecl(loc source.Location) *ast.ImportDecl {
	p.advance() // 'import'
	path := p.expect(lexer.IDENT).Lexeme
	for p.at(lexer.DOT) {
		p.advance()
		path += "." + p.expect(lexer.IDENT).Lexeme
	}
	var alias string
	if _, ok := p.match(lexer.AS); ok {
		alias = p.expect(lexer.IDENT).Lexeme
	}
	p.skipTerminator()
	return withLoc(&ast.ImportDecl{Path: path, Alias: alias}, loc)
}
