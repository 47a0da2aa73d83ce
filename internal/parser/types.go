/*
File    : vela/internal/parser/types.go

Type-expression parsing: named (possibly generic, possibly qualified)
types and the postfix type operators `*`, `[]`, `[N]`, `?`, plus the
`fn(...) -> T` and inline `struct{...}` forms.
*/
package parser

import (
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/source"
)

// parseType parses one type expression, applying the postfix
// modifiers (`*`, `[]`, `[N]`, `?`) left-to-right onto whatever base
// type precedes them: `Int*[]?` is an optional slice of pointers.
func (p *Parser) parseType() ast.TypeExpr {
	loc := p.loc()
	t := p.parseBaseType(loc)
	for p.ok() {
		switch {
		case p.at(lexer.STAR):
			p.advance()
			t = withLoc(&ast.PointerType{Elem: t}, loc)
		case p.at(lexer.LBRACKET):
			p.advance()
			var size ast.Expr
			if !p.at(lexer.RBRACKET) {
				size = p.parseExpression()
			}
			p.expect(lexer.RBRACKET)
			t = withLoc(&ast.ArrayType{Elem: t, Size: size}, loc)
		case p.at(lexer.QUESTION):
			p.advance()
			t = withLoc(&ast.OptionalType{Elem: t}, loc)
		default:
			return t
		}
	}
	return t
}

// parseBaseType parses the unmodified head of a type: a named
// (possibly qualified, possibly generic) type, a function type, an
// inline struct type, or a parenthesized tuple type.
func (p *Parser) parseBaseType(loc source.Location) ast.TypeExpr {
	switch {
	case p.at(lexer.FN):
		return p.parseFunctionType(loc)
	case p.at(lexer.STRUCT):
		return p.parseStructType(loc)
	case p.at(lexer.LPAREN):
		return p.parseTupleType(loc)
	case p.at(lexer.CONST):
		if p.peekNext().Kind == lexer.LT {
			return p.parseNamedType(loc) // `const<T>` form
		}
		p.advance()
		t := p.parseBaseType(p.loc())
		if named, ok := t.(*ast.NamedType); ok {
			named.ConstQualified = true
			return named
		}
		return t
	case p.atAny(lexer.IDENT, lexer.MY, lexer.OUR, lexer.THEIR, lexer.PTR):
		return p.parseNamedType(loc)
	default:
		p.fail("expected a type, got " + string(p.cur().Kind))
		p.advance()
		return withLoc(&ast.NamedType{Path: []string{"<error>"}}, loc)
	}
}

// parseNamedType parses a dotted or `::`-qualified path, optionally
// followed by `<T, U>` generic arguments. The ownership-family
// identifiers (my/our/their/ptr) parse here too: the parser treats
// them as ordinary path segments and leaves their ownership semantics
// to the analyzer.
func (p *Parser) parseNamedType(loc source.Location) ast.TypeExpr {
	path := []string{p.advance().Lexeme}
	for p.at(lexer.DOT) || p.at(lexer.COLONCOLON) {
		p.advance()
		path = append(path, p.expect(lexer.IDENT).Lexeme)
	}
	var args []ast.TypeExpr
	if _, ok := p.match(lexer.LT); ok {
		for !p.atGT() {
			args = append(args, p.parseType())
			if !p.ok() {
				break
			}
			if _, ok := p.match(lexer.COMMA); !ok {
				break
			}
		}
		p.expectGT()
	}
	return withLoc(&ast.NamedType{Path: path, GenericArgs: args}, loc)
}

func (p *Parser) parseFunctionType(loc source.Location) ast.TypeExpr {
	p.advance() // 'fn'
	p.expect(lexer.LPAREN)
	var params []ast.TypeExpr
	for !p.at(lexer.RPAREN) {
		params = append(params, p.parseType())
		if !p.ok() {
			break
		}
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expect(lexer.RPAREN)
	var ret ast.TypeExpr
	if _, ok := p.match(lexer.ARROW); ok {
		ret = p.parseType()
	}
	return withLoc(&ast.FunctionType{Params: params, Return: ret}, loc)
}

func (p *Parser) parseStructType(loc source.Location) ast.TypeExpr {
	p.advance() // 'struct'
	p.expect(lexer.LBRACE)
	var fields []ast.StructTypeField
	for !p.at(lexer.RBRACE) && p.ok() {
		fieldLoc := p.loc()
		name := p.expect(lexer.IDENT)
		p.expect(lexer.COLON)
		t := p.parseType()
		fields = append(fields, ast.StructTypeField{Name: name.Lexeme, Type: t, Loc: fieldLoc})
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expect(lexer.RBRACE)
	return withLoc(&ast.StructType{Fields: fields}, loc)
}

func (p *Parser) parseTupleType(loc source.Location) ast.TypeExpr {
	p.advance() // '('
	var elems []ast.TypeExpr
	for !p.at(lexer.RPAREN) {
		elems = append(elems, p.parseType())
		if !p.ok() {
			break
		}
		if _, ok := p.match(lexer.COMMA); !ok {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return withLoc(&ast.TupleType{Elements: elems}, loc)
}
