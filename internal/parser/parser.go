/*
File    : vela/internal/parser/parser.go

Package parser turns a token vector into an *ast.Module. It uses a
cur/peek lookahead cursor and splits the Pratt table across six
cooperating files — parser.go (cursor), expr.go, types.go, stmt.go,
decl.go, module.go — each a method set on the one Parser struct below,
sharing one mutable token index into an immutable token slice.
*/
package parser

import (
	"fmt"

	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/source"
)

// ParseError is returned by Parse when a syntax error forces parsing to
// stop before a complete module was built. The same error is also
// recorded as a CodeSyntax diagnostic in the Bag passed to Parse.
type ParseError struct {
	Loc     source.Location
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// Parser holds the shared cursor over a token vector. Every sub-parser
// (expression, type, statement, declaration, module) is a method on
// this one type so they can freely call into one another without
// passing state around.
type Parser struct {
	tokens []lexer.Token
	pos    int
	file   string
	diags  *diag.Bag
	fatal  *ParseError
}

// New builds a Parser over tokens. diags receives the fatal syntax
// error, if any, when Parse finishes; a nil Bag is replaced with a
// fresh one.
func New(tokens []lexer.Token, file string, diags *diag.Bag) *Parser {
	if diags == nil {
		diags = diag.NewBag()
	}
	return &Parser{tokens: stripComments(tokens), file: file, diags: diags}
}

// stripComments drops COMMENT tokens before parsing begins: they carry
// no grammatical weight, and filtering them once here keeps every
// cursor method below from having to skip past them on every call.
func stripComments(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != lexer.COMMENT {
			out = append(out, t)
		}
	}
	if len(out) == 0 || out[len(out)-1].Kind != lexer.END_OF_FILE {
		out = append(out, lexer.Token{Kind: lexer.END_OF_FILE})
	}
	return out
}

// Parse lexes-then-parses nothing itself; it consumes the given token
// stream and returns a complete module. Once a fatal syntax error is
// recorded the partial AST is discarded and the error returned,
// matching the fail-fast contract: a module either parses completely
// or not at all.
func Parse(tokens []lexer.Token, file string, diags *diag.Bag) (*ast.Module, error) {
	p := New(tokens, file, diags)
	mod := p.parseModule()
	if p.fatal != nil {
		p.diags.Errorf(p.fatal.Loc, diag.CodeSyntax, "%s", p.fatal.Message)
		return nil, p.fatal
	}
	return mod, nil
}

// Diagnostics returns the Bag accumulated during parsing.
func (p *Parser) Diagnostics() *diag.Bag { return p.diags }

func (p *Parser) cur() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1] // END_OF_FILE sentinel
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) peekNext() lexer.Token { return p.peekAt(1) }

func (p *Parser) at(kind lexer.TokenType) bool { return p.cur().Kind == kind }

func (p *Parser) atAny(kinds ...lexer.TokenType) bool {
	c := p.cur().Kind
	for _, k := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// match consumes and returns the current token if it has kind, else
// leaves the cursor untouched.
func (p *Parser) match(kind lexer.TokenType) (lexer.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	return lexer.Token{}, false
}

// expect consumes a token of kind or records a fatal parse error.
func (p *Parser) expect(kind lexer.TokenType) lexer.Token {
	if p.at(kind) {
		return p.advance()
	}
	p.fail(fmt.Sprintf("expected %s, got %s %q", kind, p.cur().Kind, p.cur().Lexeme))
	return p.cur()
}

// atGT reports whether the current token closes a generic-argument
// list: a bare '>', or a multi-character operator whose leading
// character is '>' and can be split into one.
func (p *Parser) atGT() bool {
	switch p.cur().Kind {
	case lexer.GT, lexer.GE, lexer.SHR, lexer.SHR_ASSIGN:
		return true
	}
	return false
}

// matchGT consumes the '>' that closes a generic-argument list,
// splitting it off a '>=', '>>', or '>>=' token when the lexer merged
// it with what follows (the standard nested-generics fix: `Foo<Bar<T>>`
// lexes its closing pair as one SHR token, not two GTs).
func (p *Parser) matchGT() bool {
	switch p.cur().Kind {
	case lexer.GT:
		p.advance()
		return true
	case lexer.GE:
		p.splitLeadingGT(lexer.ASSIGN, "=")
		return true
	case lexer.SHR:
		p.splitLeadingGT(lexer.GT, ">")
		return true
	case lexer.SHR_ASSIGN:
		p.splitLeadingGT(lexer.GE, ">=")
		return true
	default:
		return false
	}
}

// expectGT is the GT-splitting counterpart to expect(lexer.GT).
func (p *Parser) expectGT() {
	if !p.matchGT() {
		p.fail(fmt.Sprintf("expected %s, got %s %q", lexer.GT, p.cur().Kind, p.cur().Lexeme))
	}
}

// splitLeadingGT consumes the leading '>' of the current token in
// place, rewriting the token at the cursor to the shorter remainder
// (rest) rather than advancing past it, so the next call sees exactly
// what the lexer would have produced had it tokenized the '>' alone.
func (p *Parser) splitLeadingGT(restKind lexer.TokenType, restLexeme string) {
	cur := p.cur()
	p.tokens[p.pos] = lexer.Token{
		Kind:     restKind,
		Lexeme:   restLexeme,
		Location: source.Location{File: cur.Location.File, Line: cur.Location.Line, Column: cur.Location.Column + 1},
	}
}

func (p *Parser) isAtEnd() bool { return p.at(lexer.END_OF_FILE) }

// loc returns the location of the current token, for attaching to a
// node before any of its children have been parsed.
func (p *Parser) loc() source.Location { return p.cur().Location }

// fail records the first fatal parse error. Subsequent calls are
// no-ops: only the first syntax error downstream consumers see
// matters, since everything parsed after it is discarded anyway. The
// error is only written to the Bag by Parse, so a failure inside a
// speculative sub-parse that is rolled back leaves no diagnostic.
func (p *Parser) fail(msg string) {
	if p.fatal != nil {
		return
	}
	p.fatal = &ParseError{Loc: p.loc(), Message: msg}
}

// ok reports whether parsing may continue.
func (p *Parser) ok() bool { return p.fatal == nil }

// skipNewlines consumes any run of NEWLINE tokens (blank statement
// separators); it does not touch INDENT/DEDENT, which carry structural
// meaning a caller must consume explicitly.
func (p *Parser) skipNewlines() {
	for p.at(lexer.NEWLINE) {
		p.advance()
	}
}

// skipTerminator consumes one optional statement terminator: a `;` or
// a run of NEWLINEs, or nothing at all if the next token closes the
// enclosing block. Vela statements are semicolon-optional wherever a
// NEWLINE or closing delimiter already disambiguates the end.
func (p *Parser) skipTerminator() {
	if _, ok := p.match(lexer.SEMI); ok {
		p.skipNewlines()
		return
	}
	p.skipNewlines()
}
