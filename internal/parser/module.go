/*
File    : vela/internal/parser/module.go

The module-level parse loop: a sequence of top-level declarations and
statements, guarded by a no-progress safety net so a token the grammar
can't place can never spin the parser forever.
*/
package parser

import (
	"github.com/rickenator/vela/internal/ast"
)

func (p *Parser) parseModule() *ast.Module {
	loc := p.loc()
	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.isAtEnd() && p.ok() {
		before := p.pos
		stmts = append(stmts, p.parseStatement())
		p.skipNewlines()
		if p.pos == before {
			// No token was consumed: the current token cannot start any
			// top-level construct. Record it and force progress so the
			// loop always terminates.
			p.fail("unexpected token " + string(p.cur().Kind) + " at top level")
			if !p.isAtEnd() {
				p.advance()
			}
			break
		}
	}
	return ast.NewModule(p.file, loc, stmts)
}
