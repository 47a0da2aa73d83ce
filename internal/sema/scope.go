/*
File    : vela/internal/sema/scope.go

The lexical scope chain: a map of bindings per scope level with a
Parent pointer walked upward on lookup. A Symbol tags whether a name
names a variable, a function, or a type, since the analyzer needs to
tell those apart — a function call against a variable name, a type
path against a function name, and so on.
*/
package sema

import (
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/source"
)

// Kind classifies what a Symbol names.
type Kind int

const (
	KindVar Kind = iota
	KindFunction
	KindType
)

// Symbol is one binding recorded in a Scope.
type Symbol struct {
	Name string
	Kind Kind
	Type ast.TypeExpr
	Loc  source.Location
}

// Scope is one level of the lexical scope chain. The root Scope (the
// one with a nil Parent) holds every module-level declaration.
type Scope struct {
	symbols map[string]Symbol
	Parent  *Scope
}

// NewScope creates a Scope nested inside parent. parent == nil creates
// the module-level root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{symbols: make(map[string]Symbol), Parent: parent}
}

// Define binds name in this scope, reporting whether it shadowed an
// existing binding already present at this exact level (redeclaring a
// name in the same block, as opposed to legally shadowing an outer
// one).
func (s *Scope) Define(sym Symbol) (shadowed bool) {
	_, shadowed = s.symbols[sym.Name]
	s.symbols[sym.Name] = sym
	return shadowed
}

// Resolve looks up name, walking outward through enclosing scopes.
func (s *Scope) Resolve(name string) (Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}
