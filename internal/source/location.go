/*
File    : vela/internal/source/location.go

Package source defines the position information attached to every
token and AST node produced by the front-end.
*/
package source

import "fmt"

// Location is an immutable (file, line, column) triple. It is attached
// to every token and every AST node and is used only for diagnostics
// and error reporting — it never participates in node identity or
// equality beyond what Go's struct comparison gives for free.
//
// Line and Column are both 1-based, matching the convention used
// throughout diagnostic messages ("file.vela:12:5: ...").
type Location struct {
	File   string // source file path, as supplied to the lexer
	Line   int    // 1-indexed line number
	Column int    // 1-indexed column number
}

// Zero reports whether loc is the unset Location value. Synthetic
// nodes that have no meaningful source position (e.g. a desugared
// helper) may carry the zero Location rather than a fabricated one.
func (loc Location) Zero() bool {
	return loc.File == "" && loc.Line == 0 && loc.Column == 0
}

// String renders the location in the "{file}:{line}:{column}" form
// used as the prefix of every diagnostic message.
func (loc Location) String() string {
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Column)
}

// New builds a Location from explicit coordinates. It exists mainly so
// call sites read as `source.New(file, line, col)` rather than a bare
// struct literal.
func New(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}
