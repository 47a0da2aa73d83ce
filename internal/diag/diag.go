/*
File    : vela/internal/diag/diag.go

Package diag implements the ordered diagnostics collector shared by
every pipeline stage (lexer, parser, semantic analyzer), so the lexer
and the semantic analyzer can share one collector type and one wire
format instead of each stage growing its own []string of messages.
*/
package diag

import (
	"fmt"

	"github.com/rickenator/vela/internal/source"
)

// Code is a short, stable diagnostic identifier, additive to the
// free-text message. Diagnostic.String renders
// "{file}:{line}:{col}: {message}" without the Code; velac's printer
// adds the code in brackets after the location.
type Code string

// Severity classifies a diagnostic. Lexical and syntactic errors are
// fatal for the stage that produced them; semantic violations are
// always Warning-severity because the analyzer never halts.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Stable diagnostic codes. New codes should be appended, never
// renumbered, since downstream tooling may pattern-match on them.
const (
	CodeIllegalToken        Code = "E0100"
	CodeUnterminatedString  Code = "E0101"
	CodeTabIndent           Code = "E0102"
	CodeBadIndent           Code = "E0103"
	CodeUnmatchedBrace      Code = "E0104"
	CodeSyntax              Code = "E0200"
	CodeUnsafeViolation     Code = "E0300"
	CodeReservedIdentifier  Code = "E0301"
	// CodeControlOutsideLoop and CodeUnknownIdentifier are reserved for
	// a future extension; the analyzer tracks the underlying state
	// (insideLoop, the scope chain) but does not emit either today.
	CodeControlOutsideLoop Code = "E0302"
	CodeUnknownIdentifier  Code = "E0303"
)

// Diagnostic is one reported problem, pinned to a source location.
type Diagnostic struct {
	Location source.Location
	Severity Severity
	Code     Code
	Message  string
}

// String renders the diagnostic in the canonical
// "{file}:{line}:{column}: {message}" form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Location.String(), d.Message)
}

// Bag accumulates diagnostics in the order they are produced (source
// order), and is the type shared by the lexer's ILLEGAL-token path,
// the parser's fatal-error path, and the semantic analyzer's non-fatal
// accumulation path.
type Bag struct {
	items []Diagnostic
}

// NewBag returns an empty diagnostics collector.
func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0)}
}

// Add appends a diagnostic, preserving emission order.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Errorf is a convenience wrapper around Add for SeverityError
// diagnostics with a formatted message.
func (b *Bag) Errorf(loc source.Location, code Code, format string, args ...any) {
	b.Add(Diagnostic{Location: loc, Severity: SeverityError, Code: code, Message: fmt.Sprintf(format, args...)})
}

// Warnf is a convenience wrapper around Add for SeverityWarning
// diagnostics with a formatted message.
func (b *Bag) Warnf(loc source.Location, code Code, format string, args ...any) {
	b.Add(Diagnostic{Location: loc, Severity: SeverityWarning, Code: code, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any SeverityError diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns the diagnostics in emission order. The returned slice
// is owned by the caller; Bag keeps its own copy.
func (b *Bag) Items() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Len reports how many diagnostics have been recorded.
func (b *Bag) Len() int {
	return len(b.items)
}
