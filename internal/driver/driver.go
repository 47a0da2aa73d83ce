/*
File    : vela/internal/driver/driver.go

Package driver threads one source file through the lex -> parse ->
analyze pipeline and collects the result. The three stages are the
front-end's own (lexer/parser/sema), and the outcome is returned as a
Result instead of being printed, so cmd/velac and tests can both drive
it.
*/
package driver

import (
	"fmt"
	"os"

	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/parser"
	"github.com/rickenator/vela/internal/sema"
)

// Stage records how far a pipeline run got before stopping.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageAnalyze
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageAnalyze:
		return "analyze"
	default:
		return "lex"
	}
}

// Result is one file's outcome: the stage reached, its parsed module
// (nil if parsing failed), and every diagnostic collected along the
// way, lexer first, then parser, then analyzer, preserving each
// stage's own emission order.
type Result struct {
	File        string
	Stage       Stage
	Module      *ast.Module
	Diagnostics []diag.Diagnostic
	Err         error // fatal parse failure, or (from RunMany) a file read error
}

// HasErrors reports whether any SeverityError diagnostic was recorded,
// i.e. whether the pipeline stopped short of a clean analysis.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return r.Err != nil
}

// Pipeline runs lex -> parse -> analyze over one source. ParseOnly
// stops after parsing, skipping the analyzer entirely. Neither stage
// ever shares state with another Pipeline instance, so concurrent
// Pipelines over different files never interfere with each other.
type Pipeline struct {
	ParseOnly bool
}

// NewPipeline returns a Pipeline running the full lex/parse/analyze
// sequence.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Run executes the pipeline over src, attributing every diagnostic to
// file.
func (p *Pipeline) Run(src, file string) Result {
	lx := lexer.New(src, file)
	tokens := lx.Tokenize()
	lexDiags := lx.Diagnostics().Items()

	result := Result{File: file, Stage: StageLex, Diagnostics: lexDiags}
	if hasFatal(lexDiags) {
		return result
	}

	parseDiags := diag.NewBag()
	mod, err := parser.Parse(tokens, file, parseDiags)
	result.Diagnostics = append(result.Diagnostics, parseDiags.Items()...)
	result.Stage = StageParse
	result.Module = mod
	if err != nil {
		result.Err = err
		return result
	}
	if p.ParseOnly {
		return result
	}

	semaDiags := sema.Analyze(mod)
	result.Diagnostics = append(result.Diagnostics, semaDiags.Items()...)
	result.Stage = StageAnalyze
	return result
}

// RunFile reads path from disk and runs the pipeline over its
// contents.
func (p *Pipeline) RunFile(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path}, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.Run(string(content), path), nil
}

func hasFatal(ds []diag.Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
