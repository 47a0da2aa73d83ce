package main

import (
	"os"
	"strings"

	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/driver"
	"github.com/spf13/cobra"
)

var (
	parseOnly    bool
	semanticOnly bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "run the full lex/parse/analyze pipeline over one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &driver.Pipeline{ParseOnly: parseOnly}
		results := driver.RunMany(args, p, driver.DefaultConcurrency)

		failed := false
		for _, res := range results {
			if trace && res.Module != nil {
				ast.Walk(&printingVisitor{}, res.Module)
			}
			printDiagnostics(filterDiagnostics(res.Diagnostics))
			if res.Err != nil {
				redColor.Fprintf(os.Stderr, "%s: %v\n", res.File, res.Err)
			}
			if res.HasErrors() {
				failed = true
			} else {
				infoLine("%s: ok (%s)", res.File, res.Stage)
			}
		}
		if failed {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&parseOnly, "parse-only", false, "stop after parsing, skip semantic analysis")
	checkCmd.Flags().BoolVar(&semanticOnly, "semantic-only", false, "print only analyzer diagnostics, suppressing lexer/parser ones")
}

// filterDiagnostics drops lexer/parser diagnostics (codes E01xx/E02xx)
// when --semantic-only was requested, keeping only the analyzer's
// (E03xx). Lexing and parsing still run regardless — the analyzer
// needs the AST either way — only the report is narrowed.
func filterDiagnostics(ds []diag.Diagnostic) []diag.Diagnostic {
	if !semanticOnly {
		return ds
	}
	out := make([]diag.Diagnostic, 0, len(ds))
	for _, d := range ds {
		if strings.HasPrefix(string(d.Code), "E03") {
			out = append(out, d)
		}
	}
	return out
}
