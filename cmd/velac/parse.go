package main

import (
	"os"

	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/diag"
	"github.com/rickenator/vela/internal/lexer"
	"github.com/rickenator/vela/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a source file and report syntax diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		tokens := lexer.Lex(string(content), path)
		diags := diag.NewBag()
		mod, parseErr := parser.Parse(tokens, path, diags)
		printDiagnostics(diags.Items())

		if trace && mod != nil {
			ast.Walk(&printingVisitor{}, mod)
		}
		if parseErr != nil {
			os.Exit(1)
		}
		infoLine("parsed %s: %d top-level statements", path, len(mod.Statements))
		return nil
	},
}
