package main

import (
	"os"

	"github.com/rickenator/vela/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "tokenize a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		lx := lexer.New(string(content), path)
		tokens := lx.Tokenize()
		for _, tok := range tokens {
			if !quiet {
				cyanColor.Println(tok.String())
			}
		}

		ds := lx.Diagnostics().Items()
		printDiagnostics(ds)
		if hasSeverityError(ds) {
			os.Exit(1)
		}
		return nil
	},
}
