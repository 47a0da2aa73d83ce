/*
File    : vela/cmd/velac/root.go

The root command and its shared global flags. `--quiet` and `--trace`
are declared on every subcommand; `--trace` prints the parsed AST in
`parse`, `check` and `repl` and has no effect on `lex`, and `--quiet`
does not silence the REPL's banner or its "ok" line. `--parse-only`
and `--semantic-only`
are only meaningful for `check` and are declared there instead.
*/
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	quiet bool
	trace bool
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "velac",
	Short: "velac is the Vela language front-end: lexer, parser, and semantic analyzer",
	Long: `velac drives the Vela front-end pipeline over one or more source files:
lexical analysis, parsing into an AST, and semantic analysis, reporting
diagnostics at each stage without generating code.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output, print only diagnostics")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "print the parsed AST")

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
}

func infoLine(format string, args ...any) {
	if !quiet {
		greenColor.Printf(format+"\n", args...)
	}
}
