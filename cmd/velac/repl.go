/*
File    : vela/cmd/velac/repl.go

The interactive REPL: a banner/prompt/readline loop, ".exit" to quit,
history via arrow keys, and panic recovery per line so one bad input
never kills the session. Each line is fed through driver.Pipeline,
which prints diagnostics instead of a value, since the front-end has
nothing to execute.
*/
package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickenator/vela/internal/ast"
	"github.com/rickenator/vela/internal/driver"
	"github.com/spf13/cobra"
)

const replBanner = `
 __     __   _          _____                _
 \ \   / /__| | __ _   |  ___| __ ___  _ __ | |_
  \ \ / / _ \ |/ _  |  | |_ | '__/ _ \| '_ \| __|
   \ V /  __/ | (_| |  |  _|| | | (_) | | | | |_
    \_/ \___|_|\__,_|  |_|  |_|  \___/|_| |_|\__|
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive lex/parse/analyze session",
	RunE: func(cmd *cobra.Command, args []string) error {
		runREPL()
		return nil
	},
}

func runREPL() {
	greenColor.Println(replBanner)
	cyanColor.Println("Vela front-end REPL. Type '.exit' to quit.")

	rl, err := readline.New("vela> ")
	if err != nil {
		redColor.Printf("readline init failed: %v\n", err)
		return
	}
	defer rl.Close()

	p := driver.NewPipeline()
	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("Good bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Println("Good bye!")
			return
		}
		rl.SaveHistory(line)
		evalLineWithRecovery(p, line)
	}
}

func evalLineWithRecovery(p *driver.Pipeline, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Printf("[internal error] %v\n", r)
		}
	}()

	res := p.Run(line, "<repl>")
	if trace && res.Module != nil {
		ast.Walk(&printingVisitor{}, res.Module)
	}
	printDiagnostics(res.Diagnostics)
	if !res.HasErrors() {
		greenColor.Printf("ok (%s)\n", res.Stage)
	}
}
