/*
File    : vela/cmd/velac/main.go

Package main is the entry point for velac, the Vela front-end driver.
It builds its command tree with Cobra (github.com/spf13/cobra), giving
each pipeline stage its own named subcommand and flags.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
