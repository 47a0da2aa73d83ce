package main

import (
	"os"

	"github.com/rickenator/vela/internal/diag"
)

// printDiagnostics renders every diagnostic in emission order, coloring
// errors red and warnings yellow.
func printDiagnostics(ds []diag.Diagnostic) {
	for _, d := range ds {
		line := d.Location.String() + ": [" + string(d.Code) + "] " + d.Message
		if d.Severity == diag.SeverityError {
			redColor.Fprintln(os.Stderr, line)
		} else {
			yellowColor.Fprintln(os.Stderr, line)
		}
	}
}

func hasSeverityError(ds []diag.Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
