// Command omniwsa is a thin external consumer of the compile package:
// it parses flags and wires them to compile.Compile/compile.Check,
// carrying no dialect or generation logic of its own (spec.md §9's
// "dynamic dispatch across dialects" lives entirely in package dialect).
//
// Grounded on cli/main.go's Execute()-and-exit shape.
package main

import (
	"os"

	"github.com/omniwsa/omniwsa/cmd/omniwsa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
