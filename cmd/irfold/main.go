// Command irfold evaluates the bundled demo IR programs through the
// constant-folding evaluator and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/irfold/cmd/irfold/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
