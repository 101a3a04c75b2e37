// ABOUTME: Entry point for bmi CLI.
// ABOUTME: Invokes the root Cobra command and maps errors to exit code 1.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}
