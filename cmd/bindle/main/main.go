package main

import (
	"fmt"
	"os"

	"github.com/bindle-build/bindle/cmd/bindle"
	"github.com/bindle-build/bindle/pkg/output"
)

func main() {
	rootCmd := bindle.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := output.GetStyle(output.StyleError)
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
