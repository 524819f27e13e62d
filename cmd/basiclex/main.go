// Command basiclex tokenizes BASIC source files and prints their token
// streams.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-basic-lexer/cmd/basiclex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
