// Command sled is the CLI for the sled scroll kernel: a terminal demo
// plus project configuration helpers.
package main

import (
	"fmt"
	"os"

	"github.com/go-sled/sled/cmd/sled/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
