// Command gymplan manages training plans and workout history in the embedded
// store, and serves them to MCP clients over stdio.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
