package main

import (
	"fmt"
	"os"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cargo-jump: %v\n", err)
		os.Exit(1)
	}
}
