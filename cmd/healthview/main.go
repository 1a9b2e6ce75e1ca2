// This is the main entry point for the healthview CLI.
// Build with: go build -o bin/healthview ./cmd/healthview
// Usage: healthview <command> [options]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
