// Package main provides the entry point for the gonormal CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/sartorproj/gonormal/cmd/gonormal/commands"
)

// Set by the linker: -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
