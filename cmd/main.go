// Package main provides the CLI entry point for mdl, the mod downloader.
// Without arguments it runs interactively: search, choose a mod, choose a file, download it.
// The search, files and download subcommands perform the same steps non-interactively.
package main

import (
	"fmt"
	"os"

	"mdl/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
