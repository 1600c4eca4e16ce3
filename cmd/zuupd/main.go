// Package main implements the Zuup collection daemon (zuupd).
// Zuupd runs the local preference ingestion pipeline: annotation tools
// submit pairwise comparisons to its HTTP API, and the daemon validates,
// deduplicates, batches, and forwards accepted records to the remote
// preference store.
package main

import (
	"os"

	"github.com/zuup-ai/zuup-collect/cmd/zuupd/commands"
)

func init() {
	// Setup all command structures
	commands.SetupCommands()
}

// Main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
