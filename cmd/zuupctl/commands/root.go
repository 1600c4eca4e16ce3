// Package commands provides the complete command tree implementation for zuupctl.
//
// This package defines the hierarchical command structure for the Zuup CLI
// tool, implementing a resource-based command architecture similar to
// kubectl. Commands are organized into logical groups that match the
// collection daemon's capabilities.
//
// COMMAND STRUCTURE:
//   - health / stats / flush: pipeline monitoring and control
//   - submit: push a test comparison through the pipeline
//   - domain: taxonomy registry browsing (ls, info, prompts)
//   - seed: seed prompt selection and pair generation
//   - export: training-data export from the preference store
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "zuupctl",
	Short: "CLI tool for the Zuup preference collection daemon",
	Long: `Zuup CLI (zuupctl) is a command-line tool for operating a zuupd
preference collection daemon and the upstream preference store.

Similar to kubectl for Kubernetes, zuupctl lets you check pipeline health,
submit test comparisons, browse the domain taxonomy, and export collected
preference data for training.`,
	SilenceUsage: true,
	Example: `  # Check daemon health
  zuupctl health

  # Show pipeline statistics
  zuupctl stats

  # List registered domains
  zuupctl domain ls

  # Inspect one domain's categories and scoring dimensions
  zuupctl domain info procurement

  # Pick a random seed prompt and generate a response pair
  zuupctl seed procurement --pair

  # Submit a test comparison
  zuupctl submit --prompt "Draft an RFQ" --response-a "..." --response-b "..." \
    --preference A --user-id annotator-01

  # Flush the submission queue
  zuupctl flush

  # Export DPO training pairs to a file
  zuupctl export --format dpo --min-confidence 0.8 --file pairs.jsonl

  # Connect to a remote daemon
  zuupctl --api=192.168.1.100:8090 stats

  # Output in JSON format
  zuupctl -o json stats`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(submitCmd)
	RootCmd.AddCommand(flushCmd)
	RootCmd.AddCommand(domainCmd)
	RootCmd.AddCommand(seedCmd)
	RootCmd.AddCommand(exportCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, apiKeyPtr *string,
	logLevelPtr *string, timeoutPtr *int, verbosePtr *bool, outputPtr *string,
	defaultAPIAddr string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", defaultAPIAddr,
		"zuupd API server address")
	rootCmd.PersistentFlags().StringVar(apiKeyPtr, "api-key", "",
		"API key for authenticated daemon routes (or ZUUP_LOCAL_API_KEY)")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
