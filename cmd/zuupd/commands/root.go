// Package commands provides the complete CLI command structure for the
// collection daemon.
//
// This package implements the root command and command hierarchy for zuupd,
// the preference collection daemon. It manages the CLI interface for
// pipeline configuration, remote store connectivity, and operational
// parameters through a comprehensive flag system and validation pipeline.
//
// COMMAND ARCHITECTURE:
// The daemon uses a simple root command structure with extensive flag
// support:
//   - Root Command: Main daemon execution with pipeline configuration
//   - Flag System: Network, pipeline, remote store, and backend settings
//   - Validation Pipeline: Pre-execution configuration validation and setup
//   - Logo Display: Daemon startup presentation
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zuup-ai/zuup-collect/cmd/zuupd/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupd/daemon"
	"github.com/zuup-ai/zuup-collect/cmd/zuupd/utils"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/version"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists.
// This function is called during daemon shutdown to ensure proper cleanup.
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Log to stderr since we're cleaning up the log file
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the collection daemon
var RootCmd = &cobra.Command{
	Use:   "zuupd",
	Short: "Preference collection daemon for domain-specific RLHF data",
	Long: `Zuup collection daemon (zuupd) runs the local preference ingestion pipeline.

Annotation tools submit pairwise comparisons to the local HTTP API; the
daemon validates quality, drops duplicates, batches accepted records, and
forwards them to the remote preference store.

Auto-generates an instance name and runs against the hosted store when not
explicitly configured.`,
	Version:      version.ZuupdVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Collect for the procurement domain with defaults
  zuupd --domain=procurement

  # Custom batching and a local annotation network
  zuupd --domain=biomedical --api=0.0.0.0:8090 --batch-size=25 --flush-interval=30s

  # Enable pair generation against a local Ollama
  zuupd --domain=legacy --llm-backend=ollama --llm-model=llama3.1:8b

  # Run from a configuration file
  zuupd --config=/etc/zuup/collect.toml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Display logo first, before any validation or logging
		utils.DisplayLogo(version.ZuupdVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Check which flags were explicitly set by user
		CheckExplicitFlags(cmd)

		// Setup log file redirection if --log-file was specified
		if config.Global.IsExplicitlySet(config.LogFileField) && config.Global.LogFile != "" {
			// Create parent directories if they don't exist
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			// Open/create log file with append mode
			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			// Redirect all logging to the file
			logging.SetOutput(logFileHandle)
		}

		// Configure logging level immediately after flags are parsed to prevent
		// INFO logs during config initialization when ERROR level is requested
		logging.SetLevel(config.Global.LogLevel)
		// Layer environment variables and the config file onto flag values
		if err := config.InitializeConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		// Re-apply logging level after config initialization to pick up
		// any environment variable overrides that may have changed it
		logging.SetLevel(config.Global.LogLevel)
		// Validate configuration and ensure log file cleanup on failure
		if err := config.ValidateConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ensure log file cleanup on exit
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Setup all flags
	SetupFlags(RootCmd)
}
