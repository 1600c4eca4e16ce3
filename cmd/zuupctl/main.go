// Package main provides the entry point for the Zuup CLI tool (zuupctl).
//
// This package implements the main executable for the preference collection
// CLI that enables operators to interact with zuupd daemons and the upstream
// preference store. The CLI provides commands for monitoring pipeline health,
// submitting test comparisons, browsing the domain taxonomy, and exporting
// collected training data.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: resource-based commands (health, stats, domain, seed)
//   - Handler Integration: command execution with API client communication
//   - Flag Management: global and command-specific configuration options
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to API operations
// 4. Configuration validation and CLI state management
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns for intuitive operation with
// consistent interfaces and comprehensive help text.
package main

import (
	"os"

	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/commands"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.APIKey,
		&config.Global.LogLevel, &config.Global.Timeout, &config.Global.Verbose,
		&config.Global.Output, config.DefaultAPIAddr)

	// Setup pipeline command flags
	_, _, submitCmd, _ := commands.GetPipelineCommands()
	commands.SetupSubmitFlags(submitCmd, &config.Submit.Domain, &config.Submit.Category,
		&config.Submit.Prompt, &config.Submit.ResponseA, &config.Submit.ResponseB,
		&config.Submit.Preference, &config.Submit.UserID, &config.Submit.Confidence)

	// Setup domain command flags
	_, _, domainPromptsCmd := commands.GetDomainCommands()
	commands.SetupDomainFlags(domainPromptsCmd, &config.Domain.Topic)

	// Setup seed and export command flags
	commands.SetupSeedFlags(commands.GetSeedCommand(), &config.Seed.Topic,
		&config.Seed.Evolve, &config.Seed.Pair)
	commands.SetupExportFlags(commands.GetExportCommand(), &config.Export.Format,
		&config.Export.MinConfidence, &config.Export.Limit, &config.Export.Domain,
		&config.Export.RemoteURL, &config.Export.RemoteKey, &config.Export.OutputFile)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	healthCmd, statsCmd, submitCmd, flushCmd := commands.GetPipelineCommands()
	healthCmd.RunE = handlers.HandleHealth
	statsCmd.RunE = handlers.HandleStats
	submitCmd.RunE = handlers.HandleSubmit
	flushCmd.RunE = handlers.HandleFlush

	domainLsCmd, domainInfoCmd, domainPromptsCmd := commands.GetDomainCommands()
	domainLsCmd.RunE = handlers.HandleDomainList
	domainInfoCmd.RunE = handlers.HandleDomainInfo
	domainPromptsCmd.RunE = handlers.HandleDomainPrompts

	commands.GetSeedCommand().RunE = handlers.HandleSeed
	commands.GetExportCommand().RunE = handlers.HandleExport
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
