// Package commands provides domain registry command definitions for zuupctl.
package commands

import (
	"github.com/spf13/cobra"
)

// Domain parent command
var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Browse the domain taxonomy",
	Long: `Browse the taxonomy of collection domains served by the daemon.

Each domain defines the categories comparisons are collected under, the
scoring dimensions annotators rate responses on, and collection targets.`,
}

// Domain ls command
var domainLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered domains",
	Example: `  # List all domains
  zuupctl domain ls

  # Include categories and collection targets
  zuupctl domain ls --verbose`,
}

// Domain info command
var domainInfoCmd = &cobra.Command{
	Use:   "info <domain-id>",
	Short: "Show one domain's definition",
	Args:  cobra.ExactArgs(1),
	Example: `  # Inspect the procurement domain
  zuupctl domain info procurement

  # Include example tasks per category
  zuupctl domain info procurement --verbose`,
}

// Domain prompts command
var domainPromptsCmd = &cobra.Command{
	Use:   "prompts <domain-id>",
	Short: "List a domain's seed prompts",
	Args:  cobra.ExactArgs(1),
	Example: `  # List all seed prompts for a domain
  zuupctl domain prompts procurement

  # Restrict to one topic
  zuupctl domain prompts procurement --topic rfq_generation`,
}

// init sets up the domain command hierarchy
func init() {
	domainCmd.AddCommand(domainLsCmd)
	domainCmd.AddCommand(domainInfoCmd)
	domainCmd.AddCommand(domainPromptsCmd)
}

// SetupDomainFlags configures flags for domain subcommands
func SetupDomainFlags(promptsCmd *cobra.Command, topicPtr *string) {
	promptsCmd.Flags().StringVar(topicPtr, "topic", "",
		"Restrict prompts to one topic")
}

// GetDomainCommands returns the domain command references for handler and
// flag wiring
func GetDomainCommands() (lsCommand, infoCommand, promptsCommand *cobra.Command) {
	return domainLsCmd, domainInfoCmd, domainPromptsCmd
}
