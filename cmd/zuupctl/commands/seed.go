// Package commands provides seed and export command definitions for zuupctl.
package commands

import (
	"github.com/spf13/cobra"
)

// Seed command
var seedCmd = &cobra.Command{
	Use:   "seed [domain-id]",
	Short: "Pick a random seed prompt",
	Long: `Pick a random curated seed prompt for a domain.

When no domain is given, the daemon's configured collection domain is
used. With --pair the daemon generates a candidate response pair for the
prompt, producing a ready-made comparison for annotation.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  # Random prompt from the daemon's domain
  zuupctl seed

  # Random prompt from a specific domain and topic
  zuupctl seed procurement --topic supplier_evaluation

  # Harden the prompt before use
  zuupctl seed procurement --evolve multi_step

  # Generate a response pair for the prompt
  zuupctl seed procurement --pair`,
}

// Export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export training data from the preference store",
	Long: `Export collected preference data from the upstream store.

The dpo format produces chosen/rejected training pairs; jsonl produces
raw records. Output is one JSON object per line, written to stdout or to
a file with --file.`,
	Example: `  # Export DPO pairs above a confidence threshold
  zuupctl export --format dpo --min-confidence 0.8 --file pairs.jsonl

  # Export raw records for one domain to stdout
  zuupctl export --format jsonl --domain procurement

  # Export from a specific store
  zuupctl export --remote-url https://store.example.com --format dpo`,
}

// SetupSeedFlags configures flags for the seed command
func SetupSeedFlags(seedCmd *cobra.Command, topicPtr *string, evolvePtr *string,
	pairPtr *bool) {
	seedCmd.Flags().StringVar(topicPtr, "topic", "",
		"Restrict selection to one topic")
	seedCmd.Flags().StringVar(evolvePtr, "evolve", "",
		"Evolution strategy: complexity, specificity, constraint, multi_step")
	seedCmd.Flags().BoolVar(pairPtr, "pair", false,
		"Generate a response pair via the daemon")
}

// SetupExportFlags configures flags for the export command
func SetupExportFlags(exportCmd *cobra.Command, formatPtr *string,
	minConfidencePtr *float64, limitPtr *int, domainPtr *string,
	remoteURLPtr *string, remoteKeyPtr *string, outputFilePtr *string) {
	exportCmd.Flags().StringVar(formatPtr, "format", "dpo",
		"Export format: dpo, jsonl")
	exportCmd.Flags().Float64Var(minConfidencePtr, "min-confidence", 0,
		"Minimum annotator confidence filter")
	exportCmd.Flags().IntVar(limitPtr, "limit", 0,
		"Maximum records to export (0 = all)")
	exportCmd.Flags().StringVar(domainPtr, "domain", "",
		"Restrict export to one domain")
	exportCmd.Flags().StringVar(remoteURLPtr, "remote-url", "",
		"Preference store base URL (or ZUUP_REMOTE_URL)")
	exportCmd.Flags().StringVar(remoteKeyPtr, "remote-key", "",
		"Preference store API key (or ZUUP_API_KEY)")
	exportCmd.Flags().StringVar(outputFilePtr, "file", "",
		"Destination file (default stdout)")
}

// GetSeedCommand returns the seed command reference for handler wiring
func GetSeedCommand() *cobra.Command {
	return seedCmd
}

// GetExportCommand returns the export command reference for handler wiring
func GetExportCommand() *cobra.Command {
	return exportCmd
}
