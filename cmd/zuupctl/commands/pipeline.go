// Package commands provides pipeline command definitions for zuupctl.
package commands

import (
	"github.com/spf13/cobra"
)

// Health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check daemon health and queue depth",
	Long: `Check that a zuupd daemon is alive and responding.

Shows the daemon version, uptime, configured collection domain, and the
current submission queue depth.`,
	Example: `  # Check the local daemon
  zuupctl health

  # Check a remote daemon
  zuupctl --api=192.168.1.100:8090 health`,
}

// Stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline statistics",
	Long: `Show the daemon's pipeline counter snapshot.

Counters track every comparison the pipeline has seen since startup:
accepted and forwarded to the store, rejected by the quality gate, caught
as duplicates, dropped on transport failure, or still waiting in the queue.`,
	Example: `  # Show pipeline statistics
  zuupctl stats

  # Statistics as JSON for scripting
  zuupctl -o json stats`,
}

// Submit command
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a test comparison through the pipeline",
	Long: `Submit a single preference comparison to the daemon.

The comparison runs through the full ingestion pipeline: quality gate,
deduplication, and queueing. Useful for verifying end-to-end connectivity
and for exercising the filters without a producer application.`,
	Example: `  # Submit a comparison preferring response A
  zuupctl submit --prompt "Draft an RFQ for industrial sensors" \
    --response-a "A detailed draft..." --response-b "A short draft..." \
    --preference A --user-id annotator-01

  # Submit with domain and confidence
  zuupctl submit --domain procurement --category rfq_generation \
    --prompt "..." --response-a "..." --response-b "..." \
    --preference B --user-id annotator-01 --confidence 0.9`,
}

// Flush command
var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Flush the submission queue",
	Long: `Synchronously drain the daemon's submission queue to the
preference store without waiting for the next flush interval.

Typically run before stopping a daemon or when verifying store
connectivity after a network incident.`,
	Example: `  # Flush queued records now
  zuupctl flush`,
}

// SetupSubmitFlags configures flags for the submit command
func SetupSubmitFlags(submitCmd *cobra.Command, domainPtr *string, categoryPtr *string,
	promptPtr *string, responseAPtr *string, responseBPtr *string,
	preferencePtr *string, userIDPtr *string, confidencePtr *float64) {
	submitCmd.Flags().StringVar(domainPtr, "domain", "",
		"Taxonomy domain (defaults to the daemon's configured domain)")
	submitCmd.Flags().StringVar(categoryPtr, "category", "",
		"Category within the domain")
	submitCmd.Flags().StringVar(promptPtr, "prompt", "",
		"Prompt shown to the annotator")
	submitCmd.Flags().StringVar(responseAPtr, "response-a", "",
		"First candidate response")
	submitCmd.Flags().StringVar(responseBPtr, "response-b", "",
		"Second candidate response")
	submitCmd.Flags().StringVar(preferencePtr, "preference", "",
		"Annotator selection: A, B, or TIE")
	submitCmd.Flags().StringVar(userIDPtr, "user-id", "",
		"Anonymized annotator identifier")
	submitCmd.Flags().Float64Var(confidencePtr, "confidence", 1.0,
		"Annotator certainty between 0 and 1")

	submitCmd.MarkFlagRequired("prompt")
	submitCmd.MarkFlagRequired("response-a")
	submitCmd.MarkFlagRequired("response-b")
	submitCmd.MarkFlagRequired("preference")
	submitCmd.MarkFlagRequired("user-id")
}

// GetPipelineCommands returns the pipeline command references for handler
// and flag wiring
func GetPipelineCommands() (healthCommand, statsCommand, submitCommand, flushCommand *cobra.Command) {
	return healthCmd, statsCmd, submitCmd, flushCmd
}
