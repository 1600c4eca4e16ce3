// Package handlers provides command handler functions for zuupctl pipeline
// operations.
//
// This file contains the handlers that talk to a running zuupd instance's
// ingestion pipeline: liveness checks, counter snapshots, test submissions,
// and manual queue flushes. These are the day-to-day commands operators use
// to verify a collection daemon is healthy and moving records upstream.
package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/client"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/display"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/utils"
	"github.com/zuup-ai/zuup-collect/internal/collector"
	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// HandleHealth handles the health subcommand for checking daemon liveness
// and basic pipeline context. First command to run when a collection daemon
// looks stuck: it answers whether the API responds at all and how deep the
// submission queue currently is.
func HandleHealth(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching daemon health from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	health, err := apiClient.GetHealth()
	if err != nil {
		return err
	}

	display.DisplayHealth(health)
	logging.Success("Daemon at %s is %s", config.Global.APIAddr, health.Status)
	return nil
}

// HandleStats handles the stats subcommand for retrieving the pipeline
// counter snapshot. Shows where submitted comparisons ended up: forwarded to
// the store, rejected by the quality gate, caught as duplicates, dropped on
// transport failure, or still queued.
func HandleStats(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching pipeline statistics from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	stats, err := apiClient.GetStats()
	if err != nil {
		return err
	}

	display.DisplayStats(stats)
	logging.Success("Successfully retrieved pipeline statistics for domain %s", stats.Domain)
	return nil
}

// HandleSubmit handles the submit subcommand for pushing a single test
// comparison through the daemon's pipeline. Useful for verifying end-to-end
// connectivity and for exercising the quality gate and deduplication cache
// without a producer application.
func HandleSubmit(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	preference := collector.Side(strings.ToUpper(config.Submit.Preference))
	if !preference.Valid() {
		logging.Error("Invalid preference '%s' - must be A, B, or TIE", config.Submit.Preference)
		return fmt.Errorf("invalid preference '%s' - must be A, B, or TIE", config.Submit.Preference)
	}

	logging.Info("Submitting comparison to API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	result, err := apiClient.SubmitPreference(client.SubmitRequest{
		Domain:     config.Submit.Domain,
		Category:   config.Submit.Category,
		Prompt:     config.Submit.Prompt,
		ResponseA:  config.Submit.ResponseA,
		ResponseB:  config.Submit.ResponseB,
		Preference: string(preference),
		UserID:     config.Submit.UserID,
		Confidence: config.Submit.Confidence,
	})
	if err != nil {
		return err
	}

	display.DisplaySubmitResult(result)
	if result.Accepted {
		logging.Success("Comparison accepted (queue depth now %d)", result.Stats.QueueDepth)
	} else {
		logging.Warn("Comparison rejected by the pipeline")
	}
	return nil
}

// HandleFlush handles the flush subcommand for synchronously draining the
// daemon's submission queue ahead of the next timer tick. Typically run
// before stopping a daemon or when verifying store connectivity.
func HandleFlush(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Requesting queue flush from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	result, err := apiClient.Flush()
	if err != nil {
		return err
	}

	display.DisplayFlushResult(result)
	logging.Success("Flushed %d record(s)", result.Flushed)
	return nil
}
