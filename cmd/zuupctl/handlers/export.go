// Package handlers provides command handler functions for zuupctl export
// operations.
//
// This file contains the export command handler which talks to the upstream
// preference store directly rather than to a local daemon: exported training
// data lives in the store, not in any single collection daemon's queue. The
// handler reuses the same store client the daemon submits through so auth
// and transport behavior stay identical.
package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	zuupconfig "github.com/zuup-ai/zuup-collect/cmd/zuupctl/config"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/display"
	"github.com/zuup-ai/zuup-collect/cmd/zuupctl/utils"
	"github.com/zuup-ai/zuup-collect/internal/config"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/remote"
)

// HandleExport handles the export subcommand for pulling collected
// preference data out of the store as training material. Records are written
// one JSON object per line to the destination file or stdout, matching the
// jsonl convention training pipelines consume directly.
func HandleExport(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := zuupconfig.ValidateExportFormat(); err != nil {
		return err
	}

	baseURL := zuupconfig.Export.RemoteURL
	if baseURL == "" {
		baseURL = os.Getenv("ZUUP_REMOTE_URL")
	}
	if baseURL == "" {
		baseURL = config.DefaultRemoteBaseURL
	}

	apiKey := zuupconfig.Export.RemoteKey
	if apiKey == "" {
		apiKey = os.Getenv("ZUUP_API_KEY")
	}

	logging.Info("Exporting %s data from preference store: %s",
		zuupconfig.Export.Format, baseURL)

	storeClient := remote.NewClient(baseURL, apiKey,
		time.Duration(zuupconfig.Global.Timeout)*time.Second)

	result, err := storeClient.Export(remote.ExportRequest{
		Format:        zuupconfig.Export.Format,
		MinConfidence: zuupconfig.Export.MinConfidence,
		Limit:         zuupconfig.Export.Limit,
		Domain:        zuupconfig.Export.Domain,
	})
	if err != nil {
		return err
	}

	destination := "stdout"
	out := os.Stdout
	if zuupconfig.Export.OutputFile != "" {
		destination = zuupconfig.Export.OutputFile
		f, err := os.Create(zuupconfig.Export.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	for _, record := range result.Data {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write export record: %w", err)
		}
	}

	// Summary goes to the terminal only when the data went elsewhere,
	// keeping stdout exports pipeable
	if zuupconfig.Export.OutputFile != "" {
		display.DisplayExportSummary(result.Count, result.Format, destination)
	}

	logging.Success("Exported %d record(s) in %s format", result.Count, result.Format)
	return nil
}
