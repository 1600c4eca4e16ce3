// Package commands contains Cobra CLI command definitions for zuupd.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/zuup-ai/zuup-collect/cmd/zuupd/config"
	configDefaults "github.com/zuup-ai/zuup-collect/internal/config"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	// API flags
	cmd.Flags().StringVar(&config.Global.APIAddr, "api", config.DefaultAPI,
		"Address and port for HTTP API server (e.g., "+config.DefaultAPI+")\n"+
			"Defaults to loopback; bind 0.0.0.0 to accept remote annotation tools")
	cmd.Flags().StringVar(&config.Global.APIKey, "api-key", "",
		"API key required on local pipeline endpoints (default: open access)\n"+
			"Can also be set via ZUUP_LOCAL_API_KEY environment variable")

	// Pipeline flags
	cmd.Flags().StringVar(&config.Global.Domain, "domain", config.DefaultDomain,
		"Taxonomy domain this daemon collects preferences for (e.g., procurement)")
	cmd.Flags().IntVar(&config.Global.BatchSize, "batch-size", configDefaults.DefaultBatchSize,
		"Queue depth that triggers a synchronous flush to the remote store")
	cmd.Flags().DurationVar(&config.Global.FlushInterval, "flush-interval", configDefaults.DefaultFlushInterval,
		"Background flush cadence for partially filled batches (e.g., 60s, 5m)")
	cmd.Flags().IntVar(&config.Global.DedupeCacheSize, "dedupe-cache-size", configDefaults.DefaultDedupeCacheSize,
		"Maximum content hashes retained for duplicate detection")
	cmd.Flags().BoolVar(&config.Global.NoQualityGate, "no-quality-gate", false,
		"Disable quality validation of submissions (testing only)")
	cmd.Flags().BoolVar(&config.Global.NoAutoFlush, "no-auto-flush", false,
		"Disable the background flusher (queue drains only on batch threshold or manual flush)")

	// Remote store flags
	cmd.Flags().StringVar(&config.Global.RemoteURL, "remote-url", config.DefaultRemoteURL,
		"Base URL of the remote preference store")
	cmd.Flags().DurationVar(&config.Global.RemoteTimeout, "remote-timeout", configDefaults.DefaultRemoteTimeout,
		"HTTP timeout for remote store requests")

	// Generation backend flags
	cmd.Flags().StringVar(&config.Global.LLMBackend, "llm-backend", "",
		"Generation backend for the /pairs endpoint: ollama, anthropic, or openai\n"+
			"Empty disables pair generation on this daemon")
	cmd.Flags().StringVar(&config.Global.LLMModel, "llm-model", "",
		"Model identifier for the generation backend (backend default when empty)")
	cmd.Flags().StringVar(&config.Global.LLMBaseURL, "llm-base-url", "",
		"Endpoint override for the generation backend (e.g., http://localhost:11434)")

	// Operational flags
	cmd.Flags().StringVar(&config.Global.InstanceName, "name", "",
		"Instance name (defaults to generated name like 'cosmic-dragon')")
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write logs to file instead of stderr (parent directories created as needed)")
	cmd.Flags().StringVar(&config.Global.ConfigFile, "config", "",
		"Path to TOML configuration file (flags take precedence over file values)")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.APIAddrField, cmd.Flags().Changed("api"))
	config.Global.SetExplicitlySet(config.DomainField, cmd.Flags().Changed("domain"))
	config.Global.SetExplicitlySet(config.BatchSizeField, cmd.Flags().Changed("batch-size"))
	config.Global.SetExplicitlySet(config.FlushIntervalField, cmd.Flags().Changed("flush-interval"))
	config.Global.SetExplicitlySet(config.RemoteURLField, cmd.Flags().Changed("remote-url"))
	config.Global.SetExplicitlySet(config.LogFileField, cmd.Flags().Changed("log-file"))
}
