// Package daemon provides the collection daemon orchestration and lifecycle
// management.
//
// This package implements the initialization and coordination logic for the
// local preference pipeline. It manages the startup, integration, and
// graceful shutdown of the daemon's services:
//
//   - Remote Client: HTTP transport to the remote preference store
//   - Collector: quality gate, dedupe cache, submission queue, flusher
//   - Generator: optional LLM backend for response pair generation
//   - HTTP API: REST interface for annotation tools and the CLI
//
// SERVICE INTEGRATION FLOW:
// 1. Remote client construction from store URL and credentials
// 2. Pipeline assembly with the remote client as the record sender
// 3. Optional generation backend selection
// 4. API server startup exposing the pipeline to local clients
// 5. Signal-driven shutdown: API first, then the pipeline's final flush
//
// SHUTDOWN ORDERING:
// The API server stops before the pipeline so no new submissions arrive
// while the queue drains. The collector's Stop performs a final synchronous
// flush, which bounds data loss on shutdown to records the remote store
// rejects.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zuup-ai/zuup-collect/cmd/zuupd/config"
	"github.com/zuup-ai/zuup-collect/internal/api"
	"github.com/zuup-ai/zuup-collect/internal/collector"
	"github.com/zuup-ai/zuup-collect/internal/llm"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/netutil"
	"github.com/zuup-ai/zuup-collect/internal/remote"
	"github.com/zuup-ai/zuup-collect/internal/version"
)

// shutdownTimeout bounds how long the API server may take to finish
// in-flight requests during shutdown.
const shutdownTimeout = 10 * time.Second

// buildCollectorConfig converts daemon config to pipeline config
func buildCollectorConfig() *collector.Config {
	cfg := collector.DefaultConfig(config.Global.Domain)

	cfg.BatchSize = config.Global.BatchSize
	cfg.FlushInterval = config.Global.FlushInterval
	cfg.DedupeCacheSize = config.Global.DedupeCacheSize
	cfg.QualityGateEnabled = !config.Global.NoQualityGate
	cfg.AutoFlush = !config.Global.NoAutoFlush

	return cfg
}

// buildGenerator constructs the optional pair generation backend. Returns
// nil when no backend is configured, which disables the /pairs endpoint.
func buildGenerator() (llm.Generator, error) {
	if config.Global.LLMBackend == "" {
		logging.Info("No generation backend configured, /pairs endpoint disabled")
		return nil, nil
	}

	gen, err := llm.NewGenerator(llm.Config{
		Backend: config.Global.LLMBackend,
		Model:   config.Global.LLMModel,
		BaseURL: config.Global.LLMBaseURL,
		APIKey:  config.Global.LLMAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation backend: %w", err)
	}

	logging.Info("Generation backend ready: %s (model: %s)", config.Global.LLMBackend, gen.Model())
	return gen, nil
}

// Run starts the collection daemon and blocks until shutdown
func Run() error {
	logging.Info("Starting Zuup collection daemon v%s", version.ZuupdVersion)
	logging.Info("Instance: %s, Domain: %s", config.Global.InstanceName, config.Global.Domain)
	// Create remote store client
	client := remote.NewClient(config.Global.RemoteURL, config.Global.RemoteAPIKey, config.Global.RemoteTimeout)
	logging.Info("Remote store: %s", client.BaseURL())

	// Probe the remote store so misconfiguration surfaces at startup. A
	// failed probe is not fatal: the store may come up later and failed
	// sends are counted per record.
	if _, err := client.Health(); err != nil {
		if netutil.IsConnectionRefusedError(err) {
			logging.Warn("Remote store refused the connection at %s - check the URL and that the store is running", client.BaseURL())
		} else {
			logging.Warn("Remote store health check failed: %v", err)
		}
		logging.Warn("Continuing startup; submissions will be dropped until the store is reachable")
	} else {
		logging.Success("Remote store is reachable")
	}

	// Assemble the ingestion pipeline
	pipeline, err := collector.New(buildCollectorConfig(), client)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	// Optional generation backend
	generator, err := buildGenerator()
	if err != nil {
		pipeline.Stop()
		return err
	}

	// Start the HTTP API server
	apiConfig := api.DefaultConfig()
	apiConfig.BindAddr = config.Global.APIAddr
	apiConfig.BindPort = config.Global.APIPort
	apiConfig.APIKey = config.Global.APIKey
	apiConfig.InstanceName = config.Global.InstanceName
	apiConfig.Collector = pipeline
	apiConfig.Generator = generator

	if err := apiConfig.Validate(); err != nil {
		pipeline.Stop()
		return fmt.Errorf("invalid API configuration: %w", err)
	}

	server := api.NewServer(apiConfig)
	if err := server.Start(); err != nil {
		pipeline.Stop()
		return fmt.Errorf("failed to start API server: %w", err)
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Success("Collection daemon started successfully")
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	sig := <-sigCh
	logging.Info("Received signal: %v", sig)

	// Graceful shutdown: stop accepting submissions before draining the queue
	logging.Info("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
	}

	// Final flush happens inside Stop
	pipeline.Stop()

	stats := pipeline.Stats()
	logging.Info("Final pipeline stats: collected=%d submitted=%d rejected_quality=%d rejected_duplicate=%d failed=%d",
		stats.Collected, stats.Submitted, stats.RejectedQuality, stats.RejectedDuplicate, stats.Failed)

	logging.Success("Collection daemon shutdown completed")
	return nil
}
