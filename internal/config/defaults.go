// Package config provides common default configuration values shared across
// Zuup Collect components (collector pipeline, ingestion API, remote client).
// This centralizes configuration management and ensures consistency across
// the daemon and CLI tooling.
package config

import "time"

const (
	// DefaultBindAddr is the default bind address for the ingestion API
	// Using 0.0.0.0 allows binding to all available network interfaces
	DefaultBindAddr = "0.0.0.0"

	// DefaultAPIPort is the default port for the ingestion HTTP API
	DefaultAPIPort = 8090

	// DefaultLogLevel is the default log level for all components
	// INFO provides good balance of visibility without verbose debug output
	DefaultLogLevel = "INFO"

	// DefaultDomain is the taxonomy domain used when a deployment does not
	// pin collection to a specific domain
	DefaultDomain = "general"

	// DefaultBatchSize is the queue depth that triggers an immediate flush
	// to the remote preference store
	DefaultBatchSize = 10

	// DefaultFlushInterval is the period between timer-driven flushes of the
	// submission queue when the batch threshold is never reached
	DefaultFlushInterval = 60 * time.Second

	// DefaultDedupeCacheSize bounds the in-memory deduplication cache.
	// When full, the oldest half of the entries is evicted
	DefaultDedupeCacheSize = 10000

	// DefaultRemoteBaseURL is the default endpoint of the remote preference
	// store that receives flushed records
	DefaultRemoteBaseURL = "https://zuup1-zuup-preference-collection.hf.space"

	// DefaultRemoteTimeout bounds each remote store request. Flush latency is
	// the sum of per-record sends, so this also bounds shutdown latency
	DefaultRemoteTimeout = 10 * time.Second
)
