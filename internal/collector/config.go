// Package collector implements the preference ingestion pipeline.
package collector

import (
	"fmt"
	"time"

	"github.com/zuup-ai/zuup-collect/internal/config"
	"github.com/zuup-ai/zuup-collect/internal/validate"
)

// Config holds all configuration parameters for a Collector instance.
// Defines the taxonomy domain being collected for, batching behavior of the
// flush pipeline, and which pipeline stages are active.
//
// Essential for tuning collection behavior across deployments: interactive
// platforms typically keep the defaults, while bulk backfills raise the
// batch size and disable the background flusher in favor of manual flushes.
type Config struct {
	// Domain is the taxonomy domain stamped on every comparison collected
	// by this instance
	Domain string `json:"domain" toml:"domain"`

	// BatchSize is the queue depth that triggers an immediate synchronous
	// flush from the submitting producer
	BatchSize int `json:"batch_size" toml:"batch_size"`

	// FlushInterval is the period between timer-driven background flushes
	FlushInterval time.Duration `json:"flush_interval" toml:"flush_interval"`

	// QualityGateEnabled bypasses structural validation when false. Only
	// intended for trusted pre-validated backfills
	QualityGateEnabled bool `json:"quality_gate_enabled" toml:"quality_gate_enabled"`

	// AutoFlush disables the background flusher when false; callers must
	// then drain the queue via Flush or Stop themselves
	AutoFlush bool `json:"auto_flush" toml:"auto_flush"`

	// DedupeCacheSize bounds the in-memory deduplication cache
	DedupeCacheSize int `json:"dedupe_cache_size" toml:"dedupe_cache_size"`
}

// DefaultConfig returns a Config with production-ready defaults: small
// batches for prompt delivery, a one-minute flush timer as a latency
// backstop, and all pipeline stages enabled.
func DefaultConfig(domain string) *Config {
	if domain == "" {
		domain = config.DefaultDomain
	}
	return &Config{
		Domain:             domain,
		BatchSize:          config.DefaultBatchSize,
		FlushInterval:      config.DefaultFlushInterval,
		QualityGateEnabled: true,
		AutoFlush:          true,
		DedupeCacheSize:    config.DefaultDedupeCacheSize,
	}
}

// Validate performs validation of all collector configuration parameters to
// catch misconfiguration at construction time rather than as runtime
// surprises deep in the pipeline.
func (c *Config) Validate() error {
	if err := validate.DomainIDFormat(c.Domain); err != nil {
		return fmt.Errorf("invalid domain: %w", err)
	}
	if err := validate.ValidateBatchSize(c.BatchSize); err != nil {
		return err
	}
	if c.AutoFlush {
		if err := validate.ValidatePositiveTimeout(c.FlushInterval, "flush interval"); err != nil {
			return err
		}
	}
	if c.DedupeCacheSize <= 0 {
		return fmt.Errorf("dedupe cache size must be positive, got %d", c.DedupeCacheSize)
	}
	return nil
}
