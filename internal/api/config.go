// Package api provides HTTP API server configuration for the collection
// daemon.
//
// This file defines configuration structures and validation logic for the
// REST API server that exposes the preference ingestion pipeline to local
// clients. The configuration covers network binding parameters, optional
// API key authentication, and references to the pipeline components the
// handlers operate on.
//
// The Config struct serves as a dependency injection container: the daemon
// wires in the live collector and generator while tests substitute stubs,
// keeping handlers decoupled from pipeline construction.
package api

import (
	"fmt"

	"github.com/zuup-ai/zuup-collect/internal/api/handlers"
	"github.com/zuup-ai/zuup-collect/internal/config"
	"github.com/zuup-ai/zuup-collect/internal/validate"
)

// Config holds all configuration parameters required for running the HTTP
// API server within the collection daemon.
type Config struct {
	BindAddr     string                 // HTTP server bind address (e.g., "0.0.0.0")
	BindPort     int                    // HTTP server bind port
	APIKey       string                 // Optional API key required on pipeline endpoints
	InstanceName string                 // Daemon instance name reported by the runtime endpoint
	Collector    handlers.Pipeline      // Reference to the ingestion pipeline for data access
	Generator    handlers.PairGenerator // Optional response pair generator (nil disables /pairs)
}

// DefaultConfig creates a new Config instance with sensible default values
// for local development and testing environments.
func DefaultConfig() *Config {
	return &Config{
		// Default to loopback for safer local development. Daemon can override.
		BindAddr:  "127.0.0.1",
		BindPort:  config.DefaultAPIPort,
		Collector: nil, // Must be set by caller
		Generator: nil, // Optional, /pairs returns 503 when unset
	}
}

// Validate performs validation of all configuration parameters to ensure
// the API server can start successfully and operate correctly.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.Collector == nil {
		return fmt.Errorf("collector cannot be nil")
	}

	return nil
}
