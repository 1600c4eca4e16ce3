// Package config provides configuration management for the collection daemon.
//
// This package implements the complete configuration system for the zuupd
// daemon including network binding, pipeline tuning, remote store
// connectivity, and generation backend selection. It provides centralized
// configuration state with explicit user override tracking so defaults can
// be layered sensibly.
//
// CONFIGURATION LAYERING:
// Values are resolved in precedence order, highest first:
//
//   - Command line flags explicitly set by the user
//   - Environment variables (including a .env file when present)
//   - TOML configuration file passed via --config
//   - Compiled-in defaults
//
// EXPLICIT OVERRIDE TRACKING:
// The configuration system tracks which values were explicitly set by users
// versus inherited from defaults. This lets file and environment values fill
// in only the fields the user did not set on the command line.
package config

import (
	"time"

	configDefaults "github.com/zuup-ai/zuup-collect/internal/config"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	// Configuration field identifiers
	APIAddrField ConfigField = iota
	DomainField
	BatchSizeField
	FlushIntervalField
	RemoteURLField
	LogFileField
)

const (
	DefaultAPI       = "127.0.0.1:8090"             // Default API address (loopback for local annotation tools)
	DefaultLogLevel  = configDefaults.DefaultLogLevel
	DefaultDomain    = configDefaults.DefaultDomain // Default collection domain
	DefaultRemoteURL = configDefaults.DefaultRemoteBaseURL
)

// Config holds all daemon configuration values
type Config struct {
	APIAddr string // HTTP API server address
	APIPort int    // HTTP API server port (derived from APIAddr)
	APIKey  string // Optional key required on local pipeline endpoints

	InstanceName string // Name of this daemon instance
	LogLevel     string // Log level: DEBUG, INFO, WARN, ERROR
	LogFile      string // Optional log file path
	ConfigFile   string // Optional TOML configuration file path

	// Pipeline configuration
	Domain          string        // Taxonomy domain this daemon collects for
	BatchSize       int           // Queue depth that triggers a synchronous flush
	FlushInterval   time.Duration // Background flush cadence
	DedupeCacheSize int           // Maximum content hashes retained for dedupe
	NoQualityGate   bool          // Disable quality validation (testing only)
	NoAutoFlush     bool          // Disable the background flusher

	// Remote store configuration
	RemoteURL     string        // Base URL of the remote preference store
	RemoteAPIKey  string        // API key for remote store requests
	RemoteTimeout time.Duration // HTTP timeout for remote requests

	// Generation backend configuration
	LLMBackend string // ollama, anthropic, or openai (empty disables /pairs)
	LLMModel   string // Backend-specific model identifier
	LLMBaseURL string // Backend endpoint override
	LLMAPIKey  string // Backend API key (hosted backends only)

	// Flags to track if values were explicitly set by user
	apiAddrExplicitlySet       bool
	domainExplicitlySet        bool
	batchSizeExplicitlySet     bool
	flushIntervalExplicitlySet bool
	remoteURLExplicitlySet     bool
	logFileExplicitlySet       bool
}

// Global configuration instance
var Global Config

// SetExplicitlySet marks a configuration field as explicitly set by the user.
// Lets file and environment layering skip fields the user pinned on the
// command line.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	switch field {
	case APIAddrField:
		c.apiAddrExplicitlySet = value
	case DomainField:
		c.domainExplicitlySet = value
	case BatchSizeField:
		c.batchSizeExplicitlySet = value
	case FlushIntervalField:
		c.flushIntervalExplicitlySet = value
	case RemoteURLField:
		c.remoteURLExplicitlySet = value
	case LogFileField:
		c.logFileExplicitlySet = value
	}
}

// IsExplicitlySet returns whether a configuration field was explicitly set
// by the user.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	switch field {
	case APIAddrField:
		return c.apiAddrExplicitlySet
	case DomainField:
		return c.domainExplicitlySet
	case BatchSizeField:
		return c.batchSizeExplicitlySet
	case FlushIntervalField:
		return c.flushIntervalExplicitlySet
	case RemoteURLField:
		return c.remoteURLExplicitlySet
	case LogFileField:
		return c.logFileExplicitlySet
	}
	return false
}
