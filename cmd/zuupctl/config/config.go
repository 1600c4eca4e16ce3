// Package config provides configuration management for the zuupctl CLI.
package config

import "github.com/zuup-ai/zuup-collect/internal/version"

const (
	DefaultAPIAddr = "127.0.0.1:8090" // Default zuupd API address (routable)
)

// Version returns the current zuupctl CLI version from the centralized version package
var Version = version.ZuupctlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr  string // Address of the zuupd API server to connect to
	APIKey   string // Optional X-API-Key for authenticated daemon routes
	LogLevel string // Log level for CLI operations
	Timeout  int    // Connection timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Submit holds the submit command configuration
var Submit struct {
	Domain     string  // Taxonomy domain for the comparison
	Category   string  // Category within the domain
	Prompt     string  // Prompt shown to the annotator
	ResponseA  string  // First candidate response
	ResponseB  string  // Second candidate response
	Preference string  // Annotator selection: A, B, or TIE
	UserID     string  // Anonymized annotator identifier
	Confidence float64 // Annotator certainty (0-1)
}

// Seed holds the seed command configuration
var Seed struct {
	Topic  string // Restrict seed selection to one topic
	Evolve string // Evolution strategy to harden the prompt with
	Pair   bool   // Also generate a response pair via the daemon
}

// Domain holds the domain command configuration
var Domain struct {
	Topic string // Filter prompts by topic
}

// Export holds the export command configuration
var Export struct {
	Format        string  // Export format: dpo, jsonl
	MinConfidence float64 // Minimum annotator confidence filter
	Limit         int     // Maximum records to export (0 = all)
	Domain        string  // Restrict export to one domain
	RemoteURL     string  // Preference store base URL
	RemoteKey     string  // Preference store API key
	OutputFile    string  // Destination file ("" = stdout)
}
