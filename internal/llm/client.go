// Package llm provides text generation clients for synthetic preference
// pair creation. Supported backends are Ollama (default, via its
// OpenAI-compatible endpoint), Anthropic, and OpenAI.
//
// Pair generation deliberately produces uneven quality: response A is
// sampled at low temperature with a larger token budget and response B at
// high temperature with a smaller one, so annotators have a meaningful
// choice to make. Backend failures fall back to placeholder responses so
// annotation flows keep working without a reachable model.
package llm

import "context"

// GenerateOptions controls a single generation call.
type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
}

// Generator produces a single completion for a prompt.
type Generator interface {
	// Generate returns the model's completion for the prompt. Implementations
	// honor ctx for cancellation and timeouts.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	// Model returns the backend model identifier used for attribution on
	// generated records.
	Model() string
}

// Config selects and configures a generation backend.
type Config struct {
	// Backend is one of "ollama", "anthropic", "openai". Empty defaults to
	// ollama.
	Backend string `json:"backend" toml:"backend"`
	// Model is the backend-specific model identifier. Empty selects the
	// backend's default.
	Model string `json:"model" toml:"model"`
	// BaseURL overrides the backend endpoint. Used mainly for Ollama and
	// OpenAI-compatible gateways.
	BaseURL string `json:"base_url" toml:"base_url"`
	// APIKey authenticates against hosted backends. Ignored by Ollama.
	APIKey string `json:"-" toml:"-"`
}
