package llm

import (
	"fmt"
	"strings"

	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// Ollama defaults matching a stock local install.
const (
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "llama3.1:8b"
)

// NewGenerator builds the generator selected by cfg.Backend. An empty
// backend defaults to ollama so the pipeline works against a local model
// without any credentials.
func NewGenerator(cfg Config) (Generator, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaBaseURL
		}
		// Ollama exposes an OpenAI-compatible surface under /v1. Reusing the
		// OpenAI client keeps one request path for both backends.
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = strings.TrimRight(baseURL, "/") + "/v1"
		}
		model := cfg.Model
		if model == "" {
			model = DefaultOllamaModel
		}
		// Ollama ignores the key but the client requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		logging.Debug("Using Ollama backend via OpenAI-compatible API at %s (model: %s)", baseURL, model)
		return NewOpenAIGenerator(apiKey, model, baseURL), nil

	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic backend requires an API key")
		}
		return NewAnthropicGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai backend requires an API key")
		}
		return NewOpenAIGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm backend: %s", cfg.Backend)
	}
}
