package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the TOML configuration file layout. All fields are
// optional; zero values mean "not set" and leave the corresponding Global
// field untouched.
type FileConfig struct {
	API struct {
		Addr string `toml:"addr"`
		Key  string `toml:"key"`
	} `toml:"api"`

	Pipeline struct {
		Domain          string `toml:"domain"`
		BatchSize       int    `toml:"batch_size"`
		FlushInterval   string `toml:"flush_interval"`
		DedupeCacheSize int    `toml:"dedupe_cache_size"`
	} `toml:"pipeline"`

	Remote struct {
		URL     string `toml:"url"`
		APIKey  string `toml:"api_key"`
		Timeout string `toml:"timeout"`
	} `toml:"remote"`

	LLM struct {
		Backend string `toml:"backend"`
		Model   string `toml:"model"`
		BaseURL string `toml:"base_url"`
	} `toml:"llm"`
}

// LoadFile parses a TOML configuration file and applies it to the global
// configuration, skipping any field the user already set via command line
// flags.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse TOML in '%s': %w", path, err)
	}

	if fc.API.Addr != "" && !Global.IsExplicitlySet(APIAddrField) {
		Global.APIAddr = fc.API.Addr
	}
	if fc.API.Key != "" && Global.APIKey == "" {
		Global.APIKey = fc.API.Key
	}

	if fc.Pipeline.Domain != "" && !Global.IsExplicitlySet(DomainField) {
		Global.Domain = fc.Pipeline.Domain
	}
	if fc.Pipeline.BatchSize > 0 && !Global.IsExplicitlySet(BatchSizeField) {
		Global.BatchSize = fc.Pipeline.BatchSize
	}
	if fc.Pipeline.FlushInterval != "" && !Global.IsExplicitlySet(FlushIntervalField) {
		d, err := time.ParseDuration(fc.Pipeline.FlushInterval)
		if err != nil {
			return fmt.Errorf("invalid flush_interval '%s' in config file: %w", fc.Pipeline.FlushInterval, err)
		}
		Global.FlushInterval = d
	}
	if fc.Pipeline.DedupeCacheSize > 0 {
		Global.DedupeCacheSize = fc.Pipeline.DedupeCacheSize
	}

	if fc.Remote.URL != "" && !Global.IsExplicitlySet(RemoteURLField) {
		Global.RemoteURL = fc.Remote.URL
	}
	if fc.Remote.APIKey != "" && Global.RemoteAPIKey == "" {
		Global.RemoteAPIKey = fc.Remote.APIKey
	}
	if fc.Remote.Timeout != "" {
		d, err := time.ParseDuration(fc.Remote.Timeout)
		if err != nil {
			return fmt.Errorf("invalid remote timeout '%s' in config file: %w", fc.Remote.Timeout, err)
		}
		Global.RemoteTimeout = d
	}

	if fc.LLM.Backend != "" && Global.LLMBackend == "" {
		Global.LLMBackend = fc.LLM.Backend
	}
	if fc.LLM.Model != "" && Global.LLMModel == "" {
		Global.LLMModel = fc.LLM.Model
	}
	if fc.LLM.BaseURL != "" && Global.LLMBaseURL == "" {
		Global.LLMBaseURL = fc.LLM.BaseURL
	}

	return nil
}
