// Package config handles configuration validation for the collection daemon.
//
// This package provides validation logic for all daemon configuration
// parameters before startup. Validation ensures reliable operation by:
//   - Parsing and validating the API bind address
//   - Checking the domain against the compiled-in taxonomy registry
//   - Validating pipeline tuning parameters (batch size, flush interval)
//   - Normalizing instance names (generation, format, case)
//   - Verifying remote store and generation backend settings
//
// The validation process transforms raw configuration values into validated,
// normalized forms ready for service initialization.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zuup-ai/zuup-collect/internal/logging"
	"github.com/zuup-ai/zuup-collect/internal/names"
	"github.com/zuup-ai/zuup-collect/internal/taxonomy"
	"github.com/zuup-ai/zuup-collect/internal/validate"
)

// InitializeConfig layers environment variables and the optional TOML
// configuration file onto the global config. Runs after flag parsing so
// explicit flags keep precedence over everything else.
func InitializeConfig() error {
	// A .env file in the working directory feeds the environment lookups
	// below. Missing files are fine.
	if err := godotenv.Load(); err == nil {
		logging.Debug("Loaded environment from .env file")
	}

	// DEBUG environment variable override for development
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}

	if Global.ConfigFile != "" {
		if err := LoadFile(Global.ConfigFile); err != nil {
			return err
		}
		logging.Info("Loaded configuration from %s", Global.ConfigFile)
	}

	// Secrets come from the environment rather than flags so they stay out
	// of process listings and shell history.
	if Global.RemoteAPIKey == "" {
		Global.RemoteAPIKey = os.Getenv("ZUUP_API_KEY")
	}
	if Global.APIKey == "" {
		Global.APIKey = os.Getenv("ZUUP_LOCAL_API_KEY")
	}
	if Global.LLMAPIKey == "" {
		switch strings.ToLower(Global.LLMBackend) {
		case "anthropic":
			Global.LLMAPIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			Global.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	return nil
}

// ValidateConfig performs validation and normalization of all daemon
// configuration parameters before service startup.
//
// Returns error for any validation failure with descriptive context to aid
// debugging.
func ValidateConfig() error {
	// Parse and validate the API bind address. The format supports both
	// "host:port" and "port" (defaulting to 0.0.0.0).
	netAddr, err := validate.ParseBindAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address: %w", err)
	}

	// Port 0 (OS-assigned) would leave clients unable to find the daemon
	if err := validate.ValidateField(netAddr.Port, "required,min=1,max=65535"); err != nil {
		logging.Error("API port cannot be 0 (auto-assigned) - clients need a predictable port")
		return fmt.Errorf("daemon requires specific port (not 0): %w", err)
	}

	Global.APIAddr = netAddr.Host
	Global.APIPort = netAddr.Port

	// Instance names are validated if provided; generated otherwise
	if Global.InstanceName != "" {
		originalName := Global.InstanceName
		Global.InstanceName = strings.ToLower(Global.InstanceName)
		if originalName != Global.InstanceName {
			logging.Warn("Instance name '%s' converted to lowercase: '%s'", originalName, Global.InstanceName)
		}

		if err := validate.InstanceNameFormat(Global.InstanceName); err != nil {
			logging.Error("Invalid instance name '%s': %v", Global.InstanceName, err)
			return fmt.Errorf("invalid instance name: %w", err)
		}
	} else {
		Global.InstanceName = names.Generate()
		logging.Info("Instance name auto-generated: %s", Global.InstanceName)
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	// The domain must exist in the taxonomy registry unless it is the
	// catch-all default, so collected records always map to a known platform.
	if err := validate.DomainIDFormat(Global.Domain); err != nil {
		logging.Error("Invalid domain '%s': %v", Global.Domain, err)
		return fmt.Errorf("invalid domain: %w", err)
	}
	if Global.Domain != DefaultDomain && taxonomy.Get(Global.Domain) == nil {
		logging.Error("Unknown domain '%s' (known: %s)", Global.Domain, strings.Join(taxonomy.IDs(), ", "))
		return fmt.Errorf("unknown domain: %s", Global.Domain)
	}

	if err := validate.ValidateBatchSize(Global.BatchSize); err != nil {
		return fmt.Errorf("batch size validation failed: %w", err)
	}
	if !Global.NoAutoFlush {
		if err := validate.ValidatePositiveTimeout(Global.FlushInterval, "flush interval"); err != nil {
			return err
		}
	}
	if Global.DedupeCacheSize < 1 {
		logging.Error("Invalid dedupe cache size: %d", Global.DedupeCacheSize)
		return fmt.Errorf("dedupe cache size must be at least 1, got: %d", Global.DedupeCacheSize)
	}

	if err := validate.ValidateRequiredString(Global.RemoteURL, "remote URL"); err != nil {
		return err
	}
	if err := validate.ValidatePositiveTimeout(Global.RemoteTimeout, "remote timeout"); err != nil {
		return err
	}

	// Backend validity is checked here so the daemon fails fast instead of
	// surfacing a broken /pairs endpoint at runtime
	switch strings.ToLower(Global.LLMBackend) {
	case "", "ollama", "anthropic", "openai":
	default:
		logging.Error("Invalid LLM backend: %s", Global.LLMBackend)
		return fmt.Errorf("invalid LLM backend: %s (must be ollama, anthropic, or openai)", Global.LLMBackend)
	}

	return nil
}
