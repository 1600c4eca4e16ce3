// Package config provides configuration validation tests for the collection
// daemon.
//
// This test suite covers the full validation workflow: API address parsing,
// domain registry checks, pipeline tuning parameters, instance name
// normalization, and generation backend selection. Each test resets the
// Global config to a known-good baseline so cases stay independent.
package config

import (
	"strings"
	"testing"
	"time"
)

// setBaseline resets Global to a configuration that passes validation
func setBaseline() Config {
	original := Global
	Global = Config{
		APIAddr:         DefaultAPI,
		Domain:          "procurement",
		BatchSize:       10,
		FlushInterval:   60 * time.Second,
		DedupeCacheSize: 10000,
		RemoteURL:       DefaultRemoteURL,
		RemoteTimeout:   10 * time.Second,
		LogLevel:        "INFO",
	}
	return original
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func()
		expectError   bool
		errorContains string
	}{
		{
			name:   "valid_baseline",
			mutate: func() {},
		},
		{
			name:   "default_domain_bypasses_registry",
			mutate: func() { Global.Domain = DefaultDomain },
		},
		{
			name:          "invalid_api_address",
			mutate:        func() { Global.APIAddr = "not an address" },
			expectError:   true,
			errorContains: "invalid API address",
		},
		{
			name:          "api_port_zero",
			mutate:        func() { Global.APIAddr = "127.0.0.1:0" },
			expectError:   true,
			errorContains: "requires specific port",
		},
		{
			name:          "unknown_domain",
			mutate:        func() { Global.Domain = "cooking" },
			expectError:   true,
			errorContains: "unknown domain",
		},
		{
			name:          "malformed_domain",
			mutate:        func() { Global.Domain = "-procurement" },
			expectError:   true,
			errorContains: "invalid domain",
		},
		{
			name:          "zero_batch_size",
			mutate:        func() { Global.BatchSize = 0 },
			expectError:   true,
			errorContains: "batch size",
		},
		{
			name:          "zero_flush_interval",
			mutate:        func() { Global.FlushInterval = 0 },
			expectError:   true,
			errorContains: "flush interval",
		},
		{
			name:   "zero_flush_interval_ok_without_auto_flush",
			mutate: func() { Global.FlushInterval = 0; Global.NoAutoFlush = true },
		},
		{
			name:          "zero_dedupe_cache",
			mutate:        func() { Global.DedupeCacheSize = 0 },
			expectError:   true,
			errorContains: "dedupe cache size",
		},
		{
			name:          "empty_remote_url",
			mutate:        func() { Global.RemoteURL = "" },
			expectError:   true,
			errorContains: "remote URL",
		},
		{
			name:          "invalid_log_level",
			mutate:        func() { Global.LogLevel = "TRACE" },
			expectError:   true,
			errorContains: "invalid log level",
		},
		{
			name:          "invalid_llm_backend",
			mutate:        func() { Global.LLMBackend = "palm" },
			expectError:   true,
			errorContains: "invalid LLM backend",
		},
		{
			name:   "valid_llm_backend",
			mutate: func() { Global.LLMBackend = "ollama" },
		},
		{
			name:          "invalid_instance_name",
			mutate:        func() { Global.InstanceName = "-bad-name-" },
			expectError:   true,
			errorContains: "invalid instance name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := setBaseline()
			defer func() { Global = original }()

			tt.mutate()
			err := ValidateConfig()

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("expected error containing %q, got %q", tt.errorContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

// TestValidateConfigNameHandling tests instance name generation and
// normalization
func TestValidateConfigNameHandling(t *testing.T) {
	t.Run("empty_name_generated", func(t *testing.T) {
		original := setBaseline()
		defer func() { Global = original }()

		if err := ValidateConfig(); err != nil {
			t.Fatalf("ValidateConfig failed: %v", err)
		}
		if Global.InstanceName == "" {
			t.Error("Expected generated instance name, got empty")
		}
	})

	t.Run("uppercase_name_lowered", func(t *testing.T) {
		original := setBaseline()
		defer func() { Global = original }()

		Global.InstanceName = "Field-Station"
		if err := ValidateConfig(); err != nil {
			t.Fatalf("ValidateConfig failed: %v", err)
		}
		if Global.InstanceName != "field-station" {
			t.Errorf("InstanceName = %q, want field-station", Global.InstanceName)
		}
	})
}

// TestValidateConfigAddressNormalization tests API address splitting
func TestValidateConfigAddressNormalization(t *testing.T) {
	original := setBaseline()
	defer func() { Global = original }()

	Global.APIAddr = "0.0.0.0:9000"
	if err := ValidateConfig(); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
	if Global.APIAddr != "0.0.0.0" {
		t.Errorf("APIAddr = %q, want 0.0.0.0", Global.APIAddr)
	}
	if Global.APIPort != 9000 {
		t.Errorf("APIPort = %d, want 9000", Global.APIPort)
	}
}
