package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collect.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

// TestLoadFile tests TOML configuration file loading and flag precedence
func TestLoadFile(t *testing.T) {
	original := setBaseline()
	defer func() { Global = original }()

	path := writeTempConfig(t, `
[api]
addr = "0.0.0.0:9100"

[pipeline]
domain = "biomedical"
batch_size = 25
flush_interval = "30s"

[remote]
url = "https://store.example.com"
api_key = "file-key"
timeout = "5s"

[llm]
backend = "ollama"
model = "mistral:7b"
`)

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if Global.APIAddr != "0.0.0.0:9100" {
		t.Errorf("APIAddr = %q, want 0.0.0.0:9100", Global.APIAddr)
	}
	if Global.Domain != "biomedical" {
		t.Errorf("Domain = %q, want biomedical", Global.Domain)
	}
	if Global.BatchSize != 25 {
		t.Errorf("BatchSize = %d, want 25", Global.BatchSize)
	}
	if Global.FlushInterval != 30*time.Second {
		t.Errorf("FlushInterval = %v, want 30s", Global.FlushInterval)
	}
	if Global.RemoteURL != "https://store.example.com" {
		t.Errorf("RemoteURL = %q, want https://store.example.com", Global.RemoteURL)
	}
	if Global.RemoteAPIKey != "file-key" {
		t.Errorf("RemoteAPIKey = %q, want file-key", Global.RemoteAPIKey)
	}
	if Global.RemoteTimeout != 5*time.Second {
		t.Errorf("RemoteTimeout = %v, want 5s", Global.RemoteTimeout)
	}
	if Global.LLMBackend != "ollama" || Global.LLMModel != "mistral:7b" {
		t.Errorf("LLM config not applied: backend=%q model=%q", Global.LLMBackend, Global.LLMModel)
	}
}

// TestLoadFileRespectsExplicitFlags verifies file values never override
// flags the user set on the command line
func TestLoadFileRespectsExplicitFlags(t *testing.T) {
	original := setBaseline()
	defer func() { Global = original }()

	Global.Domain = "legacy"
	Global.SetExplicitlySet(DomainField, true)
	defer Global.SetExplicitlySet(DomainField, false)

	path := writeTempConfig(t, `
[pipeline]
domain = "biomedical"
`)

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if Global.Domain != "legacy" {
		t.Errorf("Domain = %q, explicit flag should win over file", Global.Domain)
	}
}

// TestLoadFileErrors tests missing files and malformed content
func TestLoadFileErrors(t *testing.T) {
	original := setBaseline()
	defer func() { Global = original }()

	if err := LoadFile("/nonexistent/collect.toml"); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeTempConfig(t, `not valid toml [[[`)
	if err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed TOML")
	}

	path = writeTempConfig(t, `
[pipeline]
flush_interval = "soon"
`)
	if err := LoadFile(path); err == nil {
		t.Error("Expected error for invalid duration")
	}
}
