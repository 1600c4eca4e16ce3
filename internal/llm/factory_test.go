package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		expectErr bool
		model     string
	}{
		{"empty backend defaults to ollama", Config{}, false, DefaultOllamaModel},
		{"ollama with custom model", Config{Backend: "ollama", Model: "mistral:7b"}, false, "mistral:7b"},
		{"openai with key", Config{Backend: "openai", APIKey: "sk-test"}, false, DefaultOpenAIModel},
		{"openai without key", Config{Backend: "openai"}, true, ""},
		{"anthropic with key", Config{Backend: "anthropic", APIKey: "sk-ant-test"}, false, DefaultAnthropicModel},
		{"anthropic without key", Config{Backend: "anthropic"}, true, ""},
		{"case insensitive backend", Config{Backend: "OpenAI", APIKey: "sk-test"}, false, DefaultOpenAIModel},
		{"unknown backend", Config{Backend: "palm"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.cfg)
			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGenerator failed: %v", err)
			}
			if gen.Model() != tt.model {
				t.Errorf("Model = %q, expected %q", gen.Model(), tt.model)
			}
		})
	}
}

// stubGenerator returns fixed responses keyed by temperature so tests can
// tell the low and high temperature calls apart.
type stubGenerator struct {
	fail      bool
	responses map[float32]string
	calls     int
}

func (s *stubGenerator) Generate(_ context.Context, _ string, opts GenerateOptions) (string, error) {
	s.calls++
	if s.fail {
		return "", fmt.Errorf("backend unreachable")
	}
	return s.responses[opts.Temperature], nil
}

func (s *stubGenerator) Model() string { return "stub-model" }

func TestGeneratePair(t *testing.T) {
	gen := &stubGenerator{responses: map[float32]string{
		PairTemperatureLow:  "careful answer",
		PairTemperatureHigh: "quick answer",
	}}

	p := GeneratePair(context.Background(), gen, "What is CMMC?", "procurement")
	if p.Placeholder {
		t.Fatal("Expected real responses, got placeholders")
	}
	if gen.calls != 2 {
		t.Errorf("Expected 2 generation calls, got %d", gen.calls)
	}
	if p.Model != "stub-model" {
		t.Errorf("Model = %q, expected stub-model", p.Model)
	}

	// Order is randomized but both responses must survive the shuffle.
	got := map[string]bool{p.ResponseA: true, p.ResponseB: true}
	if !got["careful answer"] || !got["quick answer"] {
		t.Errorf("Responses lost in shuffle: A=%q B=%q", p.ResponseA, p.ResponseB)
	}
}

func TestGeneratePairFallback(t *testing.T) {
	gen := &stubGenerator{fail: true}

	p := GeneratePair(context.Background(), gen, "What is CMMC?", "procurement")
	if !p.Placeholder {
		t.Fatal("Expected placeholder fallback on backend failure")
	}
	if !strings.Contains(p.ResponseA, "procurement") || !strings.Contains(p.ResponseB, "procurement") {
		t.Error("Placeholders should mention the domain")
	}
	if p.ResponseA == p.ResponseB {
		t.Error("Placeholder responses must differ")
	}
}

func TestPlaceholderPairEmptyDomain(t *testing.T) {
	a, _ := PlaceholderPair("")
	if !strings.Contains(a, "this domain") {
		t.Errorf("Expected generic domain wording, got %q", a)
	}
}
