package prompts

import (
	"strings"
	"testing"

	"github.com/zuup-ai/zuup-collect/internal/taxonomy"
)

// TestSeedCoverage verifies every taxonomy domain has seed prompts, so the
// seed command never hits an empty library for a registered domain.
func TestSeedCoverage(t *testing.T) {
	for _, id := range taxonomy.IDs() {
		prompts := All(id)
		if len(prompts) == 0 {
			t.Errorf("Domain %q has no seed prompts", id)
			continue
		}
		for _, p := range prompts {
			if p.Prompt == "" {
				t.Errorf("Domain %q topic %q contains empty prompt", id, p.Category)
			}
			if p.Domain != id {
				t.Errorf("Prompt stamped with domain %q, expected %q", p.Domain, id)
			}
		}
	}
}

func TestTopics(t *testing.T) {
	topics := Topics("procurement")
	if len(topics) != 3 {
		t.Fatalf("Expected 3 procurement topics, got %d", len(topics))
	}
	// Sorted order keeps CLI listings stable across runs.
	for i := 1; i < len(topics); i++ {
		if topics[i-1] >= topics[i] {
			t.Errorf("Topics not sorted: %q before %q", topics[i-1], topics[i])
		}
	}
	if Topics("cooking") != nil {
		t.Error("Expected nil topics for unknown domain")
	}
}

func TestRandom(t *testing.T) {
	t.Run("scoped to topic", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			p, err := Random("legacy", "code_translation")
			if err != nil {
				t.Fatalf("Random failed: %v", err)
			}
			if p.Category != "code_translation" {
				t.Fatalf("Expected topic code_translation, got %q", p.Category)
			}
		}
	})

	t.Run("unknown topic falls back to mixed", func(t *testing.T) {
		p, err := Random("legacy", "nonexistent")
		if err != nil {
			t.Fatalf("Random failed: %v", err)
		}
		if p.Category != "mixed" {
			t.Errorf("Expected mixed category, got %q", p.Category)
		}
	})

	t.Run("empty topic mixes all", func(t *testing.T) {
		p, err := Random("halal", "")
		if err != nil {
			t.Fatalf("Random failed: %v", err)
		}
		if p.Category != "mixed" || p.Prompt == "" {
			t.Errorf("Unexpected prompt %+v", p)
		}
	})

	t.Run("unknown domain errors", func(t *testing.T) {
		if _, err := Random("cooking", ""); err == nil {
			t.Error("Expected error for unknown domain")
		}
	})
}

func TestEvolve(t *testing.T) {
	base := "Design a filtering pipeline for EGG signals."

	evolved := Evolve(base, EvolveMultiStep)
	if !strings.Contains(evolved, base) {
		t.Error("Evolved prompt should contain the base prompt")
	}
	if !strings.Contains(evolved, "multi-step") {
		t.Errorf("Expected multi-step framing, got %q", evolved)
	}

	if got := Evolve(base, Evolution("unknown")); got != base {
		t.Errorf("Unknown strategy should return prompt unchanged, got %q", got)
	}
}

func TestValidStrategy(t *testing.T) {
	for _, s := range []string{"complexity", "specificity", "constraint", "multi_step"} {
		if !ValidStrategy(s) {
			t.Errorf("Expected %q to be a valid strategy", s)
		}
	}
	if ValidStrategy("harder") {
		t.Error("Expected 'harder' to be rejected")
	}
}
