package taxonomy

import "testing"

// TestRegistryIntegrity verifies structural invariants every domain in the
// registry must satisfy: non-empty identifiers, exactly four categories,
// four scoring dimensions with complete 1-5 anchors, and a positive sample
// target.
func TestRegistryIntegrity(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("Expected 10 registered domains, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, d := range all {
		if d.ID == "" || d.Name == "" || d.Platform == "" {
			t.Errorf("Domain %q missing identity fields", d.ID)
		}
		if seen[d.ID] {
			t.Errorf("Duplicate domain ID %q", d.ID)
		}
		seen[d.ID] = true

		if len(d.Categories) != 4 {
			t.Errorf("Domain %q has %d categories, expected 4", d.ID, len(d.Categories))
		}
		for _, c := range d.Categories {
			if c.ID == "" || c.Name == "" {
				t.Errorf("Domain %q has category with missing fields", d.ID)
			}
			if len(c.ExampleTasks) == 0 {
				t.Errorf("Domain %q category %q has no example tasks", d.ID, c.ID)
			}
		}

		if len(d.Dimensions) != 4 {
			t.Errorf("Domain %q has %d dimensions, expected 4", d.ID, len(d.Dimensions))
		}
		for _, dim := range d.Dimensions {
			for scale := 1; scale <= 5; scale++ {
				if dim.Anchors[scale] == "" {
					t.Errorf("Dimension %q missing anchor for scale %d", dim.Name, scale)
				}
			}
			if dim.Weight < WeightStandard || dim.Weight > WeightCritical {
				t.Errorf("Dimension %q has out-of-range weight %d", dim.Name, dim.Weight)
			}
		}

		if d.MinSamples <= 0 {
			t.Errorf("Domain %q has non-positive sample target %d", d.ID, d.MinSamples)
		}
		if d.AnnotatorRequirements == "" {
			t.Errorf("Domain %q has no annotator requirements", d.ID)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		domainID string
		found    bool
		platform string
	}{
		{"procurement domain", "procurement", true, "Aureon"},
		{"biomedical domain", "biomedical", true, "Symbion"},
		{"hubzone domain", "hubzone", true, "HZ Navigator"},
		{"unknown domain", "cooking", false, ""},
		{"empty ID", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Get(tt.domainID)
			if tt.found {
				if d == nil {
					t.Fatalf("Get(%q) returned nil, expected domain", tt.domainID)
				}
				if d.Platform != tt.platform {
					t.Errorf("Get(%q).Platform = %q, expected %q", tt.domainID, d.Platform, tt.platform)
				}
			} else if d != nil {
				t.Errorf("Get(%q) = %v, expected nil", tt.domainID, d)
			}
		})
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	if len(ids) != 10 {
		t.Fatalf("Expected 10 IDs, got %d", len(ids))
	}
	// Registry order is part of the contract since CLI listings rely on it.
	if ids[0] != "procurement" {
		t.Errorf("First domain ID = %q, expected procurement", ids[0])
	}
	if ids[len(ids)-1] != "hubzone" {
		t.Errorf("Last domain ID = %q, expected hubzone", ids[len(ids)-1])
	}
}

func TestHasCategory(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		category string
		expected bool
	}{
		{"valid category", "procurement", "rfp_analysis", true},
		{"category from other domain", "procurement", "capsule_design", false},
		{"general always accepted", "procurement", "general", true},
		{"general for unknown domain", "cooking", "general", true},
		{"unknown domain specific category", "cooking", "recipes", false},
		{"shared category name", "hubzone", "certification", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCategory(tt.domain, tt.category); got != tt.expected {
				t.Errorf("HasCategory(%q, %q) = %v, expected %v",
					tt.domain, tt.category, got, tt.expected)
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].ID = "mutated"
	if Get("procurement") == nil {
		t.Error("Mutating All() result affected the registry")
	}
}
