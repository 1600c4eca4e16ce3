package collector

import (
	"strings"
	"testing"
)

// wellFormedComparison returns a comparison that passes every quality check.
func wellFormedComparison() Comparison {
	return Comparison{
		Category:   "far_dfars",
		Prompt:     "What is the difference between FFP and CPFF contracts?",
		ResponseA:  "FFP (Firm Fixed Price) places cost risk on the contractor since the price is set at award and does not change regardless of actual costs incurred during performance.",
		ResponseB:  "CPFF (Cost Plus Fixed Fee) places cost risk on the government, which reimburses allowable costs plus a negotiated fee regardless of the final total.",
		Preference: SideA,
		UserID:     "annotator-1",
	}
}

// TestValidateQualityAccepts tests that a well-formed comparison passes
func TestValidateQualityAccepts(t *testing.T) {
	c := wellFormedComparison()
	m := ValidateQuality(&c)

	if !m.IsValid {
		t.Fatalf("Expected valid comparison, rejected with: %s", m.RejectionReason)
	}
	if m.RejectionReason != "" {
		t.Errorf("Expected empty rejection reason, got %q", m.RejectionReason)
	}
	if m.PromptLength != len(c.Prompt) {
		t.Errorf("PromptLength = %d, want %d", m.PromptLength, len(c.Prompt))
	}
}

// TestValidateQualityIdempotent tests that repeated validation of a fixed
// comparison yields the same verdict and reason
func TestValidateQualityIdempotent(t *testing.T) {
	c := wellFormedComparison()
	c.ResponseB = "short"

	first := ValidateQuality(&c)
	second := ValidateQuality(&c)

	if first.IsValid != second.IsValid {
		t.Errorf("Verdict changed between calls: %t then %t", first.IsValid, second.IsValid)
	}
	if first.RejectionReason != second.RejectionReason {
		t.Errorf("Reason changed between calls: %q then %q",
			first.RejectionReason, second.RejectionReason)
	}
}

// TestValidateQualityRejections tests each rejection path and its reason
func TestValidateQualityRejections(t *testing.T) {
	longResponse := strings.Repeat("All work and no play makes for dull proposals. ", 4)

	tests := []struct {
		name       string
		mutate     func(c *Comparison)
		wantReason string
	}{
		{
			name: "short prompt",
			mutate: func(c *Comparison) {
				c.Prompt = "Why?"
			},
			wantReason: "Prompt too short (4 chars)",
		},
		{
			name: "short response A",
			mutate: func(c *Comparison) {
				c.ResponseA = "Too short."
			},
			wantReason: "Response A too short (10 chars)",
		},
		{
			name: "short response B",
			mutate: func(c *Comparison) {
				c.ResponseB = "Also too short."
			},
			wantReason: "Response B too short (15 chars)",
		},
		{
			name: "oversized response A",
			mutate: func(c *Comparison) {
				c.ResponseA = strings.Repeat("x", MaxResponseLength+1)
				c.ResponseB = strings.Repeat("y", MaxResponseLength)
			},
			wantReason: "Response A too long (10001 chars)",
		},
		{
			name: "oversized response B",
			mutate: func(c *Comparison) {
				c.ResponseB = strings.Repeat("y", MaxResponseLength+1)
				c.ResponseA = strings.Repeat("x", MaxResponseLength)
			},
			wantReason: "Response B too long (10001 chars)",
		},
		{
			name: "skewed length ratio",
			mutate: func(c *Comparison) {
				c.ResponseA = strings.Repeat("a", 1000)
				c.ResponseB = strings.Repeat("b", 100)
			},
			wantReason: "Response length ratio too skewed (0.10)",
		},
		{
			name: "identical responses after trim",
			mutate: func(c *Comparison) {
				c.ResponseA = longResponse
				c.ResponseB = "  " + longResponse + "\n"
			},
			wantReason: "Responses are identical",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := wellFormedComparison()
			tt.mutate(&c)

			m := ValidateQuality(&c)
			if m.IsValid {
				t.Fatal("Expected rejection, comparison was accepted")
			}
			if m.RejectionReason != tt.wantReason {
				t.Errorf("Rejection reason = %q, want %q", m.RejectionReason, tt.wantReason)
			}
		})
	}
}

// TestValidateQualityCharacterCounts tests that length metrics count
// characters rather than bytes so multibyte text is measured as written
func TestValidateQualityCharacterCounts(t *testing.T) {
	short := wellFormedComparison()
	short.Prompt = "日本語です" // 5 characters, 15 bytes

	m := ValidateQuality(&short)
	if m.IsValid {
		t.Fatal("Expected rejection for 5-character prompt, comparison was accepted")
	}
	if m.RejectionReason != "Prompt too short (5 chars)" {
		t.Errorf("Rejection reason = %q, want %q", m.RejectionReason, "Prompt too short (5 chars)")
	}
	if m.PromptLength != 5 {
		t.Errorf("PromptLength = %d, want 5", m.PromptLength)
	}

	// Valid multibyte comparison: metrics must report character counts,
	// roughly a third of the byte counts for this text
	multibyte := wellFormedComparison()
	multibyte.Prompt = "調達契約におけるFFPとCPFFの違いは何ですか"
	multibyte.ResponseA = strings.Repeat("固定価格契約では費用リスクは請負者が負担します。", 2) + "発注時に価格が確定します。"
	multibyte.ResponseB = strings.Repeat("実費償還契約では政府が許容費用と固定報酬を支払います。", 2) + "費用リスク"

	m = ValidateQuality(&multibyte)
	if !m.IsValid {
		t.Fatalf("Expected acceptance for multibyte comparison, rejected with: %s", m.RejectionReason)
	}
	if want := len([]rune(multibyte.ResponseA)); m.ResponseALength != want {
		t.Errorf("ResponseALength = %d, want %d characters", m.ResponseALength, want)
	}
}

// TestValidateQualityEchoBoundary tests the prompt-echo length boundary:
// a response barely longer than the prompt it contains is an echo, while a
// response twice the prompt's length is substantive
func TestValidateQualityEchoBoundary(t *testing.T) {
	// 60-char prompt so the echoing response still clears the minimum length
	prompt := strings.Repeat("Explain the FAR clause on terminations. ", 2)[:60]

	echo := wellFormedComparison()
	echo.Prompt = prompt
	echo.ResponseA = prompt + " Noted."
	echo.ResponseB = strings.Repeat(prompt+" ", 2)[:decentLength(prompt)]

	m := ValidateQuality(&echo)
	if m.IsValid {
		t.Fatal("Expected echo rejection, comparison was accepted")
	}
	if m.RejectionReason != "Response too similar to prompt" {
		t.Errorf("Rejection reason = %q, want echo reason", m.RejectionReason)
	}

	substantive := wellFormedComparison()
	substantive.Prompt = prompt
	substantive.ResponseA = prompt + " " + strings.Repeat("Terminations for convenience let the government end performance. ", 2)
	substantive.ResponseB = strings.Repeat("The clause allocates risk between the parties at contract end. ", 2)

	m = ValidateQuality(&substantive)
	if !m.IsValid {
		t.Fatalf("Expected acceptance for substantive response, rejected with: %s", m.RejectionReason)
	}
}

// decentLength keeps the non-echoing fixture within the ratio bound of the
// short echoing response while staying above the minimum response length
func decentLength(prompt string) int {
	n := len(prompt) + 10
	if n < MinResponseLength {
		n = MinResponseLength
	}
	return n
}

// TestValidateQualityAnalyticsFlags tests the code and formatting flags that
// never affect validity
func TestValidateQualityAnalyticsFlags(t *testing.T) {
	c := wellFormedComparison()
	c.ResponseA = "Use a loop:\n```go\nfor i := range items {\n\tprocess(items[i])\n}\n```\nThat covers it."
	c.ResponseB = "**Summary**\n- iterate the slice\n- process each element in order as shown"
	c.ResponseTimeA = 2.5
	c.ResponseTimeB = 1.0

	m := ValidateQuality(&c)
	if !m.HasCode {
		t.Error("Expected HasCode to be true for fenced code block")
	}
	if !m.HasFormatting {
		t.Error("Expected HasFormatting to be true for markdown markers")
	}
	if m.ResponseTimeDiff != 1.5 {
		t.Errorf("ResponseTimeDiff = %g, want 1.5", m.ResponseTimeDiff)
	}
}
