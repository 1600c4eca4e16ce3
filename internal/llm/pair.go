package llm

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// Sampling parameters for pair generation. Response A gets a low
// temperature and larger budget, response B a high temperature and smaller
// budget, so the two responses differ in quality rather than only wording.
const (
	PairTemperatureLow  float32 = 0.3
	PairTemperatureHigh float32 = 0.7
	PairMaxTokensA              = 1024
	PairMaxTokensB              = 512
)

// Pair holds two generated responses and their generation metadata, ready
// to be assembled into a preference comparison.
type Pair struct {
	ResponseA     string
	ResponseB     string
	ResponseTimeA float64
	ResponseTimeB float64
	Model         string
	// Placeholder is true when the backend failed and canned responses were
	// substituted so annotation can proceed.
	Placeholder bool
}

// GeneratePair produces two responses for the prompt with deliberate
// quality variation. The low and high temperature responses are shuffled so
// response A is not consistently the stronger one. When either generation
// fails, both responses are replaced with placeholders rather than
// returning an error since annotation UIs need a pair to render.
func GeneratePair(ctx context.Context, gen Generator, prompt, domainID string) Pair {
	low, lowDur, errLow := timedGenerate(ctx, gen, prompt, GenerateOptions{
		Temperature: PairTemperatureLow,
		MaxTokens:   PairMaxTokensA,
	})
	high, highDur, errHigh := timedGenerate(ctx, gen, prompt, GenerateOptions{
		Temperature: PairTemperatureHigh,
		MaxTokens:   PairMaxTokensB,
	})

	if errLow != nil || errHigh != nil {
		logging.Warn("Pair generation fell back to placeholders (low: %v, high: %v)", errLow, errHigh)
		a, b := PlaceholderPair(domainID)
		return Pair{
			ResponseA:   a,
			ResponseB:   b,
			Model:       gen.Model(),
			Placeholder: true,
		}
	}

	p := Pair{
		ResponseA:     low,
		ResponseB:     high,
		ResponseTimeA: lowDur.Seconds(),
		ResponseTimeB: highDur.Seconds(),
		Model:         gen.Model(),
	}
	// Shuffle to avoid position bias in collected preferences.
	if rand.Float64() > 0.5 {
		p.ResponseA, p.ResponseB = p.ResponseB, p.ResponseA
		p.ResponseTimeA, p.ResponseTimeB = p.ResponseTimeB, p.ResponseTimeA
	}
	return p
}

func timedGenerate(ctx context.Context, gen Generator, prompt string, opts GenerateOptions) (string, time.Duration, error) {
	start := time.Now()
	out, err := gen.Generate(ctx, prompt, opts)
	dur := time.Since(start)
	if err != nil {
		return "", dur, err
	}
	if out == "" {
		return "", dur, fmt.Errorf("backend returned empty response")
	}
	return out, dur, nil
}

// PlaceholderPair returns canned responses for use when no backend is
// reachable or generation is disabled.
func PlaceholderPair(domainID string) (string, string) {
	if domainID == "" {
		domainID = "this domain"
	}
	a := fmt.Sprintf(`**Response A**

Based on my analysis of your %s query:

1. **Primary Analysis**: The core issue involves understanding fundamental requirements.
2. **Key Considerations**: Regulatory factors, technical feasibility, resource implications.
3. **Recommended Approach**: A phased approach prioritizing risk mitigation.
4. **Next Steps**: Document current state, identify stakeholders, develop roadmap.

*[Placeholder response generated without a model backend]*`, domainID)

	b := fmt.Sprintf(`**Response B**

Thank you for this %s question. Here's my analysis:

**Executive Summary**: This requires balancing immediate needs against long-term objectives.

**Technical Perspective**:
- Option 1: Conservative approach minimizing risk
- Option 2: Aggressive approach maximizing benefits
- Option 3: Balanced trade-off approach

**Recommendations**:
1. Conduct thorough assessment
2. Engage stakeholders early
3. Establish success metrics
4. Implement iterative improvements

*[Placeholder response generated without a model backend]*`, domainID)

	return a, b
}
