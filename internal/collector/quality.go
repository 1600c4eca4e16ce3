// Package collector implements the preference ingestion pipeline.
//
// This file implements the quality gate: a pure, total validation pass that
// rejects comparisons unsuitable for preference training before they consume
// queue capacity or remote store writes. The gate never fails, it only
// classifies; malformed input is just another path to a rejection reason.
package collector

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Quality gate thresholds. A comparison failing any check is rejected with a
// human-readable reason; the first failing check wins so reason strings are
// reproducible for a given input.
const (
	// MinPromptLength is the minimum prompt size worth training on
	MinPromptLength = 10

	// MinResponseLength filters out stub responses that carry no signal
	MinResponseLength = 50

	// MaxResponseLength guards against pathological payloads
	MaxResponseLength = 10000

	// MinLengthRatio requires the shorter response to be at least 30% of the
	// longer one, rejecting pairs where one side is effectively a stub
	MinLengthRatio = 0.3

	// EchoLengthFactor bounds how much longer than the prompt a response must
	// be before a prompt-containing response stops counting as an echo
	EchoLengthFactor = 1.5
)

// markdown markers used for the formatting analytics flag
var formattingMarkers = []string{"**", "##", "- ", "1. "}

// Metrics captures the structural measurements and verdict for one
// comparison. Produced once per submission and discarded after the
// accept/reject decision; never persisted.
//
// The analytics fields (HasCode, HasFormatting, ResponseTimeDiff) never
// affect validity. They exist for downstream quality monitoring only.
type Metrics struct {
	PromptLength     int
	ResponseALength  int
	ResponseBLength  int
	LengthRatio      float64
	HasCode          bool
	HasFormatting    bool
	ResponseTimeDiff float64
	IsValid          bool
	RejectionReason  string
}

// ValidateQuality runs the quality gate over a comparison and returns its
// metrics. Pure and synchronous: no state, no I/O, never fails.
//
// Checks run in a fixed order and the first failure sets the rejection
// reason: prompt length, response A/B minimum length, response A/B maximum
// length, length ratio, identical responses after trimming, and finally
// prompt echo (a response containing the trimmed prompt while being shorter
// than EchoLengthFactor times the prompt length).
func ValidateQuality(c *Comparison) Metrics {
	// Lengths are character counts, not byte counts, so multibyte text is
	// measured the same way annotators read it
	promptLen := utf8.RuneCountInString(c.Prompt)
	respALen := utf8.RuneCountInString(c.ResponseA)
	respBLen := utf8.RuneCountInString(c.ResponseB)

	maxLen := respALen
	minLen := respBLen
	if respBLen > respALen {
		maxLen, minLen = respBLen, respALen
	}
	lengthRatio := 0.0
	if maxLen > 0 {
		lengthRatio = float64(minLen) / float64(maxLen)
	}

	timeDiff := c.ResponseTimeA - c.ResponseTimeB
	if timeDiff < 0 {
		timeDiff = -timeDiff
	}

	m := Metrics{
		PromptLength:     promptLen,
		ResponseALength:  respALen,
		ResponseBLength:  respBLen,
		LengthRatio:      lengthRatio,
		HasCode:          strings.Contains(c.ResponseA, "```") || strings.Contains(c.ResponseB, "```"),
		HasFormatting:    hasFormatting(c.ResponseA + c.ResponseB),
		ResponseTimeDiff: timeDiff,
		IsValid:          true,
	}

	trimmedPrompt := strings.TrimSpace(c.Prompt)

	switch {
	case promptLen < MinPromptLength:
		m.reject("Prompt too short (%d chars)", promptLen)
	case respALen < MinResponseLength:
		m.reject("Response A too short (%d chars)", respALen)
	case respBLen < MinResponseLength:
		m.reject("Response B too short (%d chars)", respBLen)
	case respALen > MaxResponseLength:
		m.reject("Response A too long (%d chars)", respALen)
	case respBLen > MaxResponseLength:
		m.reject("Response B too long (%d chars)", respBLen)
	case lengthRatio < MinLengthRatio:
		m.reject("Response length ratio too skewed (%.2f)", lengthRatio)
	case strings.TrimSpace(c.ResponseA) == strings.TrimSpace(c.ResponseB):
		m.reject("Responses are identical")
	case strings.Contains(c.ResponseA, trimmedPrompt) || strings.Contains(c.ResponseB, trimmedPrompt):
		// A response that merely repeats the prompt carries no preference
		// signal. Containing the prompt is fine once the response adds
		// enough material beyond it.
		if float64(respALen) < float64(promptLen)*EchoLengthFactor {
			m.reject("Response too similar to prompt")
		}
	}

	return m
}

// reject marks the metrics invalid with a formatted reason. Only the first
// rejection sticks since ValidateQuality short-circuits on the first failure.
func (m *Metrics) reject(format string, v ...any) {
	m.IsValid = false
	m.RejectionReason = fmt.Sprintf(format, v...)
}

// hasFormatting reports whether the combined response text carries any of the
// markdown markers tracked for analytics.
func hasFormatting(text string) bool {
	for _, marker := range formattingMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
