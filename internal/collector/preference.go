// Package collector implements the preference ingestion pipeline that sits
// between platform producers and the remote preference store.
//
// The pipeline accepts pairwise comparison submissions from many concurrent
// producers, rejects structurally poor or duplicate pairs synchronously, and
// forwards surviving records to the remote store in batches. A background
// flusher drains the queue on a timer so low-traffic deployments still ship
// their records promptly.
//
// PIPELINE STAGES:
//   - Quality gate: pure validation of prompt/response structure
//   - Deduplication cache: bounded content-hash set with LRU eviction
//   - Submission queue: mutex-protected FIFO of accepted records
//   - Flusher: batch-threshold and timer-driven drains via the remote client
//
// Producers only learn "accepted" or "rejected" synchronously; transmission
// outcomes are observable through Stats and operational logging.
package collector

import (
	"time"

	"github.com/google/uuid"
)

// Side identifies which response the annotator preferred in a comparison.
type Side string

const (
	SideA   Side = "A"
	SideB   Side = "B"
	SideTie Side = "TIE"
)

// Valid reports whether the side marker is one the preference store accepts.
func (s Side) Valid() bool {
	switch s {
	case SideA, SideB, SideTie:
		return true
	}
	return false
}

// Comparison is a single pairwise preference judgment submitted by a producer.
// Created by the caller and treated as immutable once submitted.
//
// Domain and Category locate the comparison in the taxonomy; UserID identifies
// the (anonymized) producer. ResponseTimeA/B carry per-response generation
// latency in seconds when the producer measured it, and Confidence expresses
// the annotator's certainty in the selection (0-1, default 1.0). A zero
// Confidence is indistinguishable from unset and is normalized to 1.0;
// producers meaning "no confidence at all" should send a small epsilon.
type Comparison struct {
	Domain         string            `json:"domain"`
	Category       string            `json:"category"`
	Prompt         string            `json:"prompt"`
	ResponseA      string            `json:"response_a"`
	ResponseB      string            `json:"response_b"`
	Preference     Side              `json:"preference"`
	UserID         string            `json:"user_id"`
	SessionID      string            `json:"session_id,omitempty"`
	ResponseAModel string            `json:"response_a_model,omitempty"`
	ResponseBModel string            `json:"response_b_model,omitempty"`
	ResponseTimeA  float64           `json:"response_time_a,omitempty"`
	ResponseTimeB  float64           `json:"response_time_b,omitempty"`
	Confidence     float64           `json:"confidence,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
}

// Record is an accepted Comparison enriched with a server-assigned identifier
// and timestamp. Records are the unit stored in the submission queue and
// handed to the remote client; they are destroyed on successful transmission
// or dropped (and counted as failures) when a send fails.
type Record struct {
	Comparison

	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// newRecord stamps an accepted comparison with its queue identity. The ID is
// only used for logging correlation; the remote store derives its own
// content hash on receipt.
func newRecord(c Comparison) *Record {
	return &Record{
		Comparison: c,
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
	}
}
