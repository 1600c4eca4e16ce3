// Package handlers implements the HTTP endpoint handlers for the collection
// daemon's REST API. Handlers depend on narrow interfaces rather than
// concrete pipeline types so they can be exercised with stubs in tests.
package handlers

import (
	"github.com/zuup-ai/zuup-collect/internal/collector"
	"github.com/zuup-ai/zuup-collect/internal/llm"
)

// Pipeline is the subset of the ingestion pipeline the API handlers need.
// Implemented by *collector.Collector.
type Pipeline interface {
	// Submit runs a comparison through the pipeline and reports whether it
	// was accepted into the submission queue.
	Submit(cmp collector.Comparison) bool
	// Flush synchronously drains the submission queue and returns the number
	// of records handed to the sender.
	Flush() int
	// Stats returns a snapshot of pipeline counters.
	Stats() collector.Stats
	// Domain returns the domain this pipeline collects for.
	Domain() string
}

// PairGenerator produces response pairs for annotation. Aliased so the api
// package does not import the llm package directly.
type PairGenerator = llm.Generator
