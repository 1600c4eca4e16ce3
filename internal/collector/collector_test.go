package collector

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// stubSender is an in-memory Sender capturing every record it receives.
// failAll switches it to rejecting every send for failure-path tests.
type stubSender struct {
	mu      sync.Mutex
	records []*Record
	failAll bool
}

func (s *stubSender) Send(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return fmt.Errorf("remote store unavailable")
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *stubSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *stubSender) record(i int) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[i]
}

// testConfig returns a collector config with the background flusher off so
// tests control flushing explicitly.
func testConfig() *Config {
	cfg := DefaultConfig("procurement")
	cfg.AutoFlush = false
	return cfg
}

// distinctComparison returns a well-formed comparison with a unique prompt
// so deduplication never interferes with unrelated assertions.
func distinctComparison(i int) Comparison {
	c := wellFormedComparison()
	c.Prompt = fmt.Sprintf("Distinct collection test prompt number %d, please elaborate", i)
	return c
}

// TestSubmitAccepts tests the end-to-end accept path with realistic fixtures
func TestSubmitAccepts(t *testing.T) {
	sender := &stubSender{}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	cmp := Comparison{
		Category:   "geography",
		Prompt:     "What is the capital of France?",
		ResponseA:  "Paris is the capital of France, officially the most populous city in the country and its political center.",
		ResponseB:  "Paris. It has held capital status since the medieval era.",
		Preference: SideA,
		UserID:     "user-42",
	}

	if !c.Submit(cmp) {
		t.Fatal("Expected submission to be accepted")
	}

	stats := c.Stats()
	if stats.RejectedQuality != 0 {
		t.Errorf("RejectedQuality = %d, want 0", stats.RejectedQuality)
	}
	if stats.QueueDepth != 1 {
		t.Errorf("QueueDepth = %d, want 1", stats.QueueDepth)
	}
}

// TestSubmitStampsRecord tests domain stamping and submission defaults
func TestSubmitStampsRecord(t *testing.T) {
	sender := &stubSender{}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	cmp := distinctComparison(0)
	cmp.Domain = "ignored-caller-domain"
	cmp.Category = ""
	cmp.Confidence = 0

	if !c.Submit(cmp) {
		t.Fatal("Expected submission to be accepted")
	}
	if c.Flush() != 1 {
		t.Fatal("Expected one record flushed")
	}

	rec := sender.record(0)
	if rec.Domain != "procurement" {
		t.Errorf("Domain = %q, want collector's domain", rec.Domain)
	}
	if rec.Category != "general" {
		t.Errorf("Category = %q, want default 'general'", rec.Category)
	}
	if rec.Confidence != 1.0 {
		t.Errorf("Confidence = %g, want default 1.0", rec.Confidence)
	}
	if rec.ID == "" {
		t.Error("Expected server-assigned record ID")
	}
	if rec.Timestamp.IsZero() {
		t.Error("Expected server-assigned timestamp")
	}
}

// TestSubmitPreservesUnknownCategory tests that only a missing category gets
// the "general" default; categories outside the static registry pass through
// so producers can use categories the taxonomy has not caught up with
func TestSubmitPreservesUnknownCategory(t *testing.T) {
	sender := &stubSender{}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	cmp := distinctComparison(0)
	cmp.Category = "novel_category_not_in_registry"

	if !c.Submit(cmp) {
		t.Fatal("Expected submission to be accepted")
	}
	if c.Flush() != 1 {
		t.Fatal("Expected one record flushed")
	}

	if got := sender.record(0).Category; got != "novel_category_not_in_registry" {
		t.Errorf("Category = %q, want unknown category preserved", got)
	}
}

// TestSubmitRejectsQuality tests quality rejections and their counter
func TestSubmitRejectsQuality(t *testing.T) {
	sender := &stubSender{}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	bad := wellFormedComparison()
	bad.Prompt = "Hi"

	if c.Submit(bad) {
		t.Fatal("Expected rejection for short prompt")
	}

	stats := c.Stats()
	if stats.Collected != 1 || stats.RejectedQuality != 1 {
		t.Errorf("Stats = %+v, want collected=1 rejected_quality=1", stats)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("QueueDepth = %d, want 0", stats.QueueDepth)
	}
}

// TestSubmitQualityGateBypass tests that disabling the gate admits records
// the gate would reject
func TestSubmitQualityGateBypass(t *testing.T) {
	cfg := testConfig()
	cfg.QualityGateEnabled = false

	sender := &stubSender{}
	c, err := New(cfg, sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	bad := wellFormedComparison()
	bad.Prompt = "Hi"

	if !c.Submit(bad) {
		t.Fatal("Expected acceptance with quality gate disabled")
	}
}

// TestSubmitRejectsDuplicate tests deduplication monotonicity through the
// full submit path
func TestSubmitRejectsDuplicate(t *testing.T) {
	sender := &stubSender{}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	cmp := distinctComparison(0)

	if !c.Submit(cmp) {
		t.Fatal("Expected first submission to be accepted")
	}
	if c.Submit(cmp) {
		t.Fatal("Expected second submission to be rejected as duplicate")
	}

	stats := c.Stats()
	if stats.RejectedDuplicate != 1 {
		t.Errorf("RejectedDuplicate = %d, want 1", stats.RejectedDuplicate)
	}
}

// TestBatchTriggeredFlush tests that reaching the batch threshold flushes
// synchronously without any explicit Flush call
func TestBatchTriggeredFlush(t *testing.T) {
	cfg := testConfig()
	cfg.BatchSize = 5

	sender := &stubSender{}
	c, err := New(cfg, sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	for i := 0; i < cfg.BatchSize; i++ {
		if !c.Submit(distinctComparison(i)) {
			t.Fatalf("Submission %d unexpectedly rejected", i)
		}
	}

	stats := c.Stats()
	if stats.Submitted != int64(cfg.BatchSize) {
		t.Errorf("Submitted = %d, want %d", stats.Submitted, cfg.BatchSize)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("QueueDepth = %d, want 0 after batch flush", stats.QueueDepth)
	}
	if sender.count() != cfg.BatchSize {
		t.Errorf("Sender received %d records, want %d", sender.count(), cfg.BatchSize)
	}
}

// TestFlushOrdering tests FIFO delivery relative to completed submissions
func TestFlushOrdering(t *testing.T) {
	sender := &stubSender{}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	for i := 0; i < 3; i++ {
		c.Submit(distinctComparison(i))
	}
	if got := c.Flush(); got != 3 {
		t.Fatalf("Flush returned %d, want 3", got)
	}

	for i := 0; i < 3; i++ {
		want := fmt.Sprintf("Distinct collection test prompt number %d, please elaborate", i)
		if sender.record(i).Prompt != want {
			t.Errorf("Record %d out of order: got %q", i, sender.record(i).Prompt)
		}
	}
}

// TestFailedSendsCountedAndDropped tests that transmission failures increment
// the failed counter and do not requeue
func TestFailedSendsCountedAndDropped(t *testing.T) {
	sender := &stubSender{failAll: true}
	c, err := New(testConfig(), sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	c.Submit(distinctComparison(0))
	c.Submit(distinctComparison(1))

	if got := c.Flush(); got != 0 {
		t.Errorf("Flush returned %d successful sends, want 0", got)
	}

	stats := c.Stats()
	if stats.Failed != 2 {
		t.Errorf("Failed = %d, want 2", stats.Failed)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("QueueDepth = %d, want 0 (failed records are dropped)", stats.QueueDepth)
	}
}

// TestStatsInvariant tests the accounting identity across mixed outcomes
func TestStatsInvariant(t *testing.T) {
	cfg := testConfig()
	cfg.BatchSize = 3

	sender := &stubSender{}
	c, err := New(cfg, sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	// Mixed traffic: accepted, quality-rejected, duplicate
	for i := 0; i < 7; i++ {
		c.Submit(distinctComparison(i))
	}
	bad := wellFormedComparison()
	bad.Prompt = "Hi"
	c.Submit(bad)
	c.Submit(distinctComparison(0)) // duplicate

	stats := c.Stats()
	sum := stats.Submitted + stats.RejectedQuality + stats.RejectedDuplicate +
		stats.Failed + int64(stats.QueueDepth)
	if stats.Collected != sum {
		t.Errorf("Invariant violated: collected=%d, component sum=%d (%+v)",
			stats.Collected, sum, stats)
	}
}

// TestStopDrainsQueue tests that shutdown performs a final flush
func TestStopDrainsQueue(t *testing.T) {
	cfg := testConfig()
	cfg.AutoFlush = true
	cfg.FlushInterval = time.Hour // Timer never fires during the test

	sender := &stubSender{}
	c, err := New(cfg, sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Submit(distinctComparison(0))
	c.Stop()

	stats := c.Stats()
	if stats.Submitted != 1 {
		t.Errorf("Submitted = %d, want 1 after Stop drain", stats.Submitted)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("QueueDepth = %d, want 0 after Stop", stats.QueueDepth)
	}

	// Stop is idempotent
	c.Stop()
}

// TestBackgroundFlusher tests the timer-driven drain path
func TestBackgroundFlusher(t *testing.T) {
	cfg := testConfig()
	cfg.AutoFlush = true
	cfg.FlushInterval = 20 * time.Millisecond

	sender := &stubSender{}
	c, err := New(cfg, sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer c.Stop()

	c.Submit(distinctComparison(0))

	deadline := time.After(2 * time.Second)
	for sender.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("Background flusher never drained the queue")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// TestConcurrentSubmit tests the pipeline under concurrent producers
func TestConcurrentSubmit(t *testing.T) {
	cfg := testConfig()
	cfg.BatchSize = 10

	sender := &stubSender{}
	c, err := New(cfg, sender)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	const producers = 8
	const perProducer = 25

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				c.Submit(distinctComparison(p*perProducer + i))
			}
		}(p)
	}
	wg.Wait()
	c.Stop()

	stats := c.Stats()
	if stats.Collected != producers*perProducer {
		t.Errorf("Collected = %d, want %d", stats.Collected, producers*perProducer)
	}
	if stats.Submitted != producers*perProducer {
		t.Errorf("Submitted = %d, want %d (all distinct and valid)", stats.Submitted, producers*perProducer)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("QueueDepth = %d, want 0 after Stop", stats.QueueDepth)
	}

	invariantSum := stats.Submitted + stats.RejectedQuality + stats.RejectedDuplicate +
		stats.Failed + int64(stats.QueueDepth)
	if stats.Collected != invariantSum {
		t.Errorf("Invariant violated under concurrency: collected=%d sum=%d",
			stats.Collected, invariantSum)
	}
}
