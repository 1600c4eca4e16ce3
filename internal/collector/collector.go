// Package collector implements the preference ingestion pipeline.
//
// This file implements the Collector orchestrator: the surface producers
// call. Submission runs the quality gate and deduplication synchronously,
// queues survivors, and triggers an immediate flush when the queue reaches
// the batch threshold. A background flusher owned by the Collector drains
// the queue on a timer so records never sit longer than one interval.
package collector

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// Sender submits one accepted record to the remote preference store.
// Single attempt, synchronous, may block on network I/O; implementations
// should carry their own request timeout since the Collector does not
// cancel in-flight sends.
//
// Essential for decoupling the pipeline from the concrete HTTP client so
// tests can exercise flush behavior with in-memory stubs.
type Sender interface {
	Send(record *Record) error
}

// Stats is a point-in-time snapshot of collection counters. The counters are
// monotonically increasing for the life of the Collector; QueueDepth and
// AcceptanceRate are computed at snapshot time.
//
// Invariant when no submission is mid-flight:
// Collected == Submitted + RejectedQuality + RejectedDuplicate + Failed + QueueDepth
type Stats struct {
	Collected         int64   `json:"collected"`
	Submitted         int64   `json:"submitted"`
	RejectedQuality   int64   `json:"rejected_quality"`
	RejectedDuplicate int64   `json:"rejected_duplicate"`
	Failed            int64   `json:"failed"`
	QueueDepth        int     `json:"queue_depth"`
	AcceptanceRate    float64 `json:"acceptance_rate"`
}

// Collector orchestrates the preference ingestion pipeline for one taxonomy
// domain. Safe for concurrent use: any number of producers may call Submit
// while the background flusher and batch-threshold path drain the queue.
//
// The Collector exclusively owns its queue, deduplication cache, and
// counters. The Sender is shared but stateless from the Collector's
// perspective.
type Collector struct {
	cfg    *Config
	sender Sender
	dedupe *DedupeCache

	// queueMu protects the FIFO of accepted records awaiting transmission
	queueMu sync.Mutex
	queue   []*Record

	// flushMu serializes flushes so the timer path and the batch-threshold
	// path cannot interleave their drain loops
	flushMu sync.Mutex

	collected         atomic.Int64
	submitted         atomic.Int64
	rejectedQuality   atomic.Int64
	rejectedDuplicate atomic.Int64
	failed            atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Collector with the given configuration and remote sender,
// and starts the background flusher unless auto-flush is disabled.
//
// The returned Collector is ready for concurrent Submit calls. Callers must
// invoke Stop exactly once when done to terminate the background worker and
// drain any queued records.
func New(cfg *Config, sender Sender) (*Collector, error) {
	if cfg == nil {
		cfg = DefaultConfig("")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collector config: %w", err)
	}
	if sender == nil {
		return nil, fmt.Errorf("sender is required")
	}

	c := &Collector{
		cfg:    cfg,
		sender: sender,
		dedupe: NewDedupeCache(cfg.DedupeCacheSize),
		stopCh: make(chan struct{}),
	}

	if cfg.AutoFlush {
		c.wg.Add(1)
		go c.runFlusher()
	}

	logging.Info("Collector: Started for domain %s (batch=%d, interval=%s, auto_flush=%t)",
		cfg.Domain, cfg.BatchSize, cfg.FlushInterval, cfg.AutoFlush)
	return c, nil
}

// Submit runs a comparison through the pipeline. Returns true when the
// comparison was accepted (queued or already flushed) and false when the
// quality gate or deduplication cache rejected it; the specific reason is
// logged and reflected in Stats.
//
// When the queue reaches the batch threshold the submitting producer
// performs the flush synchronously before returning. This is deliberate
// backpressure: a slow remote store throttles producers naturally once the
// threshold is crossed repeatedly.
func (c *Collector) Submit(cmp Comparison) bool {
	c.normalize(&cmp)
	c.collected.Add(1)

	if c.cfg.QualityGateEnabled {
		metrics := ValidateQuality(&cmp)
		if !metrics.IsValid {
			c.rejectedQuality.Add(1)
			logging.Debug("Collector: Rejected comparison from %s: %s",
				cmp.UserID, metrics.RejectionReason)
			return false
		}
	}

	if c.dedupe.IsDuplicate(&cmp) {
		c.rejectedDuplicate.Add(1)
		logging.Debug("Collector: Rejected duplicate comparison from %s", cmp.UserID)
		return false
	}

	rec := newRecord(cmp)

	c.queueMu.Lock()
	c.queue = append(c.queue, rec)
	depth := len(c.queue)
	c.queueMu.Unlock()

	logging.Debug("Collector: Queued record %s (depth=%d)",
		logging.FormatRecordID(rec.ID), depth)

	if depth >= c.cfg.BatchSize {
		c.Flush()
	}
	return true
}

// Flush synchronously drains the queue, sending each record to the remote
// store in FIFO order, and returns the number of records successfully sent.
// A failed send is counted, logged, and dropped; the drain continues with
// the next record. Safe to call concurrently; flushes serialize.
func (c *Collector) Flush() int {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	sent := 0
	for {
		c.queueMu.Lock()
		if len(c.queue) == 0 {
			c.queueMu.Unlock()
			break
		}
		rec := c.queue[0]
		c.queue = c.queue[1:]
		c.queueMu.Unlock()

		if err := c.sender.Send(rec); err != nil {
			c.failed.Add(1)
			logging.Warn("Collector: Failed to submit record %s: %v",
				logging.FormatRecordID(rec.ID), err)
			continue
		}
		c.submitted.Add(1)
		sent++
	}

	if sent > 0 {
		logging.Debug("Collector: Flushed %d record(s)", sent)
	}
	return sent
}

// Stats returns a snapshot of the collection counters plus the current queue
// depth and acceptance rate.
func (c *Collector) Stats() Stats {
	c.queueMu.Lock()
	depth := len(c.queue)
	c.queueMu.Unlock()

	collected := c.collected.Load()
	submitted := c.submitted.Load()

	rate := 0.0
	if collected > 0 {
		rate = float64(submitted) / float64(collected)
	}

	return Stats{
		Collected:         collected,
		Submitted:         submitted,
		RejectedQuality:   c.rejectedQuality.Load(),
		RejectedDuplicate: c.rejectedDuplicate.Load(),
		Failed:            c.failed.Load(),
		QueueDepth:        depth,
		AcceptanceRate:    rate,
	}
}

// Domain returns the taxonomy domain this collector stamps on submissions.
func (c *Collector) Domain() string {
	return c.cfg.Domain
}

// Stop terminates the background flusher, waits for it to exit, then
// performs a final flush to drain anything queued after the worker's last
// pass. Safe to call more than once; only the first call does the work.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		c.wg.Wait()
		drained := c.Flush()
		logging.Info("Collector: Stopped for domain %s (drained %d record(s))",
			c.cfg.Domain, drained)
	})
}

// runFlusher is the background worker: it parks on a ticker and flushes the
// queue each interval. The stop signal interrupts the wait so shutdown is
// prompt rather than waiting out a full interval; the final flush is Stop's
// responsibility, not the worker's.
func (c *Collector) runFlusher() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.Flush()
		}
	}
}

// normalize applies submission defaults before the pipeline sees the
// comparison: the collector's domain is stamped on, an unset category maps
// to "general", and an unset confidence means full confidence.
func (c *Collector) normalize(cmp *Comparison) {
	cmp.Domain = c.cfg.Domain
	if cmp.Category == "" {
		cmp.Category = "general"
	}
	if cmp.Confidence == 0 {
		cmp.Confidence = 1.0
	}
	if cmp.Context == nil {
		cmp.Context = map[string]string{}
	}
}
