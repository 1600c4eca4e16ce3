// Package collector implements the preference ingestion pipeline.
//
// This file implements the deduplication cache: a bounded in-memory set of
// content hashes that suppresses resubmission of (near-)identical
// comparisons. The cache is process-local and intentionally not persisted;
// cross-process deduplication is the remote store's job.
package collector

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"unicode/utf8"
)

// hashPrefixLen is the portion of each response hashed for deduplication.
// Truncating the responses trades a small false-negative rate (near
// duplicates with divergent tails) for cheaper hashing.
const hashPrefixLen = 100

// contentHashLen is the hex width of the stored content hash.
const contentHashLen = 16

// DedupeCache is a bounded set of comparison content hashes with oldest-first
// eviction. When an insertion would exceed the bound, the oldest half of the
// entries is evicted to amortize eviction cost across many insertions.
//
// Check-then-insert is atomic per call so two producers racing the same
// near-duplicate cannot both pass as "new". The cache cannot fail, only
// approximate: a legitimately old duplicate can reappear as new after
// eviction.
type DedupeCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // Front is oldest, back is newest
	maxSize int
}

// NewDedupeCache creates a deduplication cache holding at most maxSize
// content hashes. Non-positive sizes fall back to the package default.
func NewDedupeCache(maxSize int) *DedupeCache {
	if maxSize <= 0 {
		maxSize = 10000
	}
	return &DedupeCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
	}
}

// contentHash derives the fixed-width dedupe key for a comparison: a
// truncated SHA-256 over the full prompt joined with the first 100
// characters of each response.
func contentHash(c *Comparison) string {
	sum := sha256.Sum256([]byte(c.Prompt + "|" + runePrefix(c.ResponseA) + "|" + runePrefix(c.ResponseB)))
	return hex.EncodeToString(sum[:])[:contentHashLen]
}

// runePrefix returns the first hashPrefixLen characters of s. Counting runes
// rather than bytes keeps multibyte text from being cut mid-character and
// keeps hashes stable across encodings of equal-length text.
func runePrefix(s string) string {
	if utf8.RuneCountInString(s) <= hashPrefixLen {
		return s
	}
	return string([]rune(s)[:hashPrefixLen])
}

// IsDuplicate reports whether the comparison's content hash has been seen
// before. On a miss the hash is recorded before returning false; on a hit
// the entry is refreshed to most-recently-seen and true is returned.
func (d *DedupeCache) IsDuplicate(c *Comparison) bool {
	h := contentHash(c)

	d.mu.Lock()
	defer d.mu.Unlock()

	if elem, seen := d.entries[h]; seen {
		d.order.MoveToBack(elem)
		return true
	}

	if len(d.entries) >= d.maxSize {
		d.evictOldestHalf()
	}

	d.entries[h] = d.order.PushBack(h)
	return false
}

// Len returns the current number of cached hashes.
func (d *DedupeCache) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// evictOldestHalf removes the least recently seen half of the cache to make
// room for new entries. Must be called with the mutex held.
func (d *DedupeCache) evictOldestHalf() {
	target := d.maxSize / 2
	for len(d.entries) > target {
		oldest := d.order.Front()
		if oldest == nil {
			return
		}
		d.order.Remove(oldest)
		delete(d.entries, oldest.Value.(string))
	}
}
