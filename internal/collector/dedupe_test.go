package collector

import (
	"fmt"
	"strings"
	"testing"
)

// TestDedupeCacheMonotonic tests that the first sighting is new and the
// second is a duplicate
func TestDedupeCacheMonotonic(t *testing.T) {
	cache := NewDedupeCache(100)
	c := wellFormedComparison()

	if cache.IsDuplicate(&c) {
		t.Error("First sighting should not be a duplicate")
	}
	if !cache.IsDuplicate(&c) {
		t.Error("Second sighting should be a duplicate")
	}
	if cache.Len() != 1 {
		t.Errorf("Expected 1 cached hash, got %d", cache.Len())
	}
}

// TestDedupeCacheTruncatedHash tests that only the first 100 characters of
// each response participate in the content hash
func TestDedupeCacheTruncatedHash(t *testing.T) {
	cache := NewDedupeCache(100)

	base := wellFormedComparison()
	base.ResponseA = strings.Repeat("a", 150)
	base.ResponseB = strings.Repeat("b", 150)

	divergent := base
	divergent.ResponseA = strings.Repeat("a", 100) + strings.Repeat("z", 50)

	if cache.IsDuplicate(&base) {
		t.Error("First sighting should not be a duplicate")
	}
	if !cache.IsDuplicate(&divergent) {
		t.Error("Comparison diverging only after 100 chars should hash identically")
	}

	earlyDivergent := base
	earlyDivergent.ResponseA = strings.Repeat("z", 150)
	if cache.IsDuplicate(&earlyDivergent) {
		t.Error("Comparison diverging within 100 chars should be new")
	}
}

// TestDedupeCacheMultibyteTruncation tests that truncation counts characters
// rather than bytes: responses diverging past 100 bytes but within 100
// characters must still hash differently
func TestDedupeCacheMultibyteTruncation(t *testing.T) {
	cache := NewDedupeCache(100)

	// 40 characters (120 bytes): the first 100 bytes of both variants are
	// identical, so only character-based truncation sees the divergence
	shared := strings.Repeat("語", 40)

	first := wellFormedComparison()
	first.ResponseA = shared + strings.Repeat("a", 20)

	second := wellFormedComparison()
	second.ResponseA = shared + strings.Repeat("z", 20)

	if cache.IsDuplicate(&first) {
		t.Error("First sighting should not be a duplicate")
	}
	if cache.IsDuplicate(&second) {
		t.Error("Divergence within the first 100 characters should produce a different hash")
	}

	late := wellFormedComparison()
	late.ResponseA = strings.Repeat("語", 100) + "tail one"
	lateVariant := late
	lateVariant.ResponseA = strings.Repeat("語", 100) + "tail two"

	if cache.IsDuplicate(&late) {
		t.Error("First sighting should not be a duplicate")
	}
	if !cache.IsDuplicate(&lateVariant) {
		t.Error("Divergence after 100 characters should hash identically")
	}
}

// TestDedupeCachePromptSensitivity tests that the full prompt participates
// in the hash even when responses match
func TestDedupeCachePromptSensitivity(t *testing.T) {
	cache := NewDedupeCache(100)

	first := wellFormedComparison()
	second := wellFormedComparison()
	second.Prompt = first.Prompt + " (revised)"

	if cache.IsDuplicate(&first) {
		t.Error("First sighting should not be a duplicate")
	}
	if cache.IsDuplicate(&second) {
		t.Error("Different prompt should produce a different hash")
	}
}

// TestDedupeCacheEvictionFreesCapacity tests that filling the cache to its
// bound still leaves room for subsequent distinct submissions
func TestDedupeCacheEvictionFreesCapacity(t *testing.T) {
	const maxSize = 50
	cache := NewDedupeCache(maxSize)

	for i := 0; i < maxSize; i++ {
		c := wellFormedComparison()
		c.Prompt = fmt.Sprintf("Distinct prompt number %d for eviction coverage", i)
		if cache.IsDuplicate(&c) {
			t.Fatalf("Unexpected duplicate verdict for distinct prompt %d", i)
		}
	}
	if cache.Len() != maxSize {
		t.Fatalf("Expected cache at capacity %d, got %d", maxSize, cache.Len())
	}

	// The insertion that would exceed the bound evicts the oldest half first
	overflow := wellFormedComparison()
	overflow.Prompt = "One more distinct prompt beyond the capacity bound"
	if cache.IsDuplicate(&overflow) {
		t.Fatal("Post-eviction distinct submission should be accepted as new")
	}
	if cache.Len() != maxSize/2+1 {
		t.Errorf("Expected %d entries after eviction, got %d", maxSize/2+1, cache.Len())
	}

	// Oldest entries were evicted, so the earliest hash reads as new again
	revisit := wellFormedComparison()
	revisit.Prompt = "Distinct prompt number 0 for eviction coverage"
	if cache.IsDuplicate(&revisit) {
		t.Error("Oldest hash should have been evicted and read as new")
	}

	// The newest pre-eviction entries survive
	recent := wellFormedComparison()
	recent.Prompt = fmt.Sprintf("Distinct prompt number %d for eviction coverage", maxSize-1)
	if !cache.IsDuplicate(&recent) {
		t.Error("Newest pre-eviction hash should have survived eviction")
	}
}

// TestDedupeCacheHitRefreshesRecency tests that a duplicate sighting moves
// the entry to most-recently-seen so hot entries outlive evictions
func TestDedupeCacheHitRefreshesRecency(t *testing.T) {
	cache := NewDedupeCache(4)

	prompts := []string{
		"First distinct prompt for recency",
		"Second distinct prompt for recency",
		"Third distinct prompt for recency",
		"Fourth distinct prompt for recency",
	}
	for _, p := range prompts {
		c := wellFormedComparison()
		c.Prompt = p
		cache.IsDuplicate(&c)
	}

	// Touch the oldest entry so it becomes the newest
	touched := wellFormedComparison()
	touched.Prompt = prompts[0]
	if !cache.IsDuplicate(&touched) {
		t.Fatal("Expected duplicate verdict on touch")
	}

	// Overflow: eviction keeps the newest half, which now includes the
	// touched entry
	overflow := wellFormedComparison()
	overflow.Prompt = "Fifth distinct prompt for recency"
	cache.IsDuplicate(&overflow)

	retouch := wellFormedComparison()
	retouch.Prompt = prompts[0]
	if !cache.IsDuplicate(&retouch) {
		t.Error("Touched entry should have survived eviction")
	}
}
