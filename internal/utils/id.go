// Package utils provides common utility functions for the Zuup Collect platform.
//
// This file implements unified ID generation and truncation functionality used
// across the platform for creating and displaying unique identifiers. Provides
// consistent ID formats for collection sessions, queued records, and other
// resources while eliminating code duplication.
//
// ID GENERATION STRATEGY:
// Uses crypto/rand for high-quality random data generation to ensure uniqueness
// across concurrent producers and prevent collisions. All IDs follow the same
// 12-character hexadecimal format for consistency and readability.
//
// USAGE PATTERNS:
// - Session IDs: Unique collection session identification for correlation
// - Record IDs: Unique queued record identification for logging and tracing
//
// The unified approach ensures consistent ID formats across all platform
// components while providing a single source of truth for ID handling logic.

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TruncatedIDLength is the display width used for shortened identifiers in
// operational logs and CLI tables. Matches Docker-style short IDs.
const TruncatedIDLength = 12

// GenerateID creates a unique 12-character hex identifier for platform resources.
// Uses crypto/rand to ensure uniqueness across concurrent producers and prevent
// collisions.
//
// Essential for resource identification, logging correlation, and API operations
// where resources need to be uniquely referenced. The 12-character format
// balances uniqueness with human readability in logs and interfaces.
//
// Returns format: "a1b2c3d4e5f6" (12 hex characters, similar to Docker short IDs)
func GenerateID() (string, error) {
	// Generate 6 bytes of random data (12 hex characters)
	bytes := make([]byte, 6)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// TruncateIDSafe shortens an identifier to TruncatedIDLength characters for
// display purposes. IDs already at or below the display width are returned
// unchanged, so the function is safe for arbitrary input including empty
// strings and already-short identifiers.
func TruncateIDSafe(id string) string {
	if len(id) <= TruncatedIDLength {
		return id
	}
	return id[:TruncatedIDLength]
}
