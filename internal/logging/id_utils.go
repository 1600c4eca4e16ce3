// Package logging provides ID formatting utilities for consistent ID display
// across all logging contexts in the Zuup Collect preference pipeline.
//
// Implements intelligent ID truncation that preserves full IDs in debug contexts
// while providing user-friendly short IDs in info/warning contexts, improving
// log readability without sacrificing traceability when detailed debugging is needed.
//
// ID FORMATTING STRATEGY:
//   - Debug logs: Full-length IDs for complete traceability
//   - Info/Warn/Error/Success logs: Truncated 12-character IDs for readability
//   - Consistent formatting across all pipeline components
//
// USAGE PATTERNS:
//   - FormatRecordID: Format queued record IDs for logging with context-aware truncation
//   - FormatSessionID: Format collection session IDs for logging with context-aware truncation
//   - FormatID: Generic ID formatting for any resource type
//
// The context-aware approach ensures operators get readable logs during normal
// operations while preserving full detail when troubleshooting specific issues.
package logging

import (
	"github.com/charmbracelet/log"
	"github.com/zuup-ai/zuup-collect/internal/utils"
)

// FormatID formats an ID for logging based on the current log level context.
// Returns the full ID for debug logging to ensure complete traceability during
// troubleshooting, while returning a truncated 12-character ID for other log
// levels to improve readability in operational logs.
//
// Essential for maintaining consistent ID display across all pipeline logging
// while balancing operational readability with debugging detail requirements.
func FormatID(id string) string {
	// If debug level is enabled, show full IDs for complete traceability
	// Use stderr logger since debug messages go to stderr
	if stderrLogger.GetLevel() <= log.DebugLevel {
		return id
	}

	// For info/warn/error/success contexts, use truncated IDs for readability
	return utils.TruncateIDSafe(id)
}

// FormatRecordID formats a queued record ID for logging with context-aware truncation.
// Provides a semantic wrapper around FormatID specifically for record identifiers.
//
// Usage: logging.Info("Submitting record %s", logging.FormatRecordID(recordID))
func FormatRecordID(recordID string) string {
	return FormatID(recordID)
}

// FormatSessionID formats a collection session ID for logging with context-aware
// truncation. Provides a semantic wrapper around FormatID for session identifiers.
//
// Usage: logging.Info("Session %s started", logging.FormatSessionID(sessionID))
func FormatSessionID(sessionID string) string {
	return FormatID(sessionID)
}
