// Package netutil provides network utilities for the collection daemon.
//
// This file implements unified network error checking utilities for consistent
// error classification across networking code. Provides proper type-based
// error detection that works reliably across different operating systems and
// Go versions, avoiding fragile string-based error matching.
//
// Key capabilities:
//   - Address-in-use detection for port binding conflicts
//   - Connection-refused detection for unreachable services
//   - Proper error unwrapping and type checking
//   - Cross-platform compatibility using syscall constants
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use"
// using proper error type checking rather than string matching.
//
// Used for port binding operations during daemon initialization to
// distinguish port conflicts from other binding failures.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks if an error indicates "connection refused"
// using proper error type checking rather than string matching.
//
// Used during daemon startup to detect an unreachable preference store and
// produce an actionable warning instead of a raw transport error.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}
