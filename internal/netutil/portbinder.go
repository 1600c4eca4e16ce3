// Package netutil provides network utilities for the collection daemon.
//
// This package implements port binding and socket management utilities to
// eliminate race conditions during daemon startup. The core functionality
// centers around pre-binding network listeners to truly reserve ports before
// passing them to services, preventing "test-and-close" race windows that can
// cause startup failures when several daemons share a host.
//
// Key capabilities:
//   - Atomic port reservation through pre-binding
//   - IPv4-specific binding for consistent cross-platform behavior
//   - Typed address-in-use errors for targeted startup diagnostics
package netutil

import (
	"fmt"
	"net"
)

// AddressInUseError represents a "port already in use" error that preserves
// the original error for proper type checking while providing user-friendly messages.
type AddressInUseError struct {
	Port    int
	Address string
	Err     error
}

func (e *AddressInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use on %s", e.Port, e.Address)
}

func (e *AddressInUseError) Unwrap() error {
	return e.Err
}

// PortBinder provides utilities for pre-binding network listeners to eliminate
// port allocation race conditions during service startup.
//
// The core problem this solves: traditional "find free port + close + bind later"
// patterns have inherent race conditions where another process can claim the port
// between discovery and actual binding. PortBinder eliminates this by immediately
// binding and holding the listener until the service is ready to use it.
type PortBinder struct{}

// NewPortBinder creates a new PortBinder instance for managing port reservations.
func NewPortBinder() *PortBinder {
	return &PortBinder{}
}

// BindTCP creates and binds a TCP listener to the specified address, immediately
// reserving the port for exclusive use by this process. Returns the bound listener
// that can be passed directly to services for immediate use.
//
// This is the core atomic operation that eliminates race conditions - once this
// method returns successfully, the port is guaranteed to be reserved until the
// returned listener is closed.
//
// Forces IPv4 binding for consistent behavior across platforms and to avoid
// dual-stack complications.
func (pb *PortBinder) BindTCP(address string, port int) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", address, port)

	// Force IPv4 for consistent behavior across platforms
	listener, err := net.Listen("tcp4", addr)
	if err != nil {
		if IsAddressInUseError(err) {
			// Return a wrapped error that preserves the original for type checking
			return nil, &AddressInUseError{
				Port:    port,
				Address: address,
				Err:     err,
			}
		}
		return nil, fmt.Errorf("failed to bind TCP to %s: %w", addr, err)
	}

	return listener, nil
}

// GetListenerPort extracts the port number from a bound net.Listener.
// Useful for discovering the actual port when using OS-assigned ports (port 0).
func (pb *PortBinder) GetListenerPort(listener net.Listener) (int, error) {
	addr := listener.Addr()
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("listener is not a TCP listener: %T", addr)
	}

	return tcpAddr.Port, nil
}
