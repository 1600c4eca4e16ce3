// Package validate provides network validation utilities for Zuup Collect
// services, ensuring proper network configuration for the ingestion API and
// remote store communication.
//
// Implements IP address, port range, and address format validation using the
// go-playground/validator library. Prevents network configuration errors that
// could cause the collection daemon to bind incorrectly or fail to reach the
// remote preference store.
//
// VALIDATION FEATURES:
//   - IP Address: IPv4 and IPv6 format validation
//   - Port Range: Valid port numbers (0-65535)
//   - Format: Proper "host:port" address formatting
//
// Used for validating bind addresses and API endpoints throughout daemon
// startup, CLI flag processing, and configuration loading.
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: ip, min, max - no custom registration needed
}

// NetworkAddress represents a validated network address with host and port
// components for service endpoints. Provides a standardized structure for
// network addresses used throughout the system with built-in validation tags.
//
// The structure ensures all network addresses meet requirements before being
// used for API binding or remote connections. Uses struct tags for automatic
// validation via the go-playground/validator library.
// Port 0 passes parsing on purpose: it is a valid OS-assigned port, and
// callers that need a predictable port enforce min=1 themselves.
type NetworkAddress struct {
	Host string `validate:"required,ip"`     // Built-in IP validator
	Port int    `validate:"min=0,max=65535"` // Built-in range validator
}

// String returns the network address in standard "host:port" format suitable for
// network connections, configuration display, and logging. Provides consistent
// string representation of validated network addresses across the system.
func (na NetworkAddress) String() string {
	return fmt.Sprintf("%s:%d", na.Host, na.Port)
}

// ParseBindAddress parses and validates a "host:port" address string for
// service binding. Provides comprehensive validation including format checking,
// IP address validation, and port range verification.
//
// Essential for processing user-provided network addresses from configuration
// files, CLI arguments, and environment variables. Ensures all network
// endpoints are properly formatted and valid before attempting network
// operations, preventing runtime failures and providing clear error messages
// for troubleshooting.
//
// Returns a validated NetworkAddress structure or detailed error information
// for debugging network configuration issues during daemon setup.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	// Validate using struct tags
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates individual values against specified validation rules
// using the go-playground/validator library. Provides flexible validation for
// single fields without requiring struct definitions, useful for dynamic
// validation scenarios.
//
// Supports all built-in validation tags including IP addresses, numeric ranges,
// string patterns, and required field validation. Essential for validating
// individual configuration parameters and user inputs throughout the system.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct validates a struct using its validation tags. Used by the
// ingestion API to validate inbound submission payloads after binding and by
// config packages for batch validation of configuration structures.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// All validation uses built-in validators from go-playground/validator:
// - ip: validates IP addresses using net.ParseIP internally
// - min/max: validates numeric ranges
// - required: ensures non-empty values
// Use ValidateField() for single field validation or struct tags for batch validation
