// Package validate provides configuration validation utilities for Zuup Collect
// components.
//
// This file implements common validation patterns used across multiple config
// packages to ensure consistency and reduce duplication. All functions leverage
// the go-playground/validator library for standardized validation behavior.
//
// VALIDATION UTILITIES:
//   - Port validation: Standard port range checking (1-65535)
//   - String validation: Required field and non-empty string checking
//   - Timeout validation: Positive duration validation for timeouts
//   - Pipeline validation: Batch size, confidence, and preference side checking
//
// These utilities replace manual validation code scattered across config packages
// with centralized, consistent validation using the validator library's built-in
// tags and error handling.
package validate

import (
	"fmt"
	"time"
)

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Uses the validator library for consistent error handling and messaging.
//
// Rejects port 0 (OS-assigned) since operators and platform integrations need
// a predictable address for the ingestion API.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config validation.
//
// Critical for ensuring required configuration fields like domain IDs, bind
// addresses, and remote endpoints are properly specified before service
// initialization. Prevents runtime failures from missing essential
// configuration parameters.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Essential for ensuring timeout configurations don't cause infinite waits or
// immediate failures when talking to the remote preference store.
//
// Used across remote client timeouts, flush intervals, and API shutdown
// timeouts to ensure proper timing behavior.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateBatchSize validates that a flush batch size is a usable positive
// count. A zero batch size would force a flush on every submission which
// defeats batching entirely, so it is rejected at configuration time.
func ValidateBatchSize(size int) error {
	if err := ValidateField(size, "required,min=1"); err != nil {
		return fmt.Errorf("batch size must be at least 1, got %d", size)
	}
	return nil
}

// ValidateConfidence validates that an annotator confidence value falls in
// the closed interval [0, 1]. Confidence outside this range corrupts
// downstream confidence-weighted exports.
func ValidateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence must be between 0 and 1, got %g", confidence)
	}
	return nil
}

// ValidatePreferenceSide validates the chosen-side marker of a comparison.
// Only "A", "B", and "TIE" are meaningful to the preference store.
func ValidatePreferenceSide(side string) error {
	switch side {
	case "A", "B", "TIE":
		return nil
	}
	return fmt.Errorf("preference must be one of A, B, TIE, got '%s'", side)
}
