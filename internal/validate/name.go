// Package validate provides input validation utilities for Zuup Collect
// operations, ensuring data integrity across submissions and configuration
// management.
//
// Implements validation rules for domain identifiers, annotator identifiers,
// and configuration parameters. Prevents malformed data from polluting the
// preference store or causing operational issues downstream in training
// pipelines that consume the collected data.
//
// VALIDATION COVERAGE:
//   - Domain IDs: Format validation for taxonomy domain identifiers
//   - Annotator IDs: Format validation for producer/annotator identifiers
//   - Configuration: Parameter validation for system settings
//
// Used throughout CLI tools, the ingestion API, configuration processing, and
// collection operations to ensure consistent input validation across all
// system entry points.

package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// DomainIDFormat validates domain identifiers against taxonomy naming
// requirements. Ensures identifiers contain only [a-z0-9_-] and don't
// start/end with special characters.
//
// Necessary for stable record keys in the remote preference store and for
// reliable filtering when exported datasets are grouped by domain.
func DomainIDFormat(id string) error {
	if id == "" {
		return fmt.Errorf("domain ID cannot be empty")
	}

	// Check if the ID contains only allowed characters: lowercase letters, numbers, hyphens, underscores
	validIDRegex := regexp.MustCompile(`^[a-z0-9_-]+$`)
	if !validIDRegex.MatchString(id) {
		return fmt.Errorf("domain ID '%s' must contain only lowercase letters [a-z], numbers [0-9], hyphens (-), and underscores (_)", id)
	}

	// Ensure it starts and ends with alphanumeric (not - or _)
	if strings.HasPrefix(id, "-") || strings.HasPrefix(id, "_") ||
		strings.HasSuffix(id, "-") || strings.HasSuffix(id, "_") {
		return fmt.Errorf("domain ID '%s' cannot start or end with hyphen (-) or underscore (_)", id)
	}

	return nil
}

// InstanceNameFormat validates daemon instance names. Names appear in logs
// and remote submission metadata, so the format matches domain IDs: only
// [a-z0-9_-] with alphanumeric boundaries.
func InstanceNameFormat(name string) error {
	if name == "" {
		return fmt.Errorf("instance name cannot be empty")
	}

	validNameRegex := regexp.MustCompile(`^[a-z0-9_-]+$`)
	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("instance name '%s' must contain only lowercase letters [a-z], numbers [0-9], hyphens (-), and underscores (_)", name)
	}

	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_") ||
		strings.HasSuffix(name, "-") || strings.HasSuffix(name, "_") {
		return fmt.Errorf("instance name '%s' cannot start or end with hyphen (-) or underscore (_)", name)
	}

	return nil
}

// AnnotatorIDFormat validates annotator identifiers submitted with preference
// records. Annotator IDs are caller-supplied and looser than domain IDs since
// they commonly embed platform prefixes, but control characters and
// whitespace are rejected to keep exported datasets clean.
func AnnotatorIDFormat(id string) error {
	if id == "" {
		return fmt.Errorf("annotator ID cannot be empty")
	}

	validIDRegex := regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	if !validIDRegex.MatchString(id) {
		return fmt.Errorf("annotator ID '%s' must contain only letters, numbers, dots (.), hyphens (-), and underscores (_)", id)
	}

	return nil
}
