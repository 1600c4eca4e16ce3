// Package handlers provides command handler functions for zuupctl.
//
// This package contains all the command execution logic for zuupctl commands,
// organized by concern for maintainability and clean separation. Each handler
// file corresponds to a specific area and contains all related command
// handlers and helper functions.
//
// The package is organized as follows:
// - pipeline.go: daemon pipeline operations (health, stats, submit, flush)
// - domain.go: taxonomy registry browsing (ls, info, prompts)
// - seed.go: seed prompt selection and response pair generation
// - export.go: training-data export from the upstream preference store
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between API communication and presentation logic
package handlers
