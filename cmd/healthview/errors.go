package main

import (
	"fmt"
	"strings"

	"github.com/healthexplorer/healthview/types"
)

// CLIError represents a user-friendly CLI error with context and suggestions
type CLIError struct {
	Operation   string   // The operation that failed (e.g., "rows", "summary")
	Cause       string   // The underlying cause (e.g., "country not found")
	Details     string   // Additional technical details
	Suggestions []string // Helpful suggestions for the user
	Underlying  error    // Original error for debugging
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var msg strings.Builder

	if e.Operation != "" {
		msg.WriteString(fmt.Sprintf("Failed to %s", e.Operation))
	} else {
		msg.WriteString("Operation failed")
	}

	if e.Cause != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Cause))
	}

	if e.Details != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", e.Details))
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Unwrap returns the underlying error for error chain compatibility
func (e *CLIError) Unwrap() error {
	return e.Underlying
}

// NewConfigError creates an error for configuration issues
func NewConfigError(operation, issue string, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       fmt.Sprintf("configuration error: %s", issue),
		Suggestions: suggestions,
	}
}

// NewArtifactError translates an artifact load failure into an actionable
// message. A missing artifact cannot be fixed from here; the upstream
// analysis pipeline has to regenerate it.
func NewArtifactError(operation, path string, underlying error) *CLIError {
	cause := "failed to load data artifact"
	suggestions := []string{
		fmt.Sprintf("Check that %q is readable", path),
	}

	switch {
	case types.IsNotFound(underlying):
		cause = fmt.Sprintf("data artifact %q not found", path)
		suggestions = []string{
			"Run the upstream analysis pipeline to regenerate the artifact",
			"Pass --data <path> if the artifact lives elsewhere",
		}
	case types.IsMalformed(underlying):
		cause = "data artifact is malformed"
		suggestions = []string{
			"Regenerate the artifact with the upstream analysis pipeline",
		}
	}

	return &CLIError{
		Operation:   operation,
		Cause:       cause,
		Details:     underlying.Error(),
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

// NewLookupError creates an error for a failed cluster, country or method
// lookup inside a loaded artifact.
func NewLookupError(operation string, underlying error, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       underlying.Error(),
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}
