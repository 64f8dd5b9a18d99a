// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors with actionable context:
// what operation failed, what resource was involved, and suggestions for
// fixing the problem.
package issue

import (
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing error
	// messages.
	//
	// Use the ErrorContext builder for convenient construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load strategy").
	//		WithResource("MyStrat").
	//		WithSuggestion("Check the strategy name for typos").
	//		Wrap(originalErr).
	//		BuildError()
	ActionableError struct {
		// Operation describes what was being attempted (e.g., "load
		// strategy", "load configuration").
		Operation string

		// Resource identifies the file, path, or entity involved
		// (optional).
		Resource string

		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string

		// Cause is the underlying error that triggered this error
		// (optional).
		Cause error
	}

	// ErrorContext is a builder for constructing ActionableError instances
	// incrementally.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WithOperation sets the operation being attempted.
func (c *ErrorContext) WithOperation(operation string) *ErrorContext {
	c.operation = operation
	return c
}

// WithResource sets the resource involved.
func (c *ErrorContext) WithResource(resource string) *ErrorContext {
	c.resource = resource
	return c
}

// WithSuggestion appends a suggestion for fixing the issue.
func (c *ErrorContext) WithSuggestion(suggestion string) *ErrorContext {
	c.suggestions = append(c.suggestions, suggestion)
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build constructs the ActionableError.
func (c *ErrorContext) Build() *ActionableError {
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError constructs the ActionableError typed as error.
func (c *ErrorContext) BuildError() error {
	return c.Build()
}

// Error implements the error interface. The message leads with the failed
// operation and resource, then the cause, then one suggestion per line.
func (e *ActionableError) Error() string {
	var b strings.Builder

	b.WriteString("failed to ")
	if e.Operation != "" {
		b.WriteString(e.Operation)
	} else {
		b.WriteString("complete operation")
	}
	if e.Resource != "" {
		fmt.Fprintf(&b, " (%s)", e.Resource)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(&b, "\n  - %s", s)
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}
