// Package docxml provides custom error types for reporting bad input.
package docxml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xmlbuilder"
)

// InputError represents a problem in a declarative run description
type InputError struct {
	Path    string
	Field   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	var b strings.Builder
	b.WriteString("input error")
	if e.Path != "" {
		fmt.Fprintf(&b, " in '%s'", e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " at %s", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// NewInputError creates a new input error
func NewInputError(field, message string, cause error) error {
	return &InputError{Field: field, Message: message, Cause: cause}
}

// HTMLError represents HTML input that cannot be mapped onto runs
type HTMLError struct {
	Tag     string
	Message string
	Cause   error
}

func (e *HTMLError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("html error near <%s>: %s", e.Tag, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("html error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html error: %s", e.Message)
}

func (e *HTMLError) Unwrap() error {
	return e.Cause
}

// RenderError reports a serialization that aborted on a builder misuse
type RenderError struct {
	Element string
	Cause   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error for %s: %v", e.Element, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// recoverMisuse converts a recovered builder panic into a RenderError.
// Any other panic value is re-raised.
func recoverMisuse(element string, r interface{}) error {
	var misuse *xmlbuilder.MisuseError
	if err, ok := r.(error); ok && errors.As(err, &misuse) {
		return &RenderError{Element: element, Cause: misuse}
	}
	panic(r)
}

// IsInputError checks if an error is or wraps an input error
func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

// IsHTMLError checks if an error is or wraps an HTML error
func IsHTMLError(err error) bool {
	var target *HTMLError
	return errors.As(err, &target)
}

// IsValidationError checks if an error is or wraps a validation error
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
