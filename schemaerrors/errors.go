package schemaerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrReference indicates a reference resolution failure of any kind.
	ErrReference = errors.New("reference error")

	// ErrInvalidReferenceRoot indicates a $ref that does not start with "#".
	ErrInvalidReferenceRoot = errors.New("invalid reference root")

	// ErrInvalidReferenceTarget indicates a $ref whose target is not the
	// document's definitions map.
	ErrInvalidReferenceTarget = errors.New("invalid reference target")

	// ErrReferenceNotFound indicates a $ref that walks through a key the
	// document does not define.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ReferenceErrorKind classifies a ReferenceError.
type ReferenceErrorKind int

const (
	// KindInvalidRoot means the reference does not start with "#".
	KindInvalidRoot ReferenceErrorKind = iota

	// KindInvalidTarget means the reference's second segment is not
	// "definitions", or a strict parse rejected extra path segments.
	KindInvalidTarget

	// KindNotFound means resolution dereferenced through a missing key.
	KindNotFound
)

// String returns the human-readable name of the kind.
func (k ReferenceErrorKind) String() string {
	switch k {
	case KindInvalidRoot:
		return "invalid reference root"
	case KindInvalidTarget:
		return "invalid reference target"
	case KindNotFound:
		return "reference not found"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ReferenceError represents a malformed or unresolvable $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to parse or resolve
	Ref string
	// Kind classifies the failure
	Kind ReferenceErrorKind
	// Segment is the path segment that failed to resolve (KindNotFound only)
	Segment string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := e.Kind.String()
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (missing key: %s)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and the kind-specific sentinel for e.Kind.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	switch e.Kind {
	case KindInvalidRoot:
		return target == ErrInvalidReferenceRoot
	case KindInvalidTarget:
		return target == ErrInvalidReferenceTarget
	case KindNotFound:
		return target == ErrReferenceNotFound
	}
	return false
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when conversion or scanning exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "schema_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
