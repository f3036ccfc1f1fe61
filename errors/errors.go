package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified error type of the kit.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common Error Constructors ---

// TransformFailed wraps an error returned by a user-supplied transform
// function inside a stream operator.
func TransformFailed(cause error) *Error {
	return &Error{
		Code: ErrCodeTransformFailed, Message: "A stream transform function returned an error.",
		Cause: cause,
	}
}

// AssignFailed reports a failed completion delivered to an assign sink.
func AssignFailed(cause error) *Error {
	return &Error{
		Code: ErrCodeAssignFailed, Message: "Assign requires a failure-free upstream.",
		Cause: cause,
	}
}

// SubjectTerminated reports an operation on a subject that already
// delivered its terminal completion.
func SubjectTerminated(op string) *Error {
	return &Error{
		Code: ErrCodeSubjectTerminated, Message: "The subject already completed.",
		Details: map[string]any{"operation": op},
	}
}

// ConfigInvalid reports an invalid configuration field.
func ConfigInvalid(field, reason string) *Error {
	return &Error{
		Code: ErrCodeConfigInvalid, Message: fmt.Sprintf("Configuration field %s is invalid: %s.", field, reason),
		Details: map[string]any{"field": field},
	}
}

// Internal wraps an unexpected internal error.
func Internal(cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Message: "An unexpected internal error occurred.",
		Cause: cause,
	}
}

// --- Inspection helpers ---

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// Returns ErrCodeInternal for errors that are not kit errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}

// Is delegates to the standard library for use with wrapped errors.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As delegates to the standard library for use with wrapped errors.
func As(err error, target any) bool { return stderrors.As(err, target) }
