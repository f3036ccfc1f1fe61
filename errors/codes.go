package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Stream errors
const (
	// ErrCodeTransformFailed indicates a user-supplied transform returned an error.
	ErrCodeTransformFailed ErrorCode = "TRANSFORM_FAILED"
	// ErrCodeAssignFailed indicates a failure reached an assign sink,
	// which requires a failure-free upstream.
	ErrCodeAssignFailed ErrorCode = "ASSIGN_FAILED"
	// ErrCodeSubjectTerminated indicates a send on a subject that already completed.
	ErrCodeSubjectTerminated ErrorCode = "SUBJECT_TERMINATED"
)

// Configuration errors
const (
	// ErrCodeConfigInvalid indicates a configuration field failed validation.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	// ErrCodeConfigNotFound indicates no configuration file could be resolved.
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
