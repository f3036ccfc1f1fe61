// Package errors provides unified error handling for the stream kit.
// It implements structured error types with machine-readable codes so
// failures surfacing as terminal completions can be classified by the
// consumer without string matching.
package errors
