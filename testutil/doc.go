// Package testutil provides helpers for testing code built on the stream
// kit: a recording subscriber that captures values and the terminal
// completion, and a polling helper for asynchronous assertions.
package testutil
