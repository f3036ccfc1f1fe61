// Package scheduler abstracts timer scheduling for time-based stream
// operators. The System scheduler delegates to the runtime clock; the
// Manual scheduler lets tests drive time deterministically without
// sleeping.
package scheduler
