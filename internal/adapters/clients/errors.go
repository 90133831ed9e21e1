// Package clients holds the instrumented HTTP client used for upstreams.
package clients

import "errors"

// Transport level failures. Callers translate these into domain errors.
var (
	// ErrCircuitOpen means the breaker is rejecting calls to an unhealthy upstream.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
