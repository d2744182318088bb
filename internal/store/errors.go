package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned by LoadSession when no session has
	// been persisted yet (first run, or after logout).
	ErrLocalSessionNotFound = errors.New("local session not found")
)
