package adapter

import "errors"

// Sentinel transport errors. mapHTTPError wraps one of these around the
// response body so callers can branch with errors.Is while keeping the
// backend's message for logs.
var (
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")

	// ErrTransient marks network failures and backend 5xx responses. The
	// feed engine treats these as retryable on the next natural trigger.
	ErrTransient = errors.New("transient backend error")
)
