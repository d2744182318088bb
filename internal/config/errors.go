package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend transport settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFeedConfigs indicates invalid feed poller settings
	// (for example, zero poll interval or page size).
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
)
