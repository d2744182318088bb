// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only a sanity check at this level; the stricter rules live on the client
// view where the runtime requirements are known.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Backend.BaseURL == "" || cfg.Backend.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Feed.PollInterval <= 0 || cfg.Feed.PageSize <= 0 {
		return ErrInvalidFeedConfigs
	}

	return nil
}
