package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{Name: "Receitas"},
		Backend: ClientBackend{
			BaseURL:        "http://localhost:54321",
			AnonKey:        "anon",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "cache.db"}},
		Feed:    ClientFeed{PollInterval: 30 * time.Second, PageSize: 100},
	}
}

func TestClientConfigValidate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_Backend(t *testing.T) {
	cfg := validClientConfig()
	cfg.Backend.BaseURL = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidBackendConfigs)

	cfg = validClientConfig()
	cfg.Backend.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidBackendConfigs)
}

func TestClientConfigValidate_Storage(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_Feed(t *testing.T) {
	cfg := validClientConfig()
	cfg.Feed.PollInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidFeedConfigs)

	cfg = validClientConfig()
	cfg.Feed.PageSize = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidFeedConfigs)
}
