package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// Name is the app display name shown in the UI header.
	Name string
}

// ClientBackend holds network settings used by the client transport layer.
type ClientBackend struct {
	// BaseURL is the root URL of the managed backend.
	BaseURL string
	// AnonKey is the public API key sent with every request.
	AnonKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientFeed contains feed poller settings.
type ClientFeed struct {
	// PollInterval defines how often the feed poller runs.
	PollInterval time.Duration
	// PageSize bounds the number of rows per feed query.
	PageSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Backend contains client transport settings.
	Backend ClientBackend
	// Storage contains client storage settings.
	Storage ClientStorage
	// Feed contains background poller settings.
	Feed ClientFeed
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Name: cfg.App.Name,
		},
		Backend: ClientBackend{
			BaseURL:        cfg.Backend.BaseURL,
			AnonKey:        cfg.Backend.AnonKey,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Feed: ClientFeed{
			PollInterval: cfg.Feed.PollInterval,
			PageSize:     cfg.Feed.PageSize,
		},
	}

	return clientCfg, clientCfg.validate()
}
